package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

func TestBuildLightRequestsLevelBeforeIsOn(t *testing.T) {
	level := 150
	reqs, err := buildLightRequests(ruleir.LightAction{On: true, LightID: "L1", Level: &level}, "")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "level", reqs[0]["resource"])
	assert.Equal(t, "100", reqs[0]["value"]) // clamped
	assert.Equal(t, "isOn", reqs[1]["resource"])
}

func TestBuildLightRequestsNoLevelWhenOff(t *testing.T) {
	reqs, err := buildLightRequests(ruleir.LightAction{On: false, LightID: "L1"}, "")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "isOn", reqs[0]["resource"])
	assert.Equal(t, "false", reqs[0]["value"])
}

func TestBuildLightRequestsWithDurationAppendsTimerEmit(t *testing.T) {
	duration := 30
	reqs, err := buildLightRequests(ruleir.LightAction{On: true, LightID: "L1", Duration: &duration}, "timer-1")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "timerEmit", reqs[1]["type"])
	assert.Equal(t, "timer-1", reqs[1]["timerId"])
}

func TestDurationTimerNodeWritesOppositeIsOn(t *testing.T) {
	duration := 30
	gen := uid.NewGenerator()
	name, startBranch, node, err := durationTimerNode(ruleir.LightAction{On: true, LightID: "L1", Duration: &duration}, "timer-1", gen)
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, startBranch.Target)
	assert.True(t, startBranch.Pattern["constraints-required"].(bool))
	assert.Contains(t, node.Source, `"value":"false"`)
	assert.Equal(t, "reset", node.Branches[0].Target)
}
