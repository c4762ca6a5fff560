package negate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

func negateWindow() *ruleir.Constraint {
	return &ruleir.Constraint{
		TimeConstraints: []ruleir.TimeWindow{{
			Start:     ruleir.WeekTime{Seconds: 64800}, // 18:00
			End:       ruleir.WeekTime{Seconds: 79200}, // 22:00
			DayOfWeek: ruleir.Weekdays(),
		}},
	}
}

func TestCompileProducesAllFixedNodes(t *testing.T) {
	triggers := []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}}
	startBranch, nodes, err := Compile(triggers, negateWindow(), uid.NewGenerator())
	require.NoError(t, err)

	assert.Equal(t, "start_time", startBranch.Target)
	for _, name := range []string{"start_time", "reset_for_trigger_window", "trigger_window", "end_time", "constraints"} {
		assert.Contains(t, nodes, name)
	}
}

func TestTriggerWindowIsMessageNodeWithRetargetedBranches(t *testing.T) {
	triggers := []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}}
	_, nodes, err := Compile(triggers, negateWindow(), uid.NewGenerator())
	require.NoError(t, err)

	tw := nodes["trigger_window"]
	require.True(t, tw.IsMessageNode)
	require.Len(t, tw.Branches, 2)
	// The zone pattern routes through its filter helper node, whose
	// branches have all been retargeted from constraints to reset.
	helper, ok := nodes[tw.Branches[0].Target]
	require.True(t, ok)
	for _, b := range helper.Branches {
		assert.Equal(t, "reset", b.Target)
	}
	assert.Equal(t, "end_time", tw.Branches[1].Target)
}

func TestEndTimeNodeMatchesToConstraintsElseResetForTriggerWindow(t *testing.T) {
	triggers := []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}}
	_, nodes, err := Compile(triggers, negateWindow(), uid.NewGenerator())
	require.NoError(t, err)

	endTime := nodes["end_time"]
	require.Len(t, endTime.Branches, 2)
	assert.Equal(t, "constraints", endTime.Branches[0].Target)
	assert.Equal(t, "reset_for_trigger_window", endTime.Branches[1].Target)
}

func TestStartTimeNodeMatchesToResetForTriggerWindowElseReset(t *testing.T) {
	triggers := []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}}
	_, nodes, err := Compile(triggers, negateWindow(), uid.NewGenerator())
	require.NoError(t, err)

	startTime := nodes["start_time"]
	require.Len(t, startTime.Branches, 2)
	assert.Equal(t, "reset_for_trigger_window", startTime.Branches[0].Target)
	assert.Equal(t, "reset", startTime.Branches[1].Target)
}

func TestCompileNoTriggersFails(t *testing.T) {
	_, _, err := Compile(nil, negateWindow(), uid.NewGenerator())
	assert.Error(t, err)
}

func TestCompileNoWindowFails(t *testing.T) {
	triggers := []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}}
	_, _, err := Compile(triggers, nil, uid.NewGenerator())
	assert.Error(t, err)
}
