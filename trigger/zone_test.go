package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestZoneEventCode(t *testing.T) {
	assert.Equal(t, "zoneFault", zoneEventCode(ruleir.ZoneOpen))
	assert.Equal(t, "zoneRestore", zoneEventCode(ruleir.ZoneClosed))
	assert.Equal(t, "", zoneEventCode(ruleir.ZoneEither))
}

func TestZoneFilterScriptMotionOnlyFilter(t *testing.T) {
	src := zoneFilterScript(ruleir.ZoneTypeMotion, ruleir.ZoneOpen)
	assert.Contains(t, src, `bindings["zoneType"] !== "motion"`)
}

func TestZoneFilterScriptEitherFilter(t *testing.T) {
	src := zoneFilterScript(ruleir.ZoneTypeDoor, ruleir.ZoneEither)
	assert.Contains(t, src, "zoneFault")
	assert.Contains(t, src, "zoneRestore")
}

func TestZoneFilterScriptOccDetection(t *testing.T) {
	src := zoneFilterScript(ruleir.ZoneTypeDoor, ruleir.ZoneOpen)
	assert.Contains(t, src, "occFault")
	assert.Contains(t, src, "on-demand-required")
}
