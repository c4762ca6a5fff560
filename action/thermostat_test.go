package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestBuildThermostatRequestsModeOnly(t *testing.T) {
	reqs, err := buildThermostatRequests(ruleir.ThermostatSetAction{ThermostatID: "T1", Mode: ruleir.ThermostatCool})
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "mode", reqs[0]["resource"])
	assert.Equal(t, "cool", reqs[0]["value"])
}

func TestBuildThermostatRequestsWithSetpointAndHold(t *testing.T) {
	setpoint := "72"
	hold := true
	reqs, err := buildThermostatRequests(ruleir.ThermostatSetAction{
		ThermostatID: "T1",
		Mode:         ruleir.ThermostatHeat,
		Setpoint:     &setpoint,
		Hold:         &hold,
	})
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, "mode", reqs[0]["resource"])
	assert.Equal(t, true, reqs[0]["hold"])
	assert.Equal(t, "setpointHeat", reqs[1]["resource"])
	assert.Equal(t, "72", reqs[1]["value"])
	assert.Equal(t, "hold", reqs[2]["resource"])
	assert.Equal(t, "true", reqs[2]["value"])
}

func TestBuildThermostatRequestsUnknownModeFails(t *testing.T) {
	_, err := buildThermostatRequests(ruleir.ThermostatSetAction{ThermostatID: "T1", Mode: ruleir.ThermostatMode(99)})
	assert.Error(t, err)
}
