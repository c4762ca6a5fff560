package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
)

func TestCompileHeatAndBothEntriesSplitAcrossLists(t *testing.T) {
	node, branches, err := Compile([]ruleir.ScheduleEntry{
		{At: ruleir.WeekTime{Day: dayPtr(ruleir.Monday), Seconds: 21600}, ThermostatIDs: []string{"T1", "T2"}, Mode: ruleir.ScheduleHeat, Temperature: 70},
		{At: ruleir.WeekTime{Day: dayPtr(ruleir.Friday), Seconds: 79200}, ThermostatIDs: []string{"T1", "T2"}, Mode: ruleir.ScheduleBoth, Temperature: 70},
	}, 55)
	require.NoError(t, err)
	require.Len(t, branches, 4)
	assert.Equal(t, "constraints", branches[0].Target)

	assert.Contains(t, node.Source, "runScheduler")
	assert.Contains(t, node.Source, "setpointHeat")
	assert.Contains(t, node.Source, "setpointCool")
}

func TestCompileRejectsDuplicateEntries(t *testing.T) {
	entry := ruleir.ScheduleEntry{At: ruleir.WeekTime{Seconds: 21600}, ThermostatIDs: []string{"T1"}, Mode: ruleir.ScheduleHeat, Temperature: 70}
	_, _, err := Compile([]ruleir.ScheduleEntry{entry, entry}, 1)
	assert.Error(t, err)
}

func TestCompileUnrecognizedModeFails(t *testing.T) {
	_, _, err := Compile([]ruleir.ScheduleEntry{
		{At: ruleir.WeekTime{Seconds: 0}, ThermostatIDs: []string{"T1"}, Mode: ruleir.ScheduleInvalid, Temperature: 70},
	}, 1)
	assert.Error(t, err)
}

func TestStartBranchesIncludeRuleIDAndConstraintsRequired(t *testing.T) {
	branches, err := startBranches(42)
	require.NoError(t, err)
	require.Len(t, branches, 4)
	for _, b := range branches {
		assert.True(t, b.Pattern["constraints-required"].(bool))
	}
	assert.Equal(t, "automationCreated", branches[1].Pattern["event-code"])
	params, ok := branches[1].Pattern["params"].(spec.Pattern)
	require.True(t, ok)
	assert.Equal(t, "42", params["ruleId"])
	assert.Equal(t, "automationModified", branches[2].Pattern["event-code"])
	assert.Equal(t, "holdOn", branches[3].Pattern["resource"])
}

func dayPtr(d ruleir.DayOfWeek) *ruleir.DayOfWeek { return &d }

func TestCompileRejectsNonMinuteAlignedTime(t *testing.T) {
	_, _, err := Compile([]ruleir.ScheduleEntry{
		{At: ruleir.WeekTime{Seconds: 21615}, ThermostatIDs: []string{"T1"}, Mode: ruleir.ScheduleHeat, Temperature: 70},
	}, 1)
	assert.Error(t, err)
}

func TestValidateDailyMomentSkipsSymbolicTimes(t *testing.T) {
	assert.NoError(t, validateDailyMoment(ruleir.WeekTime{Symbol: ruleir.SymbolSunrise}))
}

func TestValidateDailyMomentAcceptsMinuteAligned(t *testing.T) {
	assert.NoError(t, validateDailyMoment(ruleir.WeekTime{Seconds: 3660}))
}
