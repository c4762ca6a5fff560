package transcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestCompileSimpleTriggerActionRule(t *testing.T) {
	rule := ruleir.Rule{
		RuleID:   42,
		Triggers: []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z9", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor}},
		Actions:  []ruleir.Action{ruleir.LightAction{On: true, LightID: "L1"}},
	}

	doc, err := Compile(rule, deviceid.DefaultMapper{})
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	assert.Contains(t, doc.Nodes, "start")
	assert.Contains(t, doc.Nodes, "reset")
	assert.Contains(t, doc.Nodes, "constraints")
	assert.Contains(t, doc.Nodes, "actions")
	assert.True(t, doc.Nodes["start"].IsMessageNode)
}

func TestCompileScheduleRule(t *testing.T) {
	rule := ruleir.Rule{
		RuleID: 7,
		ScheduleEntries: []ruleir.ScheduleEntry{{
			Mode:          ruleir.ScheduleHeat,
			At:            ruleir.WeekTime{Seconds: 3600},
			Temperature:   68,
			ThermostatIDs: []string{"T1"},
		}},
	}

	doc, err := Compile(rule, deviceid.DefaultMapper{})
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
	assert.Contains(t, doc.Nodes, "constraints")
	assert.Contains(t, doc.Nodes, "actions")
}

func TestCompileNegateRule(t *testing.T) {
	rule := ruleir.Rule{
		RuleID: 9,
		Negate: true,
		Triggers: []ruleir.Trigger{
			ruleir.ZoneTrigger{DeviceID: "Z1", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor},
		},
		ConstraintRoot: &ruleir.Constraint{
			TimeConstraints: []ruleir.TimeWindow{{
				Start:     ruleir.WeekTime{Seconds: 3600},
				End:       ruleir.WeekTime{Seconds: 7200},
				DayOfWeek: ruleir.Weekdays(),
			}},
		},
		Actions: []ruleir.Action{ruleir.LightAction{On: true, LightID: "L1"}},
	}

	doc, err := Compile(rule, deviceid.DefaultMapper{})
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
	for _, name := range []string{"start_time", "end_time", "trigger_window", "reset_for_trigger_window", "constraints", "actions"} {
		assert.Contains(t, doc.Nodes, name)
	}
}

func TestCompileNegateRuleWithDurationLightWiresExtraTimerNode(t *testing.T) {
	duration := 30
	rule := ruleir.Rule{
		RuleID: 10,
		Negate: true,
		Triggers: []ruleir.Trigger{
			ruleir.ZoneTrigger{DeviceID: "Z1", State: ruleir.ZoneOpen, Type: ruleir.ZoneTypeDoor},
		},
		ConstraintRoot: &ruleir.Constraint{
			TimeConstraints: []ruleir.TimeWindow{{
				Start:     ruleir.WeekTime{Seconds: 3600},
				End:       ruleir.WeekTime{Seconds: 7200},
				DayOfWeek: ruleir.Weekdays(),
			}},
		},
		Actions: []ruleir.Action{ruleir.LightAction{On: true, LightID: "L1", Duration: &duration}},
	}

	doc, err := Compile(rule, deviceid.DefaultMapper{})
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	require.Len(t, doc.Nodes["start"].Branches, 2)
	assert.Equal(t, "start_time", doc.Nodes["start"].Branches[0].Target)

	timerTarget := doc.Nodes["start"].Branches[1].Target
	assert.NotEqual(t, "start_time", timerTarget)
	assert.Contains(t, doc.Nodes, timerTarget)
}

func TestCompilePropagatesSubStepFailure(t *testing.T) {
	rule := ruleir.Rule{
		RuleID:   1,
		Negate:   true,
		Triggers: []ruleir.Trigger{ruleir.ZoneTrigger{DeviceID: "Z1"}},
		// no ConstraintRoot -> no time window -> negate.Compile fails
	}
	_, err := Compile(rule, deviceid.DefaultMapper{})
	assert.Error(t, err)
}
