package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestWeekTimeLiteralAbsolute(t *testing.T) {
	assert.Equal(t, `{"seconds": 3600}`, weekTimeLiteral(ruleir.WeekTime{Seconds: 3600}))
}

func TestWeekTimeLiteralSunrise(t *testing.T) {
	assert.Equal(t, `{"symbol": "sunrise"}`, weekTimeLiteral(ruleir.WeekTime{Symbol: ruleir.SymbolSunrise}))
}

func TestBuildTimeMatchNodeNoRepeatReferencesWhen(t *testing.T) {
	n := buildTimeMatchNodeNoRepeat(ruleir.TimeTrigger{When: ruleir.WeekTime{Seconds: 1800}})
	assert.Contains(t, n.Source, "1800")
	assert.Contains(t, n.Source, "nowSecondsOfDay")
}

func TestBuildTimeMatchNodeEmitsTimerOnFirstWindowEntry(t *testing.T) {
	end := ruleir.WeekTime{Seconds: 7200}
	n := buildTimeMatchNode(ruleir.TimeTrigger{When: ruleir.WeekTime{Seconds: 3600}, End: &end, RepeatInterval: 60}, "nextNode", "timer1")
	assert.Contains(t, n.Source, "timerEmit")
	assert.Contains(t, n.Source, `"timer1"`)
	assert.Len(t, n.Branches, 3)
	assert.Equal(t, "nextNode", n.Branches[0].Target)
}

func TestBuildTimeIntervalNodeClearsPersistOnExpiry(t *testing.T) {
	n := buildTimeIntervalNode("timer1")
	assert.Contains(t, n.Source, `delete bindings["persist"]`)
}
