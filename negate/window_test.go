package negate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestExtractWindowSingleWindow(t *testing.T) {
	root := &ruleir.Constraint{
		TimeConstraints: []ruleir.TimeWindow{{Start: ruleir.WeekTime{Seconds: 3600}, End: ruleir.WeekTime{Seconds: 7200}, DayOfWeek: 0x1F}},
	}
	w, err := extractWindow(root)
	require.NoError(t, err)
	assert.Equal(t, 3600, w.Start.Seconds)
	assert.Equal(t, 7200, w.End.Seconds)
}

func TestExtractWindowNestedSingleWindow(t *testing.T) {
	root := &ruleir.Constraint{
		Logic: ruleir.LogicAND,
		Children: []*ruleir.Constraint{
			{TimeConstraints: []ruleir.TimeWindow{{Start: ruleir.WeekTime{Seconds: 100}, End: ruleir.WeekTime{Seconds: 200}}}},
		},
	}
	w, err := extractWindow(root)
	require.NoError(t, err)
	assert.Equal(t, 100, w.Start.Seconds)
}

func TestExtractWindowNoneFails(t *testing.T) {
	_, err := extractWindow(nil)
	assert.Error(t, err)
}

func TestExtractWindowTooManyFails(t *testing.T) {
	root := &ruleir.Constraint{
		TimeConstraints: []ruleir.TimeWindow{
			{Start: ruleir.WeekTime{Seconds: 100}},
			{Start: ruleir.WeekTime{Seconds: 200}},
		},
	}
	_, err := extractWindow(root)
	assert.Error(t, err)
}

func TestPointMatchExprAbsolute(t *testing.T) {
	expr := pointMatchExpr(0x1F, ruleir.WeekTime{Seconds: 3600})
	assert.Contains(t, expr, "dayInMask(31, nowDayOfWeek(bindings))")
	assert.Contains(t, expr, "nowSecondsOfDay(bindings) === 3600")
}

func TestPointMatchExprSunrise(t *testing.T) {
	expr := pointMatchExpr(0x7F, ruleir.WeekTime{Symbol: ruleir.SymbolSunrise})
	assert.Contains(t, expr, `bindings["sunrise"]`)
}
