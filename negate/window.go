// Package negate implements spec.md §4.6: the negative-rule state machine
// that fires when an expected event does NOT occur within a time window.
// No teacher precedent exists for absence detection; the state shape is
// grounded directly on spec.md §4.6, reusing the trigger package to build
// the trigger_window node's sensor patterns and the constraint package's
// empty-tree pass-through for the trivial constraints node.
package negate

import (
	"fmt"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// extractWindow locates the single time-window constraint a negative rule
// requires. Any count other than exactly one is Invalid: zero means
// nothing to wait out, more than one is an ambiguous window spec.md §4.6
// doesn't define a combination rule for.
func extractWindow(root *ruleir.Constraint) (ruleir.TimeWindow, error) {
	windows := collectWindows(root)
	if len(windows) != 1 {
		return ruleir.TimeWindow{}, xerrors.New(xerrors.Invalid, "negate: rule requires exactly one time-window constraint, found %d", len(windows))
	}
	return windows[0], nil
}

func collectWindows(c *ruleir.Constraint) []ruleir.TimeWindow {
	if c == nil {
		return nil
	}
	windows := append([]ruleir.TimeWindow(nil), c.TimeConstraints...)
	for _, child := range c.Children {
		windows = append(windows, collectWindows(child)...)
	}
	return windows
}

// pointMatchExpr renders the JS boolean expression testing whether "now"
// (event-time's derived day-of-week and seconds-of-day) equals the given
// moment-of-week, gated by the window's day mask.
func pointMatchExpr(mask uint8, wt ruleir.WeekTime) string {
	var timeCmp string
	switch wt.Symbol {
	case ruleir.SymbolSunrise:
		timeCmp = `nowSecondsOfDay(bindings) === bindings["sunrise"]`
	case ruleir.SymbolSunset:
		timeCmp = `nowSecondsOfDay(bindings) === bindings["sunset"]`
	default:
		timeCmp = fmt.Sprintf(`nowSecondsOfDay(bindings) === %d`, wt.Seconds)
	}
	return fmt.Sprintf(`dayInMask(%d, nowDayOfWeek(bindings)) && (%s)`, mask, timeCmp)
}
