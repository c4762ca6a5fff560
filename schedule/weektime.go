package schedule

import (
	"fmt"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

// weekTimeLiteral renders a WeekTime as the {at: ...} shape
// scriptassets.SchedulerActions' weekTimeMatches expects. Mirrors
// trigger.weekTimeLiteral's rendering (same WeekTime shape, different
// consumer), kept package-private here rather than shared, since each is a
// five-line literal builder, not a concern worth coupling two packages over.
func weekTimeLiteral(wt ruleir.WeekTime) string {
	switch wt.Symbol {
	case ruleir.SymbolSunrise:
		return `{"symbol": "sunrise"}`
	case ruleir.SymbolSunset:
		return `{"symbol": "sunset"}`
	default:
		return fmt.Sprintf(`{"seconds": %d}`, wt.Seconds)
	}
}
