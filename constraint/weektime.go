// Package constraint implements spec.md §4.2: lowering a Constraint tree
// into a single script computing the `allowed` binding. Window matching is
// grounded on the teacher's `checkers.go` CheckWithinTimeRange (the
// midnight-wrap shape: compare end<start, then OR vs AND) and `app.go`'s
// sunrise/sunset helpers, generalized from "evaluate against the live
// wall-clock" to "evaluate against the bound variables the runtime injects
// per invariant 7."
package constraint

import (
	"time"

	"github.com/dromara/carbon/v2"
	sunriseLib "github.com/nathan-osman/go-sunrise"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

// SecondsOfDay returns t's seconds-of-day component, the value the emitted
// script's nowSecondsOfDay helper derives from the "event-time" binding.
func SecondsOfDay(t carbon.Carbon) int {
	std := t.StdTime()
	return std.Hour()*3600 + std.Minute()*60 + std.Second()
}

// Weekday returns t's day of week, the value the emitted script's
// nowDayOfWeek helper derives from the "event-time" binding.
func Weekday(t carbon.Carbon) ruleir.DayOfWeek {
	return ruleir.DayOfWeek(t.StdTime().Weekday())
}

// SunTimes resolves sunrise and sunset, in seconds-of-day local time, for
// the given date and location. It mirrors the teacher's
// getSunriseSunset (app.go), generalized to return both values without a
// "which one" flag.
func SunTimes(date carbon.Carbon, latitude, longitude float64) (sunriseSeconds, sunsetSeconds int) {
	std := date.StdTime()
	rise, set := sunriseLib.SunriseSunset(latitude, longitude, std.Year(), std.Month(), std.Day())
	return secondsOfDayLocal(rise), secondsOfDayLocal(set)
}

func secondsOfDayLocal(t time.Time) int {
	local := t.Local()
	return local.Hour()*3600 + local.Minute()*60 + local.Second()
}

// MatchWindow is the reference Go implementation of the §4.2 step-1 window
// match rule, exercised by weektime_test.go; no test evaluates the emitted
// JS against it. It is not invoked by the generated script itself:
// the runtime supplies "event-time", "sunrise" and "sunset" as bindings
// (spec.md §6's reserved key list), and the emitted script derives
// day-of-week/seconds-of-day from "event-time" via the shared
// nowDayOfWeek/nowSecondsOfDay helpers in scriptassets.TimeFunctions.
func MatchWindow(w ruleir.TimeWindow, nowDay ruleir.DayOfWeek, nowSeconds, sunriseSeconds, sunsetSeconds int) bool {
	if w.DayOfWeek&(1<<uint(nowDay)) == 0 {
		return false
	}
	switch w.Start.Symbol {
	case ruleir.SymbolSunrise:
		return nowSeconds >= sunriseSeconds && nowSeconds <= sunsetSeconds
	case ruleir.SymbolSunset:
		return nowSeconds >= sunsetSeconds || nowSeconds <= sunriseSeconds
	default:
		start, end := w.Start.Seconds, w.End.Seconds
		if end < start {
			return nowSeconds >= start || nowSeconds <= end
		}
		return nowSeconds >= start && nowSeconds <= end
	}
}
