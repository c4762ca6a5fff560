package trigger

import (
	"fmt"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/scriptassets"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// weekTimeLiteral renders a WeekTime as a JS object literal: either a
// fixed seconds-of-day, or a symbolic reference resolved at evaluation
// time against the runtime-supplied "sunrise"/"sunset" bindings.
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

// weekTimeResolveFunc is shared by both time-trigger helper nodes: it
// reads a weekTimeLiteral-shaped object and returns its seconds-of-day,
// resolving symbolic sun references against bindings.
const weekTimeResolveFunc = `function resolveWeekTime(bindings, wt) {
  if (wt.symbol === "sunrise") { return bindings["sunrise"]; }
  if (wt.symbol === "sunset") { return bindings["sunset"]; }
  return wt.seconds;
}
`

// compileTimeTrigger implements spec.md §4.3's Time family: a timer-tick
// branch into a helper node that checks the trigger's `when` window and,
// for repeating triggers, synthesizes a second helper node to drive
// subsequent interval ticks.
func compileTimeTrigger(trig ruleir.TimeTrigger, gen *uid.Generator) (*Compiled, error) {
	if trig.RepeatInterval == -1000 {
		return nil, xerrors.New(xerrors.Invalid, "time trigger: repeat_interval sentinel -1000 (randomize) is unsupported")
	}
	if trig.RepeatInterval > 0 && trig.End == nil {
		return nil, xerrors.New(xerrors.Invalid, "time trigger: repeat_interval > 0 requires an end time")
	}

	result := newCompiled()

	matchName := gen.Next("timeMatch")
	b, err := startBranch(spec.MakeTimerTickPattern(), matchName)
	if err != nil {
		return nil, err
	}
	result.Branches = append(result.Branches, b)

	if trig.RepeatInterval > 0 {
		intervalName := gen.Next("timeInterval")
		timerID := gen.Next("timer")

		result.Nodes[matchName] = buildTimeMatchNode(trig, intervalName, timerID)
		result.Nodes[intervalName] = buildTimeIntervalNode(timerID)
		return result, nil
	}

	result.Nodes[matchName] = buildTimeMatchNodeNoRepeat(trig)
	return result, nil
}

func buildTimeMatchNodeNoRepeat(trig ruleir.TimeTrigger) *spec.Node {
	source := scriptassets.Blob(scriptassets.TimeFunctions) + "\n" + weekTimeResolveFunc + fmt.Sprintf(`
var when = %s;
var target = resolveWeekTime(bindings, when);
var now = nowSecondsOfDay(bindings);
bindings["allowed"] = (now === target);
return bindings;
`, weekTimeLiteral(trig.When))

	return spec.MakeStateNode(source, allowedBranches(), false)
}

func buildTimeMatchNode(trig ruleir.TimeTrigger, intervalTarget, timerID string) *spec.Node {
	source := scriptassets.Blob(scriptassets.TimeFunctions) + "\n" + weekTimeResolveFunc + fmt.Sprintf(`
var when = %s;
var end = %s;
var startSeconds = resolveWeekTime(bindings, when);
var endSeconds = resolveWeekTime(bindings, end);
var now = nowSecondsOfDay(bindings);
var inWindow = (endSeconds < startSeconds) ? (now >= startSeconds || now <= endSeconds) : (now >= startSeconds && now <= endSeconds);
if (inWindow && !bindings["persist"]) {
  bindings["persist"] = {"endTime": endSeconds, "interval": %d};
  emit([{"type": "timerEmit", "interval": %d, "timerId": "%s"}]);
}
bindings["allowed"] = inWindow;
return bindings;
`, weekTimeLiteral(trig.When), weekTimeLiteral(*trig.End), trig.RepeatInterval, trig.RepeatInterval, timerID)

	persistBranch, _ := spec.MakeBranch(spec.Pattern{"persist": spec.Wildcard("persist")}, intervalTarget, false)
	return spec.MakeStateNode(source, append([]spec.Branch{persistBranch}, allowedBranches()...), false)
}

func buildTimeIntervalNode(timerID string) *spec.Node {
	source := scriptassets.Blob(scriptassets.TimeFunctions) + fmt.Sprintf(`
var persist = bindings["persist"];
var allowed = false;
if (persist && (nowSecondsOfDay(bindings) + persist.interval < persist.endTime)) {
  emit([{"type": "timerEmit", "interval": persist.interval, "timerId": "%s"}]);
  allowed = true;
} else {
  delete bindings["persist"];
  allowed = false;
}
bindings["allowed"] = allowed;
return bindings;
`, timerID)

	return spec.MakeStateNode(source, allowedBranches(), false)
}
