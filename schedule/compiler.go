// Package schedule implements spec.md §4.5: the thermostat-schedule
// variant of the actions node, installed in place of trigger+action
// compilation whenever a rule carries schedule entries. Grounded on the
// teacher's internal/scheduling/builder.go's DailyScheduleBuilder
// (tryAddTrigger's hash-map duplicate-detection idiom) and cron.go's
// CronTrigger.Hash (fnv-based stable hashing of a trigger's identity).
package schedule

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/scriptassets"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// Compile builds the scheduler `actions` node plus the `start` branches a
// schedule rule needs in place of trigger compilation: timer-tick,
// automation-created/modified matched to ruleID, and hold-mode changes.
// Every branch targets `constraints`, same as the trigger-compiled paths;
// the orchestrator installs a trivial (script-less) constraints node ahead
// of it, since a schedule rule has no constraint tree of its own to
// evaluate (spec.md §4.7 invariant 4 — no constraints-only predicates).
func Compile(entries []ruleir.ScheduleEntry, ruleID uint64) (*spec.Node, []spec.Branch, error) {
	seen := make(map[uint64]bool)
	var coolEntries, heatEntries []string

	for _, e := range entries {
		hash := entryHash(e)
		if seen[hash] {
			return nil, nil, xerrors.New(xerrors.Invalid, "schedule: duplicate entry (mode=%d, at=%s)", e.Mode, weekTimeLiteral(e.At))
		}
		seen[hash] = true

		if err := validateDailyMoment(e.At); err != nil {
			return nil, nil, err
		}

		switch e.Mode {
		case ruleir.ScheduleCool:
			lit, err := buildEntryLiteral(e, "setpointCool")
			if err != nil {
				return nil, nil, err
			}
			coolEntries = append(coolEntries, lit)
		case ruleir.ScheduleHeat:
			lit, err := buildEntryLiteral(e, "setpointHeat")
			if err != nil {
				return nil, nil, err
			}
			heatEntries = append(heatEntries, lit)
		case ruleir.ScheduleBoth:
			coolLit, err := buildEntryLiteral(e, "setpointCool")
			if err != nil {
				return nil, nil, err
			}
			heatLit, err := buildEntryLiteral(e, "setpointHeat")
			if err != nil {
				return nil, nil, err
			}
			coolEntries = append(coolEntries, coolLit)
			heatEntries = append(heatEntries, heatLit)
		default:
			return nil, nil, xerrors.New(xerrors.Invalid, "schedule: unrecognized mode %d", e.Mode)
		}
	}

	source := buildSchedulerSource(coolEntries, heatEntries)
	actionsNode := spec.MakeStateNode(source, nil, false)

	branches, err := startBranches(ruleID)
	if err != nil {
		return nil, nil, err
	}
	return actionsNode, branches, nil
}

// dailyMomentParser validates that an absolute WeekTime decomposes into a
// standard 5-field cron schedule, the same sanity check the teacher's
// CronTrigger ran on a daily trigger's configured time before installing
// it. Symbolic (sunrise/sunset) moments have no cron equivalent and skip
// this check entirely.
var dailyMomentParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// validateDailyMoment rejects a schedule entry whose time-of-day doesn't
// cleanly decompose into whole minutes and hours, by round-tripping it
// through a standard cron expression.
func validateDailyMoment(wt ruleir.WeekTime) error {
	if wt.Symbol != ruleir.SymbolNone {
		return nil
	}
	if wt.Seconds < 0 || wt.Seconds >= 86400 || wt.Seconds%60 != 0 {
		return xerrors.New(xerrors.Invalid, "schedule: time-of-day %d seconds is not a whole minute within a day", wt.Seconds)
	}
	minute := (wt.Seconds / 60) % 60
	hour := wt.Seconds / 3600
	expr := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := dailyMomentParser.Parse(expr); err != nil {
		return xerrors.Wrap(xerrors.Invalid, err, "schedule: time-of-day %d seconds does not form a valid daily schedule", wt.Seconds)
	}
	return nil
}

// entryHash identifies a schedule entry by its full content, mirroring
// CronTrigger.Hash's fnv approach: two entries that write the same
// setpoint at the same moment for the same thermostats are duplicates
// regardless of declaration order.
func entryHash(e ruleir.ScheduleEntry) uint64 {
	ids := append([]string(nil), e.ThermostatIDs...)
	sort.Strings(ids)

	h := fnv.New64()
	fmt.Fprintf(h, "schedule:%d:%s:%d:%s", e.Mode, weekTimeLiteral(e.At), e.Temperature, strings.Join(ids, ","))
	return h.Sum64()
}

// buildEntryLiteral renders one { at, actions } scheduler-list entry: a
// writeDeviceRequest per thermostat, writing the given setpoint resource
// with hold on.
func buildEntryLiteral(e ruleir.ScheduleEntry, resource string) (string, error) {
	actionLiterals := make([]string, 0, len(e.ThermostatIDs))
	hold := true
	for _, tid := range e.ThermostatIDs {
		req, err := spec.MakeWriteDeviceRequest(tid, resource, strconv.Itoa(e.Temperature), &hold)
		if err != nil {
			return "", xerrors.Wrap(xerrors.Invalid, err, "schedule: entry request")
		}
		lit, err := spec.Literal(req)
		if err != nil {
			return "", err
		}
		actionLiterals = append(actionLiterals, lit)
	}
	return fmt.Sprintf(`{"at": %s, "actions": [%s]}`, weekTimeLiteral(e.At), strings.Join(actionLiterals, ", ")), nil
}

// buildSchedulerSource prepends the time-predicate helpers and the fixed
// scheduler script, then invokes it with the compiled cool/heat arrays.
func buildSchedulerSource(coolEntries, heatEntries []string) string {
	return scriptassets.Blob(scriptassets.TimeFunctions) +
		scriptassets.Blob(scriptassets.SchedulerActions) +
		fmt.Sprintf("return runScheduler(bindings, [%s], [%s]);\n", strings.Join(coolEntries, ", "), strings.Join(heatEntries, ", "))
}

// startBranches builds the four fixed start-node branches schedule rules
// need: a periodic tick, automation-created/modified matched to this
// rule's id, and hold-mode resource changes — each eligible to branch to
// `constraints` per spec.md invariant 7.
func startBranches(ruleID uint64) ([]spec.Branch, error) {
	ruleIDStr := strconv.FormatUint(ruleID, 10)

	patterns := []spec.Pattern{
		spec.MakeTimerTickPattern(),
		spec.PatternAddConstraintsRequired(spec.Pattern{
			"event-code": "automationCreated",
			"params":     spec.Pattern{"ruleId": ruleIDStr},
		}),
		spec.PatternAddConstraintsRequired(spec.Pattern{
			"event-code": "automationModified",
			"params":     spec.Pattern{"ruleId": ruleIDStr},
		}),
		spec.PatternAddConstraintsRequired(spec.Pattern{
			"event-code": "resourceUpdated",
			"resource":   "holdOn",
		}),
	}

	branches := make([]spec.Branch, 0, len(patterns))
	for _, p := range patterns {
		b, err := spec.MakeBranch(p, "constraints", false)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.InternalError, err, "schedule: start branch")
		}
		branches = append(branches, b)
	}
	return branches, nil
}
