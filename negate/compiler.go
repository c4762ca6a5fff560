package negate

import (
	"fmt"

	"github.com/rdkcentral/zilker-sdk-sub008/constraint"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/scriptassets"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/trigger"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// Compile builds the negative-rule state machine: start_time,
// reset_for_trigger_window, trigger_window, end_time, and a trivial
// constraints node, plus the single branch the caller installs on `start`.
// The rest of the rule's constraint tree is unused in this mode — only
// the one extracted time window matters, per spec.md §4.6.
func Compile(triggers []ruleir.Trigger, constraintRoot *ruleir.Constraint, gen *uid.Generator) (spec.Branch, map[string]*spec.Node, error) {
	if len(triggers) == 0 {
		return spec.Branch{}, nil, xerrors.New(xerrors.Invalid, "negate: rule requires at least one trigger")
	}

	window, err := extractWindow(constraintRoot)
	if err != nil {
		return spec.Branch{}, nil, err
	}

	triggerBranches, triggerNodes, err := trigger.Compile(triggers, gen)
	if err != nil {
		return spec.Branch{}, nil, err
	}
	retargetConstraintsToReset(triggerBranches)
	for _, n := range triggerNodes {
		retargetConstraintsToReset(n.Branches)
	}

	nodes := make(map[string]*spec.Node, len(triggerNodes)+4)
	for name, n := range triggerNodes {
		nodes[name] = n
	}

	startTimeNode, err := buildPointCheckNode(window.DayOfWeek, window.Start, "reset_for_trigger_window", "reset")
	if err != nil {
		return spec.Branch{}, nil, err
	}
	nodes["start_time"] = startTimeNode

	resetForTriggerWindow, err := spec.MakeResetNode("trigger_window")
	if err != nil {
		return spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, err, "negate: reset_for_trigger_window")
	}
	nodes["reset_for_trigger_window"] = resetForTriggerWindow

	timerTickBranch, err := spec.MakeBranch(spec.MakeTimerTickPattern(), "end_time", false)
	if err != nil {
		return spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, err, "negate: trigger_window timer branch")
	}
	windowBranches := append(append([]spec.Branch{}, triggerBranches...), timerTickBranch)
	nodes["trigger_window"] = spec.MakeStateNode("", windowBranches, true)

	endTimeNode, err := buildPointCheckNode(window.DayOfWeek, window.End, "constraints", "reset_for_trigger_window")
	if err != nil {
		return spec.Branch{}, nil, err
	}
	nodes["end_time"] = endTimeNode

	constraintsNode, err := constraint.BuildConstraintsNode(nil, gen)
	if err != nil {
		return spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, err, "negate: constraints node")
	}
	nodes["constraints"] = constraintsNode

	startBranch, err := spec.MakeBranch(spec.MakeTimerTickPattern(), "start_time", false)
	if err != nil {
		return spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, err, "negate: start branch")
	}

	return startBranch, nodes, nil
}

// retargetConstraintsToReset rewrites every branch in place whose target is
// `constraints` to target `reset` instead: inside trigger_window, a
// trigger condition being satisfied means the watched-for event happened,
// which cancels the wait rather than proceeding to constraints/actions.
func retargetConstraintsToReset(branches []spec.Branch) {
	for i := range branches {
		if branches[i].Target == "constraints" {
			branches[i].Target = "reset"
		}
	}
}

// buildPointCheckNode builds a non-message node whose script sets
// `allowed` to the point-in-time match expression, branching to
// matchTarget on a match and elseTarget otherwise.
func buildPointCheckNode(mask uint8, wt ruleir.WeekTime, matchTarget, elseTarget string) (*spec.Node, error) {
	expr := pointMatchExpr(mask, wt)
	source := scriptassets.Blob(scriptassets.TimeFunctions) + fmt.Sprintf(`bindings["allowed"] = %s;
return bindings;
`, expr)

	matchBranch, err := spec.MakeBranch(spec.Pattern{"allowed": true}, matchTarget, false)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "negate: point-check match branch")
	}
	defaultBranch, err := spec.MakeBranch(nil, elseTarget, false)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "negate: point-check default branch")
	}
	return spec.MakeStateNode(source, []spec.Branch{matchBranch, defaultBranch}, false), nil
}
