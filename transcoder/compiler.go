// Package transcoder is the top-level orchestrator of spec.md §4.7: it
// sequences the trigger, constraint, action, schedule, and negate
// compilers into one complete sheens-spec Document for a single rule.
// Grounded on the teacher's app.go NewApp assembly shape (validate inputs
// → construct collaborators → wire subsystems → return), collapsed from a
// long-lived object into a single pure function since a rule is compiled
// once and produces one immutable document, not a running service.
package transcoder

import (
	"github.com/rdkcentral/zilker-sdk-sub008/action"
	"github.com/rdkcentral/zilker-sdk-sub008/constraint"
	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/negate"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/schedule"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/trigger"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// Compile lowers one decoded rule into a validated, ready-to-serialize
// Document. Any sub-step failure aborts the whole compilation; no partial
// document escapes.
func Compile(rule ruleir.Rule, mapper deviceid.Mapper) (*spec.Document, error) {
	gen := uid.NewGenerator()
	doc := spec.NewDocument(rule.RuleID)

	var startBranches []spec.Branch

	switch {
	case len(rule.ScheduleEntries) > 0:
		actionsNode, branches, err := schedule.Compile(rule.ScheduleEntries, rule.RuleID)
		if err != nil {
			return nil, err
		}
		if err := doc.Put(action.ActionsNodeName, actionsNode); err != nil {
			return nil, err
		}
		constraintsNode, err := constraint.BuildConstraintsNode(nil, gen)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.InternalError, err, "transcoder: schedule constraints node")
		}
		if err := doc.Put("constraints", constraintsNode); err != nil {
			return nil, err
		}
		startBranches = branches

	case rule.Negate:
		startBranch, nodes, err := negate.Compile(rule.Triggers, rule.ConstraintRoot, gen)
		if err != nil {
			return nil, err
		}
		for name, n := range nodes {
			if err := doc.Put(name, n); err != nil {
				return nil, err
			}
		}
		actionsNode, extraStartBranches, extraNodes, err := action.Compile(rule.Actions, rule.RuleID, gen, mapper)
		if err != nil {
			return nil, err
		}
		if err := doc.Put(action.ActionsNodeName, actionsNode); err != nil {
			return nil, err
		}
		for name, n := range extraNodes {
			if err := doc.Put(name, n); err != nil {
				return nil, err
			}
		}
		startBranches = append([]spec.Branch{startBranch}, extraStartBranches...)

	default:
		triggerBranches, triggerNodes, err := trigger.Compile(rule.Triggers, gen)
		if err != nil {
			return nil, err
		}
		for name, n := range triggerNodes {
			if err := doc.Put(name, n); err != nil {
				return nil, err
			}
		}

		constraintsNode, err := constraint.BuildConstraintsNode(rule.ConstraintRoot, gen)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.InternalError, err, "transcoder: constraints node")
		}
		if err := doc.Put("constraints", constraintsNode); err != nil {
			return nil, err
		}

		actionsNode, extraStartBranches, extraNodes, err := action.Compile(rule.Actions, rule.RuleID, gen, mapper)
		if err != nil {
			return nil, err
		}
		if err := doc.Put(action.ActionsNodeName, actionsNode); err != nil {
			return nil, err
		}
		for name, n := range extraNodes {
			if err := doc.Put(name, n); err != nil {
				return nil, err
			}
		}

		startBranches = append(triggerBranches, extraStartBranches...)
	}

	resetNode, err := spec.MakeResetNode("start")
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "transcoder: reset node")
	}
	if err := doc.Put(spec.ResetTarget, resetNode); err != nil {
		return nil, err
	}

	startNode := spec.MakeStateNode("", startBranches, true)
	if err := doc.Put("start", startNode); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
