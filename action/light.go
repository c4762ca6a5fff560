package action

import (
	"fmt"
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// buildLightRequests renders a LightAction's writeDeviceRequest commands:
// level before isOn, to avoid a visible flash at the fixture. When a
// duration is set, a timerEmit request schedules the opposite isOn value,
// and the caller must also wire in the node durationTimerNode builds.
func buildLightRequests(act ruleir.LightAction, timerID string) ([]spec.EmitRequest, error) {
	var reqs []spec.EmitRequest

	if act.On && act.Level != nil {
		level := clamp(*act.Level, 0, 100)
		req, err := spec.MakeWriteDeviceRequest(act.LightID, "level", strconv.Itoa(level), nil)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Invalid, err, "light action: level request")
		}
		reqs = append(reqs, req)
	}

	onReq, err := spec.MakeWriteDeviceRequest(act.LightID, "isOn", strconv.FormatBool(act.On), nil)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "light action: isOn request")
	}
	reqs = append(reqs, onReq)

	if act.Duration != nil {
		timerReq, err := spec.MakeTimerEmit(*act.Duration, timerID, nil)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Invalid, err, "light action: duration timer emit")
		}
		reqs = append(reqs, timerReq)
	}

	return reqs, nil
}

// durationTimerNode synthesizes the helper node that, when the scheduled
// one-shot timer fires, writes the opposite isOn value and branches to
// `reset`. Creating it means a new branch must be added to `start` to
// accept the timer-fired event, returned alongside the node.
func durationTimerNode(act ruleir.LightAction, timerID string, gen *uid.Generator) (name string, startBranch spec.Branch, node *spec.Node, err error) {
	name = gen.Next("lightDuration")

	opposite, err := spec.MakeWriteDeviceRequest(act.LightID, "isOn", strconv.FormatBool(!act.On), nil)
	if err != nil {
		return "", spec.Branch{}, nil, xerrors.Wrap(xerrors.Invalid, err, "light action: duration timer request")
	}
	literal, err := emitLiteral(opposite)
	if err != nil {
		return "", spec.Branch{}, nil, err
	}

	source := bindingRepairPrelude + fmt.Sprintf("emit([%s]);\nreturn bindings;\n", literal)
	toReset, berr := spec.MakeBranch(nil, "reset", false)
	if berr != nil {
		return "", spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, berr, "light action: duration node branch")
	}
	node = spec.MakeStateNode(source, []spec.Branch{toReset}, false)

	pattern := spec.PatternAddConstraintsRequired(spec.MakeTimerFiredPattern(timerID))
	sb, serr := spec.MakeBranch(pattern, name, false)
	if serr != nil {
		return "", spec.Branch{}, nil, xerrors.Wrap(xerrors.InternalError, serr, "light action: start branch for duration timer")
	}

	return name, sb, node, nil
}
