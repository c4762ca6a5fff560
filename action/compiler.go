package action

import (
	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// ActionsNodeName is the fixed name of the single node every rule's
// actions compile into.
const ActionsNodeName = "actions"

// Compile lowers a rule's actions into the `actions` node plus, when any
// light action carries a duration, the extra helper node (and matching
// `start` branch) that schedules the delayed opposite isOn. Per spec.md
// §4.4, a failure aborts the whole compilation; the caller is responsible
// for discarding any partial state.
func Compile(actions []ruleir.Action, ruleID uint64, gen *uid.Generator, mapper deviceid.Mapper) (
	actionsNode *spec.Node, extraStartBranches []spec.Branch, extraNodes map[string]*spec.Node, err error,
) {
	var literals []string
	extraNodes = make(map[string]*spec.Node)

	for _, act := range actions {
		switch a := act.(type) {
		case ruleir.LightAction:
			timerID := ""
			if a.Duration != nil {
				timerID = gen.Next("timer")
			}
			reqs, lerr := buildLightRequests(a, timerID)
			if lerr != nil {
				return nil, nil, nil, lerr
			}
			rendered, rerr := renderLiterals(reqs)
			if rerr != nil {
				return nil, nil, nil, rerr
			}
			literals = append(literals, rendered...)

			if a.Duration != nil {
				name, startBranch, node, derr := durationTimerNode(a, timerID, gen)
				if derr != nil {
					return nil, nil, nil, derr
				}
				extraStartBranches = append(extraStartBranches, startBranch)
				extraNodes[name] = node
			}

		case ruleir.LockAction:
			reqs, lerr := buildDoorLockRequests(a)
			if lerr != nil {
				return nil, nil, nil, lerr
			}
			rendered, rerr := renderLiterals(reqs)
			if rerr != nil {
				return nil, nil, nil, rerr
			}
			literals = append(literals, rendered...)

		case ruleir.ThermostatSetAction:
			reqs, lerr := buildThermostatRequests(a)
			if lerr != nil {
				return nil, nil, nil, lerr
			}
			rendered, rerr := renderLiterals(reqs)
			if rerr != nil {
				return nil, nil, nil, rerr
			}
			literals = append(literals, rendered...)

		case ruleir.NotificationAction:
			l, nerr := buildNotificationLiteral(a, ruleID)
			if nerr != nil {
				return nil, nil, nil, nerr
			}
			literals = append(literals, l)

		case ruleir.TakePictureAction:
			l, terr := buildTakePictureLiteral(a, ruleID, mapper)
			if terr != nil {
				return nil, nil, nil, terr
			}
			literals = append(literals, l)

		case ruleir.RecordVideoAction:
			l, rerr := buildRecordVideoLiteral(a, ruleID, mapper)
			if rerr != nil {
				return nil, nil, nil, rerr
			}
			literals = append(literals, l)

		case ruleir.PlaySoundAction:
			literals = append(literals, buildPlaySoundLiteral(a))

		default:
			return nil, nil, nil, xerrors.New(xerrors.InternalError, "action: unrecognized action type %T", act)
		}
	}

	source := buildEmitScript(literals)
	actionsNode = spec.MakeStateNode(source, nil, false)
	return actionsNode, extraStartBranches, extraNodes, nil
}
