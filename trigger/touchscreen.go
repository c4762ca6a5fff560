package trigger

import (
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

// troubleVariants is the fixed set of seven trouble sub-patterns spec.md
// §4.3 requires, each as its own branch from `start`.
var troubleVariants = []string{
	"tamper",
	"acPowerLoss",
	"batteryLow",
	"batteryBad",
	"batteryMissing",
	"zigbeeJamming",
	"zigbeePanIdAttack",
}

func touchscreenEventCode(v ruleir.TouchscreenVariant) (code string, armMode string) {
	switch v {
	case ruleir.TouchscreenArmed:
		return "armed", ""
	case ruleir.TouchscreenArmedAway:
		return "armed", "away"
	case ruleir.TouchscreenArmedStay:
		return "armed", "stay"
	case ruleir.TouchscreenArmedNight:
		return "armed", "night"
	case ruleir.TouchscreenArming:
		return "arming", ""
	case ruleir.TouchscreenDisarmed:
		return "disarmed", ""
	case ruleir.TouchscreenAlarm:
		return "alarm", ""
	case ruleir.TouchscreenEntryDelay:
		return "entryDelay", ""
	default:
		return "", ""
	}
}

// injectEventCodeSource is the helper every matched Touchscreen branch
// routes through: it copies the matched event-code into bindings for the
// downstream action script, then continues unconditionally.
func injectEventCodeSource(code string) string {
	return `bindings["event-code"] = "` + code + `";
return bindings;
`
}

func compileTouchscreenTrigger(trig ruleir.TouchscreenTrigger, gen *uid.Generator) (*Compiled, error) {
	if trig.Variant == ruleir.TouchscreenTrouble {
		return compileTouchscreenTrouble(trig, gen)
	}

	code, armMode := touchscreenEventCode(trig.Variant)
	pattern := spec.Pattern{"deviceId": trig.DeviceID, "event-code": code}
	if armMode != "" {
		pattern["armMode"] = armMode
	}

	name := gen.Next("touchscreen")
	b, err := startBranch(pattern, name)
	if err != nil {
		return nil, err
	}
	onward, err := spec.MakeBranch(nil, "constraints", false)
	if err != nil {
		return nil, err
	}
	node := spec.MakeStateNode(injectEventCodeSource(code), []spec.Branch{onward}, false)

	return &Compiled{
		Branches: []spec.Branch{b},
		Nodes:    map[string]*spec.Node{name: node},
	}, nil
}

func compileTouchscreenTrouble(trig ruleir.TouchscreenTrigger, gen *uid.Generator) (*Compiled, error) {
	result := newCompiled()
	for _, variant := range troubleVariants {
		pattern := spec.Pattern{
			"deviceId":    trig.DeviceID,
			"event-code":  "trouble",
			"troubleType": variant,
		}
		name := gen.Next("touchscreenTrouble")
		b, err := startBranch(pattern, name)
		if err != nil {
			return nil, err
		}
		onward, err := spec.MakeBranch(nil, "constraints", false)
		if err != nil {
			return nil, err
		}
		node := spec.MakeStateNode(injectEventCodeSource("trouble"), []spec.Branch{onward}, false)
		result.Branches = append(result.Branches, b)
		result.Nodes[name] = node
	}
	return result, nil
}
