package trigger

import (
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// Compile lowers triggers, in order, into the branches appended to `start`
// and the helper nodes those branches reference, per spec.md §4.3. Any
// synthesis failure aborts the whole compilation with BadMessage.
func Compile(triggers []ruleir.Trigger, gen *uid.Generator) ([]spec.Branch, map[string]*spec.Node, error) {
	result := newCompiled()

	for _, trig := range triggers {
		c, err := compileOne(trig, gen)
		if err != nil {
			return nil, nil, xerrors.Wrap(xerrors.BadMessage, err, "trigger: failed to compile %T", trig)
		}
		result.merge(c)
	}

	return result.Branches, result.Nodes, nil
}

// compileOne performs the exhaustive type switch over the Trigger sum
// type described in ruleir.Trigger's doc comment.
func compileOne(trig ruleir.Trigger, gen *uid.Generator) (*Compiled, error) {
	switch t := trig.(type) {
	case ruleir.ZoneTrigger:
		return compileZoneTrigger(t, gen)
	case ruleir.TouchscreenTrigger:
		return compileTouchscreenTrigger(t, gen)
	case ruleir.SystemSceneTrigger:
		return compileSystemSceneTrigger(t, gen)
	case ruleir.LightingTrigger:
		return compileLightingTrigger(t)
	case ruleir.DoorLockTrigger:
		return compileDoorLockTrigger(t)
	case ruleir.ThermostatTrigger:
		return compileThermostatTrigger(t, gen)
	case ruleir.TimeTrigger:
		return compileTimeTrigger(t, gen)
	case ruleir.ZigbeeCommTrigger:
		return compileZigbeeCommTrigger(t)
	case ruleir.CloudTrigger:
		return compileUnsupported("Cloud")
	case ruleir.CloudServiceTrigger:
		return compileUnsupported("CloudService")
	case ruleir.NetworkTrigger:
		return compileUnsupported("Network")
	case ruleir.SwitchTrigger:
		return compileUnsupported("Switch")
	case ruleir.ResourceTrigger:
		return compileUnsupported("Resource")
	case ruleir.PanicTrigger:
		return compileUnsupported("Panic")
	default:
		return nil, xerrors.New(xerrors.InternalError, "trigger: unrecognized trigger type %T", trig)
	}
}
