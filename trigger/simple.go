package trigger

import (
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

// compileLightingTrigger matches a resource-updated event on isOn with
// value matching the desired boolean; the match alone fully encodes the
// condition, so the branch goes straight to constraints.
func compileLightingTrigger(trig ruleir.LightingTrigger) (*Compiled, error) {
	pattern := spec.Pattern{
		"event-code":  "resourceUpdated",
		"deviceId":    trig.DeviceID,
		"resource":    "isOn",
		"event-value": trig.Enabled,
	}
	return directToConstraints(pattern)
}

// compileDoorLockTrigger matches locked for the normal case, or a trouble
// event with the device id captured for the trouble case.
func compileDoorLockTrigger(trig ruleir.DoorLockTrigger) (*Compiled, error) {
	if trig.Trouble {
		pattern := spec.Pattern{
			"event-code": "trouble",
			"type":       "device",
			"deviceId":   trig.DeviceID,
		}
		return directToConstraints(pattern)
	}
	pattern := spec.Pattern{
		"event-code":  "resourceUpdated",
		"deviceId":    trig.DeviceID,
		"resource":    "locked",
		"event-value": trig.Locked,
	}
	return directToConstraints(pattern)
}

// compileThermostatTrigger implements both the trouble shape (mirrors
// DoorLock trouble) and the threshold shape (capture localTemperature,
// route through a helper comparing it against the bounds).
func compileThermostatTrigger(trig ruleir.ThermostatTrigger, gen *uid.Generator) (*Compiled, error) {
	if trig.Trouble {
		pattern := spec.Pattern{
			"event-code": "trouble",
			"type":       "device",
			"deviceId":   trig.DeviceID,
		}
		return directToConstraints(pattern)
	}

	pattern := spec.Pattern{
		"event-code":       "resourceUpdated",
		"deviceId":         trig.DeviceID,
		"resource":         "localTemperature",
		"localTemperature": spec.Wildcard("localTemperature"),
	}

	source := `var temp = Number(bindings["localTemperature"]);
var allowed = false;
`
	if trig.Lower != nil {
		source += sprintfBoundCheck("<=", *trig.Lower)
	}
	if trig.Upper != nil {
		source += sprintfBoundCheck(">=", *trig.Upper)
	}
	source += `delete bindings["localTemperature"];
bindings["allowed"] = allowed;
return bindings;
`
	return throughHelper(gen, "thermostat", pattern, source)
}

func sprintfBoundCheck(op string, bound float64) string {
	return "if (temp " + op + " " + strconv.FormatFloat(bound, 'g', -1, 64) + ") { allowed = true; }\n"
}

// compileZigbeeCommTrigger matches communicationFailure equal to the
// desired state; the match alone encodes the condition.
func compileZigbeeCommTrigger(trig ruleir.ZigbeeCommTrigger) (*Compiled, error) {
	pattern := spec.Pattern{
		"event-code":  "resourceUpdated",
		"deviceId":    trig.DeviceID,
		"resource":    "communicationFailure",
		"event-value": trig.Lost,
	}
	return directToConstraints(pattern)
}
