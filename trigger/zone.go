package trigger

import (
	"fmt"
	"strings"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

// zoneEventCode returns the event-code literal for a non-trouble Zone
// state, or "" for ZoneTrouble (which uses a different pattern shape
// entirely).
func zoneEventCode(state ruleir.ZoneState) string {
	switch state {
	case ruleir.ZoneOpen:
		return "zoneFault"
	case ruleir.ZoneClosed:
		return "zoneRestore"
	case ruleir.ZoneEither:
		return ""
	default:
		return ""
	}
}

// zoneFilterScript is the helper-node script every non-trouble,
// non-camera Zone branch routes through: it derives system-status, applies
// the motion-only/either-fault filters, detects the occ fault/restore
// special values, and sets `allowed`.
func zoneFilterScript(zt ruleir.ZoneType, state ruleir.ZoneState) string {
	var b strings.Builder
	b.WriteString(`function deriveSystemStatus(bindings) {
  if (bindings["alarmStatus"] === "alarm") { return "alarm"; }
  var armMode = bindings["armMode"];
  if (armMode === "away" || armMode === "stay" || armMode === "night") { return armMode; }
  return "home";
}
bindings["system-status"] = deriveSystemStatus(bindings);
var ok = true;
`)
	if zt == ruleir.ZoneTypeMotion {
		b.WriteString(`if (bindings["zoneType"] !== "motion") { ok = false; }
`)
	}
	if state == ruleir.ZoneEither {
		b.WriteString(`if (bindings["event-code"] !== "zoneFault" && bindings["event-code"] !== "zoneRestore") { ok = false; }
`)
	}
	b.WriteString(`if (bindings["event-value"] === "occFault" || bindings["event-value"] === "occRestore") {
  bindings["on-demand-required"] = true;
}
delete bindings["zoneType"];
bindings["allowed"] = ok;
return bindings;
`)
	return b.String()
}

// compileZoneTrigger implements spec.md §4.3's Zone family contract,
// including the camera-motion dot-in-id path and the all-zones/non-motion-
// zones trouble mirrors.
func compileZoneTrigger(trig ruleir.ZoneTrigger, gen *uid.Generator) (*Compiled, error) {
	if strings.Contains(trig.DeviceID, ".") {
		return compileCameraMotionZone(trig, gen)
	}
	if trig.State == ruleir.ZoneTrouble {
		return compileZoneTrouble(trig, gen)
	}
	return compileZoneFaultRestore(trig, gen)
}

func compileZoneFaultRestore(trig ruleir.ZoneTrigger, gen *uid.Generator) (*Compiled, error) {
	pattern := spec.Pattern{"deviceId": trig.DeviceID}
	if code := zoneEventCode(trig.State); code != "" {
		pattern["event-code"] = code
	} else {
		pattern["event-code"] = spec.Wildcard("event-code")
	}
	// Always capture zoneType so the helper's motion-only filter has a
	// bound value to test.
	pattern["zoneType"] = spec.Wildcard("zoneType")

	return throughHelper(gen, "zone", pattern, zoneFilterScript(trig.Type, trig.State))
}

// troublePatternForEndpoint builds the trouble-event pattern for a given
// source kind ("device", "bridge", "pim", "prm").
func troublePatternForEndpoint(deviceID, kind string) spec.Pattern {
	return spec.Pattern{
		"event-code": "trouble",
		"type":       kind,
		"deviceId":   deviceID,
		"extra":      spec.DoubleWildcard("extra"),
	}
}

func compileZoneTrouble(trig ruleir.ZoneTrigger, gen *uid.Generator) (*Compiled, error) {
	result := newCompiled()

	primary, err := throughHelper(gen, "zoneTrouble", troublePatternForEndpoint(trig.DeviceID, "device"), zoneFilterScript(trig.Type, ruleir.ZoneTrouble))
	if err != nil {
		return nil, err
	}
	result.merge(primary)

	if trig.Type == ruleir.ZoneTypeAllZones || trig.Type == ruleir.ZoneTypeNonMotionZones {
		for _, kind := range []string{"Bridge", "Pim", "Prm"} {
			mirror, err := throughHelper(gen, fmt.Sprintf("zoneTrouble%s", kind), troublePatternForEndpoint(trig.DeviceID, strings.ToLower(kind)), zoneFilterScript(trig.Type, ruleir.ZoneTrouble))
			if err != nil {
				return nil, err
			}
			result.merge(mirror)
		}
	}
	return result, nil
}

// compileCameraMotionZone implements the dot-in-id camera-motion path: a
// device-resource-updated event on `faulted`, through a small pass-through
// helper that injects on-demand-required before continuing.
func compileCameraMotionZone(trig ruleir.ZoneTrigger, gen *uid.Generator) (*Compiled, error) {
	pattern := spec.Pattern{
		"event-code": "deviceResourceUpdated",
		"deviceId":   trig.DeviceID,
		"resource":   "faulted",
	}
	name := gen.Next("cameraMotion")
	b, err := startBranch(pattern, name)
	if err != nil {
		return nil, err
	}
	onward, err := spec.MakeBranch(nil, "constraints", false)
	if err != nil {
		return nil, err
	}
	node := spec.MakeStateNode(`bindings["on-demand-required"] = true;
return bindings;
`, []spec.Branch{onward}, false)

	return &Compiled{
		Branches: []spec.Branch{b},
		Nodes:    map[string]*spec.Node{name: node},
	}, nil
}
