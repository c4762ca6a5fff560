package trigger

import (
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

func sceneLiteral(s ruleir.SystemScene) string {
	switch s {
	case ruleir.SceneHome:
		return "home"
	case ruleir.SceneStay:
		return "stay"
	case ruleir.SceneAway:
		return "away"
	case ruleir.SceneNight:
		return "night"
	case ruleir.SceneVacation:
		return "vacation"
	default:
		return ""
	}
}

// compileSystemSceneTrigger matches a system-mode-changed event, captures
// the new mode into system-status via wildcard, and routes through a
// helper comparing the captured binding to the expected literal scene.
func compileSystemSceneTrigger(trig ruleir.SystemSceneTrigger, gen *uid.Generator) (*Compiled, error) {
	pattern := spec.Pattern{
		"event-code":    "systemModeChanged",
		"system-status": spec.Wildcard("system-status"),
	}

	scene := sceneLiteral(trig.Scene)
	source := `var allowed = bindings["system-status"] === "` + scene + `";
bindings["allowed"] = allowed;
return bindings;
`
	return throughHelper(gen, "systemScene", pattern, source)
}
