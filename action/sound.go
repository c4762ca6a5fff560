package action

import (
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

// buildPlaySoundLiteral renders a playSound notification carrying the
// current eventId/eventTime bindings.
func buildPlaySoundLiteral(act ruleir.PlaySoundAction) string {
	sound := "default"
	if act.Sound != nil {
		sound = *act.Sound
	}

	return jsObject(
		jsField{"method", jsString("playSoundAction")},
		jsField{"sound", jsString(sound)},
		jsField{"eventId", jsBindingRef("event-id")},
		jsField{"eventTime", jsBindingRef("event-time")},
	)
}
