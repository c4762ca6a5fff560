package action

import (
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

func notifyMethod(k ruleir.NotifyKind) (string, error) {
	switch k {
	case ruleir.NotifyEmail:
		return "sendEmailAction", nil
	case ruleir.NotifySMS:
		return "sendSmsAction", nil
	case ruleir.NotifyPush:
		return "sendPushNotifAction", nil
	default:
		return "", xerrors.New(xerrors.Invalid, "notification action: unrecognized kind %d", k)
	}
}

// buildNotificationLiteral renders one sendXAction command. ruleId is
// fixed at compile time; eventId and eventTime are read from bindings at
// match time, since the rule is compiled once but fires on every future
// event — the reason this bypasses emitLiteral's JSON path.
func buildNotificationLiteral(act ruleir.NotificationAction, ruleID uint64) (string, error) {
	method, err := notifyMethod(act.Kind)
	if err != nil {
		return "", err
	}

	fields := []jsField{
		{"method", jsString(method)},
		{"ruleId", jsString(strconv.FormatUint(ruleID, 10))},
		{"eventId", jsBindingRef("event-id")},
		{"eventTime", jsBindingRef("event-time")},
	}
	if act.Attachment != nil {
		fields = append(fields, jsField{"attachment", jsString(*act.Attachment)})
	}
	return jsObject(fields...), nil
}
