package action

import (
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// pictureQuality maps PictureSize to the quality string the downstream
// notification understands: small/large map to low/high, anything else
// (including the unset default) maps to medium.
func pictureQuality(size *ruleir.PictureSize) string {
	if size == nil {
		return "medium"
	}
	switch *size {
	case ruleir.PictureSmall:
		return "low"
	case ruleir.PictureLarge:
		return "high"
	default:
		return "medium"
	}
}

// buildTakePictureLiteral maps the camera id and renders the
// takePicture notification. ruleId and count are fixed at compile time;
// eventCode/eventId/eventTime are read live from bindings.
func buildTakePictureLiteral(act ruleir.TakePictureAction, ruleID uint64, mapper deviceid.Mapper) (string, error) {
	deviceID, endpointID, ok := mapper.Map(act.CameraID)
	if !ok {
		return "", xerrors.New(xerrors.Invalid, "take picture action: could not map camera id %q", act.CameraID)
	}

	count := 5
	if act.Count != nil {
		count = *act.Count
	}

	return jsObject(
		jsField{"method", jsString("takePictureAction")},
		jsField{"ruleId", jsString(strconv.FormatUint(ruleID, 10))},
		jsField{"deviceId", jsString(deviceID)},
		jsField{"endpointId", jsString(endpointID)},
		jsField{"eventCode", jsBindingRef("event-code")},
		jsField{"eventId", jsBindingRef("event-id")},
		jsField{"eventTime", jsBindingRef("event-time")},
		jsField{"count", jsInt(count)},
		jsField{"quality", jsString(pictureQuality(act.Size))},
	), nil
}

// buildRecordVideoLiteral maps the camera id and renders the recordVideo
// notification. Preroll is always 5 seconds, per the source's fixed value.
func buildRecordVideoLiteral(act ruleir.RecordVideoAction, ruleID uint64, mapper deviceid.Mapper) (string, error) {
	deviceID, endpointID, ok := mapper.Map(act.CameraID)
	if !ok {
		return "", xerrors.New(xerrors.Invalid, "record video action: could not map camera id %q", act.CameraID)
	}

	duration := 10
	if act.Duration != nil {
		duration = *act.Duration
	}

	return jsObject(
		jsField{"method", jsString("recordVideoAction")},
		jsField{"ruleId", jsString(strconv.FormatUint(ruleID, 10))},
		jsField{"deviceId", jsString(deviceID)},
		jsField{"endpointId", jsString(endpointID)},
		jsField{"eventCode", jsBindingRef("event-code")},
		jsField{"eventId", jsBindingRef("event-id")},
		jsField{"eventTime", jsBindingRef("event-time")},
		jsField{"preroll", jsInt(5)},
		jsField{"duration", jsInt(duration)},
	), nil
}
