package ruleir

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// The iControl-rules v1.0 namespace URI recognized per spec.md §6. The
// transcoder declines to process a document that carries neither this
// namespace nor a root <rule> element with a ruleID attribute.
const namespaceV1 = "ucontrol.com/rules/v1.0"

// DecodeXML parses a UTF-8 iControl-rules v1.0 XML document into a Rule.
// This is the external collaborator named in spec.md §6: it is the only
// place in the module that knows about XML element names. A validation
// failure returns an xerrors.BadMessage error and the transcoder is never
// invoked.
func DecodeXML(r io.Reader) (Rule, error) {
	var doc xmlRule
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Rule{}, xerrors.Wrap(xerrors.BadMessage, err, "failed to parse rule XML")
	}

	if doc.XMLName.Space != namespaceV1 && doc.XMLName.Local != "rule" {
		return Rule{}, xerrors.New(xerrors.BadMessage, "root element is not a recognized <rule> document")
	}
	if doc.RuleID == "" {
		return Rule{}, xerrors.New(xerrors.BadMessage, "missing required ruleID attribute")
	}

	ruleID, err := strconv.ParseUint(doc.RuleID, 10, 64)
	if err != nil {
		return Rule{}, xerrors.Wrap(xerrors.BadMessage, err, "ruleID %q is not a valid unsigned integer", doc.RuleID)
	}

	rule := Rule{
		RuleID: ruleID,
		Negate: doc.Negate,
	}

	for _, t := range doc.Triggers.Items {
		trigger, err := decodeTrigger(t)
		if err != nil {
			return Rule{}, err
		}
		rule.Triggers = append(rule.Triggers, trigger)
	}

	if doc.Constraints != nil {
		c, err := decodeConstraint(*doc.Constraints)
		if err != nil {
			return Rule{}, err
		}
		rule.ConstraintRoot = c
	}

	for _, a := range doc.Actions.Items {
		action, err := decodeAction(a)
		if err != nil {
			return Rule{}, err
		}
		rule.Actions = append(rule.Actions, action)
	}

	for _, s := range doc.Schedule.Entries {
		entry, err := decodeScheduleEntry(s)
		if err != nil {
			return Rule{}, err
		}
		rule.ScheduleEntries = append(rule.ScheduleEntries, entry)
	}

	return rule, nil
}

// --- wire shapes ---

type xmlRule struct {
	XMLName     xml.Name        `xml:"rule"`
	RuleID      string          `xml:"ruleID,attr"`
	Negate      bool            `xml:"negate,attr"`
	Triggers    xmlTriggerList  `xml:"triggers"`
	Constraints *xmlConstraint  `xml:"constraints"`
	Actions     xmlActionList   `xml:"actions"`
	Schedule    xmlScheduleList `xml:"schedule"`
}

type xmlTriggerList struct {
	Items []xmlTrigger `xml:"trigger"`
}

type xmlTrigger struct {
	Family    string  `xml:"family,attr"`
	DeviceID  string  `xml:"deviceId,attr"`
	State     string  `xml:"state,attr"`
	Type      string  `xml:"type,attr"`
	Variant   string  `xml:"variant,attr"`
	Scene     string  `xml:"scene,attr"`
	Enabled   string  `xml:"enabled,attr"`
	Locked    string  `xml:"locked,attr"`
	Trouble   string  `xml:"trouble,attr"`
	Lower     *string `xml:"lower,attr"`
	Upper     *string `xml:"upper,attr"`
	When      string  `xml:"when,attr"`
	End       *string `xml:"end,attr"`
	Repeat    string  `xml:"repeatInterval,attr"`
	Lost      string  `xml:"lost,attr"`
}

type xmlConstraint struct {
	Logic       string          `xml:"logic,attr"`
	TimeWindows []xmlTimeWindow `xml:"timeWindow"`
	Children    []xmlConstraint `xml:"constraint"`
}

type xmlTimeWindow struct {
	Start     string `xml:"start,attr"`
	End       string `xml:"end,attr"`
	DayOfWeek string `xml:"dayOfWeek,attr"`
}

type xmlActionList struct {
	Items []xmlAction `xml:"action"`
}

type xmlAction struct {
	Target       string  `xml:"target,attr"`
	LightID      string  `xml:"lightID,attr"`
	Level        *string `xml:"level,attr"`
	Duration     *string `xml:"duration,attr"`
	DoorLockID   string  `xml:"doorLockID,attr"`
	ThermostatID string  `xml:"thermostatID,attr"`
	Setpoint     *string `xml:"setpoint,attr"`
	Hold         *string `xml:"hold,attr"`
	Attachment   *string `xml:"attachment,attr"`
	CameraID     string  `xml:"cameraID,attr"`
	Count        *string `xml:"count,attr"`
	Size         *string `xml:"size,attr"`
	Sound        *string `xml:"sound,attr"`
}

type xmlScheduleList struct {
	Entries []xmlScheduleEntry `xml:"entry"`
}

type xmlScheduleEntry struct {
	When          string `xml:"when,attr"`
	ThermostatIDs string `xml:"thermostatIds,attr"` // comma-separated
	Mode          string `xml:"mode,attr"`
	Temperature   string `xml:"temperature,attr"`
}

// --- decoding helpers ---

func decodeWeekTime(s string) (WeekTime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunrise":
		return WeekTime{Symbol: SymbolSunrise}, nil
	case "sunset":
		return WeekTime{Symbol: SymbolSunset}, nil
	case "":
		return WeekTime{}, xerrors.New(xerrors.BadMessage, "missing WeekTime value")
	}
	seconds, err := strconv.Atoi(s)
	if err != nil {
		return WeekTime{}, xerrors.Wrap(xerrors.BadMessage, err, "invalid WeekTime %q", s)
	}
	return WeekTime{Seconds: seconds}, nil
}

func decodeDayWeekTime(when string) (WeekTime, error) {
	// "Mon@21600" style: a weekday name, "@", seconds-of-day.
	parts := strings.SplitN(when, "@", 2)
	if len(parts) != 2 {
		return decodeWeekTime(when)
	}
	day, err := decodeDayOfWeek(parts[0])
	if err != nil {
		return WeekTime{}, err
	}
	wt, err := decodeWeekTime(parts[1])
	if err != nil {
		return WeekTime{}, err
	}
	wt.Day = &day
	return wt, nil
}

func decodeDayOfWeek(s string) (DayOfWeek, error) {
	switch strings.ToLower(s) {
	case "sun":
		return Sunday, nil
	case "mon":
		return Monday, nil
	case "tue":
		return Tuesday, nil
	case "wed":
		return Wednesday, nil
	case "thu":
		return Thursday, nil
	case "fri":
		return Friday, nil
	case "sat":
		return Saturday, nil
	default:
		return 0, xerrors.New(xerrors.BadMessage, "unknown weekday %q", s)
	}
}

func decodeDayMask(s string) (uint8, error) {
	if s == "" {
		return 0, nil
	}
	var mask uint8
	for _, part := range strings.Split(s, ",") {
		d, err := decodeDayOfWeek(strings.TrimSpace(part))
		if err != nil {
			return 0, err
		}
		mask |= 1 << uint(d)
	}
	return mask, nil
}

func decodeConstraint(x xmlConstraint) (*Constraint, error) {
	c := &Constraint{}
	switch strings.ToUpper(x.Logic) {
	case "OR":
		c.Logic = LogicOR
	default:
		c.Logic = LogicAND
	}

	for _, tw := range x.TimeWindows {
		start, err := decodeWeekTime(tw.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeWeekTime(tw.End)
		if err != nil {
			return nil, err
		}
		mask, err := decodeDayMask(tw.DayOfWeek)
		if err != nil {
			return nil, err
		}
		c.TimeConstraints = append(c.TimeConstraints, TimeWindow{Start: start, End: end, DayOfWeek: mask})
	}

	for _, child := range x.Children {
		cc, err := decodeConstraint(child)
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, cc)
	}

	return c, nil
}

func decodeTrigger(x xmlTrigger) (Trigger, error) {
	switch strings.ToLower(x.Family) {
	case "zone":
		state, ztype, err := decodeZone(x)
		if err != nil {
			return nil, err
		}
		return ZoneTrigger{DeviceID: x.DeviceID, State: state, Type: ztype}, nil
	case "touchscreen":
		variant, err := decodeTouchscreenVariant(x.Variant)
		if err != nil {
			return nil, err
		}
		return TouchscreenTrigger{DeviceID: x.DeviceID, Variant: variant}, nil
	case "systemscene":
		scene, err := decodeScene(x.Scene)
		if err != nil {
			return nil, err
		}
		return SystemSceneTrigger{Scene: scene}, nil
	case "lighting":
		return LightingTrigger{DeviceID: x.DeviceID, Enabled: x.Enabled == "true"}, nil
	case "doorlock":
		return DoorLockTrigger{DeviceID: x.DeviceID, Locked: x.Locked == "true", Trouble: x.Trouble == "true"}, nil
	case "thermostat", "thermostatthreshold":
		lower, err := parseOptFloat(x.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := parseOptFloat(x.Upper)
		if err != nil {
			return nil, err
		}
		return ThermostatTrigger{DeviceID: x.DeviceID, Lower: lower, Upper: upper, Trouble: x.Trouble == "true"}, nil
	case "time":
		when, err := decodeDayWeekTime(x.When)
		if err != nil {
			return nil, err
		}
		var end *WeekTime
		if x.End != nil {
			e, err := decodeDayWeekTime(*x.End)
			if err != nil {
				return nil, err
			}
			end = &e
		}
		repeat, err := parseOptInt(&x.Repeat, 0)
		if err != nil {
			return nil, err
		}
		return TimeTrigger{When: when, End: end, RepeatInterval: repeat}, nil
	case "zigbeecomm":
		return ZigbeeCommTrigger{DeviceID: x.DeviceID, Lost: x.State != "restored"}, nil
	case "cloud":
		return CloudTrigger{}, nil
	case "cloudservice":
		return CloudServiceTrigger{}, nil
	case "network":
		return NetworkTrigger{}, nil
	case "switch":
		return SwitchTrigger{}, nil
	case "resource":
		return ResourceTrigger{}, nil
	case "panic":
		return PanicTrigger{}, nil
	default:
		return nil, xerrors.New(xerrors.BadMessage, "unknown trigger family %q", x.Family)
	}
}

func decodeZone(x xmlTrigger) (ZoneState, ZoneType, error) {
	var state ZoneState
	switch strings.ToLower(x.State) {
	case "open":
		state = ZoneOpen
	case "closed":
		state = ZoneClosed
	case "either":
		state = ZoneEither
	case "trouble":
		state = ZoneTrouble
	default:
		return 0, 0, xerrors.New(xerrors.BadMessage, "unknown zone state %q", x.State)
	}

	var ztype ZoneType
	switch strings.ToLower(x.Type) {
	case "door":
		ztype = ZoneTypeDoor
	case "window":
		ztype = ZoneTypeWindow
	case "motion":
		ztype = ZoneTypeMotion
	case "glassbreak":
		ztype = ZoneTypeGlassBreak
	case "smoke":
		ztype = ZoneTypeSmoke
	case "co":
		ztype = ZoneTypeCO
	case "water":
		ztype = ZoneTypeWater
	case "allzones", "":
		ztype = ZoneTypeAllZones
	case "nonmotionzones":
		ztype = ZoneTypeNonMotionZones
	default:
		return 0, 0, xerrors.New(xerrors.BadMessage, "unknown zone type %q", x.Type)
	}
	return state, ztype, nil
}

func decodeTouchscreenVariant(s string) (TouchscreenVariant, error) {
	switch strings.ToLower(s) {
	case "armed":
		return TouchscreenArmed, nil
	case "armedaway":
		return TouchscreenArmedAway, nil
	case "armedstay":
		return TouchscreenArmedStay, nil
	case "armednight":
		return TouchscreenArmedNight, nil
	case "arming":
		return TouchscreenArming, nil
	case "disarmed":
		return TouchscreenDisarmed, nil
	case "alarm":
		return TouchscreenAlarm, nil
	case "trouble":
		return TouchscreenTrouble, nil
	case "entrydelay":
		return TouchscreenEntryDelay, nil
	default:
		return 0, xerrors.New(xerrors.BadMessage, "unknown touchscreen variant %q", s)
	}
}

func decodeScene(s string) (SystemScene, error) {
	switch strings.ToLower(s) {
	case "home":
		return SceneHome, nil
	case "stay":
		return SceneStay, nil
	case "away":
		return SceneAway, nil
	case "night":
		return SceneNight, nil
	case "vacation":
		return SceneVacation, nil
	default:
		return 0, xerrors.New(xerrors.BadMessage, "unknown scene %q", s)
	}
}

func decodeAction(x xmlAction) (Action, error) {
	switch strings.ToLower(x.Target) {
	case "turnlighton", "turnlightoff":
		level, err := parseOptClampedInt(x.Level, 0, 100)
		if err != nil {
			return nil, err
		}
		var duration *int
		if x.Duration != nil {
			d, err := parseOptInt(x.Duration, 0)
			if err != nil {
				return nil, err
			}
			duration = &d
		}
		return LightAction{
			On:       strings.ToLower(x.Target) == "turnlighton",
			LightID:  x.LightID,
			Level:    level,
			Duration: duration,
		}, nil
	case "lockdoorlock", "unlockdoorlock":
		return LockAction{DoorLockID: x.DoorLockID, Lock: strings.ToLower(x.Target) == "lockdoorlock"}, nil
	case "settemperaturecool", "settemperatureheat", "settemperatureoff":
		var mode ThermostatMode
		switch strings.ToLower(x.Target) {
		case "settemperaturecool":
			mode = ThermostatCool
		case "settemperatureheat":
			mode = ThermostatHeat
		default:
			mode = ThermostatOff
		}
		var hold *bool
		if x.Hold != nil {
			h := strings.EqualFold(*x.Hold, "true")
			hold = &h
		}
		return ThermostatSetAction{ThermostatID: x.ThermostatID, Mode: mode, Setpoint: x.Setpoint, Hold: hold}, nil
	case "sendemail":
		return NotificationAction{Kind: NotifyEmail, Attachment: x.Attachment}, nil
	case "sendsms":
		return NotificationAction{Kind: NotifySMS, Attachment: x.Attachment}, nil
	case "sendpushnotif":
		return NotificationAction{Kind: NotifyPush, Attachment: x.Attachment}, nil
	case "takepicture":
		count, err := parseOptInt(x.Count, 5)
		if err != nil {
			count = 5
		}
		var sizePtr *PictureSize
		if x.Size != nil {
			size := decodePictureSize(*x.Size)
			sizePtr = &size
		}
		countCopy := count
		return TakePictureAction{CameraID: x.CameraID, Count: &countCopy, Size: sizePtr}, nil
	case "recordvideo":
		duration, err := parseOptInt(x.Duration, 10)
		if err != nil {
			duration = 10
		}
		durationCopy := duration
		return RecordVideoAction{CameraID: x.CameraID, Duration: &durationCopy}, nil
	case "playsound":
		return PlaySoundAction{Sound: x.Sound}, nil
	default:
		return nil, xerrors.New(xerrors.Unsupported, "unknown action target %q", x.Target)
	}
}

func decodePictureSize(s string) PictureSize {
	switch strings.ToLower(s) {
	case "small":
		return PictureSmall
	case "large":
		return PictureLarge
	default:
		return PictureMedium
	}
}

func decodeScheduleEntry(x xmlScheduleEntry) (ScheduleEntry, error) {
	when, err := decodeDayWeekTime(x.When)
	if err != nil {
		return ScheduleEntry{}, err
	}

	var ids []string
	for _, id := range strings.Split(x.ThermostatIDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}

	var mode ScheduleMode
	switch strings.ToUpper(x.Mode) {
	case "HEAT":
		mode = ScheduleHeat
	case "COOL":
		mode = ScheduleCool
	case "BOTH":
		mode = ScheduleBoth
	default:
		mode = ScheduleInvalid
	}

	temp, err := strconv.Atoi(x.Temperature)
	if err != nil {
		return ScheduleEntry{}, xerrors.Wrap(xerrors.BadMessage, err, "invalid schedule temperature %q", x.Temperature)
	}

	return ScheduleEntry{At: when, ThermostatIDs: ids, Mode: mode, Temperature: temp}, nil
}

// --- small numeric-attribute helpers ---

func parseOptFloat(s *string) (*float64, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "invalid numeric value %q", *s)
	}
	return &v, nil
}

func parseOptInt(s *string, def int) (int, error) {
	if s == nil || *s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		return def, xerrors.Wrap(xerrors.Invalid, err, "invalid integer value %q", *s)
	}
	return v, nil
}

func parseOptClampedInt(s *string, lo, hi int) (*int, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "invalid integer value %q", *s)
	}
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return &v, nil
}
