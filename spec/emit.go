package spec

import (
	"encoding/json"

	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// EmitRequest is an opaque command object produced by a node's script and
// delivered to the runtime for dispatch (spec.md GLOSSARY: "Emit"). It is
// a plain structured value (map) so action-compiler callers can build one
// with literal syntax; Document serialization handles the rest.
type EmitRequest map[string]any

// MakeWriteDeviceRequest builds the writeDeviceRequest shape from spec.md
// §6: deviceId, resource, optional hold, and a value that is always a
// string.
func MakeWriteDeviceRequest(deviceID, resource, value string, hold *bool) (EmitRequest, error) {
	if deviceID == "" || resource == "" {
		return nil, xerrors.New(xerrors.InternalError, "writeDeviceRequest requires deviceId and resource")
	}
	req := EmitRequest{
		"type":     "writeDeviceRequest",
		"deviceId": deviceID,
		"resource": resource,
		"value":    value,
	}
	if hold != nil {
		req["hold"] = *hold
	}
	return req, nil
}

// MakeNotification builds a JSON-RPC-shaped notification request: a
// method name plus a params object (spec.md §6).
func MakeNotification(method string, params map[string]any) (EmitRequest, error) {
	if method == "" {
		return nil, xerrors.New(xerrors.InternalError, "notification requires a method name")
	}
	return EmitRequest{
		"type":   "notification",
		"method": method,
		"params": params,
	}, nil
}

// MakeTimerEmit builds the timerEmit shape: interval seconds, a timer id,
// and an optional payload.
func MakeTimerEmit(intervalSeconds int, timerID string, payload any) (EmitRequest, error) {
	if timerID == "" {
		return nil, xerrors.New(xerrors.InternalError, "timerEmit requires a timer id")
	}
	req := EmitRequest{
		"type":     "timerEmit",
		"interval": intervalSeconds,
		"timerId":  timerID,
	}
	if payload != nil {
		req["payload"] = payload
	}
	return req, nil
}

// MakeTimerFiredPattern builds the pattern the runtime uses to signal a
// fired timer: an event whose params include the timer id bound, plus the
// standard constraints-required marker (spec.md §6).
func MakeTimerFiredPattern(timerID string) Pattern {
	return PatternAddConstraintsRequired(Pattern{
		"event-code": "timerFired",
		"params": Pattern{
			"timerId": timerID,
		},
	})
}

// MakeTimerTickPattern builds the pattern matching a periodic timer tick,
// used by the Time trigger family and by the schedule/negate compilers.
func MakeTimerTickPattern() Pattern {
	return PatternAddConstraintsRequired(Pattern{
		"event-code": "timerTick",
	})
}

// Literal renders an EmitRequest built entirely from compile-time-known
// values as a JS object-literal string. JSON's grammar for plain
// string/bool/number/map/slice values is a syntactic subset of JS's, so
// encoding/json is the serializer; callers embed the result directly into
// a node's generated script, never through a runtime JSON.parse. Command
// objects carrying live bindings (the current event-id, event-time, etc.)
// can't go through this path, since json.Marshal would reject a raw JS
// expression like bindings["event-id"] as invalid JSON.
func Literal(req EmitRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", xerrors.Wrap(xerrors.InternalError, err, "spec: failed to render emit literal")
	}
	return string(b), nil
}
