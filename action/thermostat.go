package action

import (
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

func thermostatModeString(m ruleir.ThermostatMode) (string, error) {
	switch m {
	case ruleir.ThermostatCool:
		return "cool", nil
	case ruleir.ThermostatHeat:
		return "heat", nil
	case ruleir.ThermostatOff:
		return "off", nil
	default:
		return "", xerrors.New(xerrors.Invalid, "thermostat action: unrecognized mode %d", m)
	}
}

// buildThermostatRequests writes the mode resource with hold, optionally
// followed by the matching setpoint and the hold resource.
func buildThermostatRequests(act ruleir.ThermostatSetAction) ([]spec.EmitRequest, error) {
	mode, err := thermostatModeString(act.Mode)
	if err != nil {
		return nil, err
	}

	modeReq, err := spec.MakeWriteDeviceRequest(act.ThermostatID, "mode", mode, act.Hold)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "thermostat action: mode request")
	}
	reqs := []spec.EmitRequest{modeReq}

	if act.Setpoint != nil {
		setpointResource := "setpoint" + strconvTitle(mode)
		setpointReq, err := spec.MakeWriteDeviceRequest(act.ThermostatID, setpointResource, *act.Setpoint, nil)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Invalid, err, "thermostat action: setpoint request")
		}
		reqs = append(reqs, setpointReq)
	}

	if act.Hold != nil {
		holdReq, err := spec.MakeWriteDeviceRequest(act.ThermostatID, "hold", strconv.FormatBool(*act.Hold), nil)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Invalid, err, "thermostat action: hold request")
		}
		reqs = append(reqs, holdReq)
	}

	return reqs, nil
}

// strconvTitle upper-cases only the first rune; mode names are ASCII.
func strconvTitle(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
