package action

import (
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

func buildDoorLockRequests(act ruleir.LockAction) ([]spec.EmitRequest, error) {
	req, err := spec.MakeWriteDeviceRequest(act.DoorLockID, "locked", strconv.FormatBool(act.Lock), nil)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "door lock action: locked request")
	}
	return []spec.EmitRequest{req}, nil
}
