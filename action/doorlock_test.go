package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestBuildDoorLockRequestsLock(t *testing.T) {
	reqs, err := buildDoorLockRequests(ruleir.LockAction{DoorLockID: "D1", Lock: true})
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "locked", reqs[0]["resource"])
	assert.Equal(t, "true", reqs[0]["value"])
}

func TestBuildDoorLockRequestsUnlock(t *testing.T) {
	reqs, err := buildDoorLockRequests(ruleir.LockAction{DoorLockID: "D1", Lock: false})
	require.NoError(t, err)
	assert.Equal(t, "false", reqs[0]["value"])
}
