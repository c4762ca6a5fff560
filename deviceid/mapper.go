// Package deviceid maps an opaque device id carried by a rule trigger or
// action into the (deviceId, endpointId) pair the downstream runtime
// addresses resources by. Grounded on spec.md §6's DeviceIdMapper contract
// and the teacher's dependency-injected-collaborator style (a small
// interface passed into the compile entry point rather than a process-wide
// singleton, per spec.md's REDESIGN FLAGS §"Global mutable state").
package deviceid

import "strings"

// Mapper resolves a raw rule-XML device id into the id/endpoint pair the
// emitted spec addresses. ok is false when the id cannot be resolved; the
// caller turns that into an Invalid compile error.
type Mapper interface {
	Map(deviceID string) (mappedID, endpointID string, ok bool)
}

// DefaultMapper implements the dot-split convention: everything after the
// first '.' is the device id, and the endpoint id is always "*". An id with
// no dot cannot be resolved.
type DefaultMapper struct{}

func (DefaultMapper) Map(deviceID string) (string, string, bool) {
	idx := strings.IndexByte(deviceID, '.')
	if idx < 0 {
		return "", "", false
	}
	return deviceID[idx+1:], "*", true
}
