// Package scriptassets embeds the small, fixed script blobs the rest of the
// transcoder concatenates into emitted node sources: time predicates and
// the thermostat scheduler helper. JS comments are valid inside the
// emitted node source, so the files are embedded as authored — no
// stripping step is needed between source and binary.
package scriptassets

import _ "embed"

//go:embed timefunctions.txt
var timeFunctions string

//go:embed scheduleractions.txt
var schedulerActions string

// Name identifies one of the known script blobs.
type Name string

const (
	TimeFunctions    Name = "TIMEFUNCTIONS"
	SchedulerActions Name = "SCHEDULERACTIONS"
)

// Blob returns the embedded source for the named blob. It panics for an
// unknown name: the set of blob names is fixed and known at compile time,
// so an unrecognized name is a programmer error, not a user-input error.
func Blob(name Name) string {
	switch name {
	case TimeFunctions:
		return timeFunctions
	case SchedulerActions:
		return schedulerActions
	default:
		panic("scriptassets: unknown blob name " + string(name))
	}
}
