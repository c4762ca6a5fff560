// Package action implements spec.md §4.4: one `actions` node per rule,
// whose script emits, in order, the command objects built from the rule's
// actions, preceded by the binding-repair prelude every emit requires.
// Grounded on the teacher's `internal/services/*.go` per-domain-file
// split and `services.go`'s `BaseServiceRequest` constructor shape,
// repurposed from "build one outbound HA service call" to "build one
// emitted command object."
package action

import (
	"strings"

	"github.com/rdkcentral/zilker-sdk-sub008/spec"
)

// bindingRepairPrelude normalizes event-id and, when on-demand-required is
// set, preserves it as original-event-id before emitting, per spec.md
// §4.4. It MUST precede every emit.
const bindingRepairPrelude = `if (bindings["event-id"] === undefined) { bindings["event-id"] = null; }
if (bindings["on-demand-required"]) {
  bindings["original-event-id"] = bindings["event-id"];
  bindings["event-id"] = 0;
}
`

// emitLiteral renders an EmitRequest built entirely from compile-time-known
// values (light's level/isOn, door lock's locked, thermostat's mode) as a
// JS object literal. Requests carrying live bindings (the current
// event-id, event-time, event-code) go through jsObject/jsBindingRef in
// jsvalue.go instead, since spec.Literal's JSON encoding can't express a
// raw JS expression.
func emitLiteral(req spec.EmitRequest) (string, error) {
	return spec.Literal(req)
}

// renderLiterals converts a batch of EmitRequests (command objects fully
// known at compile time) into JS literal text via emitLiteral.
func renderLiterals(reqs []spec.EmitRequest) ([]string, error) {
	literals := make([]string, len(reqs))
	for i, r := range reqs {
		l, err := emitLiteral(r)
		if err != nil {
			return nil, err
		}
		literals[i] = l
	}
	return literals, nil
}

// buildEmitScript assembles a node's script from already-rendered command
// literals: the binding-repair prelude, then a single emit() call with the
// literal array. Some commands (notification, camera, sound) carry live
// bindings references that can't be produced by JSON-encoding a Go value,
// so literals arrive pre-rendered rather than as []spec.EmitRequest.
func buildEmitScript(literals []string) string {
	var b strings.Builder
	b.WriteString(bindingRepairPrelude)
	b.WriteString("emit([")
	b.WriteString(strings.Join(literals, ", "))
	b.WriteString("]);\nreturn bindings;\n")
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
