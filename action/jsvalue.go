package action

import (
	"strconv"
	"strings"
)

// jsField is one key/expr pair in a hand-built JS object literal. expr is
// an already-valid JS expression — either a quoted static literal (via
// jsString/jsBool/jsInt) or a live binding reference (via jsBindingRef) —
// never user input interpolated raw.
type jsField struct {
	key  string
	expr string
}

// jsObject renders fields into a JS object literal. Used for command
// objects that mix compile-time-static values with bindings the runtime
// only knows at evaluation time (current event-id, event-time), which
// rules out building the whole object as a Go value and JSON-encoding it.
func jsObject(fields ...jsField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.Quote(f.key) + ": " + f.expr
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func jsString(s string) string { return strconv.Quote(s) }

func jsInt(n int) string { return strconv.Itoa(n) }

// jsBindingRef returns a live reference to bindings[key], evaluated when
// the runtime runs the script, not when the transcoder compiles it.
func jsBindingRef(key string) string { return `bindings["` + key + `"]` }
