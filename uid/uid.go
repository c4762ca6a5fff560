// Package uid generates the unique names the transcoder needs per
// invocation: synthesized helper-node names (spec.md invariant 3) and
// constraint helper-function names (spec.md invariant 4). The source
// implementation used the heap address of a constraint node as an ASCII
// UID (spec.md DESIGN NOTES §9); this package replaces that with
// github.com/google/uuid, matching the UUID usage seen throughout the
// example pack's agent/automation-engine repos.
package uid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NodeName returns a globally-unique name for a synthesized helper node,
// prefixed for readability in the emitted spec (e.g. "zone_<uuid>").
func NodeName(prefix string) string {
	return sanitize(prefix) + "_" + shortID()
}

// HelperFuncName returns a globally-unique name for a constraint
// aggregation helper function, e.g. "isAllowed_<uuid>".
func HelperFuncName() string {
	return "isAllowed_" + shortID()
}

// shortID returns a compact, collision-resistant identifier derived from a
// fresh random UUID. Hyphens are stripped because helper names are used as
// bare identifiers inside emitted script source.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func sanitize(prefix string) string {
	if prefix == "" {
		return "helper"
	}
	return prefix
}

// Generator hands out random UUID-based names (not a deterministic
// sequence) and remembers every name it has produced, so a repeat within
// one compilation is caught: "every name generated in this compilation is
// distinct" holds without depending on the name format.
type Generator struct {
	seen map[string]bool
}

// NewGenerator returns a Generator that tracks every name it has produced.
func NewGenerator() *Generator {
	return &Generator{seen: make(map[string]bool)}
}

// Next returns a new unique name with the given prefix, panicking if the
// underlying UUID source ever produced a collision (a programmer-error
// level event, not a user-input error).
func (g *Generator) Next(prefix string) string {
	name := NodeName(prefix)
	if g.seen[name] {
		panic(fmt.Sprintf("uid: collision generating name for prefix %q", prefix))
	}
	g.seen[name] = true
	return name
}

// NextHelperFunc returns a new unique constraint helper-function name.
func (g *Generator) NextHelperFunc() string {
	name := HelperFuncName()
	if g.seen[name] {
		panic("uid: collision generating helper function name")
	}
	g.seen[name] = true
	return name
}
