// Package spec implements spec.md §4.1's spec-builder primitives: the
// canonical node/branch/pattern/emit-request shapes every other compiler
// component assembles, and the Document that wraps them into the final
// sheens-spec wire format (§6). It is grounded on the teacher's
// `internal/services/services.go` constructor-function idiom
// (NewBaseServiceRequest/BuildService: small composable constructors
// returning a structured request value), generalized from "build one
// outbound Home Assistant service call" to "build one spec node/branch".
package spec

import (
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// ResetTarget is the name of the canonical reset node every non-default
// branch falls back to.
const ResetTarget = "reset"

// Branch is a (pattern, target, consumed) tuple on a Node. A nil Pattern
// denotes a default (catch-all) branch.
type Branch struct {
	Pattern  Pattern
	Target   string
	Consumed bool
}

// IsDefault reports whether this is a pattern-less default branch.
func (b Branch) IsDefault() bool { return b.Pattern == nil }

// MakeBranch builds a Branch. A nil pattern produces a default branch.
func MakeBranch(pattern Pattern, target string, consumed bool) (Branch, error) {
	if target == "" {
		return Branch{}, xerrors.New(xerrors.InternalError, "branch target must not be empty")
	}
	return Branch{Pattern: pattern, Target: target, Consumed: consumed}, nil
}

// Node is a named state in the spec: either the message-accepting `start`
// node, or a script/branch node (spec.md GLOSSARY).
type Node struct {
	Source        string // empty means the node performs no script evaluation
	Branches      []Branch
	IsMessageNode bool
}

// MakeStateNode builds a Node. If branches is nil, the caller is expected
// to attach branches before the node is placed into a Document. If
// isMessageNode is false and branches contains no default branch, a
// default branch targeting `reset` is appended (spec.md §4.1).
func MakeStateNode(source string, branches []Branch, isMessageNode bool) *Node {
	n := &Node{Source: source, Branches: branches, IsMessageNode: isMessageNode}
	if !isMessageNode && !hasDefaultBranch(n.Branches) {
		n.Branches = append(n.Branches, Branch{Target: ResetTarget})
	}
	return n
}

// AppendBranch appends b to n, preserving invariant 5: default branches
// must be last. Appending a non-default branch after a default branch is
// a programmer error in a compiler component and panics, since it would
// silently produce an unreachable branch in the emitted spec.
func (n *Node) AppendBranch(b Branch) {
	if len(n.Branches) > 0 && n.Branches[len(n.Branches)-1].IsDefault() && !b.IsDefault() {
		panic("spec: cannot append a non-default branch after a default branch")
	}
	n.Branches = append(n.Branches, b)
}

func hasDefaultBranch(branches []Branch) bool {
	for _, b := range branches {
		if b.IsDefault() {
			return true
		}
	}
	return false
}

// resetScript is the canonical body of every reset node: it clears the
// fixed set of non-persistent bound variables (spec.md invariant 6) and
// falls through to the unconditional branch.
const resetScript = `
delete bindings["event-code"];
delete bindings["event-id"];
delete bindings["event-value"];
delete bindings["allowed"];
delete bindings["constraints-required"];
delete bindings["on-demand-required"];
delete bindings["original-event-id"];
return bindings;
`

// MakeResetNode builds the canonical reset helper: it clears
// non-persistent bound variables ("persist" survives, per spec.md §4.3's
// Time trigger contract) and branches unconditionally to nextTarget.
func MakeResetNode(nextTarget string) (*Node, error) {
	if nextTarget == "" {
		return nil, xerrors.New(xerrors.InternalError, "reset node requires a next target")
	}
	return &Node{
		Source:   resetScript,
		Branches: []Branch{{Target: nextTarget}},
	}, nil
}
