// Package trigger implements spec.md §4.3: for each trigger in a rule,
// produce a branch on the `start` node (plus whatever helper nodes that
// branch needs) that ultimately routes to `constraints` on match and
// `reset` on mismatch. It is grounded on spec.md §4.3 directly — the
// teacher has no inbound "rule trigger" concept, only outbound service
// calls and entity listeners — but borrows the teacher's
// `NewEntityListener` builder's event-shape vocabulary (entity id,
// from/to state) when naming pattern keys.
package trigger

import (
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
)

// Compiled is the output of compiling one trigger: the branch(es) to
// append to `start`, plus any helper nodes those branches reference.
type Compiled struct {
	Branches []spec.Branch
	Nodes    map[string]*spec.Node
}

func newCompiled() *Compiled {
	return &Compiled{Nodes: make(map[string]*spec.Node)}
}

func (c *Compiled) merge(other *Compiled) {
	c.Branches = append(c.Branches, other.Branches...)
	for name, n := range other.Nodes {
		c.Nodes[name] = n
	}
}

// startBranch builds a branch out of `start` carrying the
// constraints-required marker: every trigger path in the normal (non-
// schedule, non-negate) pipeline eventually reaches the `constraints`
// node, which requires the bindings invariant 7 promises.
func startBranch(pattern spec.Pattern, target string) (spec.Branch, error) {
	return spec.MakeBranch(spec.PatternAddConstraintsRequired(pattern), target, false)
}

// allowedBranches returns the allowed=true -> `constraints` branch nearly
// every filter helper node ends with; spec.MakeStateNode then appends the
// default branch to `reset` after it. The target is always the fixed
// non-empty literal "constraints", so spec.MakeBranch cannot fail here.
func allowedBranches() []spec.Branch {
	matched, _ := spec.MakeBranch(spec.Pattern{"allowed": true}, "constraints", false)
	return []spec.Branch{matched}
}

// directToConstraints is for families whose event pattern alone fully
// encodes the match condition (no helper-node filtering needed): the
// branch goes straight from `start` to `constraints`.
func directToConstraints(pattern spec.Pattern) (*Compiled, error) {
	b, err := startBranch(pattern, "constraints")
	if err != nil {
		return nil, err
	}
	return &Compiled{Branches: []spec.Branch{b}, Nodes: map[string]*spec.Node{}}, nil
}

// throughHelper wires a `start` branch into a freshly synthesized filter
// helper node that computes `allowed` and then branches to constraints or
// reset, per the common shape described across §4.3's per-family
// contracts.
func throughHelper(gen *uid.Generator, namePrefix string, pattern spec.Pattern, source string) (*Compiled, error) {
	name := gen.Next(namePrefix)
	b, err := startBranch(pattern, name)
	if err != nil {
		return nil, err
	}
	node := spec.MakeStateNode(source, allowedBranches(), false)
	return &Compiled{
		Branches: []spec.Branch{b},
		Nodes:    map[string]*spec.Node{name: node},
	}, nil
}
