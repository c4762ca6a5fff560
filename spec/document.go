package spec

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// SchemaVersion is the current sheensVersion emitted by this transcoder.
const SchemaVersion = 1

// Document is the single object the transcoder produces: a schema version,
// a name (decimal of rule_id), and a nodes mapping. Per spec.md DESIGN
// NOTES §9, it is a map from node-name to node descriptor — no owning
// pointers between nodes — so the inherently cyclic node graph
// (actions -> reset -> start, and start -> light-duration helper -> reset
// -> start) lives purely in the name-space.
type Document struct {
	Name  string
	Nodes map[string]*Node
}

// NewDocument creates an empty Document named after ruleID.
func NewDocument(ruleID uint64) *Document {
	return &Document{
		Name:  strconv.FormatUint(ruleID, 10),
		Nodes: make(map[string]*Node),
	}
}

// Put registers a node under name, failing if the name is already taken
// (helper-node names must be globally unique, spec.md invariant 3).
func (d *Document) Put(name string, n *Node) error {
	if _, exists := d.Nodes[name]; exists {
		return xerrors.New(xerrors.InternalError, "duplicate node name %q", name)
	}
	d.Nodes[name] = n
	return nil
}

// Validate checks the spec.md §3 invariants that are mechanically
// checkable from the Document alone: every branch target resolves, start
// is the sole message-accepting node, reset exists and targets start, and
// default branches (when present) appear only last.
func (d *Document) Validate() error {
	start, ok := d.Nodes["start"]
	if !ok {
		return xerrors.New(xerrors.InternalError, "spec is missing the required start node")
	}
	if !start.IsMessageNode {
		return xerrors.New(xerrors.InternalError, "start node must be the message-accepting node")
	}

	reset, ok := d.Nodes[ResetTarget]
	if !ok {
		return xerrors.New(xerrors.InternalError, "spec is missing the required reset node")
	}
	if len(reset.Branches) != 1 || reset.Branches[0].Target != "start" {
		return xerrors.New(xerrors.InternalError, "reset node must unconditionally target start")
	}

	for name, n := range d.Nodes {
		if name != "start" && n.IsMessageNode {
			return xerrors.New(xerrors.InternalError, "node %q must not be a message-accepting node", name)
		}
		for i, b := range n.Branches {
			if _, ok := d.Nodes[b.Target]; !ok {
				return xerrors.New(xerrors.InternalError, "node %q branch %d targets unknown node %q", name, i, b.Target)
			}
			if b.IsDefault() && i != len(n.Branches)-1 {
				return xerrors.New(xerrors.InternalError, "node %q has a default branch before its last branch", name)
			}
		}
	}
	return nil
}

// --- wire serialization (spec.md §6) ---

type wireDocument struct {
	SheensVersion int                  `json:"sheensVersion"`
	Name          string               `json:"name"`
	Nodes         map[string]*wireNode `json:"nodes"`
}

type wireNode struct {
	Source        string        `json:"source,omitempty"`
	Branches      []*wireBranch `json:"branches,omitempty"`
	IsMessageNode bool          `json:"isMessageNode,omitempty"`
}

type wireBranch struct {
	Pattern  Pattern `json:"pattern,omitempty"`
	Target   string  `json:"target"`
	Consumed bool    `json:"consumed,omitempty"`
}

// MarshalJSON serializes the Document once, at this single boundary
// (spec.md DESIGN NOTES §9: avoid intermediate parse/print steps).
func (d *Document) MarshalJSON() ([]byte, error) {
	wire := wireDocument{
		SheensVersion: SchemaVersion,
		Name:          d.Name,
		Nodes:         make(map[string]*wireNode, len(d.Nodes)),
	}
	for name, n := range d.Nodes {
		wn := &wireNode{Source: n.Source, IsMessageNode: n.IsMessageNode}
		for _, b := range n.Branches {
			wn.Branches = append(wn.Branches, &wireBranch{Pattern: b.Pattern, Target: b.Target, Consumed: b.Consumed})
		}
		wire.Nodes[name] = wn
	}
	return json.Marshal(wire)
}

// NodeNames returns the sorted list of node names, useful for tests that
// want deterministic iteration order.
func (d *Document) NodeNames() []string {
	names := make([]string, 0, len(d.Nodes))
	for name := range d.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
