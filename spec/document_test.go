package spec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalDocument(t *testing.T) *Document {
	t.Helper()
	d := NewDocument(42)
	require.NoError(t, d.Put("start", MakeStateNode("", []Branch{{Pattern: Pattern{"x": 1}, Target: "reset"}}, true)))
	reset, err := MakeResetNode("start")
	require.NoError(t, err)
	require.NoError(t, d.Put("reset", reset))
	return d
}

func TestNewDocumentName(t *testing.T) {
	d := NewDocument(42)
	assert.Equal(t, "42", d.Name)
}

func TestPutRejectsDuplicateNames(t *testing.T) {
	d := NewDocument(1)
	require.NoError(t, d.Put("start", &Node{IsMessageNode: true}))
	err := d.Put("start", &Node{})
	require.Error(t, err)
}

func TestValidateRequiresStartNode(t *testing.T) {
	d := NewDocument(1)
	err := d.Validate()
	require.Error(t, err)
}

func TestValidateRequiresResetNode(t *testing.T) {
	d := NewDocument(1)
	require.NoError(t, d.Put("start", &Node{IsMessageNode: true}))
	err := d.Validate()
	require.Error(t, err)
}

func TestValidateRejectsUnknownBranchTarget(t *testing.T) {
	d := validMinimalDocument(t)
	d.Nodes["start"].Branches[0].Target = "nowhere"
	err := d.Validate()
	require.Error(t, err)
}

func TestValidateRejectsNonStartMessageNode(t *testing.T) {
	d := validMinimalDocument(t)
	d.Nodes["reset"].IsMessageNode = true
	err := d.Validate()
	require.Error(t, err)
}

func TestValidateAcceptsMinimalDocument(t *testing.T) {
	d := validMinimalDocument(t)
	assert.NoError(t, d.Validate())
}

func TestMarshalJSONShape(t *testing.T) {
	d := validMinimalDocument(t)
	out, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(SchemaVersion), decoded["sheensVersion"])
	assert.Equal(t, "42", decoded["name"])
	nodes, ok := decoded["nodes"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, nodes, "start")
	assert.Contains(t, nodes, "reset")
}

func TestNodeNamesSorted(t *testing.T) {
	d := validMinimalDocument(t)
	assert.Equal(t, []string{"reset", "start"}, d.NodeNames())
}
