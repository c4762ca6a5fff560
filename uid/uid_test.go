package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeNameUnique(t *testing.T) {
	a := NodeName("zone")
	b := NodeName("zone")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "zone_")
}

func TestHelperFuncNamePrefix(t *testing.T) {
	name := HelperFuncName()
	assert.Contains(t, name, "isAllowed_")
}

func TestGeneratorTracksNames(t *testing.T) {
	g := NewGenerator()
	names := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := g.Next("helper")
		assert.False(t, names[n])
		names[n] = true
	}
}
