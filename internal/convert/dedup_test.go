package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupSequentialIDs(t *testing.T) {
	d := NewDedup()

	id, created := d.Resolve("V P TRADERS")
	assert.Equal(t, 1, id)
	assert.True(t, created)

	id, created = d.Resolve("V P TRADERS")
	assert.Equal(t, 1, id)
	assert.False(t, created)

	id, created = d.Resolve("PRAGATI TRADERS")
	assert.Equal(t, 2, id)
	assert.True(t, created)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"V P TRADERS", "PRAGATI TRADERS"}, d.Keys())
}
