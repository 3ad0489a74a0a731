package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUUID_Parses(t *testing.T) {
	id := New().NewUUID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestShortUUID(t *testing.T) {
	gen := NewShort()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := gen.NewUUID()
		assert.Len(t, id, shortLength)
		assert.NotContains(t, id, "-")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
