package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitted(t *testing.T) {
	raw := "0d1f7f43-9a42-4a3c-8a9d-1f2e3d4c5b6a"

	rid := Parse(raw)

	assert.True(t, rid.IsCommitted())
	assert.Equal(t, Committed, rid.Kind())
	assert.Equal(t, raw, rid.String())
	assert.Equal(t, raw, rid.UUID().String())
}

func TestParsePending(t *testing.T) {
	for _, raw := range []string{"tmp-1724800000000-0042", "1724800000000", "", "abc"} {
		rid := Parse(raw)

		assert.False(t, rid.IsCommitted(), "raw %q", raw)
		assert.Equal(t, Pending, rid.Kind())
		assert.Equal(t, raw, rid.String())
		assert.Equal(t, uuid.Nil, rid.UUID())
	}
}

func TestFromUUID(t *testing.T) {
	id := uuid.New()

	rid := FromUUID(id)

	assert.True(t, rid.IsCommitted())
	assert.Equal(t, id, rid.UUID())
}

func TestNewPendingNeverParsesAsCommitted(t *testing.T) {
	for i := 0; i < 100; i++ {
		rid := NewPending()
		require.False(t, rid.IsCommitted())

		// The round trip through the wire format must preserve provenance.
		assert.False(t, Parse(rid.String()).IsCommitted())
	}
}
