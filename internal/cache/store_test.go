package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreWithoutClient(t *testing.T) {
	store := NewRedisStore(nil)
	ctx := context.Background()

	_, err := store.Get(ctx, "super-copa-v1", "/index.html")
	assert.ErrorIs(t, err, ErrMiss)

	err = store.PutAll(ctx, "super-copa-v1", map[string][]byte{"/": []byte("x")})
	assert.ErrorIs(t, err, ErrUnavailable)

	namespaces, err := store.Namespaces(ctx)
	assert.NoError(t, err)
	assert.Empty(t, namespaces)

	assert.NoError(t, store.Drop(ctx, "super-copa-v1"))
}

func TestResolveWithoutRedisServesOrigin(t *testing.T) {
	origin := shellOrigin()
	m := NewManager(NewRedisStore(nil), origin, "super-copa-v1")

	body, err := m.Resolve(context.Background(), "/index.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html>index</html>"), body)
}

func TestInstallWithoutRedisFailsCleanly(t *testing.T) {
	m := NewManager(NewRedisStore(nil), shellOrigin(), "super-copa-v1")

	err := m.Install(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, StateUninstalled, m.State())
}
