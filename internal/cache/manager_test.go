package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for lifecycle tests.
type memStore struct {
	namespaces map[string]map[string][]byte
	failPut    error
}

func newMemStore() *memStore {
	return &memStore{namespaces: map[string]map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, namespace, path string) ([]byte, error) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil, ErrMiss
	}
	body, ok := ns[path]
	if !ok {
		return nil, ErrMiss
	}
	return body, nil
}

func (s *memStore) PutAll(ctx context.Context, namespace string, entries map[string][]byte) error {
	if s.failPut != nil {
		return s.failPut
	}
	ns := map[string][]byte{}
	for path, body := range entries {
		ns[path] = body
	}
	s.namespaces[namespace] = ns
	return nil
}

func (s *memStore) Namespaces(ctx context.Context) ([]string, error) {
	var all []string
	for ns := range s.namespaces {
		all = append(all, ns)
	}
	return all, nil
}

func (s *memStore) Drop(ctx context.Context, namespace string) error {
	delete(s.namespaces, namespace)
	return nil
}

// mapOrigin serves assets from a map and counts fetches.
type mapOrigin struct {
	assets  map[string][]byte
	fetches int
}

func (o *mapOrigin) Fetch(ctx context.Context, path string) ([]byte, error) {
	o.fetches++
	body, ok := o.assets[path]
	if !ok {
		return nil, errors.New("origin: not found")
	}
	return body, nil
}

func shellOrigin() *mapOrigin {
	return &mapOrigin{assets: map[string][]byte{
		"/":              []byte("<html>root</html>"),
		"/index.html":    []byte("<html>index</html>"),
		"/manifest.json": []byte(`{"name":"SUPER COPA FF"}`),
	}}
}

func TestInstallPopulatesNamespace(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, shellOrigin(), "super-copa-v1")

	require.NoError(t, m.Install(context.Background()))
	assert.Equal(t, StateInstalled, m.State())

	for _, path := range ShellManifest {
		_, err := store.Get(context.Background(), "super-copa-v1", path)
		assert.NoError(t, err, "path %s", path)
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	store := newMemStore()
	origin := shellOrigin()
	delete(origin.assets, "/manifest.json")

	m := NewManager(store, origin, "super-copa-v1")

	err := m.Install(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateUninstalled, m.State())
	assert.Empty(t, store.namespaces)
}

func TestActivateRequiresInstall(t *testing.T) {
	m := NewManager(newMemStore(), shellOrigin(), "super-copa-v1")

	err := m.Activate(context.Background())
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestActivateDropsStaleNamespaces(t *testing.T) {
	store := newMemStore()
	store.namespaces["super-copa-v1"] = map[string][]byte{"/": []byte("old")}
	store.namespaces["other-app"] = map[string][]byte{"/": []byte("other")}

	m := NewManager(store, shellOrigin(), "super-copa-v2")
	require.NoError(t, m.Install(context.Background()))
	require.NoError(t, m.Activate(context.Background()))

	assert.Equal(t, StateActivated, m.State())
	assert.NotContains(t, store.namespaces, "super-copa-v1")
	assert.NotContains(t, store.namespaces, "other-app")
	assert.Contains(t, store.namespaces, "super-copa-v2")
}

func TestResolveServesCacheFirst(t *testing.T) {
	store := newMemStore()
	origin := shellOrigin()
	m := NewManager(store, origin, "super-copa-v1")
	require.NoError(t, m.Install(context.Background()))

	fetchesAfterInstall := origin.fetches

	body, err := m.Resolve(context.Background(), "/index.html")
	require.NoError(t, err)

	assert.Equal(t, []byte("<html>index</html>"), body)
	assert.Equal(t, fetchesAfterInstall, origin.fetches, "cache hit must not touch the origin")
}

func TestResolveFallsThroughToOrigin(t *testing.T) {
	origin := shellOrigin()
	origin.assets["/icon.svg"] = []byte("<svg/>")

	m := NewManager(newMemStore(), origin, "super-copa-v1")
	require.NoError(t, m.Install(context.Background()))

	body, err := m.Resolve(context.Background(), "/icon.svg")
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), body)
}

func TestResolveServesOfflineFallback(t *testing.T) {
	origin := shellOrigin()
	m := NewManager(newMemStore(), origin, "super-copa-v1")
	require.NoError(t, m.Install(context.Background()))

	// Origin goes away entirely.
	origin.assets = map[string][]byte{}

	body, err := m.Resolve(context.Background(), "/some/other/page")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html>index</html>"), body)
}

func TestResolveErrorsWhenNothingIsCached(t *testing.T) {
	m := NewManager(newMemStore(), &mapOrigin{assets: map[string][]byte{}}, "super-copa-v1")

	_, err := m.Resolve(context.Background(), "/")
	assert.Error(t, err)
}
