package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercopa.app/backend/internal/identity"
)

type fakeItem struct {
	id   identity.RecordID
	name string
}

func (f fakeItem) RecordID() identity.RecordID { return f.id }

// fakeStore is an in-memory Store with injectable failures.
type fakeStore struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]string
	failDel map[uuid.UUID]error
	failUp  map[string]error
}

func newFakeStore(rows map[uuid.UUID]string) *fakeStore {
	if rows == nil {
		rows = map[uuid.UUID]string{}
	}
	return &fakeStore{
		rows:    rows,
		failDel: map[uuid.UUID]error{},
		failUp:  map[string]error{},
	}
}

func (s *fakeStore) List(ctx context.Context) ([]fakeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]fakeItem, 0, len(s.rows))
	for id, name := range s.rows {
		items = append(items, fakeItem{id: identity.FromUUID(id), name: name})
	}
	return items, nil
}

func (s *fakeStore) Upsert(ctx context.Context, item fakeItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failUp[item.name]; err != nil {
		return err
	}

	id := item.id.UUID()
	if !item.id.IsCommitted() {
		id = uuid.New()
	}
	s.rows[id] = item.name
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failDel[id]; err != nil {
		return err
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeStore) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, name := range s.rows {
		names = append(names, name)
	}
	return names
}

func TestSyncCreatesUpdatesAndDeletes(t *testing.T) {
	keepID := uuid.New()
	dropID := uuid.New()
	store := newFakeStore(map[uuid.UUID]string{
		keepID: "loud",
		dropID: "fluxo",
	})

	desired := []fakeItem{
		{id: identity.FromUUID(keepID), name: "loud renamed"},
		{id: identity.NewPending(), name: "pain"},
	}

	result, err := Sync(context.Background(), store, desired)
	require.NoError(t, err)

	assert.True(t, result.Ok())
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.ElementsMatch(t, []string{"loud renamed", "pain"}, store.names())
}

func TestSyncIsIdempotentForCommittedItems(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(map[uuid.UUID]string{id: "loud"})

	desired := []fakeItem{{id: identity.FromUUID(id), name: "loud"}}

	for i := 0; i < 2; i++ {
		result, err := Sync(context.Background(), store, desired)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Deleted)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Updated)
	}

	assert.ElementsMatch(t, []string{"loud"}, store.names())
}

func TestSyncEmptyDesiredDeletesEverything(t *testing.T) {
	store := newFakeStore(map[uuid.UUID]string{
		uuid.New(): "a",
		uuid.New(): "b",
	})

	result, err := Sync(context.Background(), store, []fakeItem{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Deleted)
	assert.Empty(t, store.names())
}

func TestSyncReportsPerItemFailures(t *testing.T) {
	stuckID := uuid.New()
	okID := uuid.New()
	store := newFakeStore(map[uuid.UUID]string{
		stuckID: "stuck",
		okID:    "ok",
	})
	store.failDel[stuckID] = errors.New("row is locked")
	store.failUp["bad"] = errors.New("constraint violation")

	desired := []fakeItem{
		{id: identity.FromUUID(okID), name: "ok"},
		{id: identity.NewPending(), name: "bad"},
		{id: identity.NewPending(), name: "good"},
	}

	result, err := Sync(context.Background(), store, desired)
	require.ErrorIs(t, err, ErrPartial)

	assert.False(t, result.Ok())
	require.Len(t, result.Failures, 2)

	// The independent operations still went through.
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Deleted)
	assert.ElementsMatch(t, []string{"stuck", "ok", "good"}, store.names())

	ops := map[Op]string{}
	for _, f := range result.Failures {
		ops[f.Op] = f.ID
	}
	assert.Equal(t, stuckID.String(), ops[OpDelete])
}

func TestSyncNeverDeletesDesiredCommittedIDs(t *testing.T) {
	ids := make([]uuid.UUID, 20)
	rows := map[uuid.UUID]string{}
	for i := range ids {
		ids[i] = uuid.New()
		rows[ids[i]] = "team"
	}
	store := newFakeStore(rows)

	desired := make([]fakeItem, len(ids))
	for i, id := range ids {
		desired[i] = fakeItem{id: identity.FromUUID(id), name: "team"}
	}

	result, err := Sync(context.Background(), store, desired)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Deleted)
	assert.Len(t, store.names(), len(ids))
}
