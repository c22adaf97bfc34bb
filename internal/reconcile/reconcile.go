// Package reconcile brings a remote collection to exactly match a desired
// list edited in the admin panel. Rows the store knows but the list no
// longer contains are deleted; every row in the list is upserted. The same
// engine serves ranking entries, rules and awards.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"supercopa.app/backend/internal/identity"
)

// Concurrent deletes and upserts per pass.
const maxInFlight = 8

// ErrPartial reports that at least one delete or upsert failed. The caller
// must reload the collection from the store; the in-memory list was applied
// optimistically and may no longer match ground truth.
var ErrPartial = errors.New("reconcile: one or more operations failed")

// Item is an element of a reconcilable collection.
type Item interface {
	RecordID() identity.RecordID
}

// Store is the slice of a repository the engine needs. Upsert must create a
// fresh row for pending ids and update in place for committed ids; the
// pending placeholder is never sent to the store.
type Store[T Item] interface {
	List(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, item T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Op string

const (
	OpDelete Op = "delete"
	OpUpsert Op = "upsert"
)

// Failure is one failed operation of a pass.
type Failure struct {
	Op  Op
	ID  string
	Err error
}

// MarshalJSON flattens the wrapped error so API responses carry the failure
// reason instead of an empty object.
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Op    Op     `json:"op"`
		ID    string `json:"id"`
		Error string `json:"error"`
	}{f.Op, f.ID, f.Err.Error()})
}

// Result is the structured outcome of one pass. Failures are reported per
// item so the caller can see exactly what diverged instead of guessing.
type Result struct {
	Deleted  int       `json:"deleted"`
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Failures []Failure `json:"failures,omitempty"`
}

func (r *Result) Ok() bool { return len(r.Failures) == 0 }

// Sync makes the remote collection match desired. Deletes and upserts are
// fanned out concurrently; ordering between them is irrelevant because a
// committed id present in desired is by construction never scheduled for
// deletion. On any per-item failure Sync still drives the remaining
// operations to completion, then returns ErrPartial alongside the result.
func Sync[T Item](ctx context.Context, store Store[T], desired []T) (*Result, error) {
	current, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := make(map[uuid.UUID]bool, len(desired))
	for _, item := range desired {
		if rid := item.RecordID(); rid.IsCommitted() {
			kept[rid.UUID()] = true
		}
	}

	var toDelete []uuid.UUID
	for _, item := range current {
		if id := item.RecordID().UUID(); !kept[id] {
			toDelete = append(toDelete, id)
		}
	}

	var (
		mu     sync.Mutex
		result Result
	)
	fail := func(op Op, id string, err error) {
		mu.Lock()
		result.Failures = append(result.Failures, Failure{Op: op, ID: id, Err: err})
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(maxInFlight)

	for _, id := range toDelete {
		id := id
		g.Go(func() error {
			if err := store.Delete(ctx, id); err != nil {
				fail(OpDelete, id.String(), err)
				return nil
			}
			mu.Lock()
			result.Deleted++
			mu.Unlock()
			return nil
		})
	}

	for _, item := range desired {
		item := item
		g.Go(func() error {
			if err := store.Upsert(ctx, item); err != nil {
				fail(OpUpsert, item.RecordID().String(), err)
				return nil
			}
			mu.Lock()
			if item.RecordID().IsCommitted() {
				result.Updated++
			} else {
				result.Created++
			}
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if !result.Ok() {
		return &result, ErrPartial
	}
	return &result, nil
}
