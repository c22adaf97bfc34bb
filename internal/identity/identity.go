package identity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Kind says whether a record id was assigned by the store or minted on the
// client while editing.
type Kind int

const (
	// Pending ids only exist in a working copy. They are never sent to the
	// store; upserting a pending record creates a fresh row.
	Pending Kind = iota
	// Committed ids are store-assigned UUIDs.
	Committed
)

// RecordID carries the id of a ranking entry, rule or award together with
// its provenance. The provenance is explicit instead of being inferred from
// the string length of the id.
type RecordID struct {
	kind  Kind
	token string
	id    uuid.UUID
}

// Parse classifies a raw id string. Anything that parses as a UUID is a
// committed store id; everything else is treated as a client-side
// placeholder.
func Parse(s string) RecordID {
	if id, err := uuid.Parse(s); err == nil {
		return RecordID{kind: Committed, id: id}
	}
	return RecordID{kind: Pending, token: s}
}

// FromUUID wraps a store-assigned id.
func FromUUID(id uuid.UUID) RecordID {
	return RecordID{kind: Committed, id: id}
}

// NewPending mints a placeholder id for a record created in the admin UI
// before its first save.
func NewPending() RecordID {
	token := fmt.Sprintf("tmp-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
	return RecordID{kind: Pending, token: token}
}

func (r RecordID) Kind() Kind        { return r.kind }
func (r RecordID) IsCommitted() bool { return r.kind == Committed }

// UUID returns the store id. Only meaningful for committed ids; pending ids
// return uuid.Nil.
func (r RecordID) UUID() uuid.UUID {
	if r.kind != Committed {
		return uuid.Nil
	}
	return r.id
}

func (r RecordID) String() string {
	if r.kind == Committed {
		return r.id.String()
	}
	return r.token
}
