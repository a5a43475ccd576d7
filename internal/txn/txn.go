// Package txn defines an opaque transaction identity. No isolation, no
// commit/abort log: an ID is compared only for equality.
package txn

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var seqCounter int32

// ID is a transaction identity: an opaque uuid token, used by String,
// paired with a compact int32 sequence number — the insert_txn/delete_txn
// representation stored inline in on-page tuple metadata. Equality
// compares the sequence number only.
type ID struct {
	token uuid.UUID
	seq   int32
}

// New allocates a fresh, distinct transaction identity.
func New() ID {
	return ID{token: uuid.New(), seq: atomic.AddInt32(&seqCounter, 1)}
}

// Invalid returns the sentinel identity used for tuple metadata that was
// never written under a real transaction.
func Invalid() ID {
	return ID{seq: -1}
}

// FromSeq reconstructs an ID from its on-page sequence number, for
// reading back tuple metadata. The reconstructed ID has no real token
// and compares equal to every ID with the same seq, including the one
// the seq was taken from.
func FromSeq(seq int32) ID {
	return ID{seq: seq}
}

func (id ID) Seq() int32 { return id.seq }

func (id ID) IsValid() bool { return id.seq >= 0 }

func (id ID) Equal(other ID) bool { return id.seq == other.seq }

func (id ID) String() string {
	if !id.IsValid() {
		return "txn(invalid)"
	}
	return "txn(" + id.token.String() + ")"
}
