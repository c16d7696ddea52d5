// Package cycle derives gift-giving edges from a numerically sorted list of
// public keys. The derivation is deterministic and publicly recomputable:
// anyone holding the list can rebuild every edge, but attributing an edge to
// a person requires knowing which key is theirs.
package cycle

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/params"
)

type Error string

const (
	// ErrKeyNotFound is the expected negative of a lookup: the caller's key
	// is absent, e.g. they registered after the sort was taken.
	ErrKeyNotFound Error = "own key not present in the sorted list"

	ErrTooFewParticipants Error = "fewer than the minimum participant count"
	ErrNotSorted          Error = "keys are not in ascending order"
	ErrDuplicateKey       Error = "duplicate key breaks the 1:1 assignment"
)

func (e Error) Error() string {
	return fmt.Sprintf("cycle: %s", string(e))
}

// Edges are the two neighbors of one participant on the ring.
type Edges struct {
	// Giver is the key of whoever gives to this participant.
	Giver *saferith.Nat
	// Receiver is the key this participant gives to.
	Receiver *saferith.Nat
}

// Assignment locates own in sorted (exact match) and returns the keys at the
// two neighboring indices, wrapping around the ends. It behaves
// deterministically for any n ≥ 1; callers enforce the protocol minimum of
// three through Check before trusting the result.
func Assignment(sorted []*saferith.Nat, own *saferith.Nat) (*Edges, error) {
	i := -1
	for j, key := range sorted {
		if key.Eq(own) == 1 {
			i = j
			break
		}
	}
	if i < 0 {
		return nil, ErrKeyNotFound
	}
	n := len(sorted)
	return &Edges{
		Giver:    sorted[(i-1+n)%n],
		Receiver: sorted[(i+1)%n],
	}, nil
}

// Check gates the coordinator's sorted list: at least three keys, strictly
// ascending (which also rules out duplicates). This runs at sort time, before
// any participant computes an assignment.
func Check(sorted []*saferith.Nat) error {
	if len(sorted) < params.MinParticipants {
		return ErrTooFewParticipants
	}
	for i := 1; i < len(sorted); i++ {
		gt, eq, _ := sorted[i].Cmp(sorted[i-1])
		if eq == 1 {
			return ErrDuplicateKey
		}
		if gt != 1 {
			return ErrNotSorted
		}
	}
	return nil
}
