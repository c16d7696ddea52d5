// Package room holds the bulletin-board state for one gift exchange: opaque
// registration blobs, the published sorted key list, and opaque message
// blobs. The store never interprets a blob; all cryptography happens on the
// clients.
package room

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/zeebo/blake3"
)

type Error string

const (
	ErrRoomNotFound           Error = "room not found"
	ErrRegistrationClosed     Error = "registration is closed"
	ErrDuplicateRegistration  Error = "duplicate registration"
	ErrNotOpen                Error = "room is not in OPEN state"
	ErrTooFewKeys             Error = "minimum 3 participants required"
	ErrKeyCountMismatch       Error = "sorted keys must match participant count"
	ErrDuplicateKeys          Error = "duplicate keys in sorted list"
	ErrMessagingNotStarted    Error = "cannot send messages before sorting"
	ErrMessageLimit           Error = "all participants have already submitted"
	ErrConcurrentModification Error = "concurrent modification, please retry"
)

func (e Error) Error() string {
	return fmt.Sprintf("room: %s", string(e))
}

// Status is the room state machine: OPEN (registration) → SORTED (keys
// published) → MESSAGING (first address posted). Transitions are driven by
// the store, never by clients directly.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusSorted    Status = "SORTED"
	StatusMessaging Status = "MESSAGING"
)

// Room is one exchange. Integer-valued fields (session key, sorted keys)
// are decimal strings; blobs are opaque JSON strings produced by the
// protocol layer.
type Room struct {
	ID               string            `json:"id"`
	Status           Status            `json:"status"`
	Params           *group.Parameters `json:"params"`
	SessionPublicKey string            `json:"sessionPublicKey"`
	ChairTokenHash   string            `json:"-"`
	Participants     []string          `json:"participants"`
	SortedKeys       []string          `json:"sortedKeys"`
	Messages         []string          `json:"messages"`
	CreatedAt        time.Time         `json:"createdAt"`
	// Version increments on every write; used for optimistic locking.
	Version int `json:"version"`
}

// HashChairToken digests the chair's secret token for storage. The token
// itself is never persisted.
func HashChairToken(token string) string {
	sum := blake3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// VerifyChairToken compares a presented token against the stored digest in
// constant time.
func (r *Room) VerifyChairToken(token string) bool {
	if token == "" {
		return false
	}
	sum := blake3.Sum256([]byte(token))
	stored, err := hex.DecodeString(r.ChairTokenHash)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], stored) == 1
}

// clone returns a deep copy, so store snapshots can be mutated freely.
func (r *Room) clone() *Room {
	dup := *r
	dup.Participants = append([]string(nil), r.Participants...)
	dup.SortedKeys = append([]string(nil), r.SortedKeys...)
	dup.Messages = append([]string(nil), r.Messages...)
	return &dup
}
