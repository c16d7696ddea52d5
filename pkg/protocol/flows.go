package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/pool"
	"github.com/cryptosanta/cryptosanta/pkg/cycle"
	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/hybrid"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
)

// Register encrypts the participant's own public key under the room's
// session key. The resulting blob is all the bulletin board ever stores
// about a registration.
func Register(session *elgamal.PublicKey, own *elgamal.PublicKey) (string, error) {
	ct, err := session.Enc(own.Y())
	if err != nil {
		return "", fmt.Errorf("protocol: register: %w", err)
	}
	data, err := json.Marshal(ct)
	if err != nil {
		return "", fmt.Errorf("protocol: register: %w", err)
	}
	return string(data), nil
}

// SortRegistrations is the chair's step: decrypt every registration blob
// with the session secret key, sort the recovered keys ascending, and gate
// the result on the cycle preconditions (minimum count, no duplicates).
// The output is the decimal-string list published to the room.
func SortRegistrations(session *elgamal.SecretKey, blobs []string) ([]string, error) {
	keys := make([]*saferith.Nat, 0, len(blobs))
	for i, blob := range blobs {
		ct := &elgamal.Ciphertext{}
		if err := json.Unmarshal([]byte(blob), ct); err != nil {
			return nil, fmt.Errorf("protocol: registration %d: %w", i, ErrBadBlob)
		}
		if !ct.Valid(session.Group()) {
			return nil, fmt.Errorf("protocol: registration %d: %w", i, ErrBadBlob)
		}
		keys = append(keys, session.Dec(ct))
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Big().Cmp(keys[j].Big()) < 0
	})
	if err := cycle.Check(keys); err != nil {
		return nil, err
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = arith.NatDecimal(key)
	}
	return out, nil
}

// ParseSortedKeys converts the published decimal list back to integers and
// re-runs the cycle preconditions, so a participant never computes an
// assignment over a malformed list.
func ParseSortedKeys(sorted []string) ([]*saferith.Nat, error) {
	keys := make([]*saferith.Nat, len(sorted))
	for i, s := range sorted {
		key, err := arith.NatFromDecimal(s)
		if err != nil {
			return nil, fmt.Errorf("protocol: sorted key %d: %w", i, err)
		}
		keys[i] = key
	}
	if err := cycle.Check(keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Assign computes the participant's own edges from the published list.
func Assign(sorted []string, own *elgamal.PublicKey) (*cycle.Edges, error) {
	keys, err := ParseSortedKeys(sorted)
	if err != nil {
		return nil, err
	}
	return cycle.Assignment(keys, own.Y())
}

// SendAddress hybrid-encrypts a payload of any length for the holder of
// receiverKey (the participant's cycle receiver).
func SendAddress(params *group.Parameters, receiverKey *saferith.Nat, payload []byte) (string, error) {
	ct, err := hybrid.Encrypt(elgamal.NewPublicKey(params, receiverKey), payload)
	if err != nil {
		return "", fmt.Errorf("protocol: send address: %w", err)
	}
	data, err := json.Marshal(ct)
	if err != nil {
		return "", fmt.Errorf("protocol: send address: %w", err)
	}
	return string(data), nil
}

// FindAddress tries every stored blob against sk, in parallel when a pool is
// given. Non-matching blobs fail uniformly; at most one match is expected
// and the first is returned. ErrNoMessage means none decrypted.
func FindAddress(p *pool.Pool, sk *elgamal.SecretKey, blobs []string) ([]byte, error) {
	results := p.Scan(len(blobs), func(i int) interface{} {
		ct := &hybrid.Ciphertext{}
		if err := json.Unmarshal([]byte(blobs[i]), ct); err != nil {
			return nil
		}
		plaintext, err := hybrid.Decrypt(sk, ct)
		if errors.Is(err, hybrid.ErrNotForYou) {
			return nil
		}
		return plaintext
	})
	for _, r := range results {
		if r != nil {
			return r.([]byte), nil
		}
	}
	return nil, ErrNoMessage
}
