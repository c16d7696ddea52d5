// Package codec converts byte payloads to integers bounded by the group
// modulus and back. A random 128-bit prefix is added before conversion so
// that low-entropy plaintexts cannot be recognized by their integer value;
// the prefix is not a key and is thrown away on decode.
package codec

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/params"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/sample"
)

type Error string

const (
	// ErrPayloadTooLarge is a caller bug: the padded payload does not fit
	// below the modulus.
	ErrPayloadTooLarge Error = "padded payload does not fit below the modulus"
	// ErrDecodeFailed covers every malformed input uniformly. Callers scan
	// batches of candidate integers and keep only the ones that decode.
	ErrDecodeFailed Error = "value does not decode to a payload"
)

func (e Error) Error() string {
	return fmt.Sprintf("codec: %s", string(e))
}

// Encoded is a payload readied for ElGamal encryption. Len must travel with
// Value: leading zero bytes of the padded payload are unrecoverable from the
// integer alone.
type Encoded struct {
	Value *saferith.Nat
	Len   int
}

// Encode prefixes payload with a fresh 128-bit nonce and converts the result
// big-endian to an integer below the group modulus.
func Encode(g *group.Parameters, payload []byte) (*Encoded, error) {
	total := params.BytesCodecNonce + len(payload)
	if total > (g.P().BitLen()+7)/8 {
		return nil, ErrPayloadTooLarge
	}
	buf := make([]byte, total)
	copy(buf, sample.Bytes(rand.Reader, params.BytesCodecNonce))
	copy(buf[params.BytesCodecNonce:], payload)

	value := new(saferith.Nat).SetBytes(buf)
	if !g.P().IsInRange(value) {
		return nil, ErrPayloadTooLarge
	}
	return &Encoded{Value: value, Len: total}, nil
}

// Decode reverses Encode: render value as exactly length big-endian bytes
// (left zero-padded) and strip the nonce prefix. All failures collapse to
// ErrDecodeFailed.
func Decode(value *saferith.Nat, length int) ([]byte, error) {
	if value == nil || length < params.BytesCodecNonce {
		return nil, ErrDecodeFailed
	}
	v := value.Big()
	if v.BitLen() > 8*length {
		return nil, ErrDecodeFailed
	}
	buf := make([]byte, length)
	v.FillBytes(buf)
	return buf[params.BytesCodecNonce:], nil
}

// EncodeValue JSON-serializes a structured payload before encoding it.
func EncodeValue(g *group.Parameters, payload interface{}) (*Encoded, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal payload: %w", err)
	}
	return Encode(g, data)
}

// DecodeValue decodes and JSON-parses into out. A payload that is not valid
// JSON for out reports ErrDecodeFailed like any other malformed input.
func DecodeValue(value *saferith.Nat, length int, out interface{}) error {
	data, err := Decode(value, length)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ErrDecodeFailed
	}
	return nil
}
