package elgamal

import (
	"encoding/json"

	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
)

// Integer fields travel as decimal strings so the blobs stay JSON-safe
// through the bulletin board.

var _ json.Marshaler = (*Ciphertext)(nil)
var _ json.Unmarshaler = (*Ciphertext)(nil)
var _ json.Marshaler = (*PublicKey)(nil)
var _ json.Unmarshaler = (*PublicKey)(nil)

type jsonCiphertext struct {
	C1 string `json:"c1"`
	C2 string `json:"c2"`
}

func (ct Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCiphertext{
		C1: arith.NatDecimal(ct.C1),
		C2: arith.NatDecimal(ct.C2),
	})
}

func (ct *Ciphertext) UnmarshalJSON(data []byte) error {
	var x jsonCiphertext
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	c1, err := arith.NatFromDecimal(x.C1)
	if err != nil {
		return err
	}
	c2, err := arith.NatFromDecimal(x.C2)
	if err != nil {
		return err
	}
	ct.C1, ct.C2 = c1, c2
	return nil
}

type jsonPublicKey struct {
	Y string `json:"y"`
}

// EmptyPublicKey creates a key bound to params, ready for unmarshalling.
// Without the group the decimal y cannot be interpreted.
func EmptyPublicKey(params *group.Parameters) *PublicKey {
	return &PublicKey{group: params}
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPublicKey{Y: arith.NatDecimal(pk.y)})
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	if pk.group == nil {
		return ErrNilFields
	}
	var x jsonPublicKey
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	y, err := arith.NatFromDecimal(x.Y)
	if err != nil {
		return err
	}
	pk.y = y
	return nil
}
