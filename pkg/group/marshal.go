package group

import (
	"encoding/json"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
)

var _ json.Marshaler = (*Parameters)(nil)
var _ json.Unmarshaler = (*Parameters)(nil)

type jsonParameters struct {
	P string `json:"p"`
	G string `json:"g"`
}

func (params Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonParameters{
		P: arith.NatDecimal(params.p.Nat()),
		G: arith.NatDecimal(params.g),
	})
}

// UnmarshalJSON restores parameters and rederives q. It only performs cheap
// structural checks; run Validate before trusting foreign parameters.
func (params *Parameters) UnmarshalJSON(data []byte) error {
	var x jsonParameters
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	p, err := arith.NatFromDecimal(x.P)
	if err != nil {
		return err
	}
	g, err := arith.NatFromDecimal(x.G)
	if err != nil {
		return err
	}
	if p.Big().BitLen() < 3 || p.Big().Bit(0) == 0 {
		return ErrModulusNotPrime
	}
	q := new(saferith.Nat).Rsh(p, 1, -1)
	params.p = arith.ModulusFromNat(p)
	params.q = arith.ModulusFromNat(q)
	params.g = g
	return nil
}
