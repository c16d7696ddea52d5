package sample

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/group"
)

// Exponent samples a secret exponent uniformly from [2, q-1], the range used
// for private keys and for the ephemeral k of every encryption.
func Exponent(rand io.Reader, params *group.Parameters) *saferith.Nat {
	two := new(saferith.Nat).SetUint64(2)
	return Interval(rand, two, params.Q().Nat())
}
