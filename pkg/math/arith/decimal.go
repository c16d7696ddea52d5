package arith

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// Integers crossing the HTTP boundary travel as decimal strings so they stay
// JSON-safe. The conversions below bridge through math/big; they are only
// used on public values.

// NatFromDecimal parses a non-negative decimal string.
func NatFromDecimal(s string) (*saferith.Nat, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("arith: invalid decimal integer %q", s)
	}
	if i.Sign() < 0 {
		return nil, fmt.Errorf("arith: negative integer %q", s)
	}
	return new(saferith.Nat).SetBig(i, i.BitLen()), nil
}

// NatDecimal renders n as a decimal string.
func NatDecimal(n *saferith.Nat) string {
	return n.Big().String()
}
