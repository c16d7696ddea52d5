package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ by rejection: draw a value of matching byte
// length and retry until it lands below n.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// Interval samples uniformly from [min, max) by rejection over the interval
// width, then shifting by min. The draw never leaves saferith.
// Panics if min ≥ max; the caller controls both bounds.
func Interval(rand io.Reader, min, max *saferith.Nat) *saferith.Nat {
	gt, _, _ := max.Cmp(min)
	if gt != 1 {
		panic("sample: empty interval")
	}
	width := saferith.ModulusFromNat(new(saferith.Nat).Sub(max, min, -1))
	v := ModN(rand, width)
	return v.Add(v, min, -1)
}

// Bytes fills a fresh buffer of length n from rand.
func Bytes(rand io.Reader, n int) []byte {
	buf := make([]byte, n)
	mustReadBits(rand, buf)
	return buf
}
