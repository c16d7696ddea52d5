package arith

import (
	"fmt"

	"github.com/cronokirby/saferith"
)

type Error string

const (
	ErrInverseNotFound Error = "value has no inverse modulo n"
)

func (e Error) Error() string {
	return fmt.Sprintf("arith: %s", string(e))
}

// Modulus wraps a saferith.Modulus with the operations the protocol needs:
// exponentiation with base normalization, and inversion that reports
// non-invertible inputs instead of returning garbage.
type Modulus struct {
	m *saferith.Modulus
}

// NewModulus creates a wrapper around n. The value is not copied.
func NewModulus(n *saferith.Modulus) *Modulus {
	return &Modulus{m: n}
}

// ModulusFromNat creates a wrapper around the modulus represented by n.
func ModulusFromNat(n *saferith.Nat) *Modulus {
	return NewModulus(saferith.ModulusFromNat(n))
}

// Exp returns xᵉ (mod n).
// The base is reduced into [0, n) first, and a modulus of 1 yields 0.
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	if n.m.BitLen() <= 1 {
		return new(saferith.Nat).SetUint64(0)
	}
	base := new(saferith.Nat).Mod(x, n.m)
	return base.Exp(base, e, n.m)
}

// Inv returns x⁻¹ (mod n), or ErrInverseNotFound when gcd(x, n) ≠ 1.
func (n *Modulus) Inv(x *saferith.Nat) (*saferith.Nat, error) {
	reduced := new(saferith.Nat).Mod(x, n.m)
	if reduced.IsUnit(n.m) != 1 {
		return nil, ErrInverseNotFound
	}
	return reduced.ModInverse(reduced, n.m), nil
}

// Mul returns x⋅y (mod n).
func (n *Modulus) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(x, y, n.m)
}

// IsInRange reports whether 0 ≤ x < n.
func (n *Modulus) IsInRange(x *saferith.Nat) bool {
	_, _, lt := x.CmpMod(n.m)
	return lt == 1
}

// BitLen returns the number of bits of the modulus.
func (n *Modulus) BitLen() int {
	return n.m.BitLen()
}

// Nat returns the modulus as a Nat.
func (n *Modulus) Nat() *saferith.Nat {
	return n.m.Nat()
}

// Modulus returns the wrapped saferith.Modulus.
func (n *Modulus) Modulus() *saferith.Modulus {
	return n.m
}
