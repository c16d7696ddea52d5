package group

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
)

type Error string

const (
	ErrNilFields           Error = "contains nil field"
	ErrModulusNotPrime     Error = "modulus is not prime"
	ErrOrderNotPrime       Error = "subgroup order is not prime, modulus is not a safe prime"
	ErrGeneratorRange      Error = "generator must be in [2, P-1]"
	ErrGeneratorNotResidue Error = "generator is not a quadratic residue"
)

func (e Error) Error() string {
	return fmt.Sprintf("group: %s", string(e))
}

// Parameters describes the multiplicative group shared by every participant
// of a room: a safe prime modulus P, the prime order q = (P-1)/2 of the
// quadratic-residue subgroup, and a generator g of that subgroup.
//
// Parameters are an explicitly passed value. Rooms with different parameters
// can coexist in one process; nothing here is package-global.
type Parameters struct {
	p *arith.Modulus
	q *arith.Modulus
	g *saferith.Nat
}

// New derives q = (P-1)/2 and validates the resulting parameters.
func New(p, g *saferith.Nat) (*Parameters, error) {
	q := new(saferith.Nat).Rsh(p, 1, -1)
	params := &Parameters{
		p: arith.ModulusFromNat(p),
		q: arith.ModulusFromNat(q),
		g: g,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks the structural invariants: P and q prime, g inside the
// group, g a quadratic residue. Primality uses 20 Miller-Rabin rounds.
func (params *Parameters) Validate() error {
	if params == nil || params.p == nil || params.q == nil || params.g == nil {
		return ErrNilFields
	}
	if !params.p.Nat().Big().ProbablyPrime(20) {
		return ErrModulusNotPrime
	}
	if !params.q.Nat().Big().ProbablyPrime(20) {
		return ErrOrderNotPrime
	}
	one := new(saferith.Nat).SetUint64(1)
	gt, _, _ := params.g.Cmp(one)
	if gt != 1 || !params.p.IsInRange(params.g) {
		return ErrGeneratorRange
	}
	if !params.IsQuadraticResidue(params.g) {
		return ErrGeneratorNotResidue
	}
	return nil
}

// IsQuadraticResidue applies Euler's criterion: y^((P-1)/2) ≡ 1 (mod P).
// Public keys outside the residue subgroup would let an observer partition
// participants, so every key in the protocol has to pass this test.
func (params *Parameters) IsQuadraticResidue(y *saferith.Nat) bool {
	res := params.p.Exp(y, params.q.Nat())
	return res.Eq(new(saferith.Nat).SetUint64(1)) == 1
}

// P returns the prime modulus.
func (params *Parameters) P() *arith.Modulus { return params.p }

// Q returns the order of the quadratic-residue subgroup.
func (params *Parameters) Q() *arith.Modulus { return params.q }

// G returns the subgroup generator.
func (params *Parameters) G() *saferith.Nat { return params.g }

// Equal reports whether both parameter sets describe the same group.
func (params *Parameters) Equal(other *Parameters) bool {
	if params == nil || other == nil {
		return params == other
	}
	return params.p.Nat().Eq(other.p.Nat()) == 1 && params.g.Eq(other.g) == 1
}
