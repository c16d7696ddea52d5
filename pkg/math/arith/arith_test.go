package arith

import (
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/require"
)

func modFromUint(n uint64) *Modulus {
	return ModulusFromNat(new(saferith.Nat).SetUint64(n))
}

func TestExp(t *testing.T) {
	m := modFromUint(23)
	got := m.Exp(new(saferith.Nat).SetUint64(5), new(saferith.Nat).SetUint64(3))
	// 125 mod 23 = 10
	require.EqualValues(t, 1, got.Eq(new(saferith.Nat).SetUint64(10)))
}

func TestExpNormalizesBase(t *testing.T) {
	m := modFromUint(23)
	// 28 ≡ 5, so 28³ ≡ 5³ (mod 23)
	a := m.Exp(new(saferith.Nat).SetUint64(28), new(saferith.Nat).SetUint64(3))
	b := m.Exp(new(saferith.Nat).SetUint64(5), new(saferith.Nat).SetUint64(3))
	require.EqualValues(t, 1, a.Eq(b))
}

func TestExpModulusOne(t *testing.T) {
	m := modFromUint(1)
	got := m.Exp(new(saferith.Nat).SetUint64(7), new(saferith.Nat).SetUint64(9))
	require.EqualValues(t, 1, got.Eq(new(saferith.Nat).SetUint64(0)))
}

func TestInv(t *testing.T) {
	m := modFromUint(23)
	one := new(saferith.Nat).SetUint64(1)
	for a := uint64(1); a < 23; a++ {
		x := new(saferith.Nat).SetUint64(a)
		inv, err := m.Inv(x)
		require.NoError(t, err)
		require.EqualValues(t, 1, m.Mul(x, inv).Eq(one), "a = %d", a)
	}
}

func TestInvNotFound(t *testing.T) {
	m := modFromUint(15)
	_, err := m.Inv(new(saferith.Nat).SetUint64(5))
	require.ErrorIs(t, err, ErrInverseNotFound)
}

func TestDecimalRoundTrip(t *testing.T) {
	n, err := NatFromDecimal("123456789012345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", NatDecimal(n))

	_, err = NatFromDecimal("not a number")
	require.Error(t, err)
	_, err = NatFromDecimal("-5")
	require.Error(t, err)
}
