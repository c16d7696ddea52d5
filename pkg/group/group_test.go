package group

import (
	"encoding/json"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/require"
)

// 23 is a safe prime (q = 11) and 4 = 2² is a quadratic residue of order 11.
func testParameters(t *testing.T) *Parameters {
	t.Helper()
	params, err := New(
		new(saferith.Nat).SetUint64(23),
		new(saferith.Nat).SetUint64(4),
	)
	require.NoError(t, err)
	return params
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestNewSmallGroup(t *testing.T) {
	params := testParameters(t)
	require.Equal(t, "23", params.P().Nat().Big().String())
	require.Equal(t, "11", params.Q().Nat().Big().String())
}

func TestNewRejectsCompositeModulus(t *testing.T) {
	_, err := New(new(saferith.Nat).SetUint64(21), new(saferith.Nat).SetUint64(4))
	require.ErrorIs(t, err, ErrModulusNotPrime)
}

func TestNewRejectsNonSafePrime(t *testing.T) {
	// 13 is prime but (13-1)/2 = 6 is not
	_, err := New(new(saferith.Nat).SetUint64(13), new(saferith.Nat).SetUint64(4))
	require.ErrorIs(t, err, ErrOrderNotPrime)
}

func TestNewRejectsNonResidueGenerator(t *testing.T) {
	// 5 is a non-residue mod 23
	_, err := New(new(saferith.Nat).SetUint64(23), new(saferith.Nat).SetUint64(5))
	require.ErrorIs(t, err, ErrGeneratorNotResidue)
}

func TestNewRejectsGeneratorOne(t *testing.T) {
	_, err := New(new(saferith.Nat).SetUint64(23), new(saferith.Nat).SetUint64(1))
	require.ErrorIs(t, err, ErrGeneratorRange)
}

func TestIsQuadraticResidue(t *testing.T) {
	params := testParameters(t)
	// squares mod 23
	residues := map[uint64]bool{1: true, 2: true, 3: true, 4: true, 6: true,
		8: true, 9: true, 12: true, 13: true, 16: true, 18: true}
	for y := uint64(1); y < 23; y++ {
		got := params.IsQuadraticResidue(new(saferith.Nat).SetUint64(y))
		require.Equal(t, residues[y], got, "y = %d", y)
	}
	require.False(t, params.IsQuadraticResidue(new(saferith.Nat).SetUint64(0)))
}

func TestParametersJSON(t *testing.T) {
	params := testParameters(t)
	data, err := json.Marshal(params)
	require.NoError(t, err)

	restored := &Parameters{}
	require.NoError(t, json.Unmarshal(data, restored))
	require.True(t, params.Equal(restored))
	require.NoError(t, restored.Validate())
	require.Equal(t, "11", restored.Q().Nat().Big().String())
}
