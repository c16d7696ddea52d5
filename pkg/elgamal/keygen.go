package elgamal

import (
	"io"

	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/sample"
)

// Residues make up exactly half the full group, so a handful of retries is
// already overwhelming; with a generator inside the residue subgroup the
// first candidate always passes. The bound only guards odd parameters.
const maxKeyGenIterations = 255

// KeyGen draws x ← [2, q-1], computes y = gˣ (mod P), and retries until y
// passes Euler's criterion. Returns ErrKeyGenExhausted if the bound is hit.
func KeyGen(rand io.Reader, params *group.Parameters) (*PublicKey, *SecretKey, error) {
	for i := 0; i < maxKeyGenIterations; i++ {
		x := sample.Exponent(rand, params)
		y := params.P().Exp(params.G(), x)
		if !params.IsQuadraticResidue(y) {
			continue
		}
		pk := NewPublicKey(params, y)
		return pk, NewSecretKey(x, pk), nil
	}
	return nil, nil, ErrKeyGenExhausted
}
