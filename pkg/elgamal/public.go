package elgamal

import (
	"crypto/rand"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/sample"
)

type PublicKey struct {
	group *group.Parameters
	y     *saferith.Nat
}

// NewPublicKey wraps the group element y as a public key. The value is not
// copied.
func NewPublicKey(params *group.Parameters, y *saferith.Nat) *PublicKey {
	return &PublicKey{group: params, y: y}
}

// Enc encrypts m < P under pk.
//
//	c1 = gᵏ (mod P)
//	c2 = m ⋅ yᵏ (mod P)
//
// A fresh ephemeral k is drawn per call, so two encryptions of the same
// message never share a ciphertext.
func (pk *PublicKey) Enc(m *saferith.Nat) (*Ciphertext, error) {
	p := pk.group.P()
	if !p.IsInRange(m) {
		return nil, ErrMessageTooLarge
	}
	k := sample.Exponent(rand.Reader, pk.group)
	c1 := p.Exp(pk.group.G(), k)
	c2 := p.Mul(m, p.Exp(pk.y, k))
	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Y returns the underlying group element.
// For efficiency, the value returned is a pointer to the same underlying y.
// WARNING: Do not modify the returned value.
func (pk *PublicKey) Y() *saferith.Nat {
	return pk.y
}

// Group returns the parameters this key lives in.
func (pk *PublicKey) Group() *group.Parameters {
	return pk.group
}

// Equal returns true if pk = other.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.y.Eq(other.y) == 1
}
