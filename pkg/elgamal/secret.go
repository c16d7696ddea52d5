package elgamal

import (
	"github.com/cronokirby/saferith"
)

type SecretKey struct {
	*PublicKey
	x *saferith.Nat
}

// NewSecretKey pairs the exponent x with its public key. The caller is
// responsible for x and g^x matching; KeyGen is the normal constructor.
func NewSecretKey(x *saferith.Nat, pk *PublicKey) *SecretKey {
	return &SecretKey{PublicKey: pk, x: x}
}

// Dec recovers m from ct:
//
//	s = c1ˣ (mod P)
//	m = c2 ⋅ s⁻¹ (mod P)
//
// There is no failure mode. Decrypting with the wrong key yields a
// well-formed but meaningless integer; the protocol depends on this when
// participants scan every stored blob for the one addressed to them.
func (sk *SecretKey) Dec(ct *Ciphertext) *saferith.Nat {
	p := sk.group.P()
	s := p.Exp(ct.C1, sk.x)
	sInv := new(saferith.Nat).ModInverse(s, p.Modulus())
	return p.Mul(ct.C2, sInv)
}

// X returns the secret exponent.
// WARNING: Do not modify the returned value.
func (sk *SecretKey) X() *saferith.Nat {
	return sk.x
}
