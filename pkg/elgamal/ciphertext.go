package elgamal

import (
	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/group"
)

// Ciphertext is one ElGamal-encrypted integer. It is produced per encryption
// call and consumed once by the matching decryption.
type Ciphertext struct {
	// C1 = gᵏ (mod P)
	C1 *saferith.Nat
	// C2 = m ⋅ yᵏ (mod P)
	C2 *saferith.Nat
}

// Valid reports whether both components are present and inside [1, P).
// Dec does not require validity; this is a hygiene check for ciphertexts
// arriving from the wire.
func (ct *Ciphertext) Valid(params *group.Parameters) bool {
	if ct == nil || ct.C1 == nil || ct.C2 == nil {
		return false
	}
	zero := new(saferith.Nat).SetUint64(0)
	if ct.C1.Eq(zero) == 1 || ct.C2.Eq(zero) == 1 {
		return false
	}
	return params.P().IsInRange(ct.C1) && params.P().IsInRange(ct.C2)
}

// Equal check whether both components match.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.C1.Eq(other.C1) == 1 && ct.C2.Eq(other.C2) == 1
}
