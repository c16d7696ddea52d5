// Package hybrid composes an AEAD with the ElGamal primitive. ElGamal's
// domain is bounded by the modulus, so anything past roughly 200 bytes rides
// under a symmetric key, and only that key passes through the asymmetric
// layer.
package hybrid

import (
	"crypto/rand"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/params"
	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/math/sample"
	"golang.org/x/crypto/chacha20poly1305"
)

type Error string

// ErrNotForYou is the single failure signal of Decrypt. The expected usage
// is scanning every stored blob, where most attempts legitimately fail;
// the reason (bad key size, failed authentication, malformed blob) is never
// distinguished, since distinguishing would leak key ownership.
const ErrNotForYou Error = "blob not addressed to this key"

func (e Error) Error() string {
	return fmt.Sprintf("hybrid: %s", string(e))
}

// Ciphertext carries an AEAD-encrypted payload plus its ElGamal-wrapped key.
// The symmetric key itself exists only inside Encrypt and Decrypt.
type Ciphertext struct {
	// Key wraps the 256-bit symmetric key, interpreted big-endian as an
	// integer.
	Key *elgamal.Ciphertext
	// IV is the AEAD nonce (24 bytes, XChaCha20-Poly1305).
	IV []byte
	// Data is the sealed payload with its authentication tag.
	Data []byte
}

// Encrypt seals plaintext of any length for the holder of pk.
func Encrypt(pk *elgamal.PublicKey, plaintext []byte) (*Ciphertext, error) {
	key := sample.Bytes(rand.Reader, params.BytesSymmetricKey)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("hybrid: init aead: %w", err)
	}
	iv := sample.Bytes(rand.Reader, chacha20poly1305.NonceSizeX)
	data := aead.Seal(nil, iv, plaintext, nil)

	// 2^256 is far below a 2048-bit modulus, so the wrap cannot overflow.
	wrapped, err := pk.Enc(new(saferith.Nat).SetBytes(key))
	if err != nil {
		return nil, fmt.Errorf("hybrid: wrap key: %w", err)
	}
	return &Ciphertext{Key: wrapped, IV: iv, Data: data}, nil
}

// Decrypt attempts to open ct with sk. The ElGamal unwrap always succeeds
// arithmetically; a wrong key surfaces either as a candidate too wide for a
// symmetric key or as an AEAD authentication failure. Both collapse into
// ErrNotForYou.
func Decrypt(sk *elgamal.SecretKey, ct *Ciphertext) ([]byte, error) {
	if ct == nil || ct.Key == nil || len(ct.IV) != chacha20poly1305.NonceSizeX {
		return nil, ErrNotForYou
	}
	candidate := sk.Dec(ct.Key)
	keyInt := candidate.Big()
	if keyInt.BitLen() > params.BitsSymmetricKey {
		return nil, ErrNotForYou
	}
	key := make([]byte, params.BytesSymmetricKey)
	keyInt.FillBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrNotForYou
	}
	plaintext, err := aead.Open(nil, ct.IV, ct.Data, nil)
	if err != nil {
		return nil, ErrNotForYou
	}
	return plaintext, nil
}
