package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/pool"
	"github.com/cryptosanta/cryptosanta/pkg/codec"
	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/group"
)

// A note is a short structured payload that fits below the modulus and rides
// through ElGamal directly: nonce-padded by the codec, no symmetric layer.
// The padded length travels with the ciphertext, since leading zero bytes
// are not recoverable from the integer alone.
type noteBlob struct {
	Ciphertext *elgamal.Ciphertext `json:"ct"`
	Len        int                 `json:"len"`
}

// SealNote encodes a small structured payload and encrypts it for the
// holder of receiverKey. Payloads past roughly 200 bytes will not fit;
// use SendAddress for those.
func SealNote(params *group.Parameters, receiverKey *saferith.Nat, payload interface{}) (string, error) {
	enc, err := codec.EncodeValue(params, payload)
	if err != nil {
		return "", fmt.Errorf("protocol: seal note: %w", err)
	}
	ct, err := elgamal.NewPublicKey(params, receiverKey).Enc(enc.Value)
	if err != nil {
		return "", fmt.Errorf("protocol: seal note: %w", err)
	}
	data, err := json.Marshal(noteBlob{Ciphertext: ct, Len: enc.Len})
	if err != nil {
		return "", fmt.Errorf("protocol: seal note: %w", err)
	}
	return string(data), nil
}

// OpenNotes decrypts every blob with sk and keeps the one that decodes.
// Decryption itself never fails; a blob meant for someone else surfaces as
// an integer that does not decode, which is exactly the uniform negative
// the scan relies on.
func OpenNotes(p *pool.Pool, sk *elgamal.SecretKey, blobs []string, out interface{}) error {
	results := p.Scan(len(blobs), func(i int) interface{} {
		var blob noteBlob
		if err := json.Unmarshal([]byte(blobs[i]), &blob); err != nil {
			return nil
		}
		if blob.Ciphertext == nil || !blob.Ciphertext.Valid(sk.Group()) {
			return nil
		}
		value := sk.Dec(blob.Ciphertext)
		payload, err := codec.Decode(value, blob.Len)
		if errors.Is(err, codec.ErrDecodeFailed) {
			return nil
		}
		return payload
	})
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := json.Unmarshal(r.([]byte), out); err != nil {
			continue
		}
		return nil
	}
	return ErrNoMessage
}
