package hybrid

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	params := group.Default()
	pk, sk, err := elgamal.KeyGen(rand.Reader, params)
	require.NoError(t, err)

	plaintexts := [][]byte{
		[]byte("short"),
		{},
		bytes.Repeat([]byte("long address payload "), 100), // well past 200 bytes
	}
	for _, plaintext := range plaintexts {
		ct, err := Encrypt(pk, plaintext)
		require.NoError(t, err)

		got, err := Decrypt(sk, ct)
		require.NoError(t, err)
		if len(plaintext) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, plaintext, got)
		}
	}
}

func TestDecryptWrongKey(t *testing.T) {
	params := group.Default()
	pk, _, err := elgamal.KeyGen(rand.Reader, params)
	require.NoError(t, err)
	_, other, err := elgamal.KeyGen(rand.Reader, params)
	require.NoError(t, err)

	ct, err := Encrypt(pk, []byte("not for you"))
	require.NoError(t, err)

	_, err = Decrypt(other, ct)
	require.ErrorIs(t, err, ErrNotForYou)
}

func TestDecryptMalformed(t *testing.T) {
	params := group.Default()
	pk, sk, err := elgamal.KeyGen(rand.Reader, params)
	require.NoError(t, err)

	ct, err := Encrypt(pk, []byte("payload"))
	require.NoError(t, err)

	_, err = Decrypt(sk, nil)
	require.ErrorIs(t, err, ErrNotForYou)

	short := &Ciphertext{Key: ct.Key, IV: ct.IV[:5], Data: ct.Data}
	_, err = Decrypt(sk, short)
	require.ErrorIs(t, err, ErrNotForYou)

	tampered := &Ciphertext{Key: ct.Key, IV: ct.IV, Data: append([]byte{}, ct.Data...)}
	tampered.Data[0] ^= 1
	_, err = Decrypt(sk, tampered)
	require.ErrorIs(t, err, ErrNotForYou)
}

func TestCiphertextJSON(t *testing.T) {
	params := group.Default()
	pk, sk, err := elgamal.KeyGen(rand.Reader, params)
	require.NoError(t, err)

	ct, err := Encrypt(pk, []byte("serialize me"))
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)

	restored := &Ciphertext{}
	require.NoError(t, json.Unmarshal(data, restored))

	got, err := Decrypt(sk, restored)
	require.NoError(t, err)
	require.Equal(t, []byte("serialize me"), got)
}
