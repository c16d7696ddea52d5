package elgamal

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/sample"
	"github.com/stretchr/testify/require"
)

func TestEncDecRoundTrip(t *testing.T) {
	params := group.Default()
	pk, sk, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		m := sample.ModN(rand.Reader, params.P().Modulus())
		ct, err := pk.Enc(m)
		require.NoError(t, err)
		require.True(t, ct.Valid(params))
		require.EqualValues(t, 1, sk.Dec(ct).Eq(m))
	}
}

func TestKeyGenResidue(t *testing.T) {
	params := group.Default()
	for i := 0; i < 5; i++ {
		pk, sk, err := KeyGen(rand.Reader, params)
		require.NoError(t, err)
		require.True(t, params.IsQuadraticResidue(pk.Y()))
		require.EqualValues(t, 1, params.P().Exp(params.G(), sk.X()).Eq(pk.Y()))
	}
}

func TestEncIsProbabilistic(t *testing.T) {
	params := group.Default()
	pk, _, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	m := new(saferith.Nat).SetUint64(42)
	ct1, err := pk.Enc(m)
	require.NoError(t, err)
	ct2, err := pk.Enc(m)
	require.NoError(t, err)
	require.False(t, ct1.Equal(ct2))
}

func TestEncMessageTooLarge(t *testing.T) {
	params := group.Default()
	pk, _, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	_, err = pk.Enc(params.P().Nat())
	require.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestDecWrongKey(t *testing.T) {
	params := group.Default()
	pk, _, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)
	_, other, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	m := new(saferith.Nat).SetUint64(1234)
	ct, err := pk.Enc(m)
	require.NoError(t, err)

	// wrong key still decrypts arithmetically, just not to m
	got := other.Dec(ct)
	require.EqualValues(t, 0, got.Eq(m))
}

func TestCiphertextJSON(t *testing.T) {
	params := group.Default()
	pk, sk, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	m := new(saferith.Nat).SetUint64(99)
	ct, err := pk.Enc(m)
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)

	restored := &Ciphertext{}
	require.NoError(t, json.Unmarshal(data, restored))
	require.True(t, ct.Equal(restored))
	require.EqualValues(t, 1, sk.Dec(restored).Eq(m))
}

func TestPublicKeyJSON(t *testing.T) {
	params := group.Default()
	pk, _, err := KeyGen(rand.Reader, params)
	require.NoError(t, err)

	data, err := json.Marshal(pk)
	require.NoError(t, err)

	restored := EmptyPublicKey(params)
	require.NoError(t, json.Unmarshal(data, restored))
	require.True(t, pk.Equal(restored))

	// unmarshalling without a group must refuse
	bare := &PublicKey{}
	require.Error(t, json.Unmarshal(data, bare))
}
