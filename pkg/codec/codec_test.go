package codec

import (
	"bytes"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/internal/params"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := group.Default()
	payloads := [][]byte{
		[]byte("hello"),
		[]byte(""),
		{0, 0, 1, 2, 3}, // leading zeros must survive
		bytes.Repeat([]byte{0xff}, 200),
	}
	for _, payload := range payloads {
		enc, err := Encode(g, payload)
		require.NoError(t, err)
		require.Equal(t, params.BytesCodecNonce+len(payload), enc.Len)

		got, err := Decode(enc.Value, enc.Len)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	}
}

func TestEncodeIsSalted(t *testing.T) {
	g := group.Default()
	a, err := Encode(g, []byte("same payload"))
	require.NoError(t, err)
	b, err := Encode(g, []byte("same payload"))
	require.NoError(t, err)
	require.EqualValues(t, 0, a.Value.Eq(b.Value))
}

func TestEncodePayloadTooLarge(t *testing.T) {
	g := group.Default()
	_, err := Encode(g, bytes.Repeat([]byte{1}, params.BytesGroup))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeFailures(t *testing.T) {
	v := new(saferith.Nat).SetUint64(12345)

	// length shorter than the nonce prefix
	_, err := Decode(v, 8)
	require.ErrorIs(t, err, ErrDecodeFailed)

	// value wider than the claimed byte length
	g := group.Default()
	enc, err := Encode(g, bytes.Repeat([]byte{0xff}, 40))
	require.NoError(t, err)
	_, err = Decode(enc.Value, 20)
	require.ErrorIs(t, err, ErrDecodeFailed)

	_, err = Decode(nil, 32)
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func TestEncodeDecodeValue(t *testing.T) {
	g := group.Default()
	type card struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	in := card{Name: "Noël", Address: "1 North Pole Way"}

	enc, err := EncodeValue(g, in)
	require.NoError(t, err)

	var out card
	require.NoError(t, DecodeValue(enc.Value, enc.Len, &out))
	require.Equal(t, in, out)

	// garbage integers must signal a scan-friendly failure
	var other card
	err = DecodeValue(new(saferith.Nat).SetUint64(7), enc.Len, &other)
	require.ErrorIs(t, err, ErrDecodeFailed)
}
