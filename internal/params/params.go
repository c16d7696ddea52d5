package params

const (
	// BitsGroup is the bit size of the prime modulus shared by a room.
	BitsGroup  = 2048
	BytesGroup = BitsGroup / 8

	// BitsCodecNonce is the size of the random prefix added by the message
	// codec before integer conversion. It defeats dictionary attacks on
	// low-entropy plaintexts and is discarded on decode.
	BitsCodecNonce  = 128
	BytesCodecNonce = BitsCodecNonce / 8

	// BitsSymmetricKey is the size of the ephemeral key wrapped by the
	// hybrid cipher.
	BitsSymmetricKey  = 256
	BytesSymmetricKey = BitsSymmetricKey / 8

	// MinParticipants is the smallest ring for which the assignment cycle
	// has no self- or mutual-pair degeneracies.
	MinParticipants = 3
)
