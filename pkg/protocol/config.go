package protocol

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/fxamacker/cbor/v2"
)

// Keyfile is the participant's local state for one room: the room id, the
// group, and the keypair. It never leaves the participant's machine; the
// binary form is what the CLI writes to disk.
type Keyfile struct {
	RoomID string
	Group  *group.Parameters
	Secret *elgamal.SecretKey
}

// NewKeyfile binds a keypair to a room.
func NewKeyfile(roomID string, params *group.Parameters, secret *elgamal.SecretKey) *Keyfile {
	return &Keyfile{RoomID: roomID, Group: params, Secret: secret}
}

type keyfileMarshal struct {
	RoomID string
	P, G   *saferith.Nat
	Y, X   *saferith.Nat
}

func (k *Keyfile) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&keyfileMarshal{
		RoomID: k.RoomID,
		P:      k.Group.P().Nat(),
		G:      k.Group.G(),
		Y:      k.Secret.Y(),
		X:      k.Secret.X(),
	})
}

// UnmarshalBinary restores a keyfile. The group is revalidated, so a
// tampered keyfile with broken parameters is rejected rather than silently
// weakening the session.
func (k *Keyfile) UnmarshalBinary(data []byte) error {
	var x keyfileMarshal
	if err := cbor.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("protocol: keyfile: %w", err)
	}
	params, err := group.New(x.P, x.G)
	if err != nil {
		return fmt.Errorf("protocol: keyfile: %w", err)
	}
	pk := elgamal.NewPublicKey(params, x.Y)
	k.RoomID = x.RoomID
	k.Group = params
	k.Secret = elgamal.NewSecretKey(x.X, pk)
	return nil
}
