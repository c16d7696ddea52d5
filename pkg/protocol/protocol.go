// Package protocol implements the four flows of the assignment protocol on
// top of the crypto primitives: registration, the chair's sort, cycle
// assignment, and the address exchange. Blobs in and out are JSON strings;
// the bulletin board only ever sees them as opaque.
package protocol

import (
	"fmt"
)

type Error string

const (
	// ErrNoMessage means the scan finished without any blob decrypting for
	// this key. Normal when the counterpart has not posted yet.
	ErrNoMessage Error = "no stored blob is addressed to this key"

	ErrBadBlob Error = "blob is not a valid ciphertext"
)

func (e Error) Error() string {
	return fmt.Sprintf("protocol: %s", string(e))
}
