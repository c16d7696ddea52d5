// Package elgamal implements ElGamal encryption over the quadratic-residue
// subgroup of a safe-prime multiplicative group.
//
// Every public key is forced onto the residue subgroup. If some keys were
// residues and others not, an observer could partition participants by a
// property unrelated to the sorted-key cycle.
package elgamal

import (
	"fmt"
)

type Error string

const (
	ErrMessageTooLarge Error = "message must be smaller than the group modulus"
	ErrKeyGenExhausted Error = "no residue key found after max retries"
	ErrNilFields       Error = "contains nil field"
)

func (e Error) Error() string {
	return fmt.Sprintf("elgamal: %s", string(e))
}
