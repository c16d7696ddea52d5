package group

import (
	"github.com/cronokirby/saferith"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
)

// modp2048Hex is the 2048-bit MODP group from RFC 3526, section 3.
// It is a safe prime, and since P ≡ 7 (mod 8), 2 is a quadratic residue and
// generates the order-q subgroup exactly.
const modp2048Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF"

var defaultParameters *Parameters

func init() {
	p, err := new(saferith.Nat).SetHex(modp2048Hex)
	if err != nil {
		panic("group: bad MODP constant: " + err.Error())
	}
	q := new(saferith.Nat).Rsh(p, 1, -1)
	defaultParameters = &Parameters{
		p: arith.ModulusFromNat(p),
		q: arith.ModulusFromNat(q),
		g: new(saferith.Nat).SetUint64(2),
	}
}

// Default returns the 2048-bit MODP group with generator 2. The constant is
// trusted, so no primality test runs here; Validate still passes on it.
func Default() *Parameters {
	return defaultParameters
}
