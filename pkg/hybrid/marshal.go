package hybrid

import (
	"encoding/json"

	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
)

var _ json.Marshaler = (*Ciphertext)(nil)
var _ json.Unmarshaler = (*Ciphertext)(nil)

// The key ciphertext keeps its decimal-string form; IV and payload are
// []byte, which encoding/json renders as base64.
type jsonHybrid struct {
	Key  *elgamal.Ciphertext `json:"key"`
	IV   []byte              `json:"iv"`
	Data []byte              `json:"data"`
}

func (ct Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHybrid{Key: ct.Key, IV: ct.IV, Data: ct.Data})
}

func (ct *Ciphertext) UnmarshalJSON(data []byte) error {
	var x jsonHybrid
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	ct.Key, ct.IV, ct.Data = x.Key, x.IV, x.Data
	return nil
}
