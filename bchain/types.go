package bchain

import (
	"encoding/json"
	"fmt"

	"github.com/juju/errors"
	"github.com/martinboehm/btcd/chaincfg/chainhash"
)

// RPCError defines rpc error returned by backend
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Hash is a block or transaction hash in the byte-reversed hex notation used by the daemon
type Hash struct {
	chainhash.Hash
}

// NewHashFromStr parses hash in daemon notation
func NewHashFromStr(s string) (Hash, error) {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return Hash{}, errors.Annotatef(err, "hash %v", s)
	}
	return Hash{*h}, nil
}

// MustHash parses hash in daemon notation and panics on error, intended for constants and tests
func MustHash(s string) Hash {
	h, err := NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MarshalJSON returns hash as JSON string
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON parses hash from JSON string
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return err
	}
	h.Hash = *p
	return nil
}

// Outpoint is txid together with output index
type Outpoint struct {
	Txid Hash   `json:"txid"`
	Vout uint32 `json:"vout"`
}
