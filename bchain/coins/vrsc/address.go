package vrsc

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/juju/errors"
	"github.com/martinboehm/btcd/chaincfg/chainhash"
	"github.com/martinboehm/btcutil/base58"
)

// AddressType is kind of the Verus address
type AddressType int

const (
	// AddressPubKeyHash is transparent R-address
	AddressPubKeyHash AddressType = iota
	// AddressScriptHash is pay to script hash b-address
	AddressScriptHash
	// AddressIdentity is identity i-address
	AddressIdentity
	// AddressShielded is sapling zs-address
	AddressShielded
)

// base58 version bytes of the transparent addresses
const (
	PubKeyHashAddrID byte = 60
	ScriptHashAddrID byte = 85
	IdentityAddrID   byte = 102
)

const saplingPrefix = "zs1"

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidFormat describes an error where decoding failed due to invalid version
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// Address is a Verus address, validated when parsed
type Address struct {
	Type AddressType
	s    string
}

// checksum: first four bytes of sha256^2
func checksum(input []byte) []byte {
	return chainhash.DoubleHashB(input)[:4]
}

// ParseAddress validates base58check transparent address or recognizes sapling address
func ParseAddress(s string) (Address, error) {
	if strings.HasPrefix(s, saplingPrefix) {
		return Address{Type: AddressShielded, s: s}, nil
	}
	decoded := base58.Decode(s)
	// version, 20 bytes hash, checksum
	if len(decoded) != 25 {
		return Address{}, errors.Annotatef(ErrInvalidFormat, "address %v", s)
	}
	if !bytes.Equal(checksum(decoded[:21]), decoded[21:]) {
		return Address{}, errors.Annotatef(ErrChecksumMismatch, "address %v", s)
	}
	var t AddressType
	switch decoded[0] {
	case PubKeyHashAddrID:
		t = AddressPubKeyHash
	case ScriptHashAddrID:
		t = AddressScriptHash
	case IdentityAddrID:
		t = AddressIdentity
	default:
		return Address{}, errors.NotValidf("address %v version %d", s, decoded[0])
	}
	return Address{Type: t, s: s}, nil
}

// MustParseAddress is ParseAddress panicking on error
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// EncodeAddress returns base58check address of the 20 byte hash with given version
func EncodeAddress(version byte, hash []byte) string {
	b := make([]byte, 0, 1+len(hash)+4)
	b = append(b, version)
	b = append(b, hash...)
	b = append(b, checksum(b)...)
	return base58.Encode(b)
}

func (a Address) String() string {
	return a.s
}

// IsShielded returns true for sapling addresses
func (a Address) IsShielded() bool {
	return a.Type == AddressShielded
}

// MarshalJSON returns address as JSON string
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.s)
}

// UnmarshalJSON parses and validates address from JSON string
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = p
	return nil
}
