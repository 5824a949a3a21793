package common

import (
	"encoding/json"
	"strings"

	"github.com/juju/errors"
	"github.com/shopspring/decimal"
)

// AmountDecimals is the number of decimal places of a coin amount
const AmountDecimals = 8

// Amount is a coin amount as used in the daemon RPC, e.g. 1.5 VRSC
type Amount struct {
	decimal.Decimal
}

// NewAmount returns Amount truncated to AmountDecimals places
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d.Truncate(AmountDecimals)}
}

// AmountFromFloat converts float coin value, rounding to AmountDecimals places
func AmountFromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f).Round(AmountDecimals)}
}

// AmountFromSatoshis converts integer number of the smallest units
func AmountFromSatoshis(sat int64) Amount {
	return Amount{decimal.New(sat, -AmountDecimals)}
}

// ParseAmount parses decimal string coin value
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, errors.Annotatef(err, "amount %v", s)
	}
	if d.Exponent() < -AmountDecimals && !d.Equal(d.Truncate(AmountDecimals)) {
		return Amount{}, errors.NotValidf("amount %v with more than %d decimals", s, AmountDecimals)
	}
	return Amount{d}, nil
}

// Satoshis returns amount in the smallest units
func (a Amount) Satoshis() int64 {
	return a.Shift(AmountDecimals).IntPart()
}

// String returns amount with trailing zeros removed
func (a Amount) String() string {
	return a.Decimal.String()
}

// MarshalJSON Amount serialization as JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Truncate(AmountDecimals).String()), nil
}

// UnmarshalJSON parses JSON number or string
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		*a = Amount{}
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Errorf("couldn't parse amount: %s", s)
	}
	a.Decimal = d
	return nil
}

// AmountMap converts address -> Amount map to the JSON object expected by send RPCs
func AmountMap(amounts map[string]Amount) map[string]json.RawMessage {
	m := make(map[string]json.RawMessage, len(amounts))
	for k, v := range amounts {
		b, _ := v.MarshalJSON()
		m[k] = b
	}
	return m
}
