package vrsc

import (
	"github.com/verusrpc/vrscrpc/bchain"
)

type addressList struct {
	Addresses []string `json:"addresses"`
}

type addressDeltasQuery struct {
	Addresses []string `json:"addresses"`
	Start     uint32   `json:"start"`
	End       uint32   `json:"end"`
}

// GetAddressUTXOs returns unspent outputs of the addresses, requires -addressindex
func (v *VerusRPC) GetAddressUTXOs(addresses []string) ([]AddressUTXO, error) {
	return bchain.CallResult[[]AddressUTXO](v.Dispatcher, "getaddressutxos", addressList{Addresses: addresses})
}

// GetAddressDeltas returns balance changes of the addresses between heights start (nil means 0) and end (nil means 9999999)
func (v *VerusRPC) GetAddressDeltas(addresses []string, start, end *uint32) ([]AddressDelta, error) {
	q := addressDeltasQuery{Addresses: addresses, Start: 0, End: 9999999}
	if start != nil {
		q.Start = *start
	}
	if end != nil {
		q.End = *end
	}
	return bchain.CallResult[[]AddressDelta](v.Dispatcher, "getaddressdeltas", q)
}

// GetAddressBalance returns balance of the addresses in satoshis
func (v *VerusRPC) GetAddressBalance(addresses []string) (*AddressBalance, error) {
	var res AddressBalance
	if err := v.Call("getaddressbalance", &res, addressList{Addresses: addresses}); err != nil {
		return nil, err
	}
	return &res, nil
}

// ValidateAddress returns information about the address
func (v *VerusRPC) ValidateAddress(address string) (*ValidatedAddress, error) {
	var res ValidatedAddress
	if err := v.Call("validateaddress", &res, address); err != nil {
		return nil, err
	}
	return &res, nil
}
