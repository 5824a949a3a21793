package vrsc

import (
	"encoding/json"

	"github.com/verusrpc/vrscrpc/bchain"
)

// GetIdentity returns identity by name (name@) or i-address
func (v *VerusRPC) GetIdentity(name string) (*Identity, error) {
	var res Identity
	if err := v.Call("getidentity", &res, name); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListIdentities returns identities in the wallet.
// The daemon returns no result instead of empty list, that is returned as nil slice.
func (v *VerusRPC) ListIdentities() ([]Identity, error) {
	return bchain.CallResult[[]Identity](v.Dispatcher, "listidentities")
}

// RegisterNameCommitment commits to a name to be registered as identity by RegisterIdentity.
// referral is an identity name or i-address, parent the name or id of the parent currency.
func (v *VerusRPC) RegisterNameCommitment(name string, controlAddress Address, referral, parent *string) (*NameCommitment, error) {
	var res NameCommitment
	err := v.CallWithDefaults("registernamecommitment", &res,
		[]interface{}{name, controlAddress, referral, parent},
		[]interface{}{"", nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type identityRegistration struct {
	Txid            bchain.Hash             `json:"txid"`
	NameReservation NameReservation         `json:"namereservation"`
	Identity        identityRegistrationDef `json:"identity"`
}

type identityRegistrationDef struct {
	Name              string            `json:"name"`
	PrimaryAddresses  []Address         `json:"primaryaddresses"`
	MinimumSignatures *uint8            `json:"minimumsignatures,omitempty"`
	PrivateAddress    *string           `json:"privateaddress,omitempty"`
	ContentMap        map[string]string `json:"contentmap,omitempty"`
}

// RegisterIdentity registers identity reserved by commitment, returns txid of the registration.
// With currencyName the identity is registered under that PBaaS currency as name.currency@.
func (v *VerusRPC) RegisterIdentity(commitment *NameCommitment, addresses []Address, minimumSignatures *uint8,
	privateAddress, currencyName *string, contentMap map[string]string) (bchain.Hash, error) {
	name := commitment.NameReservation.Name
	if currencyName != nil {
		name = name + "." + *currencyName + "@"
	}
	arg := identityRegistration{
		Txid:            commitment.Txid,
		NameReservation: commitment.NameReservation,
		Identity: identityRegistrationDef{
			Name:              name,
			PrimaryAddresses:  addresses,
			MinimumSignatures: minimumSignatures,
			PrivateAddress:    privateAddress,
			ContentMap:        contentMap,
		},
	}
	return bchain.CallResult[bchain.Hash](v.Dispatcher, "registeridentity", arg)
}

type identitiesWithAddressQuery struct {
	Address    string `json:"address"`
	FromHeight uint32 `json:"fromheight"`
	ToHeight   uint32 `json:"toheight"`
	Unspent    bool   `json:"unspent"`
}

// GetIdentitiesWithAddress returns identities having address as primary address,
// nil heights mean 0 (whole chain), nil unspent means false
func (v *VerusRPC) GetIdentitiesWithAddress(address string, fromHeight, toHeight *uint32, unspent *bool) (IdentitiesWithAddress, error) {
	q := identitiesWithAddressQuery{Address: address}
	if fromHeight != nil {
		q.FromHeight = *fromHeight
	}
	if toHeight != nil {
		q.ToHeight = *toHeight
	}
	if unspent != nil {
		q.Unspent = *unspent
	}
	return bchain.CallResult[IdentitiesWithAddress](v.Dispatcher, "getidentitieswithaddress", q)
}

// GetVDXFID returns the VDXF key of the uri, options may be nil
func (v *VerusRPC) GetVDXFID(uri string, options json.RawMessage) (*VDXFID, error) {
	var res VDXFID
	var opts interface{}
	if len(options) > 0 {
		opts = options
	}
	err := v.CallWithDefaults("getvdxfid", &res,
		[]interface{}{uri, opts},
		[]interface{}{nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
