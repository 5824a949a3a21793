package vrsc

import (
	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

// DefaultSendCurrencyFee is the fee used by sendcurrency when only minconf is given
var DefaultSendCurrencyFee = common.AmountFromSatoshis(10000)

// GetCurrency returns definition of the currency given by name or i-address
func (v *VerusRPC) GetCurrency(name string) (*Currency, error) {
	var res Currency
	if err := v.Call("getcurrency", &res, name); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCurrencyState returns state of the currency
func (v *VerusRPC) GetCurrencyState(name string) ([]CurrencyState, error) {
	return bchain.CallResult[[]CurrencyState](v.Dispatcher, "getcurrencystate", name)
}

type listCurrenciesQuery struct {
	SystemType string `json:"systemtype"`
}

// ListCurrencies returns currencies known to the daemon, systemType ("local", "imported", "gateway", "pbaas") filters them
func (v *VerusRPC) ListCurrencies(systemType string) ([]CurrencyListEntry, error) {
	if systemType == "" {
		return bchain.CallResult[[]CurrencyListEntry](v.Dispatcher, "listcurrencies")
	}
	return bchain.CallResult[[]CurrencyListEntry](v.Dispatcher, "listcurrencies", listCurrenciesQuery{SystemType: systemType})
}

// SendCurrency sends outputs from address (transparent, identity, sapling or wildcard "*", "R*", "i*"),
// defaults are minconf 1 and fee 0.0001. It returns operation id, see ZGetOperationStatus.
func (v *VerusRPC) SendCurrency(from string, outputs []SendCurrencyOutput, minconf *uint32, fee *common.Amount) (string, error) {
	var res string
	err := v.CallWithDefaults("sendcurrency", &res,
		[]interface{}{from, outputs, minconf, fee},
		[]interface{}{1, DefaultSendCurrencyFee})
	return res, err
}

// ZGetOperationStatus returns status of the async operations, all operations if opids is empty
func (v *VerusRPC) ZGetOperationStatus(opids []string) ([]OperationStatus, error) {
	if opids == nil {
		opids = []string{}
	}
	return bchain.CallResult[[]OperationStatus](v.Dispatcher, "z_getoperationstatus", opids)
}
