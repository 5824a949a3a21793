package vrsc

import "github.com/verusrpc/vrscrpc/bchain"

// GetOffers returns open offers for currency (isCurrency) or identity, withRawTx adds the offer transactions
func (v *VerusRPC) GetOffers(currencyOrID string, isCurrency, withRawTx bool) (Offers, error) {
	return bchain.CallResult[Offers](v.Dispatcher, "getoffers", currencyOrID, isCurrency, withRawTx)
}
