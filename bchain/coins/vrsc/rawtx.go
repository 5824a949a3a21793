package vrsc

import (
	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

// CreateRawTransaction returns hex of unsigned transaction spending inputs to outputs (address -> amount),
// locktime defaults to 0, expiryheight to the daemon default
func (v *VerusRPC) CreateRawTransaction(inputs []CreateRawTransactionInput, outputs map[string]common.Amount, locktime *int64, expiryHeight *uint32) (string, error) {
	if inputs == nil {
		inputs = []CreateRawTransactionInput{}
	}
	var res string
	err := v.CallWithDefaults("createrawtransaction", &res,
		[]interface{}{inputs, common.AmountMap(outputs), locktime, expiryHeight},
		[]interface{}{0, nil})
	return res, err
}

// SendRawTransaction broadcasts signed transaction and returns its txid
func (v *VerusRPC) SendRawTransaction(hex string) (bchain.Hash, error) {
	return bchain.CallResult[bchain.Hash](v.Dispatcher, "sendrawtransaction", hex)
}

// SignRawTransaction signs transaction inputs with the wallet keys
func (v *VerusRPC) SignRawTransaction(hex string) (*SignRawTransactionResult, error) {
	var res SignRawTransactionResult
	if err := v.Call("signrawtransaction", &res, hex); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRawTransaction returns serialized transaction as hex
func (v *VerusRPC) GetRawTransaction(txid bchain.Hash) (string, error) {
	return bchain.CallResult[string](v.Dispatcher, "getrawtransaction", txid, 0)
}

// GetRawTransactionVerbose returns decoded transaction
func (v *VerusRPC) GetRawTransactionVerbose(txid bchain.Hash) (*RawTransaction, error) {
	var res RawTransaction
	if err := v.Call("getrawtransaction", &res, txid, 1); err != nil {
		return nil, err
	}
	return &res, nil
}
