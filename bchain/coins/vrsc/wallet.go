package vrsc

import (
	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

// MaxMultiSigKeys is the maximum number of signers of a multisig address
const MaxMultiSigKeys = 15

// DefaultOpReturnBurnFee is the fee of opreturn_burn if not specified
var DefaultOpReturnBurnFee = common.AmountFromSatoshis(10000)

// AddMultiSigAddress adds nRequired-of-keys multisig address to the wallet, keys are addresses or hex public keys
func (v *VerusRPC) AddMultiSigAddress(nRequired int, keys []string) (string, error) {
	if nRequired > MaxMultiSigKeys {
		return "", &bchain.Error{Kind: bchain.KindInvalidArgument, Method: "addmultisigaddress",
			Err: errors.NotValidf("%d required signatures, no more than %d signers allowed", nRequired, MaxMultiSigKeys)}
	}
	if keys == nil {
		keys = []string{}
	}
	return bchain.CallResult[string](v.Dispatcher, "addmultisigaddress", nRequired, keys)
}

// BackupWallet copies the wallet file to destination, returns the path of the backup
func (v *VerusRPC) BackupWallet(destination string) (string, error) {
	return bchain.CallResult[string](v.Dispatcher, "backupwallet", destination)
}

// CleanWalletTransactions removes stale transactions from the wallet
func (v *VerusRPC) CleanWalletTransactions() (*CleanedWalletTransactions, error) {
	var res CleanedWalletTransactions
	if err := v.Call("cleanwallettransactions", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ConvertPassphrase returns keys derived from the passphrase
func (v *VerusRPC) ConvertPassphrase(passphrase string) (*ConvertedPassphrase, error) {
	var res ConvertedPassphrase
	if err := v.Call("convertpassphrase", &res, passphrase); err != nil {
		return nil, err
	}
	return &res, nil
}

// DumpPrivKey returns WIF private key of a transparent address
func (v *VerusRPC) DumpPrivKey(address Address) (string, error) {
	if address.IsShielded() {
		return "", &bchain.Error{Kind: bchain.KindInvalidArgument, Method: "dumpprivkey",
			Err: errors.NotSupportedf("shielded address %v", address)}
	}
	return bchain.CallResult[string](v.Dispatcher, "dumpprivkey", address)
}

// GetBalance returns wallet balance, minconf defaults to 0
func (v *VerusRPC) GetBalance(minconf *int, includeWatchOnly *bool) (common.Amount, error) {
	var res common.Amount
	err := v.CallWithDefaults("getbalance", &res,
		[]interface{}{minconf, includeWatchOnly},
		[]interface{}{0, nil})
	return res, err
}

// GetNewAddress returns new transparent address of the wallet
func (v *VerusRPC) GetNewAddress() (Address, error) {
	return bchain.CallResult[Address](v.Dispatcher, "getnewaddress")
}

// GetRawChangeAddress returns new address for change outputs
func (v *VerusRPC) GetRawChangeAddress() (Address, error) {
	return bchain.CallResult[Address](v.Dispatcher, "getrawchangeaddress")
}

// GetReceivedByAddress returns total amount received by address, minconf defaults to 1
func (v *VerusRPC) GetReceivedByAddress(address Address, minconf *int) (common.Amount, error) {
	var res common.Amount
	err := v.CallWithDefaults("getreceivedbyaddress", &res,
		[]interface{}{address, minconf},
		[]interface{}{1})
	return res, err
}

// GetTransaction returns wallet transaction
func (v *VerusRPC) GetTransaction(txid bchain.Hash, includeWatchOnly *bool) (*WalletTransaction, error) {
	var res WalletTransaction
	err := v.CallWithDefaults("gettransaction", &res,
		[]interface{}{txid, includeWatchOnly},
		[]interface{}{nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ImportAddress adds watch-only address, label defaults to ""
func (v *VerusRPC) ImportAddress(address Address, label *string, rescan *bool) error {
	return v.CallWithDefaults("importaddress", nil,
		[]interface{}{address, label, rescan},
		[]interface{}{"", nil})
}

// ImportPrivKey adds WIF private key to the wallet, returns its address
func (v *VerusRPC) ImportPrivKey(privKey string, label *string, rescan *bool) (string, error) {
	var res string
	err := v.CallWithDefaults("importprivkey", &res,
		[]interface{}{privKey, label, rescan},
		[]interface{}{"", nil})
	return res, err
}

// KeypoolRefill fills the keypool to newSize keys
func (v *VerusRPC) KeypoolRefill(newSize *int) error {
	return v.CallWithDefaults("keypoolrefill", nil,
		[]interface{}{newSize},
		[]interface{}{nil})
}

// ListLockUnspent returns outputs locked by LockUnspent
func (v *VerusRPC) ListLockUnspent() ([]bchain.Outpoint, error) {
	return bchain.CallResult[[]bchain.Outpoint](v.Dispatcher, "listlockunspent")
}

// ListReceivedByAddress returns amounts received by wallet addresses, minconf defaults to 1
func (v *VerusRPC) ListReceivedByAddress(minconf *int, includeEmpty, includeWatchOnly *bool) ([]ReceivedByAddress, error) {
	var res []ReceivedByAddress
	err := v.CallWithDefaults("listreceivedbyaddress", &res,
		[]interface{}{minconf, includeEmpty, includeWatchOnly},
		[]interface{}{1, false, false})
	return res, err
}

// ListSinceBlock returns wallet transactions since blockhash (nil means all), targetConfirmations defaults to 1.
// An omitted blockhash followed by other arguments is sent as "", which the daemon treats as all blocks.
func (v *VerusRPC) ListSinceBlock(blockhash *bchain.Hash, targetConfirmations *int, includeWatchOnly *bool) (*SinceBlock, error) {
	var res SinceBlock
	err := v.CallWithDefaults("listsinceblock", &res,
		[]interface{}{blockhash, targetConfirmations, includeWatchOnly},
		[]interface{}{"", 1, nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListTransactions returns count (default 10) most recent wallet transactions skipping from (default 0)
func (v *VerusRPC) ListTransactions(count, from *int, includeWatchOnly *bool) ([]ListTransaction, error) {
	var res []ListTransaction
	err := v.CallWithDefaults("listtransactions", &res,
		[]interface{}{count, from, includeWatchOnly},
		[]interface{}{10, 0, nil})
	return res, err
}

// ListUnspent returns wallet unspent outputs with minconf (default 0) to maxconf (default 9999999) confirmations,
// optionally only of the addresses
func (v *VerusRPC) ListUnspent(minconf, maxconf *int, addresses []Address) ([]Unspent, error) {
	var res []Unspent
	err := v.CallWithDefaults("listunspent", &res,
		[]interface{}{minconf, maxconf, addresses},
		[]interface{}{0, 9999999, []Address{}})
	return res, err
}

// LockUnspent excludes the outputs from spending by the wallet, use UnlockUnspent to unlock them
func (v *VerusRPC) LockUnspent(outpoints []bchain.Outpoint) (bool, error) {
	return v.lockUnspent(false, outpoints)
}

// UnlockUnspent unlocks outputs locked by LockUnspent
func (v *VerusRPC) UnlockUnspent(outpoints []bchain.Outpoint) (bool, error) {
	return v.lockUnspent(true, outpoints)
}

func (v *VerusRPC) lockUnspent(unlock bool, outpoints []bchain.Outpoint) (bool, error) {
	if outpoints == nil {
		outpoints = []bchain.Outpoint{}
	}
	return bchain.CallResult[bool](v.Dispatcher, "lockunspent", unlock, outpoints)
}

// OpReturnBurn returns transaction burning amount with hex data in OP_RETURN, fee defaults to 0.0001
func (v *VerusRPC) OpReturnBurn(amount common.Amount, hexData string, fee *common.Amount) (*OpReturnBurn, error) {
	var res OpReturnBurn
	err := v.CallWithDefaults("opreturn_burn", &res,
		[]interface{}{amount, hexData, fee},
		[]interface{}{DefaultOpReturnBurnFee})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ResendWalletTransactions rebroadcasts unconfirmed wallet transactions
func (v *VerusRPC) ResendWalletTransactions() ([]bchain.Hash, error) {
	return bchain.CallResult[[]bchain.Hash](v.Dispatcher, "resendwallettransactions")
}

// SendMany sends amounts (address -> amount) in one transaction.
// Defaults are minconf 1, empty comment and no subtractFeeFrom addresses.
func (v *VerusRPC) SendMany(amounts map[string]common.Amount, minconf *int, comment *string, subtractFeeFrom []Address) (bchain.Hash, error) {
	var res bchain.Hash
	err := v.CallWithDefaults("sendmany", &res,
		[]interface{}{"", common.AmountMap(amounts), minconf, comment, subtractFeeFrom},
		[]interface{}{1, "", []Address{}})
	return res, err
}

// SendToAddress sends amount to address, defaults are minconf 1, empty comments and subtractFee false
func (v *VerusRPC) SendToAddress(address Address, amount common.Amount, minconf *int, comment, commentTo *string, subtractFee *bool) (bchain.Hash, error) {
	var res bchain.Hash
	err := v.CallWithDefaults("sendtoaddress", &res,
		[]interface{}{address, amount, minconf, comment, commentTo, subtractFee},
		[]interface{}{1, "", "", false})
	return res, err
}

// SignMessage signs message with the private key of address, returns base64 signature
func (v *VerusRPC) SignMessage(address Address, message string) (string, error) {
	return bchain.CallResult[string](v.Dispatcher, "signmessage", address, message)
}

// GetUnconfirmedBalance returns unconfirmed balance of the wallet
func (v *VerusRPC) GetUnconfirmedBalance() (common.Amount, error) {
	return bchain.CallResult[common.Amount](v.Dispatcher, "getunconfirmedbalance")
}

// GetWalletInfo returns wallet state
func (v *VerusRPC) GetWalletInfo() (*WalletInfo, error) {
	var res WalletInfo
	if err := v.Call("getwalletinfo", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SetTxFee sets fee per kB of wallet transactions
func (v *VerusRPC) SetTxFee(amount float64) (bool, error) {
	return bchain.CallResult[bool](v.Dispatcher, "settxfee", amount)
}

// GetSnapshot returns addresses with balances, top limits the count
func (v *VerusRPC) GetSnapshot(top *string) (*Snapshot, error) {
	var res Snapshot
	err := v.CallWithDefaults("getsnapshot", &res,
		[]interface{}{top},
		[]interface{}{nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
