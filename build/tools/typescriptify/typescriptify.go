package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tkrajina/typescriptify-golang-structs/typescriptify"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/bchain/coins/vrsc"
	"github.com/verusrpc/vrscrpc/common"
)

// Generates vrscrpc-types.ts, typescript definitions of the daemon RPC results
func main() {
	t := typescriptify.New()
	t.CreateInterface = true
	t.Indent = "  "
	t.BackupDir = ""

	t.ManageType(common.Amount{}, typescriptify.TypeOptions{TSType: "number"})
	t.ManageType(common.JSONNumber(""), typescriptify.TypeOptions{TSType: "number | string"})
	t.ManageType(bchain.Hash{}, typescriptify.TypeOptions{TSType: "string", TSDoc: "Hash in hex, as shown by the daemon"})
	t.ManageType(vrsc.Address{}, typescriptify.TypeOptions{TSType: "string"})
	t.ManageType(json.RawMessage{}, typescriptify.TypeOptions{TSType: "any"})
	t.ManageType(time.Time{}, typescriptify.TypeOptions{TSType: "string", TSDoc: "Time in ISO 8601 YYYY-MM-DDTHH:mm:ss.sssZd"})

	// blockchain
	t.Add(vrsc.BlockchainInfo{})
	t.Add(vrsc.Block{})
	t.Add(vrsc.BlockHeader{})
	t.Add(vrsc.ChainTip{})
	t.Add(vrsc.ChainTxStats{})
	t.Add(vrsc.MempoolInfo{})
	t.Add(vrsc.MempoolEntry{})
	t.Add(vrsc.PeerInfo{})
	t.Add(vrsc.TxOut{})
	t.Add(vrsc.TxOutSetInfo{})
	t.Add(vrsc.CoinSupply{})
	t.Add(vrsc.MinerIDs{})
	t.Add(vrsc.Notaries{})
	t.Add(vrsc.MiningInfo{})

	// identities and currencies
	t.Add(vrsc.Identity{})
	t.Add(vrsc.NameCommitment{})
	t.Add(vrsc.VDXFID{})
	t.Add(vrsc.Currency{})
	t.Add(vrsc.CurrencyState{})
	t.Add(vrsc.CurrencyListEntry{})
	t.Add(vrsc.SendCurrencyOutput{})
	t.Add(vrsc.OperationStatus{})
	t.Add(vrsc.MarketplaceOffer{})

	// address index and transactions
	t.Add(vrsc.AddressUTXO{})
	t.Add(vrsc.AddressDelta{})
	t.Add(vrsc.AddressBalance{})
	t.Add(vrsc.ValidatedAddress{})
	t.Add(vrsc.RawTransaction{})
	t.Add(vrsc.SignRawTransactionResult{})

	// wallet
	t.Add(vrsc.WalletInfo{})
	t.Add(vrsc.WalletTransaction{})
	t.Add(vrsc.ListTransaction{})
	t.Add(vrsc.SinceBlock{})
	t.Add(vrsc.ReceivedByAddress{})
	t.Add(vrsc.Unspent{})
	t.Add(vrsc.Snapshot{})

	// client
	t.Add(common.VersionInfo{})

	err := t.ConvertToFile("vrscrpc-types.ts")
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("OK")
}
