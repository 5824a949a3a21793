package vrsc

import (
	"strconv"

	"github.com/verusrpc/vrscrpc/bchain"
)

// GetBestBlockHash returns hash of the tip of the best chain
func (v *VerusRPC) GetBestBlockHash() (bchain.Hash, error) {
	return bchain.CallResult[bchain.Hash](v.Dispatcher, "getbestblockhash")
}

// GetBlock returns block by hash, verbosity must be 1 or 2 to get the structured block
func (v *VerusRPC) GetBlock(hash bchain.Hash, verbosity int) (*Block, error) {
	var res Block
	if err := v.Call("getblock", &res, hash, verbosity); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockByHeight returns block by height, the daemon expects the height as string
func (v *VerusRPC) GetBlockByHeight(height uint32, verbosity int) (*Block, error) {
	var res Block
	if err := v.Call("getblock", &res, strconv.FormatUint(uint64(height), 10), verbosity); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockchainInfo returns information about the state of the chain
func (v *VerusRPC) GetBlockchainInfo() (*BlockchainInfo, error) {
	var res BlockchainInfo
	if err := v.Call("getblockchaininfo", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockCount returns height of the best chain
func (v *VerusRPC) GetBlockCount() (uint32, error) {
	return bchain.CallResult[uint32](v.Dispatcher, "getblockcount")
}

// GetBlockHash returns hash of block at height
func (v *VerusRPC) GetBlockHash(height uint32) (bchain.Hash, error) {
	return bchain.CallResult[bchain.Hash](v.Dispatcher, "getblockhash", height)
}

// GetBlockHeaderVerbose returns parsed block header
func (v *VerusRPC) GetBlockHeaderVerbose(hash bchain.Hash) (*BlockHeader, error) {
	var res BlockHeader
	if err := v.Call("getblockheader", &res, hash, true); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockHeader returns serialized block header as hex
func (v *VerusRPC) GetBlockHeader(hash bchain.Hash) (string, error) {
	return bchain.CallResult[string](v.Dispatcher, "getblockheader", hash, false)
}

// GetChainTips returns all known tips in the block tree
func (v *VerusRPC) GetChainTips() ([]ChainTip, error) {
	return bchain.CallResult[[]ChainTip](v.Dispatcher, "getchaintips")
}

// ChainTxStatsWindow is the default window of getchaintxstats, one month of one minute blocks
const ChainTxStatsWindow = 30 * 24 * 60

// GetChainTxStats returns statistics of the transaction rate over nblocks (nil means ChainTxStatsWindow)
// ending at blockhash (nil means the tip)
func (v *VerusRPC) GetChainTxStats(nblocks *uint32, blockhash *bchain.Hash) (*ChainTxStats, error) {
	var res ChainTxStats
	err := v.CallWithDefaults("getchaintxstats", &res,
		[]interface{}{nblocks, blockhash},
		[]interface{}{ChainTxStatsWindow, nil})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetDifficulty returns proof-of-work difficulty
func (v *VerusRPC) GetDifficulty() (float64, error) {
	return bchain.CallResult[float64](v.Dispatcher, "getdifficulty")
}

// GetMempoolInfo returns mempool statistics
func (v *VerusRPC) GetMempoolInfo() (*MempoolInfo, error) {
	var res MempoolInfo
	if err := v.Call("getmempoolinfo", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPeerInfo returns connected peers
func (v *VerusRPC) GetPeerInfo() ([]PeerInfo, error) {
	return bchain.CallResult[[]PeerInfo](v.Dispatcher, "getpeerinfo")
}

// GetRawMempool returns txids of mempool transactions
func (v *VerusRPC) GetRawMempool() ([]bchain.Hash, error) {
	return bchain.CallResult[[]bchain.Hash](v.Dispatcher, "getrawmempool")
}

// GetRawMempoolVerbose returns mempool transactions with details
func (v *VerusRPC) GetRawMempoolVerbose() (RawMempool, error) {
	return bchain.CallResult[RawMempool](v.Dispatcher, "getrawmempool", true)
}

// GetTxOut returns unspent transaction output, nil if the output is spent
func (v *VerusRPC) GetTxOut(txid bchain.Hash, vout uint32, includeMempool *bool) (*TxOut, error) {
	var res *TxOut
	err := v.CallWithDefaults("gettxout", &res,
		[]interface{}{txid, vout, includeMempool},
		[]interface{}{false})
	return res, err
}

// GetTxOutProof returns hex proof that the transactions were included in a block
func (v *VerusRPC) GetTxOutProof(txids []bchain.Hash, blockhash *bchain.Hash) (string, error) {
	var res string
	err := v.CallWithDefaults("gettxoutproof", &res,
		[]interface{}{txids, blockhash},
		[]interface{}{nil})
	return res, err
}

// GetTxOutSetInfo returns statistics of the unspent output set
func (v *VerusRPC) GetTxOutSetInfo() (*TxOutSetInfo, error) {
	var res TxOutSetInfo
	if err := v.Call("gettxoutsetinfo", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MinerIDs returns notary miners of the blocks around height
func (v *VerusRPC) MinerIDs(height uint32) (*MinerIDs, error) {
	var res MinerIDs
	if err := v.Call("minerids", &res, strconv.FormatUint(uint64(height), 10)); err != nil {
		return nil, err
	}
	return &res, nil
}

// Notaries returns notaries valid at height
func (v *VerusRPC) Notaries(height uint32) (*Notaries, error) {
	var res Notaries
	if err := v.Call("notaries", &res, strconv.FormatUint(uint64(height), 10)); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyChain verifies the block database, defaults are checklevel 3 and 288 blocks
func (v *VerusRPC) VerifyChain(checklevel *uint8, numblocks *uint32) (bool, error) {
	var res bool
	err := v.CallWithDefaults("verifychain", &res,
		[]interface{}{checklevel, numblocks},
		[]interface{}{3, 288})
	return res, err
}

// VerifyTxOutProof returns txids the proof commits to
func (v *VerusRPC) VerifyTxOutProof(proof string) ([]bchain.Hash, error) {
	return bchain.CallResult[[]bchain.Hash](v.Dispatcher, "verifytxoutproof", proof)
}

// CoinSupply returns coin supply at height, the daemon expects the height as string
func (v *VerusRPC) CoinSupply(height uint32) (*CoinSupply, error) {
	var res CoinSupply
	if err := v.Call("coinsupply", &res, strconv.FormatUint(uint64(height), 10)); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetMiningInfo returns mining and staking state
func (v *VerusRPC) GetMiningInfo() (*MiningInfo, error) {
	var res MiningInfo
	if err := v.Call("getmininginfo", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Ping requests the daemon to ping its peers
func (v *VerusRPC) Ping() error {
	return v.Call("ping", nil)
}

// RescanFromHeight rescans the wallet transactions starting at height
func (v *VerusRPC) RescanFromHeight(height uint32) error {
	return v.Call("rescanfromheight", nil, height)
}
