package vrsc

import (
	"encoding/json"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

// blockchain

// CoinSupply is result of coinsupply
type CoinSupply struct {
	Result        string        `json:"result"`
	Coin          string        `json:"coin"`
	Height        int32         `json:"height"`
	Supply        common.Amount `json:"supply"`
	ZFunds        common.Amount `json:"zfunds"`
	Sprout        common.Amount `json:"sprout"`
	Total         common.Amount `json:"total"`
	LastMonth     *float64      `json:"lastmonth,omitempty"`
	MonthCoins    *float64      `json:"monthcoins,omitempty"`
	LastQuarter   *float64      `json:"lastquarter,omitempty"`
	QuarterCoins  *float64      `json:"quartercoins,omitempty"`
	LastYear      *float64      `json:"lastyear,omitempty"`
	YearCoins     *float64      `json:"yearcoins,omitempty"`
	Inflation     *float64      `json:"inflation,omitempty"`
	BlocksPerYear *uint32       `json:"blocksperyear,omitempty"`
}

// ValuePool is the shielded pool state in a block
type ValuePool struct {
	ID            string        `json:"id"`
	Monitored     bool          `json:"monitored"`
	ChainValue    common.Amount `json:"chainValue"`
	ChainValueSat int64         `json:"chainValueZat"`
	ValueDelta    common.Amount `json:"valueDelta"`
	ValueDeltaSat int64         `json:"valueDeltaZat"`
}

// Block is result of verbose getblock
type Block struct {
	Hash                bchain.Hash   `json:"hash"`
	Confirmations       int           `json:"confirmations"`
	RawConfirmations    int           `json:"rawconfirmations"`
	Size                uint32        `json:"size"`
	Height              uint32        `json:"height"`
	Version             int32         `json:"version"`
	MerkleRoot          string        `json:"merkleroot"`
	SegID               int32         `json:"segid"`
	FinalSaplingRoot    string        `json:"finalsaplingroot"`
	Tx                  []bchain.Hash `json:"tx"`
	Time                int64         `json:"time"`
	Nonce               string        `json:"nonce"`
	Solution            string        `json:"solution"`
	Bits                string        `json:"bits"`
	Difficulty          float64       `json:"difficulty"`
	ChainWork           string        `json:"chainwork"`
	Anchor              string        `json:"anchor"`
	BlockType           string        `json:"blocktype"`
	ValuePools          []ValuePool   `json:"valuePools"`
	PreviousBlockHash   *bchain.Hash  `json:"previousblockhash,omitempty"`
	NextBlockHash       *bchain.Hash  `json:"nextblockhash,omitempty"`
	LastNotarizedHeight uint32        `json:"last_notarized_height"`
}

// BlockHeader is result of verbose getblockheader
type BlockHeader struct {
	Hash              bchain.Hash  `json:"hash"`
	Confirmations     int          `json:"confirmations"`
	Height            uint32       `json:"height"`
	Version           int32        `json:"version"`
	MerkleRoot        string       `json:"merkleroot"`
	FinalSaplingRoot  string       `json:"finalsaplingroot"`
	Time              int64        `json:"time"`
	Nonce             string       `json:"nonce"`
	Solution          string       `json:"solution"`
	Bits              string       `json:"bits"`
	Difficulty        float64      `json:"difficulty"`
	ChainWork         string       `json:"chainwork"`
	SegID             int32        `json:"segid"`
	PreviousBlockHash *bchain.Hash `json:"previousblockhash,omitempty"`
	NextBlockHash     *bchain.Hash `json:"nextblockhash,omitempty"`
}

// BlockchainInfo is result of getblockchaininfo
type BlockchainInfo struct {
	Chain                string          `json:"chain"`
	Name                 string          `json:"name"`
	ChainID              string          `json:"chainid"`
	Blocks               uint32          `json:"blocks"`
	Headers              uint32          `json:"headers"`
	BestBlockHash        bchain.Hash     `json:"bestblockhash"`
	Difficulty           float64         `json:"difficulty"`
	VerificationProgress float64         `json:"verificationprogress"`
	ChainWork            string          `json:"chainwork"`
	Pruned               bool            `json:"pruned"`
	Commitments          uint64          `json:"commitments"`
	ValuePools           []ValuePool     `json:"valuePools"`
	Softforks            json.RawMessage `json:"softforks,omitempty"`
	Upgrades             json.RawMessage `json:"upgrades,omitempty"`
	Consensus            json.RawMessage `json:"consensus,omitempty"`
}

// ChainTip is one element of getchaintips
type ChainTip struct {
	Height    uint32      `json:"height"`
	Hash      bchain.Hash `json:"hash"`
	BranchLen uint32      `json:"branchlen"`
	Status    string      `json:"status"`
}

// ChainTxStats is result of getchaintxstats
type ChainTxStats struct {
	Time                 int64    `json:"time"`
	TxCount              uint64   `json:"txcount"`
	WindowFinalBlockHash string   `json:"window_final_block_hash"`
	WindowBlockCount     uint32   `json:"window_block_count"`
	WindowTxCount        *uint64  `json:"window_tx_count,omitempty"`
	WindowInterval       *uint64  `json:"window_interval,omitempty"`
	TxRate               *float64 `json:"txrate,omitempty"`
}

// MempoolInfo is result of getmempoolinfo
type MempoolInfo struct {
	Size  uint32 `json:"size"`
	Bytes uint64 `json:"bytes"`
	Usage uint64 `json:"usage"`
}

// PeerInfo is one element of getpeerinfo
type PeerInfo struct {
	ID             int64    `json:"id"`
	Addr           string   `json:"addr"`
	AddrLocal      string   `json:"addrlocal,omitempty"`
	Services       string   `json:"services"`
	LastSend       int64    `json:"lastsend"`
	LastRecv       int64    `json:"lastrecv"`
	BytesSent      uint64   `json:"bytessent"`
	BytesRecv      uint64   `json:"bytesrecv"`
	ConnTime       int64    `json:"conntime"`
	TimeOffset     int64    `json:"timeoffset"`
	PingTime       float64  `json:"pingtime"`
	Version        int32    `json:"version"`
	SubVer         string   `json:"subver"`
	Inbound        bool     `json:"inbound"`
	StartingHeight int64    `json:"startingheight"`
	BanScore       int32    `json:"banscore"`
	SyncedHeaders  int64    `json:"synced_headers"`
	SyncedBlocks   int64    `json:"synced_blocks"`
	InFlight       []uint32 `json:"inflight"`
	Whitelisted    bool     `json:"whitelisted"`
}

// MempoolEntry is value of verbose getrawmempool
type MempoolEntry struct {
	Size             uint32        `json:"size"`
	Fee              common.Amount `json:"fee"`
	Time             int64         `json:"time"`
	Height           uint32        `json:"height"`
	StartingPriority float64       `json:"startingpriority"`
	CurrentPriority  float64       `json:"currentpriority"`
	Depends          []bchain.Hash `json:"depends"`
}

// RawMempool is result of verbose getrawmempool, txid -> entry
type RawMempool map[string]MempoolEntry

// ScriptPubKey is the output script of a transaction output
type ScriptPubKey struct {
	Asm       string          `json:"asm"`
	Hex       string          `json:"hex"`
	ReqSigs   int             `json:"reqSigs,omitempty"`
	Type      string          `json:"type"`
	Addresses []string        `json:"addresses,omitempty"`
	Identity  json.RawMessage `json:"identityprimary,omitempty"`
}

// TxOut is result of gettxout
type TxOut struct {
	BestBlock     bchain.Hash   `json:"bestblock"`
	Confirmations int           `json:"confirmations"`
	Value         common.Amount `json:"value"`
	ScriptPubKey  ScriptPubKey  `json:"scriptPubKey"`
	Version       int32         `json:"version"`
	Coinbase      bool          `json:"coinbase"`
}

// TxOutSetInfo is result of gettxoutsetinfo
type TxOutSetInfo struct {
	Height          uint32        `json:"height"`
	BestBlock       bchain.Hash   `json:"bestblock"`
	Transactions    uint64        `json:"transactions"`
	TxOuts          uint64        `json:"txouts"`
	BytesSerialized uint64        `json:"bytes_serialized"`
	HashSerialized  string        `json:"hash_serialized"`
	TotalAmount     common.Amount `json:"total_amount"`
}

// MinedBy is count of blocks mined by a notary, or by all other miners if NotaryID is not set
type MinedBy struct {
	NotaryID int    `json:"notaryid,omitempty"`
	KMDAddr  string `json:"KMDaddress,omitempty"`
	Pubkey   string `json:"pubkey,omitempty"`
	Blocks   uint32 `json:"blocks"`
}

// MinerIDs is result of minerids
type MinerIDs struct {
	Mined       []MinedBy `json:"mined"`
	Numnotaries int       `json:"numnotaries"`
}

// Notary is one notary node
type Notary struct {
	Pubkey     string `json:"pubkey"`
	BTCAddress string `json:"BTCaddress"`
	KMDAddress string `json:"KMDaddress"`
}

// Notaries is result of notaries
type Notaries struct {
	Notaries    []Notary `json:"notaries"`
	Numnotaries int      `json:"numnotaries"`
	Height      uint32   `json:"height"`
	Timestamp   int64    `json:"timestamp"`
}

// MiningInfo is result of getmininginfo
type MiningInfo struct {
	Blocks           uint32  `json:"blocks"`
	CurrentBlockSize uint64  `json:"currentblocksize"`
	CurrentBlockTx   uint64  `json:"currentblocktx"`
	AverageBlockFees float64 `json:"averageblockfees"`
	Difficulty       float64 `json:"difficulty"`
	StakingSupply    float64 `json:"stakingsupply"`
	Errors           string  `json:"errors"`
	GenProcLimit     int     `json:"genproclimit"`
	LocalHashPS      float64 `json:"localhashps"`
	NetworkHashPS    float64 `json:"networkhashps"`
	PooledTx         uint64  `json:"pooledtx"`
	Testnet          bool    `json:"testnet"`
	Chain            string  `json:"chain"`
	Staking          bool    `json:"staking"`
	Generate         bool    `json:"generate"`
	NumThreads       int     `json:"numthreads"`
}

// identity

// Identity is result of getidentity
type Identity struct {
	Identity    IdentityDefinition `json:"identity"`
	Status      string             `json:"status"`
	CanSpendFor bool               `json:"canspendfor"`
	CanSignFor  bool               `json:"cansignfor"`
	BlockHeight int64              `json:"blockheight"`
	Txid        bchain.Hash        `json:"txid"`
	Vout        uint32             `json:"vout"`
}

// IdentityDefinition is the identity as stored on chain
type IdentityDefinition struct {
	Version             uint16            `json:"version"`
	Flags               uint16            `json:"flags"`
	PrimaryAddresses    []string          `json:"primaryaddresses"`
	MinimumSignatures   uint16            `json:"minimumsignatures"`
	Name                string            `json:"name"`
	IdentityAddress     string            `json:"identityaddress"`
	Parent              string            `json:"parent"`
	SystemID            string            `json:"systemid"`
	ContentMap          map[string]string `json:"contentmap"`
	RevocationAuthority string            `json:"revocationauthority"`
	RecoveryAuthority   string            `json:"recoveryauthority"`
	PrivateAddress      string            `json:"privateaddress,omitempty"`
	TimeLock            uint64            `json:"timelock"`
}

// NameReservation is the reservation part of a name commitment
type NameReservation struct {
	Version  int    `json:"version"`
	Name     string `json:"name"`
	Parent   string `json:"parent"`
	Salt     string `json:"salt"`
	Referral string `json:"referral"`
	NameID   string `json:"nameid"`
}

// NameCommitment is result of registernamecommitment
type NameCommitment struct {
	Txid            bchain.Hash     `json:"txid"`
	NameReservation NameReservation `json:"namereservation"`
}

// IdentitiesWithAddress is result of getidentitieswithaddress
type IdentitiesWithAddress []IdentityDefinition

// VDXFID is result of getvdxfid
type VDXFID struct {
	VDXFID        string          `json:"vdxfid"`
	IndexID       string          `json:"indexid"`
	HashData      string          `json:"hash160result"`
	QualifiedName json.RawMessage `json:"qualifiedname,omitempty"`
	Bounddata     json.RawMessage `json:"bounddata,omitempty"`
}

// currency

// Currency is result of getcurrency, the definition has many optional parts
type Currency struct {
	Version              int               `json:"version"`
	Options              int               `json:"options"`
	Name                 string            `json:"name"`
	CurrencyID           string            `json:"currencyid"`
	Parent               string            `json:"parent"`
	SystemID             string            `json:"systemid"`
	NotarizationProtocol int               `json:"notarizationprotocol"`
	ProofProtocol        int               `json:"proofprotocol"`
	LaunchSystemID       string            `json:"launchsystemid"`
	StartBlock           uint32            `json:"startblock"`
	EndBlock             uint32            `json:"endblock"`
	Currencies           []string          `json:"currencies,omitempty"`
	Weights              []float64         `json:"weights,omitempty"`
	Conversions          []float64         `json:"conversions,omitempty"`
	InitialSupply        common.Amount     `json:"initialsupply"`
	PreLaunchCarveOut    common.Amount     `json:"prelaunchcarveout"`
	IDRegistrationFees   common.Amount     `json:"idregistrationfees"`
	IDReferralLevels     int               `json:"idreferrallevels"`
	IDImportFees         common.Amount     `json:"idimportfees"`
	Eras                 json.RawMessage   `json:"eras,omitempty"`
	CurrencyIDHex        string            `json:"currencyidhex"`
	FullyQualifiedName   string            `json:"fullyqualifiedname"`
	CurrencyNames        map[string]string `json:"currencynames,omitempty"`
	DefinitionTxid       *bchain.Hash      `json:"definitiontxid,omitempty"`
	DefinitionTxOutNum   int               `json:"definitiontxout"`
	BestHeight           uint32            `json:"bestheight"`
	LastConfirmedHeight  uint32            `json:"lastconfirmedheight"`
	BestCurrencyState    json.RawMessage   `json:"bestcurrencystate,omitempty"`
}

// CurrencyState is one element of getcurrencystate
type CurrencyState struct {
	Height         uint32          `json:"height"`
	BlockTime      int64           `json:"blocktime"`
	CurrencyState  json.RawMessage `json:"currencystate"`
	Conversiondata json.RawMessage `json:"conversiondata,omitempty"`
}

// CurrencyListEntry is one element of listcurrencies
type CurrencyListEntry struct {
	CurrencyDefinition Currency        `json:"currencydefinition"`
	BestHeight         uint32          `json:"bestheight"`
	BestTxid           *bchain.Hash    `json:"besttxid,omitempty"`
	BestCurrencyState  json.RawMessage `json:"bestcurrencystate,omitempty"`
}

// SendCurrencyOutput is one output of sendcurrency
type SendCurrencyOutput struct {
	Currency  string        `json:"currency,omitempty"`
	Amount    common.Amount `json:"amount"`
	Address   string        `json:"address"`
	Convertto string        `json:"convertto,omitempty"`
	Via       string        `json:"via,omitempty"`
}

// OperationStatus is one element of z_getoperationstatus
type OperationStatus struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	CreationTime  int64            `json:"creation_time"`
	Result        json.RawMessage  `json:"result,omitempty"`
	Error         *bchain.RPCError `json:"error,omitempty"`
	ExecutionSecs float64          `json:"execution_secs,omitempty"`
	Method        string           `json:"method"`
	Params        json.RawMessage  `json:"params,omitempty"`
}

// address index

// AddressUTXO is one element of getaddressutxos
type AddressUTXO struct {
	Address        string                   `json:"address"`
	Txid           bchain.Hash              `json:"txid"`
	OutputIndex    uint32                   `json:"outputIndex"`
	Script         string                   `json:"script"`
	Satoshis       int64                    `json:"satoshis"`
	Height         uint32                   `json:"height"`
	IsStake        bool                     `json:"isStake,omitempty"`
	CurrencyValues map[string]common.Amount `json:"currencyvalues,omitempty"`
}

// AddressDelta is one element of getaddressdeltas
type AddressDelta struct {
	Satoshis   int64       `json:"satoshis"`
	Txid       bchain.Hash `json:"txid"`
	Index      uint32      `json:"index"`
	BlockIndex uint32      `json:"blockindex"`
	Height     uint32      `json:"height"`
	Address    string      `json:"address"`
}

// AddressBalance is result of getaddressbalance
type AddressBalance struct {
	Balance         int64                    `json:"balance"`
	Received        int64                    `json:"received"`
	CurrencyBalance map[string]common.Amount `json:"currencybalance,omitempty"`
}

// ValidatedAddress is result of validateaddress
type ValidatedAddress struct {
	IsValid      bool   `json:"isvalid"`
	Address      string `json:"address,omitempty"`
	ScriptPubKey string `json:"scriptPubKey,omitempty"`
	Segid        int32  `json:"segid,omitempty"`
	IsMine       bool   `json:"ismine,omitempty"`
	IsWatchOnly  bool   `json:"iswatchonly,omitempty"`
	IsScript     bool   `json:"isscript,omitempty"`
	Pubkey       string `json:"pubkey,omitempty"`
	IsCompressed bool   `json:"iscompressed,omitempty"`
	Account      string `json:"account,omitempty"`
}

// raw transactions

// CreateRawTransactionInput is an input of createrawtransaction
type CreateRawTransactionInput struct {
	Txid     bchain.Hash `json:"txid"`
	Vout     uint32      `json:"vout"`
	Sequence *uint32     `json:"sequence,omitempty"`
}

// SignRawTransactionError is an input which could not be signed
type SignRawTransactionError struct {
	Txid      bchain.Hash `json:"txid"`
	Vout      uint32      `json:"vout"`
	ScriptSig string      `json:"scriptSig"`
	Sequence  uint32      `json:"sequence"`
	Error     string      `json:"error"`
}

// SignRawTransactionResult is result of signrawtransaction
type SignRawTransactionResult struct {
	Hex      string                    `json:"hex"`
	Complete bool                      `json:"complete"`
	Errors   []SignRawTransactionError `json:"errors,omitempty"`
}

// ScriptSig is the unlocking script of an input
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vin is transaction input in verbose getrawtransaction
type Vin struct {
	Coinbase  string         `json:"coinbase,omitempty"`
	Txid      *bchain.Hash   `json:"txid,omitempty"`
	Vout      uint32         `json:"vout"`
	ScriptSig *ScriptSig     `json:"scriptSig,omitempty"`
	Value     *common.Amount `json:"value,omitempty"`
	ValueSat  int64          `json:"valueSat,omitempty"`
	Address   string         `json:"address,omitempty"`
	Sequence  uint32         `json:"sequence"`
}

// Vout is transaction output in verbose getrawtransaction
type Vout struct {
	Value        common.Amount `json:"value"`
	ValueSat     int64         `json:"valueSat"`
	N            uint32        `json:"n"`
	ScriptPubKey ScriptPubKey  `json:"scriptPubKey"`
	SpentTxid    *bchain.Hash  `json:"spentTxId,omitempty"`
	SpentIndex   *uint32       `json:"spentIndex,omitempty"`
	SpentHeight  *uint32       `json:"spentHeight,omitempty"`
}

// RawTransaction is result of verbose getrawtransaction
type RawTransaction struct {
	Hex              string          `json:"hex"`
	Txid             bchain.Hash     `json:"txid"`
	Overwintered     bool            `json:"overwintered"`
	Version          int32           `json:"version"`
	VersionGroupID   string          `json:"versiongroupid,omitempty"`
	LockTime         uint32          `json:"locktime"`
	ExpiryHeight     uint32          `json:"expiryheight"`
	Vin              []Vin           `json:"vin"`
	Vout             []Vout          `json:"vout"`
	VJoinSplit       json.RawMessage `json:"vjoinsplit,omitempty"`
	ValueBalance     *common.Amount  `json:"valueBalance,omitempty"`
	VShieldedSpend   json.RawMessage `json:"vShieldedSpend,omitempty"`
	VShieldedOutput  json.RawMessage `json:"vShieldedOutput,omitempty"`
	BlockHash        *bchain.Hash    `json:"blockhash,omitempty"`
	Height           uint32          `json:"height,omitempty"`
	Confirmations    int             `json:"confirmations,omitempty"`
	RawConfirmations int             `json:"rawconfirmations,omitempty"`
	Time             int64           `json:"time,omitempty"`
	BlockTime        int64           `json:"blocktime,omitempty"`
}

// wallet

// WalletInfo is result of getwalletinfo
type WalletInfo struct {
	WalletVersion          uint32        `json:"walletversion"`
	Balance                common.Amount `json:"balance"`
	UnconfirmedBalance     common.Amount `json:"unconfirmed_balance"`
	ImmatureBalance        common.Amount `json:"immature_balance"`
	EligibleStakingOutputs uint32        `json:"eligible_staking_outputs"`
	EligibleStakingBalance common.Amount `json:"eligible_staking_balance"`
	TxCount                uint32        `json:"txcount"`
	KeypoolOldest          int64         `json:"keypoololdest"`
	KeypoolSize            uint32        `json:"keypoolsize"`
	UnlockedUntil          *int64        `json:"unlocked_until,omitempty"`
	PayTxFee               common.Amount `json:"paytxfee"`
	SeedFp                 string        `json:"seedfp"`
}

// CleanedWalletTransactions is result of cleanwallettransactions
type CleanedWalletTransactions struct {
	Total     uint32 `json:"total_transactons"`
	Remaining uint32 `json:"remaining_transactons"`
	Removed   uint32 `json:"removed_transactions"`
}

// ConvertedPassphrase is result of convertpassphrase
type ConvertedPassphrase struct {
	Passphrase string `json:"agamapassphrase"`
	Address    string `json:"address"`
	PublicKey  string `json:"pubkey"`
	PrivateKey string `json:"privkey"`
	WIF        string `json:"wif"`
}

// TransactionDetail is one element of details in gettransaction
type TransactionDetail struct {
	Account  string         `json:"account"`
	Address  string         `json:"address"`
	Category string         `json:"category"`
	Amount   common.Amount  `json:"amount"`
	Vout     uint32         `json:"vout"`
	Fee      *common.Amount `json:"fee,omitempty"`
	Size     uint32         `json:"size,omitempty"`
}

// WalletTransaction is result of gettransaction
type WalletTransaction struct {
	Amount           common.Amount       `json:"amount"`
	Fee              *common.Amount      `json:"fee,omitempty"`
	RawConfirmations int                 `json:"rawconfirmations"`
	Confirmations    int                 `json:"confirmations"`
	BlockHash        *bchain.Hash        `json:"blockhash,omitempty"`
	BlockIndex       uint32              `json:"blockindex"`
	BlockTime        int64               `json:"blocktime,omitempty"`
	ExpiryHeight     uint32              `json:"expiryheight"`
	Txid             bchain.Hash         `json:"txid"`
	WalletConflicts  []bchain.Hash       `json:"walletconflicts"`
	Time             int64               `json:"time"`
	TimeReceived     int64               `json:"timereceived"`
	Details          []TransactionDetail `json:"details"`
	VJoinSplit       json.RawMessage     `json:"vjoinsplit,omitempty"`
	Hex              string              `json:"hex"`
}

// ReceivedByAddress is one element of listreceivedbyaddress
type ReceivedByAddress struct {
	InvolvesWatchOnly bool          `json:"involvesWatchonly,omitempty"`
	Address           string        `json:"address"`
	Account           string        `json:"account"`
	Amount            common.Amount `json:"amount"`
	Confirmations     int           `json:"confirmations"`
	Txids             []bchain.Hash `json:"txids,omitempty"`
}

// ListTransaction is one element of listtransactions and listsinceblock
type ListTransaction struct {
	Account       string         `json:"account"`
	Address       string         `json:"address,omitempty"`
	Category      string         `json:"category"`
	Amount        common.Amount  `json:"amount"`
	Vout          uint32         `json:"vout"`
	Fee           *common.Amount `json:"fee,omitempty"`
	Confirmations int            `json:"confirmations"`
	BlockHash     *bchain.Hash   `json:"blockhash,omitempty"`
	BlockIndex    uint32         `json:"blockindex,omitempty"`
	BlockTime     int64          `json:"blocktime,omitempty"`
	Txid          bchain.Hash    `json:"txid"`
	Time          int64          `json:"time"`
	TimeReceived  int64          `json:"timereceived"`
	Comment       string         `json:"comment,omitempty"`
	To            string         `json:"to,omitempty"`
	OtherAccount  string         `json:"otheraccount,omitempty"`
	Size          uint32         `json:"size,omitempty"`
}

// SinceBlock is result of listsinceblock
type SinceBlock struct {
	Transactions []ListTransaction `json:"transactions"`
	LastBlock    bchain.Hash       `json:"lastblock"`
}

// Unspent is one element of listunspent
type Unspent struct {
	Txid          bchain.Hash   `json:"txid"`
	Vout          uint32        `json:"vout"`
	Generated     bool          `json:"generated"`
	Address       string        `json:"address,omitempty"`
	ScriptPubKey  string        `json:"scriptPubKey"`
	Amount        common.Amount `json:"amount"`
	AmountSat     int64         `json:"amountSat,omitempty"`
	Confirmations int           `json:"confirmations"`
	RedeemScript  string        `json:"redeemScript,omitempty"`
	Spendable     bool          `json:"spendable"`
}

// OpReturnBurn is result of opreturn_burn
type OpReturnBurn struct {
	Hex string `json:"hex"`
}

// SnapshotAddress is balance of one address in getsnapshot
type SnapshotAddress struct {
	Addr   string            `json:"addr"`
	Amount common.JSONNumber `json:"amount"`
	Segid  int32             `json:"segid"`
}

// Snapshot is result of getsnapshot
type Snapshot struct {
	Start            string            `json:"start_time"`
	Addresses        []SnapshotAddress `json:"addresses"`
	Total            common.Amount     `json:"total"`
	Average          common.Amount     `json:"average"`
	UtxoCount        uint64            `json:"utxos"`
	TotalAddresses   uint64            `json:"total_addresses"`
	IgnoredAddresses uint64            `json:"ignored_addresses"`
	Height           uint32            `json:"height"`
	End              string            `json:"end_time"`
}

// marketplace

// MarketplaceOffer is one offer of getoffers
type MarketplaceOffer struct {
	Identityid  string          `json:"identityid,omitempty"`
	Price       common.Amount   `json:"price"`
	Offer       json.RawMessage `json:"offer"`
	Accept      json.RawMessage `json:"accept,omitempty"`
	BlockExpiry uint32          `json:"blockexpiry"`
	Txid        bchain.Hash     `json:"txid"`
	OfferTx     string          `json:"hex,omitempty"`
}

// Offers is result of getoffers, offer kind -> offers
type Offers map[string][]MarketplaceOffer
