package vrsc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

type capturingTransport struct {
	requests []*bchain.Request
	result   string
}

func (c *capturingTransport) BuildRequest(method string, params []json.RawMessage) *bchain.Request {
	return &bchain.Request{JSONRPC: "1.0", Method: method, Params: params}
}

func (c *capturingTransport) SendRequest(req *bchain.Request) (*bchain.Response, error) {
	c.requests = append(c.requests, req)
	return &bchain.Response{Result: json.RawMessage(c.result)}, nil
}

func newTestClient(result string) (*VerusRPC, *capturingTransport) {
	ct := &capturingTransport{result: result}
	return NewWithTransport(VRSC(), ct, nil), ct
}

func ptr[T any](v T) *T {
	return &v
}

const testTxid = "6b2ee7c8c4aa2b0a66b8e04b9c1b7cdbc9e0c3c27f5c1f3b0d7e8ab8f0d1a2b3"

// smallest well-formed daemon result of each method
var catalogueResults = map[string]string{
	"addmultisigaddress":       `"bGHmPdWnkxTR2HGVkkL7Mz2EXeLstzNpHR"`,
	"coinsupply":               `{}`,
	"createrawtransaction":     `"0400008085202f89"`,
	"getaddressbalance":        `{}`,
	"getaddressdeltas":         `[]`,
	"getbalance":               `0`,
	"getblock":                 `{}`,
	"getblockcount":            `1`,
	"getblockheader":           `"04000100"`,
	"getchaintxstats":          `{}`,
	"getidentitieswithaddress": `[]`,
	"getoffers":                `{}`,
	"getrawmempool":            `{}`,
	"getrawtransaction":        `{}`,
	"getreceivedbyaddress":     `0`,
	"getsnapshot":              `{}`,
	"gettxout":                 `null`,
	"getvdxfid":                `{}`,
	"importaddress":            `null`,
	"listcurrencies":           `[]`,
	"listreceivedbyaddress":    `[]`,
	"listsinceblock":           `{}`,
	"listtransactions":         `[]`,
	"listunspent":              `[]`,
	"lockunspent":              `true`,
	"minerids":                 `{}`,
	"opreturn_burn":            `{}`,
	"ping":                     `null`,
	"registernamecommitment":   `{}`,
	"sendcurrency":             `"opid-1"`,
	"sendmany":                 `"` + testTxid + `"`,
	"sendtoaddress":            `"` + testTxid + `"`,
	"settxfee":                 `true`,
	"verifychain":              `true`,
}

func TestCatalogue_params(t *testing.T) {
	addr := MustParseAddress("R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti")
	txid := bchain.MustHash(testTxid)
	tests := []struct {
		name   string
		call   func(v *VerusRPC) error
		method string
		params string
	}{
		{"getblockcount", func(v *VerusRPC) error { _, err := v.GetBlockCount(); return err }, "getblockcount", `[]`},
		{"getblock by height", func(v *VerusRPC) error { _, err := v.GetBlockByHeight(12345, 2); return err }, "getblock", `["12345",2]`},
		{"getblockheader raw", func(v *VerusRPC) error { _, err := v.GetBlockHeader(txid); return err }, "getblockheader", `["` + testTxid + `",false]`},
		{"getchaintxstats none", func(v *VerusRPC) error { _, err := v.GetChainTxStats(nil, nil); return err }, "getchaintxstats", `[]`},
		{"getchaintxstats nblocks only", func(v *VerusRPC) error { _, err := v.GetChainTxStats(ptr(uint32(5)), nil); return err }, "getchaintxstats", `[5]`},
		{"getchaintxstats blockhash only", func(v *VerusRPC) error { _, err := v.GetChainTxStats(nil, &txid); return err }, "getchaintxstats", `[43200,"` + testTxid + `"]`},
		{"gettxout default", func(v *VerusRPC) error { _, err := v.GetTxOut(txid, 1, nil); return err }, "gettxout", `["` + testTxid + `",1]`},
		{"gettxout mempool", func(v *VerusRPC) error { _, err := v.GetTxOut(txid, 1, ptr(true)); return err }, "gettxout", `["` + testTxid + `",1,true]`},
		{"getrawmempool verbose", func(v *VerusRPC) error { _, err := v.GetRawMempoolVerbose(); return err }, "getrawmempool", `[true]`},
		{"verifychain none", func(v *VerusRPC) error { _, err := v.VerifyChain(nil, nil); return err }, "verifychain", `[]`},
		{"verifychain numblocks", func(v *VerusRPC) error { _, err := v.VerifyChain(nil, ptr(uint32(10))); return err }, "verifychain", `[3,10]`},
		{"minerids", func(v *VerusRPC) error { _, err := v.MinerIDs(100); return err }, "minerids", `["100"]`},
		{"coinsupply", func(v *VerusRPC) error { _, err := v.CoinSupply(100); return err }, "coinsupply", `["100"]`},
		{"registernamecommitment", func(v *VerusRPC) error {
			_, err := v.RegisterNameCommitment("alice", addr, nil, nil)
			return err
		}, "registernamecommitment", `["alice","R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"]`},
		{"registernamecommitment parent", func(v *VerusRPC) error {
			_, err := v.RegisterNameCommitment("alice", addr, nil, ptr("VRSCTEST"))
			return err
		}, "registernamecommitment", `["alice","R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti","","VRSCTEST"]`},
		{"getidentitieswithaddress", func(v *VerusRPC) error {
			_, err := v.GetIdentitiesWithAddress("RAddr", nil, ptr(uint32(9)), nil)
			return err
		}, "getidentitieswithaddress", `[{"address":"RAddr","fromheight":0,"toheight":9,"unspent":false}]`},
		{"getvdxfid", func(v *VerusRPC) error { _, err := v.GetVDXFID("vrsc::system.test", nil); return err }, "getvdxfid", `["vrsc::system.test"]`},
		{"listcurrencies", func(v *VerusRPC) error { _, err := v.ListCurrencies(""); return err }, "listcurrencies", `[]`},
		{"listcurrencies pbaas", func(v *VerusRPC) error { _, err := v.ListCurrencies("pbaas"); return err }, "listcurrencies", `[{"systemtype":"pbaas"}]`},
		{"sendcurrency", func(v *VerusRPC) error {
			_, err := v.SendCurrency("*", []SendCurrencyOutput{{Address: "alice@", Amount: common.AmountFromSatoshis(150000000)}}, nil, nil)
			return err
		}, "sendcurrency", `["*",[{"amount":1.5,"address":"alice@"}]]`},
		{"sendcurrency fee", func(v *VerusRPC) error {
			_, err := v.SendCurrency("*", []SendCurrencyOutput{}, nil, ptr(common.AmountFromSatoshis(20000)))
			return err
		}, "sendcurrency", `["*",[],1,0.0002]`},
		{"getaddressdeltas", func(v *VerusRPC) error { _, err := v.GetAddressDeltas([]string{"RAddr"}, nil, nil); return err }, "getaddressdeltas", `[{"addresses":["RAddr"],"start":0,"end":9999999}]`},
		{"getaddressbalance", func(v *VerusRPC) error { _, err := v.GetAddressBalance([]string{"RAddr"}); return err }, "getaddressbalance", `[{"addresses":["RAddr"]}]`},
		{"createrawtransaction expiry", func(v *VerusRPC) error {
			_, err := v.CreateRawTransaction(nil, map[string]common.Amount{"RAddr": common.AmountFromSatoshis(1)}, nil, ptr(uint32(200)))
			return err
		}, "createrawtransaction", `[[],{"RAddr":0.00000001},0,200]`},
		{"getrawtransaction verbose", func(v *VerusRPC) error { _, err := v.GetRawTransactionVerbose(txid); return err }, "getrawtransaction", `["` + testTxid + `",1]`},
		{"addmultisigaddress", func(v *VerusRPC) error { _, err := v.AddMultiSigAddress(2, []string{"a", "b"}); return err }, "addmultisigaddress", `[2,["a","b"]]`},
		{"getbalance", func(v *VerusRPC) error { _, err := v.GetBalance(nil, nil); return err }, "getbalance", `[]`},
		{"getbalance watchonly", func(v *VerusRPC) error { _, err := v.GetBalance(nil, ptr(true)); return err }, "getbalance", `[0,true]`},
		{"getreceivedbyaddress", func(v *VerusRPC) error { _, err := v.GetReceivedByAddress(addr, nil); return err }, "getreceivedbyaddress", `["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"]`},
		{"importaddress rescan", func(v *VerusRPC) error { return v.ImportAddress(addr, nil, ptr(false)) }, "importaddress", `["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti","",false]`},
		{"listreceivedbyaddress", func(v *VerusRPC) error { _, err := v.ListReceivedByAddress(nil, ptr(true), nil); return err }, "listreceivedbyaddress", `[1,true]`},
		{"listsinceblock", func(v *VerusRPC) error { _, err := v.ListSinceBlock(nil, nil, ptr(true)); return err }, "listsinceblock", `["",1,true]`},
		{"listtransactions", func(v *VerusRPC) error { _, err := v.ListTransactions(nil, ptr(20), nil); return err }, "listtransactions", `[10,20]`},
		{"listunspent", func(v *VerusRPC) error { _, err := v.ListUnspent(nil, nil, nil); return err }, "listunspent", `[]`},
		{"listunspent addresses", func(v *VerusRPC) error { _, err := v.ListUnspent(nil, nil, []Address{addr}); return err }, "listunspent", `[0,9999999,["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"]]`},
		{"lockunspent", func(v *VerusRPC) error {
			_, err := v.LockUnspent([]bchain.Outpoint{{Txid: txid, Vout: 1}})
			return err
		}, "lockunspent", `[false,[{"txid":"` + testTxid + `","vout":1}]]`},
		{"unlockunspent", func(v *VerusRPC) error { _, err := v.UnlockUnspent(nil); return err }, "lockunspent", `[true,[]]`},
		{"opreturn_burn", func(v *VerusRPC) error { _, err := v.OpReturnBurn(common.AmountFromSatoshis(100000000), "beef", nil); return err }, "opreturn_burn", `[1,"beef"]`},
		{"sendmany", func(v *VerusRPC) error {
			_, err := v.SendMany(map[string]common.Amount{"RAddr": common.AmountFromSatoshis(100000000)}, nil, nil, []Address{addr})
			return err
		}, "sendmany", `["",{"RAddr":1},1,"",["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"]]`},
		{"sendtoaddress", func(v *VerusRPC) error {
			_, err := v.SendToAddress(addr, common.AmountFromSatoshis(150000000), nil, nil, nil, nil)
			return err
		}, "sendtoaddress", `["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti",1.5]`},
		{"sendtoaddress subtract fee", func(v *VerusRPC) error {
			_, err := v.SendToAddress(addr, common.AmountFromSatoshis(150000000), nil, nil, nil, ptr(true))
			return err
		}, "sendtoaddress", `["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti",1.5,1,"","",true]`},
		{"settxfee", func(v *VerusRPC) error { _, err := v.SetTxFee(0.0001); return err }, "settxfee", `[0.0001]`},
		{"getsnapshot", func(v *VerusRPC) error { _, err := v.GetSnapshot(ptr("10")); return err }, "getsnapshot", `["10"]`},
		{"getoffers", func(v *VerusRPC) error { _, err := v.GetOffers("VRSC", true, false); return err }, "getoffers", `["VRSC",true,false]`},
		{"ping", func(v *VerusRPC) error { return v.Ping() }, "ping", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := catalogueResults[tt.method]
			require.True(t, ok, "no result for %v", tt.method)
			v, ct := newTestClient(result)
			require.NoError(t, tt.call(v))
			require.Len(t, ct.requests, 1)
			assert.Equal(t, tt.method, ct.requests[0].Method)
			b, err := json.Marshal(ct.requests[0].Params)
			require.NoError(t, err)
			assert.JSONEq(t, tt.params, string(b))
		})
	}
}

func TestCatalogue_results(t *testing.T) {
	v, _ := newTestClient(`{"txid":"` + testTxid + `","vout":3,"status":"active","canspendfor":true,"cansignfor":true,"blockheight":10,` +
		`"identity":{"name":"alice","primaryaddresses":["R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"],"minimumsignatures":1,"contentmap":{}}}`)
	id, err := v.GetIdentity("alice@")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Identity.Name)
	assert.Equal(t, testTxid, id.Txid.String())
	assert.Equal(t, uint32(3), id.Vout)

	v, _ = newTestClient(`12.5`)
	bal, err := v.GetBalance(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1250000000), bal.Satoshis())

	v, _ = newTestClient(`"R9NXAVJezHiBnT3ijTpg3JUZre7PxhJWti"`)
	a, err := v.GetNewAddress()
	require.NoError(t, err)
	assert.Equal(t, AddressPubKeyHash, a.Type)

	v, _ = newTestClient(`null`)
	out, err := v.GetTxOut(bchain.MustHash(testTxid), 0, nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	v, _ = newTestClient(`"not a hash"`)
	_, err = v.GetBestBlockHash()
	assert.Equal(t, bchain.KindDeserialization, bchain.KindOf(err))

	v, _ = newTestClient(`null`)
	n, err := v.GetBlockCount()
	assert.Equal(t, bchain.KindDeserialization, bchain.KindOf(err))
	assert.Zero(t, n)
	info, err := v.GetBlockchainInfo()
	assert.Equal(t, bchain.KindDeserialization, bchain.KindOf(err))
	assert.Nil(t, info)
	_, err = v.GetBestBlockHash()
	assert.Equal(t, bchain.KindDeserialization, bchain.KindOf(err))
}

func TestCatalogue_rejectedBeforeSend(t *testing.T) {
	v, ct := newTestClient("")

	_, err := v.AddMultiSigAddress(16, []string{"a"})
	assert.Equal(t, bchain.KindInvalidArgument, bchain.KindOf(err))

	_, err = v.DumpPrivKey(MustParseAddress("zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq"))
	assert.Equal(t, bchain.KindInvalidArgument, bchain.KindOf(err))

	_, err = v.SetTxFee(math.NaN())
	assert.Equal(t, bchain.KindSerialization, bchain.KindOf(err))

	assert.Empty(t, ct.requests)
}

func TestCatalogue_notImplemented(t *testing.T) {
	v, ct := newTestClient("")
	placeholders := map[string]func() error{
		"recoveridentity":      v.RecoverIdentity,
		"revokeidentity":       v.RevokeIdentity,
		"setidentitytimelock":  v.SetIdentityTimelock,
		"signfile":             v.SignFile,
		"updateidentity":       v.UpdateIdentity,
		"verifyfile":           v.VerifyFile,
		"verifyhash":           v.VerifyHash,
		"verifymessage":        v.VerifyMessage,
		"closeoffers":          v.CloseOffers,
		"listopenoffers":       v.ListOpenOffers,
		"makeoffer":            v.MakeOffer,
		"takeoffer":            v.TakeOffer,
		"getblockhashes":       v.GetBlockHashes,
		"getlastsegidstakes":   v.GetLastSegIDStakes,
		"getspentinfo":         v.GetSpentInfo,
		"kvsearch":             v.KVSearch,
		"kvupdate":             v.KVUpdate,
		"decoderawtransaction": v.DecodeRawTransaction,
		"decodescript":         v.DecodeScript,
		"fundrawtransaction":   v.FundRawTransaction,
	}
	for method, f := range placeholders {
		err := f()
		assert.True(t, bchain.IsNotImplemented(err), method)
		assert.Contains(t, err.Error(), method)
	}
	assert.Empty(t, ct.requests)
}

func TestVerusRPC_RawCall(t *testing.T) {
	v, ct := newTestClient(`{"blocks":1}`)
	res, err := v.RawCall("getinfo", json.RawMessage(`{"a":1}`), "x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocks":1}`, string(res))
	b, _ := json.Marshal(ct.requests[0].Params)
	assert.JSONEq(t, `[{"a":1},"x"]`, string(b))
}

func TestNewVerusRPC(t *testing.T) {
	v, err := NewVerusRPC(json.RawMessage(`{"rpc_url":"http://127.0.0.1:27486","rpc_user":"u","rpc_pass":"p"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, VRSC(), v.Chain)
	assert.Equal(t, "http://127.0.0.1:27486", v.URL)

	v, err = NewVerusRPC(json.RawMessage(`{"chain":"vrsc","testnet":true,"rpc_url":"http://127.0.0.1:18843"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, VRSCTest(), v.Chain)

	_, err = NewVerusRPC(json.RawMessage(`{"rpc_url":`), nil)
	assert.Error(t, err)

	_, err = NewVerusRPC(json.RawMessage(`{"chain":"not a chain","rpc_url":"http://127.0.0.1:1"}`), nil)
	assert.Equal(t, bchain.KindInvalidArgument, bchain.KindOf(err))
}

func TestNewPBaaSRPC(t *testing.T) {
	v, err := NewPBaaSRPC(json.RawMessage(`{"chain":"`+testPBaaSID+`","rpc_url":"http://127.0.0.1:1"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, ChainPBaaS, v.Chain.Kind)

	_, err = NewPBaaSRPC(json.RawMessage(`{"chain":"VRSC","rpc_url":"http://127.0.0.1:1"}`), nil)
	assert.Equal(t, bchain.KindInvalidArgument, bchain.KindOf(err))
}

func TestNewClientWithResolver(t *testing.T) {
	l := newTestLocator("linux")
	writeFile(t, l.Fs, "/home/alice/.komodo/VRSC/VRSC.conf", "rpcuser=alice\nrpcpassword=secret\n")
	r := NewResolver(l)

	v, err := NewClientWithResolver(r, VRSC(), ConfigFileAuth(), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8232", v.URL)

	_, err = NewClientWithResolver(r, VRSCTest(), ConfigFileAuth(), 0, nil)
	assert.Equal(t, bchain.KindPathNotFound, bchain.KindOf(err))

	v, err = NewClientWithResolver(r, VRSCTest(), UserPassAuth("http://127.0.0.1:18843", "u", "p"), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:18843", v.URL)

	_, err = NewClientWithResolver(r, VRSC(), UserPassAuth("", "u", "p"), 0, nil)
	assert.Equal(t, bchain.KindInvalidArgument, bchain.KindOf(err))
}
