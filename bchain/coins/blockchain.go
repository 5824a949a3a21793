package coins

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/bchain/coins/vrsc"
	"github.com/verusrpc/vrscrpc/common"
)

type blockChainFactory func(config json.RawMessage, metrics *common.Metrics) (*vrsc.VerusRPC, error)

// BlockChainFactories is a map of constructors of coin RPC clients
var BlockChainFactories = make(map[string]blockChainFactory)

func init() {
	BlockChainFactories["vrsc"] = vrsc.NewVerusRPC
	BlockChainFactories["vrsctest"] = vrsc.NewVerusTestRPC
	BlockChainFactories["pbaas"] = vrsc.NewPBaaSRPC
}

// NewBlockChain creates RPC client of type defined by parameter coin
func NewBlockChain(coin string, config json.RawMessage, metrics *common.Metrics) (*vrsc.VerusRPC, error) {
	bcf, ok := BlockChainFactories[coin]
	if !ok {
		return nil, errors.New(fmt.Sprint("Unsupported coin '", coin, "'. Must be one of ", reflect.ValueOf(BlockChainFactories).MapKeys()))
	}
	bc, err := bcf(config, metrics)
	if err != nil {
		return nil, errors.Annotatef(err, "coin %v", coin)
	}
	return bc, nil
}
