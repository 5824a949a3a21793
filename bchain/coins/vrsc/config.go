package vrsc

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/bchain"
)

// DefaultRPCPort is the rpc port of the Verus mainnet daemon, its installer does not write rpcport to the conf file
const DefaultRPCPort = 8232

// ConnectionDescriptor holds the credentials and port of a local daemon
type ConnectionDescriptor struct {
	User     string
	Password string
	Port     uint16
}

// URL returns rpc endpoint of the local daemon
func (c ConnectionDescriptor) URL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.Port)
}

// Resolver reads connection settings from the conf file of a local daemon installation
type Resolver struct {
	locator *Locator
}

// NewResolver returns Resolver using locator, nil means the running system
func NewResolver(locator *Locator) *Resolver {
	if locator == nil {
		locator = NewLocator()
	}
	return &Resolver{locator: locator}
}

// ReadConfFile returns all settings of the conf file of the chain
func (r *Resolver) ReadConfFile(chain ChainIdentity) (bchain.ConfMap, error) {
	contents, err := r.locator.ReadConfFile(chain)
	if err != nil {
		return nil, err
	}
	return bchain.ParseConfFile(contents), nil
}

// Resolve returns rpcuser, rpcpassword and rpcport of the chain.
// rpcport may be missing only for the Verus mainnet, DefaultRPCPort is used then.
func (r *Resolver) Resolve(chain ChainIdentity) (ConnectionDescriptor, error) {
	var cd ConnectionDescriptor
	conf, err := r.ReadConfFile(chain)
	if err != nil {
		return cd, err
	}
	glog.V(1).Info("resolve ", chain, ": conf file with ", len(conf), " settings")
	var ok bool
	if cd.User, ok = conf.Get("rpcuser"); !ok {
		return ConnectionDescriptor{}, missingSetting(chain, "rpcuser")
	}
	if cd.Password, ok = conf.Get("rpcpassword"); !ok {
		return ConnectionDescriptor{}, missingSetting(chain, "rpcpassword")
	}
	port, ok := conf.Get("rpcport")
	if !ok {
		if !chain.IsMainnetVRSC() {
			return ConnectionDescriptor{}, missingSetting(chain, "rpcport")
		}
		glog.V(1).Info("resolve ", chain, ": using default rpcport ", DefaultRPCPort)
		port = strconv.Itoa(DefaultRPCPort)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return ConnectionDescriptor{}, bchain.NewError(bchain.KindPortParse, errors.Annotatef(err, "%v rpcport", chain))
	}
	cd.Port = uint16(p)
	return cd, nil
}

func missingSetting(chain ChainIdentity, key string) error {
	return bchain.NewError(bchain.KindInvalidConfigFile, errors.NotFoundf("%v setting %v", chain, key))
}
