package vrsc

import (
	"encoding/json"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/common"
)

// VerusRPC is an interface to JSON-RPC verusd service.
type VerusRPC struct {
	*bchain.Dispatcher
	Chain ChainIdentity
	URL   string
}

// Auth tells how to get the credentials of the daemon.
// The zero value reads them from the conf file of the local installation.
type Auth struct {
	URL      string
	User     string
	Password string
}

// ConfigFileAuth reads credentials from the conf file of the local installation
func ConfigFileAuth() Auth {
	return Auth{}
}

// UserPassAuth connects to url with given credentials
func UserPassAuth(url, user, password string) Auth {
	return Auth{URL: url, User: user, Password: password}
}

// FromConfigFile returns true if credentials are to be read from the conf file
func (a Auth) FromConfigFile() bool {
	return a.URL == "" && a.User == "" && a.Password == ""
}

// NewVerusRPC returns new VerusRPC instance built from json configuration, chain defaults to VRSC
func NewVerusRPC(config json.RawMessage, metrics *common.Metrics) (*VerusRPC, error) {
	return newFromConfiguration(config, metrics, func(c *common.Config) (ChainIdentity, error) {
		if c.Chain == "" {
			c.Chain = VRSCName
		}
		return ParseChainIdentity(c.Chain, c.Testnet)
	})
}

// NewVerusTestRPC returns VerusRPC of the Verus testnet built from json configuration
func NewVerusTestRPC(config json.RawMessage, metrics *common.Metrics) (*VerusRPC, error) {
	return newFromConfiguration(config, metrics, func(c *common.Config) (ChainIdentity, error) {
		return VRSCTest(), nil
	})
}

// NewPBaaSRPC returns VerusRPC of the PBaaS chain given by hex currency id in the chain field of json configuration
func NewPBaaSRPC(config json.RawMessage, metrics *common.Metrics) (*VerusRPC, error) {
	return newFromConfiguration(config, metrics, func(c *common.Config) (ChainIdentity, error) {
		ci, err := ParseChainIdentity(c.Chain, c.Testnet)
		if err != nil {
			return ci, err
		}
		if ci.Kind != ChainPBaaS {
			return ci, bchain.NewError(bchain.KindInvalidArgument, errors.NotValidf("chain %v is not a PBaaS chain", c.Chain))
		}
		return ci, nil
	})
}

func newFromConfiguration(config json.RawMessage, metrics *common.Metrics, chain func(*common.Config) (ChainIdentity, error)) (*VerusRPC, error) {
	c, err := common.ParseConfig(config)
	if err != nil {
		return nil, errors.Annotatef(err, "Invalid configuration file")
	}
	ci, err := chain(c)
	if err != nil {
		return nil, err
	}
	auth := UserPassAuth(c.RPCURL, c.RPCUser, c.RPCPass)
	return NewClient(ci, auth, time.Duration(c.RPCTimeout)*time.Second, metrics)
}

// NewClient returns VerusRPC of the chain, timeout 0 means bchain.DefaultRPCTimeout
func NewClient(chain ChainIdentity, auth Auth, timeout time.Duration, metrics *common.Metrics) (*VerusRPC, error) {
	return NewClientWithResolver(NewResolver(nil), chain, auth, timeout, metrics)
}

// NewClientWithResolver is NewClient reading conf files using given resolver
func NewClientWithResolver(r *Resolver, chain ChainIdentity, auth Auth, timeout time.Duration, metrics *common.Metrics) (*VerusRPC, error) {
	if auth.FromConfigFile() {
		cd, err := r.Resolve(chain)
		if err != nil {
			return nil, err
		}
		auth = UserPassAuth(cd.URL(), cd.User, cd.Password)
	}
	if auth.URL == "" {
		return nil, bchain.NewError(bchain.KindInvalidArgument, errors.NotValidf("empty rpc url"))
	}
	glog.Info("rpc: ", chain, " daemon at ", auth.URL)
	t := bchain.NewHTTPTransport(auth.URL, auth.User, auth.Password, timeout)
	v := NewWithTransport(chain, t, metrics)
	v.URL = auth.URL
	return v, nil
}

// NewWithTransport returns VerusRPC sending the requests over transport
func NewWithTransport(chain ChainIdentity, t bchain.Transport, metrics *common.Metrics) *VerusRPC {
	return &VerusRPC{
		Dispatcher: bchain.NewDispatcher(t, metrics),
		Chain:      chain,
	}
}

// RawCall calls any daemon method and returns the unparsed result
func (v *VerusRPC) RawCall(method string, params ...interface{}) (json.RawMessage, error) {
	var res json.RawMessage
	if err := v.Call(method, &res, params...); err != nil {
		return nil, err
	}
	return res, nil
}
