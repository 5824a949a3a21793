package vrsc

import (
	"strings"

	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/bchain"
)

// ChainKind tells which daemon instance a ChainIdentity targets
type ChainKind int

const (
	// ChainVRSC is the Verus mainnet
	ChainVRSC ChainKind = iota
	// ChainVRSCTest is the Verus testnet
	ChainVRSCTest
	// ChainPBaaS is a PBaaS chain identified by its currency id
	ChainPBaaS
)

// Canonical names of the root chains, used verbatim in the installation paths
const (
	VRSCName     = "VRSC"
	VRSCTestName = "vrsctest"
)

// ChainIdentity identifies the daemon and network to connect to.
// CurrencyID and Testnet are used only by PBaaS chains.
type ChainIdentity struct {
	Kind       ChainKind
	CurrencyID string
	Testnet    bool
}

// VRSC returns identity of the Verus mainnet
func VRSC() ChainIdentity {
	return ChainIdentity{Kind: ChainVRSC}
}

// VRSCTest returns identity of the Verus testnet
func VRSCTest() ChainIdentity {
	return ChainIdentity{Kind: ChainVRSCTest, Testnet: true}
}

// PBaaS returns identity of a PBaaS chain given by hex currency id
func PBaaS(currencyID string, testnet bool) ChainIdentity {
	return ChainIdentity{Kind: ChainPBaaS, CurrencyID: currencyID, Testnet: testnet}
}

// ParseChainIdentity recognizes VRSC and vrsctest case-insensitively,
// any other name is taken as the hex currency id of a PBaaS chain.
// VRSC with testnet set is the Verus testnet.
func ParseChainIdentity(name string, testnet bool) (ChainIdentity, error) {
	switch {
	case strings.EqualFold(name, VRSCName):
		if testnet {
			return VRSCTest(), nil
		}
		return VRSC(), nil
	case strings.EqualFold(name, VRSCTestName):
		return VRSCTest(), nil
	case name == "":
		return ChainIdentity{}, bchain.NewError(bchain.KindInvalidArgument, errors.NotValidf("empty chain name"))
	}
	if !isHex(name) {
		return ChainIdentity{}, bchain.NewError(bchain.KindInvalidArgument, errors.NotValidf("chain %v, currency id must be hex", name))
	}
	return PBaaS(name, testnet), nil
}

func isHex(s string) bool {
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// Name returns the name used for the directory and the conf file of the chain
func (c ChainIdentity) Name() string {
	switch c.Kind {
	case ChainVRSC:
		return VRSCName
	case ChainVRSCTest:
		return VRSCTestName
	}
	return strings.ToLower(c.CurrencyID)
}

// IsMainnetVRSC returns true for the only chain with well-known rpc port
func (c ChainIdentity) IsMainnetVRSC() bool {
	return c.Kind == ChainVRSC
}

func (c ChainIdentity) String() string {
	if c.Kind == ChainPBaaS {
		if c.Testnet {
			return "pbaas testnet " + c.Name()
		}
		return "pbaas " + c.Name()
	}
	return c.Name()
}
