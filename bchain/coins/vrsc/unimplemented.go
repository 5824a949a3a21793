package vrsc

import "github.com/verusrpc/vrscrpc/bchain"

// Daemon RPCs not supported by the client, they always return error of kind bchain.KindNotImplemented

// RecoverIdentity is not supported
func (v *VerusRPC) RecoverIdentity() error { return bchain.NotImplemented("recoveridentity") }

// RevokeIdentity is not supported
func (v *VerusRPC) RevokeIdentity() error { return bchain.NotImplemented("revokeidentity") }

// SetIdentityTimelock is not supported
func (v *VerusRPC) SetIdentityTimelock() error { return bchain.NotImplemented("setidentitytimelock") }

// SignFile is not supported
func (v *VerusRPC) SignFile() error { return bchain.NotImplemented("signfile") }

// UpdateIdentity is not supported
func (v *VerusRPC) UpdateIdentity() error { return bchain.NotImplemented("updateidentity") }

// VerifyFile is not supported
func (v *VerusRPC) VerifyFile() error { return bchain.NotImplemented("verifyfile") }

// VerifyHash is not supported
func (v *VerusRPC) VerifyHash() error { return bchain.NotImplemented("verifyhash") }

// VerifyMessage is not supported
func (v *VerusRPC) VerifyMessage() error { return bchain.NotImplemented("verifymessage") }

// CloseOffers is not supported
func (v *VerusRPC) CloseOffers() error { return bchain.NotImplemented("closeoffers") }

// ListOpenOffers is not supported
func (v *VerusRPC) ListOpenOffers() error { return bchain.NotImplemented("listopenoffers") }

// MakeOffer is not supported
func (v *VerusRPC) MakeOffer() error { return bchain.NotImplemented("makeoffer") }

// TakeOffer is not supported
func (v *VerusRPC) TakeOffer() error { return bchain.NotImplemented("takeoffer") }

// GetBlockHashes is not supported
func (v *VerusRPC) GetBlockHashes() error { return bchain.NotImplemented("getblockhashes") }

// GetLastSegIDStakes is not supported
func (v *VerusRPC) GetLastSegIDStakes() error { return bchain.NotImplemented("getlastsegidstakes") }

// GetSpentInfo is not supported, the daemon call does not work
func (v *VerusRPC) GetSpentInfo() error { return bchain.NotImplemented("getspentinfo") }

// KVSearch is not supported
func (v *VerusRPC) KVSearch() error { return bchain.NotImplemented("kvsearch") }

// KVUpdate is not supported
func (v *VerusRPC) KVUpdate() error { return bchain.NotImplemented("kvupdate") }

// DecodeRawTransaction is not supported
func (v *VerusRPC) DecodeRawTransaction() error { return bchain.NotImplemented("decoderawtransaction") }

// DecodeScript is not supported
func (v *VerusRPC) DecodeScript() error { return bchain.NotImplemented("decodescript") }

// FundRawTransaction is not supported
func (v *VerusRPC) FundRawTransaction() error { return bchain.NotImplemented("fundrawtransaction") }
