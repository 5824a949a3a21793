package coins

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/verusrpc/vrscrpc/bchain"
	"github.com/verusrpc/vrscrpc/bchain/coins/vrsc"
)

func TestNewBlockChain(t *testing.T) {
	tests := []struct {
		name     string
		coin     string
		config   string
		wantKind vrsc.ChainKind
		wantErr  string
	}{
		{"vrsc", "vrsc", `{"rpc_url":"http://127.0.0.1:27486"}`, vrsc.ChainVRSC, ""},
		{"vrsctest", "vrsctest", `{"rpc_url":"http://127.0.0.1:18843"}`, vrsc.ChainVRSCTest, ""},
		{"pbaas", "pbaas", `{"chain":"A6F5A9E1B3C7D2E4F60718293A4B5C6D7E8F9012","rpc_url":"http://127.0.0.1:1"}`, vrsc.ChainPBaaS, ""},
		{"pbaas not hex", "pbaas", `{"chain":"chips","rpc_url":"http://127.0.0.1:1"}`, 0, "coin pbaas"},
		{"unknown", "btc", `{}`, 0, "Unsupported coin 'btc'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc, err := NewBlockChain(tt.coin, json.RawMessage(tt.config), nil)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("NewBlockChain() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBlockChain() error = %v", err)
			}
			if bc.Chain.Kind != tt.wantKind {
				t.Errorf("NewBlockChain() chain = %v, want kind %v", bc.Chain, tt.wantKind)
			}
		})
	}
}

func TestNewBlockChain_errorKind(t *testing.T) {
	_, err := NewBlockChain("vrsc", json.RawMessage(`{"rpc_user":"u","rpc_pass":"p"}`), nil)
	if bchain.KindOf(err) != bchain.KindInvalidArgument {
		t.Errorf("KindOf() = %v, want %v", bchain.KindOf(err), bchain.KindInvalidArgument)
	}
}
