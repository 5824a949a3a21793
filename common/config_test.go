package common

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vrsc.json")
	err := os.WriteFile(file, []byte(`{
		"coin_name": "vrsc",
		"chain": "VRSC",
		"rpc_user": "alice",
		"rpc_pass": "secret",
		"rpc_timeout": 30,
		"message_queue_binding": "tcp://127.0.0.1:28332"
	}`), 0600)
	if err != nil {
		t.Fatal(err)
	}
	got, raw, err := GetConfig(file)
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}
	want := &Config{
		CoinName:            "vrsc",
		Chain:               "VRSC",
		RPCUser:             "alice",
		RPCPass:             "secret",
		RPCTimeout:          30,
		MessageQueueBinding: "tcp://127.0.0.1:28332",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetConfig() = %+v, want %+v", got, want)
	}
	reparsed, err := ParseConfig(raw)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !reflect.DeepEqual(reparsed, want) {
		t.Errorf("ParseConfig() = %+v, want %+v", reparsed, want)
	}
}

func TestGetConfig_errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("rpcuser=alice"), 0600); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"", filepath.Join(dir, "missing.json"), bad} {
		if _, _, err := GetConfig(f); err == nil {
			t.Errorf("GetConfig(%q) error = nil, want error", f)
		}
	}
}
