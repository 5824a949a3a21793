package bchain

import (
	"encoding/hex"
	"testing"
)

func TestParseNotification(t *testing.T) {
	hashHex := "00000000000000000000000000000000000000000000000000000000000000ff"
	body, _ := hex.DecodeString(hashHex)
	tests := []struct {
		name   string
		msg    [][]byte
		want   Notification
		wantOk bool
	}{
		{
			name:   "hashblock",
			msg:    [][]byte{[]byte("hashblock"), body, {1, 0, 0, 0}},
			want:   Notification{Type: NotificationNewBlock, Hash: MustHash(hashHex), Sequence: 1},
			wantOk: true,
		},
		{
			name:   "hashtx",
			msg:    [][]byte{[]byte("hashtx"), body, {0, 1, 0, 0}},
			want:   Notification{Type: NotificationNewTx, Hash: MustHash(hashHex), Sequence: 256},
			wantOk: true,
		},
		{
			name:   "unknown topic",
			msg:    [][]byte{[]byte("rawtx"), {1, 2, 3}, {1, 2}},
			want:   Notification{Type: NotificationUnknown},
			wantOk: true,
		},
		{
			name:   "short message",
			msg:    [][]byte{[]byte("hashblock"), body},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNotification(tt.msg)
			if ok != tt.wantOk {
				t.Fatalf("parseNotification() ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("parseNotification() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNotificationType_String(t *testing.T) {
	if got := NotificationNewBlock.String(); got != "hashblock" {
		t.Errorf("NotificationNewBlock.String() = %v, want hashblock", got)
	}
	if got := NotificationType(42).String(); got != "unknown" {
		t.Errorf("NotificationType(42).String() = %v, want unknown", got)
	}
}

func TestNewMQ_invalidBinding(t *testing.T) {
	mq, err := NewMQ("not an endpoint", func(Notification) {}, nil)
	if err == nil {
		t.Fatal("NewMQ() error = nil, want error")
	}
	if mq != nil {
		t.Errorf("NewMQ() = %v, want nil", mq)
	}
}

func TestNewMQ_finishedIsBuffered(t *testing.T) {
	mq, err := NewMQ("inproc://vrscrpc-mq-test", func(Notification) {}, nil)
	if err != nil {
		t.Fatalf("NewMQ() error = %v", err)
	}
	if cap(mq.finished) != 2 {
		t.Errorf("cap(finished) = %d, want 2", cap(mq.finished))
	}
	if !mq.isRunning.Load() {
		t.Error("MQ loop is not running")
	}
}
