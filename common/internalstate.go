package common

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

var inShutdown int32

// WatchState is the state of the daemon observed by the client in the watch mode
type WatchState struct {
	mux sync.Mutex

	Chain         string            `json:"chain"`
	BestHeight    uint32            `json:"bestHeight"`
	BestHash      string            `json:"bestHash"`
	LastTipUpdate time.Time         `json:"lastTipUpdate"`
	MempoolSize   uint32            `json:"mempoolSize"`
	Notifications map[string]uint64 `json:"notifications"`
	StartTime     time.Time         `json:"startTime"`
	LastStore     time.Time         `json:"lastStore"`
}

// NewWatchState returns empty state of the chain
func NewWatchState(chain string) *WatchState {
	return &WatchState{
		Chain:         chain,
		Notifications: make(map[string]uint64),
		StartTime:     time.Now().UTC(),
	}
}

// UpdateBestBlock sets the tip of the daemon
func (ws *WatchState) UpdateBestBlock(height uint32, hash string) {
	ws.mux.Lock()
	defer ws.mux.Unlock()
	ws.BestHeight = height
	ws.BestHash = hash
	ws.LastTipUpdate = time.Now().UTC()
}

// GetBestBlock returns the last known tip and the time it was updated
func (ws *WatchState) GetBestBlock() (uint32, string, time.Time) {
	ws.mux.Lock()
	defer ws.mux.Unlock()
	return ws.BestHeight, ws.BestHash, ws.LastTipUpdate
}

// SetMempoolSize sets number of transactions in the daemon mempool
func (ws *WatchState) SetMempoolSize(size uint32) {
	ws.mux.Lock()
	defer ws.mux.Unlock()
	ws.MempoolSize = size
}

// AddNotification counts notification of the type
func (ws *WatchState) AddNotification(notificationType string) {
	ws.mux.Lock()
	defer ws.mux.Unlock()
	ws.Notifications[notificationType]++
}

// Pack marshals the state to json
func (ws *WatchState) Pack() ([]byte, error) {
	ws.mux.Lock()
	defer ws.mux.Unlock()
	ws.LastStore = time.Now().UTC()
	return json.Marshal(ws)
}

// SetInShutdown sets the application to in shutdown state
func SetInShutdown() {
	atomic.StoreInt32(&inShutdown, 1)
}

// IsInShutdown returns true if in application shutdown state
func IsInShutdown() bool {
	return atomic.LoadInt32(&inShutdown) != 0
}
