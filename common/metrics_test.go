package common

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := GetMetrics("VRSC", reg)
	if err != nil {
		t.Fatalf("GetMetrics() error = %v", err)
	}
	m.RPCRequests.With(Labels{"method": "getinfo", "status": "success"}).Inc()
	if got := testutil.ToFloat64(m.RPCRequests.With(Labels{"method": "getinfo", "status": "success"})); got != 1 {
		t.Errorf("RPCRequests = %v, want 1", got)
	}
	// the same collectors cannot be registered twice
	if _, err := GetMetrics("VRSC", reg); err == nil {
		t.Error("GetMetrics() second registration error = nil, want error")
	}
	// nil registerer leaves the collectors unregistered
	if _, err := GetMetrics("VRSC", nil); err != nil {
		t.Errorf("GetMetrics(nil) error = %v", err)
	}
}
