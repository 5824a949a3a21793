package common

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds prometheus collectors for metrics collected by the client
type Metrics struct {
	RPCLatency      *prometheus.HistogramVec
	RPCRequests     *prometheus.CounterVec
	MQNotifications *prometheus.CounterVec
	ClientInfo      *prometheus.GaugeVec
}

// Labels represents a collection of label name -> value mappings.
type Labels = prometheus.Labels

// GetMetrics returns struct holding prometheus collectors, registered with reg.
// If reg is nil, the collectors are not registered.
func GetMetrics(chain string, reg prometheus.Registerer) (*Metrics, error) {
	metrics := Metrics{}

	metrics.RPCLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "vrscrpc_rpc_latency",
			Help:        "Latency of daemon RPC by method (in milliseconds)",
			Buckets:     []float64{0.1, 0.5, 1, 5, 10, 25, 50, 75, 100, 250, 1000},
			ConstLabels: Labels{"chain": chain},
		},
		[]string{"method", "error"},
	)
	metrics.RPCRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "vrscrpc_rpc_requests",
			Help:        "Total number of daemon RPC requests by method and status",
			ConstLabels: Labels{"chain": chain},
		},
		[]string{"method", "status"},
	)
	metrics.MQNotifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "vrscrpc_mq_notifications",
			Help:        "Total number of ZeroMQ notifications received from the daemon by type",
			ConstLabels: Labels{"chain": chain},
		},
		[]string{"type"},
	)
	metrics.ClientInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "vrscrpc_info",
			Help:        "Information about the client",
			ConstLabels: Labels{"chain": chain},
		},
		[]string{"version", "gitcommit", "buildtime", "goversion"},
	)

	if reg != nil {
		v := reflect.ValueOf(metrics)
		for i := 0; i < v.NumField(); i++ {
			c := v.Field(i).Interface().(prometheus.Collector)
			err := reg.Register(c)
			if err != nil {
				return nil, err
			}
		}
	}

	vi := GetVersionInfo()
	metrics.ClientInfo.With(Labels{
		"version":   vi.Version,
		"gitcommit": vi.GitCommit,
		"buildtime": vi.BuildTime,
		"goversion": vi.GoVersion,
	}).Set(1)

	return &metrics, nil
}
