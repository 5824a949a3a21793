package bchain

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/common"
)

// Dispatcher is the single path through which typed RPC calls reach the daemon.
// It holds no mutable state and can be used concurrently.
type Dispatcher struct {
	transport Transport
	metrics   *common.Metrics
}

// NewDispatcher returns Dispatcher sending requests over the transport, metrics may be nil
func NewDispatcher(transport Transport, metrics *common.Metrics) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		metrics:   metrics,
	}
}

// Transport returns the underlying transport
func (d *Dispatcher) Transport() Transport {
	return d.transport
}

// MarshalArgs converts arguments to wire values, nil values become the unset marker
func MarshalArgs(method string, args []interface{}) ([]json.RawMessage, error) {
	raw := make([]json.RawMessage, len(args))
	for i, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, &Error{Kind: KindSerialization, Method: method, Err: errors.Annotatef(err, "argument %d", i)}
		}
		raw[i] = b
	}
	return raw, nil
}

// Call calls method with positional args and unmarshals the result to res.
// res may be nil if the result is not needed.
func (d *Dispatcher) Call(method string, res interface{}, args ...interface{}) error {
	params, err := MarshalArgs(method, args)
	if err != nil {
		return err
	}
	return d.CallRaw(method, res, params)
}

// CallWithDefaults calls method with args shaped by HandleDefaults, see HandleDefaults for the rules
func (d *Dispatcher) CallWithDefaults(method string, res interface{}, args []interface{}, defaults []interface{}) error {
	params, err := MarshalArgs(method, args)
	if err != nil {
		return err
	}
	defs, err := MarshalArgs(method, defaults)
	if err != nil {
		return err
	}
	return d.CallRaw(method, res, HandleDefaults(params, defs))
}

// CallRaw sends already serialized params and unmarshals the result to res
func (d *Dispatcher) CallRaw(method string, res interface{}, params []json.RawMessage) (err error) {
	glog.V(1).Info("rpc: ", method)
	if d.metrics != nil {
		start := time.Now()
		defer func() {
			d.observe(method, start, err)
		}()
	}
	req := d.transport.BuildRequest(method, params)
	resp, err := d.transport.SendRequest(req)
	if err != nil {
		return &Error{Kind: KindTransport, Method: method, Err: err}
	}
	if glog.V(2) {
		glog.Info("rpc: ", method, " result ", string(resp.Result))
	}
	if resp.Error != nil {
		return &Error{Kind: KindDaemon, Method: method, Err: resp.Error}
	}
	if res == nil {
		return nil
	}
	if IsUnset(resp.Result) && !nullable(res) {
		return &Error{Kind: KindDeserialization, Method: method, Err: errors.Errorf("unexpected null result into %T", res)}
	}
	if err = json.Unmarshal(resp.Result, res); err != nil {
		return &Error{Kind: KindDeserialization, Method: method, Err: err}
	}
	return nil
}

// nullable returns true if res points to a value json null can be stored to
func nullable(res interface{}) bool {
	t := reflect.TypeOf(res)
	if t.Kind() != reflect.Ptr {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

func (d *Dispatcher) observe(method string, start time.Time, err error) {
	kind := ""
	status := "success"
	if err != nil {
		kind = KindOf(err).String()
		status = "failure"
	}
	d.metrics.RPCLatency.With(common.Labels{"method": method, "error": kind}).Observe(float64(time.Since(start)) / 1e6) // in milliseconds
	d.metrics.RPCRequests.With(common.Labels{"method": method, "status": status}).Inc()
}

// CallResult is the generic form of Dispatcher.Call returning the typed result
func CallResult[T any](d *Dispatcher, method string, args ...interface{}) (T, error) {
	var res T
	err := d.Call(method, &res, args...)
	return res, err
}
