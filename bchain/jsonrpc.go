package bchain

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/verusrpc/vrscrpc/common"
)

// Request is a JSON-RPC request with positional parameters
type Request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// Response is a JSON-RPC response
type Response struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Transport sends JSON-RPC requests to the daemon
type Transport interface {
	BuildRequest(method string, params []json.RawMessage) *Request
	SendRequest(req *Request) (*Response, error)
}

// DefaultRPCTimeout is used when HTTPTransport is created with zero timeout
const DefaultRPCTimeout = 25 * time.Second

// HTTPTransport is a JSON-RPC over HTTP transport with basic authentication
type HTTPTransport struct {
	counter  uint64
	client   http.Client
	url      string
	user     string
	password string
}

// NewHTTPTransport returns new HTTPTransport instance
func NewHTTPTransport(url, user, password string, timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	transport := &http.Transport{
		Dial:                (&net.Dialer{KeepAlive: 600 * time.Second}).Dial,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100, // necessary to not to deplete ports
	}
	return &HTTPTransport{
		client:   http.Client{Timeout: timeout, Transport: transport},
		url:      url,
		user:     user,
		password: password,
	}
}

// URL returns the endpoint of the daemon
func (t *HTTPTransport) URL() string {
	return t.url
}

// BuildRequest creates request with unique id
func (t *HTTPTransport) BuildRequest(method string, params []json.RawMessage) *Request {
	if params == nil {
		params = []json.RawMessage{}
	}
	return &Request{
		JSONRPC: "1.0",
		ID:      atomic.AddUint64(&t.counter, 1),
		Method:  method,
		Params:  params,
	}
}

// SendRequest posts the request and decodes the JSON-RPC response.
// The returned error is a network, timeout or HTTP level error, the JSON-RPC error object is left in Response.
func (t *HTTPTransport) SendRequest(req *Request) (*Response, error) {
	httpData, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequest("POST", t.url, bytes.NewBuffer(httpData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", common.UserAgent())
	httpReq.SetBasicAuth(t.user, t.password)
	httpRes, err := t.client.Do(httpReq)
	// in some cases the httpRes can contain data even if it returns error
	if httpRes != nil {
		defer httpRes.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	var res Response
	// daemon returns HTTP 500 together with the JSON-RPC error object, handle both cases
	if httpRes.StatusCode != http.StatusOK {
		err = safeDecodeResponse(httpRes.Body, &res)
		if err != nil || (res.Error == nil && res.Result == nil) {
			return nil, errors.Errorf("%v %v", httpRes.Status, err)
		}
		return &res, nil
	}
	if err = safeDecodeResponse(httpRes.Body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func safeDecodeResponse(body io.Reader, res interface{}) (err error) {
	var data []byte
	defer func() {
		if r := recover(); r != nil {
			glog.Error("unmarshal json recovered from panic: ", r, "; data: ", string(data))
			debug.PrintStack()
			if len(data) > 0 && len(data) < 2048 {
				err = errors.Errorf("Error: %v", string(data))
			} else {
				err = errors.New("Internal error")
			}
		}
	}()
	data, err = io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, res)
}
