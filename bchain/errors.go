package bchain

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"

	"github.com/juju/errors"
)

// ErrorKind classifies errors returned by the client
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this module
	KindUnknown ErrorKind = iota
	// KindUnsupportedPlatform means the operating system has no known installation layout
	KindUnsupportedPlatform
	// KindPathNotFound means a home, installation or conf file path does not exist
	KindPathNotFound
	// KindNotADirectory means the installation path exists but is not a directory
	KindNotADirectory
	// KindIO means the conf file exists but could not be read
	KindIO
	// KindInvalidConfigFile means a required setting is missing in the conf file
	KindInvalidConfigFile
	// KindPortParse means rpcport is not a valid port number
	KindPortParse
	// KindSerialization means an argument could not be converted to JSON
	KindSerialization
	// KindTransport means the daemon could not be reached or did not answer in time
	KindTransport
	// KindDeserialization means the daemon answered with data of unexpected shape
	KindDeserialization
	// KindDaemon means the daemon answered with a JSON-RPC error object
	KindDaemon
	// KindInvalidArgument means the call was rejected before being sent
	KindInvalidArgument
	// KindNotImplemented is returned by RPCs the client does not support yet
	KindNotImplemented
)

var kindNames = map[ErrorKind]string{
	KindUnknown:             "unknown",
	KindUnsupportedPlatform: "unsupported platform",
	KindPathNotFound:        "path not found",
	KindNotADirectory:       "not a directory",
	KindIO:                  "io",
	KindInvalidConfigFile:   "invalid config file",
	KindPortParse:           "port parse",
	KindSerialization:       "serialization",
	KindTransport:           "transport",
	KindDeserialization:     "deserialization",
	KindDaemon:              "daemon",
	KindInvalidArgument:     "invalid argument",
	KindNotImplemented:      "not implemented",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by the client, Kind tells what went wrong
type Error struct {
	Kind   ErrorKind
	Method string
	Err    error
}

// NewError returns Error of given kind wrapping err
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	var s string
	if e.Method != "" {
		s = e.Method + ": "
	}
	s += e.Kind.String() + " error"
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout returns true if the error is a transport error caused by a timeout
func (e *Error) Timeout() bool {
	if e.Kind != KindTransport || e.Err == nil {
		return false
	}
	if stderrors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if stderrors.As(e.Err, &ne) {
		return ne.Timeout()
	}
	return false
}

func asError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	// juju annotations keep the original error as cause
	if stderrors.As(errors.Cause(err), &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the error or KindUnknown
func KindOf(err error) ErrorKind {
	if e, ok := asError(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// IsKind returns true if err is of given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsTimeout returns true if err is a transport timeout
func IsTimeout(err error) bool {
	if e, ok := asError(err); ok {
		return e.Timeout()
	}
	return false
}

// IsNotImplemented returns true if err comes from an unsupported RPC placeholder
func IsNotImplemented(err error) bool {
	return IsKind(err, KindNotImplemented)
}

// DaemonError returns the JSON-RPC error object returned by the daemon, if any
func DaemonError(err error) (*RPCError, bool) {
	var re *RPCError
	if err != nil && stderrors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// NotImplemented returns the error for RPC method the client does not support
func NotImplemented(method string) error {
	return &Error{Kind: KindNotImplemented, Method: method, Err: errors.NotImplementedf("rpc %v", method)}
}

// ContractViolation is the panic value used when calling code breaks an invariant
type ContractViolation struct {
	Msg string
}

func (c *ContractViolation) Error() string {
	return "contract violation: " + c.Msg
}

// ContractViolationf panics with ContractViolation
func ContractViolationf(format string, args ...interface{}) {
	panic(&ContractViolation{Msg: fmt.Sprintf(format, args...)})
}
