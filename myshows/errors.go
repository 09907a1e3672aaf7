package myshows

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/myshows/jsonrpc"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid myshows configuration")
	// ErrUnknownMethod indicates a method outside the known procedure set
	ErrUnknownMethod = errors.New("unknown myshows method")
	// ErrNoSession indicates a session value that carries no token
	ErrNoSession = errors.New("no myshows session")
	// ErrEmptyResult indicates a response with neither a truthy result nor an error
	ErrEmptyResult = errors.New("empty result")
)

// ErrorKind classifies where a failure came from
type ErrorKind string

const (
	// KindAuth is a rejection from one of the auth endpoints
	KindAuth ErrorKind = "auth"
	// KindRPC is a JSON-RPC response without a truthy result
	KindRPC ErrorKind = "rpc"
	// KindTransport is a network, HTTP status or decoding failure
	KindTransport ErrorKind = "transport"
)

// Error is the single error shape returned by every call
type Error struct {
	Kind    ErrorKind
	Method  Method
	Code    int
	Message string
	// Data holds the server-provided error value verbatim, when there is one
	Data json.RawMessage
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := "myshows"
	if e.Method != "" {
		prefix += " " + string(e.Method)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s: %s error %d: %s", prefix, e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s error: %s", prefix, e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuth checks if the error came from an auth endpoint
func (e *Error) IsAuth() bool {
	return e.Kind == KindAuth
}

// IsRPC checks if the error is a server-side JSON-RPC error
func (e *Error) IsRPC() bool {
	return e.Kind == KindRPC
}

// IsTransport checks if the server could not be reached or understood
func (e *Error) IsTransport() bool {
	return e.Kind == KindTransport
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// AsError extracts a *Error from err
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func transportError(method Method, code int, message string, err error) *Error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &Error{
		Kind:    KindTransport,
		Method:  method,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// rpcError builds an error from a response body's error member
func rpcError(method Method, raw json.RawMessage) *Error {
	obj, ok := jsonrpc.ParseError(raw)
	if !ok {
		return &Error{
			Kind:    KindRPC,
			Method:  method,
			Message: ErrEmptyResult.Error(),
			Err:     ErrEmptyResult,
		}
	}
	return &Error{
		Kind:    KindRPC,
		Method:  method,
		Code:    obj.Code,
		Message: obj.Message,
		Data:    raw,
		Err:     obj,
	}
}

// oauthError is the error body both auth endpoints return
type oauthError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func authError(status int, body oauthError) *Error {
	msg := body.Description
	if msg == "" {
		msg = body.Error
	}
	return &Error{
		Kind:    KindAuth,
		Code:    status,
		Message: msg,
	}
}
