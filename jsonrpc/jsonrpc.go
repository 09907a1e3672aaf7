// Package jsonrpc defines the JSON-RPC 2.0 envelope exchanged with the
// MyShows API.
//
//	{"jsonrpc": "2.0", "method": "shows.GetById", "params": {"showId": 42}, "id": 1}
//
// The package holds wire shapes only; it performs no I/O.
package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

const (
	// Version is the protocol version sent with every request
	Version = "2.0"

	// DefaultID is the request id sent with every call. HTTP pairs each
	// response with its request, so the id is never incremented.
	DefaultID = 1
)

// Request is a JSON-RPC request envelope
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

// DefaultRequest is the template every outgoing envelope is built from
var DefaultRequest = Request{
	JSONRPC: Version,
	Method:  "",
	Params:  map[string]any{},
	ID:      DefaultID,
}

// NewRequest overlays method and params onto the default template.
// A nil params value, including a typed nil map, slice or pointer, is sent
// as an empty object.
func NewRequest(method string, params any) Request {
	req := DefaultRequest
	req.Method = method
	if isNil(params) {
		req.Params = map[string]any{}
	} else {
		req.Params = params
	}
	return req
}

// isNil reports whether v would encode as JSON null
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// Response is a JSON-RPC response envelope. Result and Error are kept raw
// so callers decide how to decode them.
type Response struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// HasResult reports whether the response carries a truthy result
func (r *Response) HasResult() bool {
	return IsTruthy(r.Result)
}

// ErrorObject is the structured error member of a response
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the error interface
func (e *ErrorObject) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// ParseError decodes an error member. The MyShows API sends either the
// structured {code, message, data} object or a bare string; a bare string
// becomes the message with a zero code. ok is false when raw is empty or
// null.
func ParseError(raw json.RawMessage) (obj *ErrorObject, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}

	switch raw[0] {
	case '{':
		var e ErrorObject
		if err := json.Unmarshal(raw, &e); err != nil {
			return &ErrorObject{Message: string(raw)}, true
		}
		return &e, true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &ErrorObject{Message: string(raw)}, true
		}
		return &ErrorObject{Message: s}, true
	default:
		return &ErrorObject{Message: string(raw)}, true
	}
}

// IsTruthy applies JavaScript truthiness to a raw JSON value: absent, null,
// false, 0 and "" are falsy; every object and array is truthy, even empty.
func IsTruthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return len(raw) > 2
	default:
		n, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return false
		}
		return n != 0
	}
}
