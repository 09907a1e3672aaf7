package myshows

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Result is a successful call: the request params echoed back, overlaid by
// every field of the response body. On a key collision the response wins,
// so "result", "jsonrpc" and "id" always come from the server.
type Result struct {
	fields map[string]json.RawMessage
}

// mergeResult builds the flat result object. params that do not encode to a
// JSON object contribute nothing.
func mergeResult(params any, body map[string]json.RawMessage) *Result {
	echo := map[string]json.RawMessage{}
	if params != nil {
		if data, err := json.Marshal(params); err == nil {
			_ = json.Unmarshal(data, &echo)
		}
	}
	return &Result{fields: lo.Assign(echo, body)}
}

// Get returns the raw value of key
func (r *Result) Get(key string) mo.Option[json.RawMessage] {
	v, ok := r.fields[key]
	if !ok {
		return mo.None[json.RawMessage]()
	}
	return mo.Some(v)
}

// Result returns the server's raw result member
func (r *Result) Result() json.RawMessage {
	return r.fields["result"]
}

// Decode unmarshals the value of key into v
func (r *Result) Decode(key string, v any) error {
	raw, ok := r.fields[key]
	if !ok {
		return fmt.Errorf("field %q not present in result", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

// DecodeResult unmarshals the result member into v
func (r *Result) DecodeResult(v any) error {
	return r.Decode("result", v)
}

// Keys returns the field names in sorted order
func (r *Result) Keys() []string {
	keys := lo.Keys(r.fields)
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the merged fields
func (r *Result) Map() map[string]json.RawMessage {
	return lo.Assign(r.fields)
}

// MarshalJSON encodes the merged object
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}
