package myshows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/s0up4200/myshows/jsonrpc"
)

// Dispatch sends one JSON-RPC call and classifies the response. The API
// version, and so the endpoint and session headers, follow from the method.
// Every failure is returned as *Error.
func (c *Client) Dispatch(ctx context.Context, method Method, params any, opts ...CallOption) (*Result, error) {
	if !method.Valid() {
		return nil, &Error{
			Kind:    KindRPC,
			Method:  method,
			Message: fmt.Sprintf("unknown method %q", method),
			Err:     ErrUnknownMethod,
		}
	}

	version := method.Version()
	o := callOptions{targetURL: c.endpoints.BaseURL(version)}
	for _, opt := range opts {
		opt(&o)
	}

	var header http.Header
	if s, ok := c.Session(version); ok {
		header = s.Header()
	}

	start := time.Now()
	res, err := c.doPost(ctx, o.targetURL, jsonrpc.NewRequest(method.String(), params), header)
	if err != nil {
		e := transportError(method, 0, "", err)
		c.logFailure(e, start)
		return nil, e
	}

	result, e := classify(method, params, res)
	if e != nil {
		c.logFailure(e, start)
		return nil, e
	}

	c.logger.Debug().
		Str("method", method.String()).
		Str("version", version.String()).
		Int("status", res.status).
		Dur("duration", time.Since(start)).
		Msg("RPC call completed")

	return result, nil
}

// Generic calls any known procedure with caller-built params. A nil map is
// sent as an empty object.
func (c *Client) Generic(ctx context.Context, method Method, params map[string]any) (*Result, error) {
	if params == nil {
		params = map[string]any{}
	}
	return c.Dispatch(ctx, method, params)
}

// classify maps a fully read HTTP response onto a Result or an *Error
func classify(method Method, params any, res *httpResult) (*Result, *Error) {
	if !isSuccessStatus(res.status) {
		e := transportError(method, res.status, http.StatusText(res.status), nil)
		if json.Valid(res.body) {
			e.Data = res.body
		}
		return nil, e
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(res.body, &body); err != nil {
		return nil, transportError(method, res.status, "",
			fmt.Errorf("failed to decode response: %w", err))
	}

	resp := jsonrpc.Response{Result: body["result"], Error: body["error"]}
	if !resp.HasResult() {
		return nil, rpcError(method, resp.Error)
	}

	return mergeResult(params, body), nil
}

func (c *Client) logFailure(e *Error, start time.Time) {
	ev := c.logger.Debug().
		Str("method", e.Method.String()).
		Str("kind", string(e.Kind)).
		Int("code", e.Code).
		Dur("duration", time.Since(start))
	if errors.Is(e, context.Canceled) || errors.Is(e, context.DeadlineExceeded) {
		ev = ev.Bool("cancelled", true)
	}
	ev.Msg("RPC call failed")
}
