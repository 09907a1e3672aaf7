package myshows

import (
	"context"
)

// Procedure binds a method name to its param and result types
type Procedure[P, R any] struct {
	Method Method
}

// NewProcedure declares a typed procedure
func NewProcedure[P, R any](method Method) Procedure[P, R] {
	return Procedure[P, R]{Method: method}
}

// Reply is a decoded call result
type Reply[R any] struct {
	// Value is the decoded result member
	Value R
	// Raw is the merged params and response object
	Raw *Result
}

// Invoke dispatches proc with params and decodes the result member into R.
// A result that does not fit R is a transport error; the call itself
// succeeded, so Raw is still returned alongside it.
func Invoke[P, R any](ctx context.Context, c *Client, proc Procedure[P, R], params P, opts ...CallOption) (*Reply[R], error) {
	res, err := c.Dispatch(ctx, proc.Method, params, opts...)
	if err != nil {
		return nil, err
	}

	reply := &Reply[R]{Raw: res}
	if err := res.DecodeResult(&reply.Value); err != nil {
		return reply, transportError(proc.Method, 0, "", err)
	}
	return reply, nil
}
