package contracts

import (
	"context"
	"io"
	"net/url"
)

// APIRequest describes one call to the remote API. Body is JSON encoded unless
// RawBody is set, in which case ContentType and ContentLength describe it.
type APIRequest struct {
	Method        string
	Endpoint      string
	Query         url.Values
	Body          interface{}
	RawBody       io.Reader
	ContentType   string
	ContentLength int64
	Headers       map[string]string
}

// AuthExpiredHook runs synchronously when the remote API rejects the session.
type AuthExpiredHook func(ctx context.Context)

type APIGateway interface {
	Call(ctx context.Context, request *APIRequest, out interface{}) error
	Get(ctx context.Context, endpoint string, query url.Values, out interface{}) error
	Post(ctx context.Context, endpoint string, body interface{}, out interface{}) error
	Put(ctx context.Context, endpoint string, body interface{}, out interface{}) error
	OnAuthExpired(hook AuthExpiredHook)
}
