package api

import (
	"context"
	"net/url"
)

// Requester is the internal request surface the per-endpoint services build
// on. Splitting it from Client keeps the endpoint files free of transport
// detail and documents exactly what they may touch.
type Requester interface {
	// get executes a GET with optional query parameters, decoding the JSON
	// response into result.
	get(ctx context.Context, path string, query url.Values, result any) error

	// do executes a request with an optional JSON body.
	do(ctx context.Context, method, path string, body any, result any) error

	// postForm executes an upload form POST, multipart when files are
	// attached.
	postForm(ctx context.Context, path string, form *Form, result any) error
}
