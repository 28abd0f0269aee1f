package upload

import "context"

// Request names the file to upload.
type Request struct {
	ID   string
	Path string
}

// Result is the storage service response.
type Result struct {
	Code    int
	Message string
	URL     string
	AbsURL  string
}

// OK reports whether the service accepted the upload.
func (r Result) OK() bool {
	return r.Code == 200 && r.Message == "ok"
}

// Client performs one upload round trip.
type Client interface {
	Upload(ctx context.Context, req Request) (Result, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (Result, error)

func (f ClientFunc) Upload(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// DoneMsg is delivered to the event loop when an upload finishes.
type DoneMsg struct {
	ID      string
	Request Request
	Result  Result
	Err     error
}
