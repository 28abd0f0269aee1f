package upload

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/ninja/internal/logging"
)

// Uploader guards a Client with a single-outstanding-request lock. Its
// methods must be called from the event loop only.
type Uploader struct {
	client Client
	logger logging.Logger
	ctx    context.Context

	uploading bool
	current   string
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithLogger sets the uploader logger.
func WithLogger(logger logging.Logger) Option {
	return func(u *Uploader) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithContext sets the context passed to the client.
func WithContext(ctx context.Context) Option {
	return func(u *Uploader) {
		if ctx != nil {
			u.ctx = ctx
		}
	}
}

// New returns an Uploader over client.
func New(client Client, opts ...Option) (*Uploader, error) {
	if client == nil {
		return nil, clientRequiredError()
	}
	u := &Uploader{
		client: client,
		logger: logging.NoOp(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	return u, nil
}

// Uploading reports whether an upload is in flight.
func (u *Uploader) Uploading() bool { return u.uploading }

// Trigger starts req and returns the command that runs it. It returns nil,
// without calling the client, while another upload is in flight.
func (u *Uploader) Trigger(req Request) tea.Cmd {
	if u.uploading {
		u.logger.Debug("upload dropped: another upload in flight", "in_flight", u.current, "path", req.Path)
		return nil
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	u.uploading = true
	u.current = req.ID
	u.logger.Info("upload started", "id", req.ID, "path", req.Path)

	client, ctx := u.client, u.ctx
	return func() tea.Msg {
		res, err := client.Upload(ctx, req)
		return DoneMsg{ID: req.ID, Request: req, Result: res, Err: err}
	}
}

// Complete releases the lock and returns the uploaded asset's absolute URL.
// A transport error or a non-ok response is logged and returned.
func (u *Uploader) Complete(msg DoneMsg) (string, error) {
	u.uploading = false
	u.current = ""

	if msg.Err != nil {
		err := transportError(msg.Err)
		u.logger.Error("upload failed", "id", msg.ID, "error", err)
		return "", err
	}
	if !msg.Result.OK() {
		err := rejectedError(msg.Result)
		u.logger.Error("upload rejected", "id", msg.ID, "code", msg.Result.Code, "message", msg.Result.Message)
		return "", err
	}

	u.logger.Info("upload finished", "id", msg.ID, "url", msg.Result.AbsURL)
	return msg.Result.AbsURL, nil
}
