package upload

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// HTTPConfig configures the form API client.
type HTTPConfig struct {
	// Endpoint is the API base URL; the bucket is appended as the path.
	Endpoint string
	Bucket   string
	Secret   string
	// Host is prefixed to the returned path to build the absolute URL.
	Host string
	// Dir is the save-key directory, "/ninja" when empty.
	Dir string
	// Expiration bounds the policy lifetime, 10 minutes when zero.
	Expiration time.Duration
	// UserAgent is sent with every request, "ninja" when empty.
	UserAgent string
}

const (
	defaultSaveDir    = "/ninja"
	defaultExpiration = 10 * time.Minute
	defaultUserAgent  = "ninja"
)

// HTTPClient posts files with a signed policy as multipart forms.
type HTTPClient struct {
	cfg   HTTPConfig
	http  *http.Client
	now   func() time.Time
	newID func() string
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPClient) {
		if c != nil {
			h.http = c
		}
	}
}

// WithClock replaces the policy clock.
func WithClock(now func() time.Time) HTTPOption {
	return func(h *HTTPClient) {
		if now != nil {
			h.now = now
		}
	}
}

// WithKeyGenerator replaces the save-key name generator.
func WithKeyGenerator(gen func() string) HTTPOption {
	return func(h *HTTPClient) {
		if gen != nil {
			h.newID = gen
		}
	}
}

// NewHTTPClient validates cfg and returns a client.
func NewHTTPClient(cfg HTTPConfig, opts ...HTTPOption) (*HTTPClient, error) {
	switch {
	case strings.TrimSpace(cfg.Endpoint) == "":
		return nil, invalidConfigError(errors.New("upload: endpoint is required"))
	case strings.TrimSpace(cfg.Bucket) == "":
		return nil, invalidConfigError(errors.New("upload: bucket is required"))
	case cfg.Secret == "":
		return nil, invalidConfigError(errors.New("upload: secret is required"))
	}
	if cfg.Dir == "" {
		cfg.Dir = defaultSaveDir
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = defaultExpiration
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	c := &HTTPClient{
		cfg:   cfg,
		http:  http.DefaultClient,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Upload posts the file at req.Path and decodes the service response.
func (c *HTTPClient) Upload(ctx context.Context, req Request) (Result, error) {
	policy, err := c.policy(req)
	if err != nil {
		return Result{}, err
	}

	body, contentType, err := c.form(req.Path, policy)
	if err != nil {
		return Result{}, err
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/" + c.cfg.Bucket
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{}, fmt.Errorf("upload: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("upload: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("upload: read response: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return Result{}, fmt.Errorf("upload: unexpected response (status %d)", resp.StatusCode)
	}

	res := Result{
		Code:    int(gjson.GetBytes(raw, "code").Int()),
		Message: gjson.GetBytes(raw, "message").String(),
		URL:     gjson.GetBytes(raw, "url").String(),
	}
	if res.URL != "" {
		res.AbsURL = strings.TrimRight(c.cfg.Host, "/") + res.URL
	}
	return res, nil
}

// policy returns the base64 policy document for req.
func (c *HTTPClient) policy(req Request) (string, error) {
	key := path.Join(c.cfg.Dir, c.newID()+strings.ToLower(filepath.Ext(req.Path)))

	doc, err := sjson.Set("", "bucket", c.cfg.Bucket)
	if err == nil {
		doc, err = sjson.Set(doc, "expiration", c.now().Add(c.cfg.Expiration).Unix())
	}
	if err == nil {
		doc, err = sjson.Set(doc, "save-key", key)
	}
	if err != nil {
		return "", fmt.Errorf("upload: encode policy: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(doc)), nil
}

// Signature signs a policy with secret.
func Signature(policy, secret string) string {
	sum := md5.Sum([]byte(policy + "&" + secret))
	return hex.EncodeToString(sum[:])
}

func (c *HTTPClient) form(filePath, policy string) (io.Reader, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("upload: open %s: %w", filePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("policy", policy); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("signature", Signature(policy, c.cfg.Secret)); err != nil {
		return nil, "", err
	}
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("upload: read %s: %w", filePath, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
