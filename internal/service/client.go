// Package service is the HTTP client for the plan backend: plan generation,
// InBody image extraction and health checks.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/plan"
)

// DefaultBaseURL is where the backend is served behind the reverse proxy.
const DefaultBaseURL = "http://localhost/api"

// MsgBadResponse is shown when a 2xx body cannot be decoded.
const MsgBadResponse = "The server returned an unexpected response."

// Health is the health-check payload.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Info is the API description served at the base URL.
type Info struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Client talks to the backend. It never retries; callers own concurrency.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// New creates a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// GeneratePlan submits the full form and returns the analysis and plan.
func (c *Client) GeneratePlan(ctx context.Context, d form.Data) (*plan.Result, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, &Error{Op: OpGenerate, Kind: KindRequest, Message: buildFailure(OpGenerate), Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate/", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Op: OpGenerate, Kind: KindRequest, Message: buildFailure(OpGenerate), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var res plan.Result
	if err := c.do(OpGenerate, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ExtractFromImage uploads an InBody sheet photo and returns the values read from it.
func (c *Client) ExtractFromImage(ctx context.Context, img Image) (*form.ExtractionResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writeImagePart(mw, img); err != nil {
		return nil, &Error{Op: OpExtract, Kind: KindRequest, Message: buildFailure(OpExtract), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract-inbody/", &buf)
	if err != nil {
		return nil, &Error{Op: OpExtract, Kind: KindRequest, Message: buildFailure(OpExtract), Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res form.ExtractionResult
	if err := c.do(OpExtract, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func writeImagePart(mw *multipart.Writer, img Image) error {
	if len(img.Data) == 0 {
		return fmt.Errorf("image %q is empty", img.Filename)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, img.Filename))
	h.Set("Content-Type", img.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating image part: %w", err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return fmt.Errorf("writing image part: %w", err)
	}
	return mw.Close()
}

// HealthCheck reports the backend status.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, OpHealth, "/health/", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Info fetches the API description.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var info Info
	if err := c.get(ctx, OpInfo, "/", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, op Op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Op: op, Kind: KindRequest, Message: buildFailure(op), Err: err}
	}
	return c.do(op, req, out)
}

// do sends req and decodes a 2xx JSON body into out, mapping every failure
// onto the Error taxonomy.
func (c *Client) do(op Op, req *http.Request, out any) error {
	start := time.Now()
	logger.Debug("%s %s", req.Method, req.URL)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("%s request failed: %v", op, err)
		return &Error{Op: op, Kind: KindConnectivity, Message: connectivityFailure(op), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindConnectivity, Message: connectivityFailure(op), Err: err}
	}
	logger.Debug("%s %s -> %d in %s", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := remoteFallback(op)
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		logger.Warn("%s rejected with status %d: %s", op, resp.StatusCode, msg)
		return &Error{Op: op, Kind: KindRemote, Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Kind: KindRemote, Status: resp.StatusCode, Message: MsgBadResponse, Err: err}
	}
	return nil
}
