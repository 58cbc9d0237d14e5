package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"pcpro/pkg/logger"
	"pcpro/pkg/metrics"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// HttpRequestDoer performs HTTP requests. *http.Client satisfies it.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is called on every outgoing request right before it is sent.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// Client executes built calls against one backend.
type Client struct {
	cfg     Config
	doer    HttpRequestDoer
	logger  *logger.Logger
	metrics *metrics.Collector
	editors []RequestEditorFn
	now     func() time.Time
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.doer = doer
		return nil
	}
}

func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

func WithMetrics(m *metrics.Collector) ClientOption {
	return func(c *Client) error {
		c.metrics = m
		return nil
	}
}

// WithRequestEditorFn registers a callback run on every request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.editors = append(c.editors, fn)
		return nil
	}
}

// NewClient validates cfg and prepares the HTTP client. With
// cfg.WithCredentials a cookie jar keeps the session cookie between calls.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:    cfg,
		logger: logger.GetDefault(),
		now:    time.Now,
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	if c.doer == nil {
		httpClient := &http.Client{Timeout: cfg.Timeout}
		if cfg.WithCredentials {
			jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
			if err != nil {
				return nil, fmt.Errorf("creating cookie jar: %w", err)
			}
			httpClient.Jar = jar
		}
		c.doer = httpClient
	}
	return c, nil
}

// Config returns the settings the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Do sends the call and decodes a 2xx response into T. []byte receives the
// raw payload and NoContent discards it. Non-2xx statuses return *APIError.
func Do[T any](ctx context.Context, c *Client, call *Call[T]) (T, error) {
	var out T
	payload, err := c.send(ctx, call.Request)
	if err != nil {
		return out, err
	}
	if err := decode(&out, payload); err != nil {
		return out, fmt.Errorf("%s: decoding response: %w", call.Request.Operation, err)
	}
	return out, nil
}

func decode(dst any, payload []byte) error {
	switch d := dst.(type) {
	case *NoContent:
		return nil
	case *[]byte:
		*d = payload
		return nil
	case *string:
		*d = string(payload)
		return nil
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	return json.Unmarshal(payload, dst)
}

func (c *Client) send(ctx context.Context, req RequestOptions) ([]byte, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	requestID := httpReq.Header.Get("X-Request-ID")
	log := c.logger.WithOperation(req.Operation).WithRequestID(requestID)

	start := c.now()
	resp, err := c.doer.Do(httpReq)
	elapsed := c.now().Sub(start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveTransportError(req.Operation, elapsed)
		}
		log.LogHTTPError(ctx, req.Method, httpReq.URL.String(), err, 0)
		return nil, fmt.Errorf("%s: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveResponse(req.Operation, req.Method, resp.StatusCode, elapsed)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		log.LogHTTPError(ctx, req.Method, httpReq.URL.String(), err, resp.StatusCode)
		return nil, fmt.Errorf("%s: reading response: %w", req.Operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Operation:   req.Operation,
			Method:      req.Method,
			URL:         httpReq.URL.String(),
			StatusCode:  resp.StatusCode,
			Body:        payload,
			Description: req.Errors[resp.StatusCode],
		}
		log.LogHTTPError(ctx, req.Method, apiErr.URL, apiErr, resp.StatusCode)
		return nil, apiErr
	}

	log.LogHTTPRequest(ctx, req.Method, httpReq.URL.String(), resp.StatusCode, elapsed)
	return payload, nil
}

func (c *Client) newRequest(ctx context.Context, req RequestOptions) (*http.Request, error) {
	target, err := url.Parse(c.cfg.BaseURL + req.FullURL())
	if err != nil {
		return nil, fmt.Errorf("%s: building url: %w", req.Operation, err)
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding body: %w", req.Operation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Operation, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent())
	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	if err := c.authorize(ctx, httpReq, req); err != nil {
		return nil, fmt.Errorf("%s: %w", req.Operation, err)
	}
	for _, edit := range c.editors {
		if err := edit(ctx, httpReq); err != nil {
			return nil, fmt.Errorf("%s: %w", req.Operation, err)
		}
	}
	return httpReq, nil
}

// RecordBuildError logs a builder error and counts it when it names a
// missing required parameter. It returns err unchanged.
func (c *Client) RecordBuildError(ctx context.Context, err error) error {
	var reqErr *RequiredError
	if errors.As(err, &reqErr) {
		if c.metrics != nil {
			c.metrics.ObserveRequiredError(reqErr.Operation, reqErr.Field)
		}
		c.logger.WithOperation(reqErr.Operation).ErrorWithContext(ctx, "Request rejected", err, map[string]interface{}{
			"field": reqErr.Field,
		})
		return err
	}
	if err != nil {
		c.logger.ErrorWithContext(ctx, "Request rejected", err, nil)
	}
	return err
}

func (c *Client) userAgent() string {
	if c.cfg.Version == "" {
		return "pcpro"
	}
	return "pcpro/" + c.cfg.Version
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		if b == "" {
			return nil, nil
		}
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case url.Values:
		return strings.NewReader(b.Encode()), nil
	case io.Reader:
		return b, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
