package apiclient

import (
	"net/url"
	"strings"
)

// RequestOptions is the transport-neutral description of one request.
//
// Body is the empty string when the operation sends no payload, url.Values
// for form bodies and the caller's model for JSON bodies.
type RequestOptions struct {
	Operation string
	Method    string
	URL       string
	Headers   map[string]string
	Query     url.Values
	Body      any
	MediaType string
	Errors    map[int]string
}

// FullURL returns the path and its encoded query string.
func (r RequestOptions) FullURL() string {
	if len(r.Query) == 0 {
		return r.URL
	}
	return r.URL + "?" + r.Query.Encode()
}

// HasBody reports whether the request carries a payload.
func (r RequestOptions) HasBody() bool {
	if s, ok := r.Body.(string); ok {
		return s != ""
	}
	return r.Body != nil
}

// Option adjusts a built request. Options run after the builder, so they
// override anything it set.
type Option func(*RequestOptions)

func WithHeader(key, value string) Option {
	return func(r *RequestOptions) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[key] = value
	}
}

func WithQueryParam(key string, values ...string) Option {
	return func(r *RequestOptions) {
		if r.Query == nil {
			r.Query = url.Values{}
		}
		r.Query[key] = values
	}
}

// WithoutQueryParam drops a query parameter set by the builder.
func WithoutQueryParam(key string) Option {
	return func(r *RequestOptions) {
		r.Query.Del(key)
	}
}

// WithPathPrefix prepends prefix to the request path.
func WithPathPrefix(prefix string) Option {
	return func(r *RequestOptions) {
		r.URL = strings.TrimRight(prefix, "/") + r.URL
	}
}

// WithErrors merges extra status descriptions into the operation's error table.
func WithErrors(errs map[int]string) Option {
	return func(r *RequestOptions) {
		merged := make(map[int]string, len(r.Errors)+len(errs))
		for k, v := range r.Errors {
			merged[k] = v
		}
		for k, v := range errs {
			merged[k] = v
		}
		r.Errors = merged
	}
}

// Call is a built request whose response decodes into T.
type Call[T any] struct {
	Request RequestOptions
}
