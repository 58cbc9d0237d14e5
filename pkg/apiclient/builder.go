package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type namedValue struct {
	name  string
	value any
}

// Builder accumulates the arguments of one operation call. Validation and
// encoding are deferred to Build so that a missing required parameter is
// reported before any part of the URL is produced.
type Builder struct {
	op       *Operation
	path     []namedValue
	required []namedValue
	query    []namedValue
	form     []namedValue
	body     any
	encoding Encoding
}

func NewBuilder(op *Operation) *Builder {
	return &Builder{op: op}
}

// Path binds a value to the {name} placeholder of the path template.
func (b *Builder) Path(name string, value any) *Builder {
	b.path = append(b.path, namedValue{name, value})
	return b
}

// Query adds an optional query parameter. Nil pointers and empty slices are skipped.
func (b *Builder) Query(name string, value any) *Builder {
	b.query = append(b.query, namedValue{name, value})
	return b
}

// RequiredQuery adds a query parameter that must be present.
func (b *Builder) RequiredQuery(name string, value any) *Builder {
	b.required = append(b.required, namedValue{name, value})
	b.query = append(b.query, namedValue{name, value})
	return b
}

// JSON sets the request body. A nil body is sent as an empty payload.
func (b *Builder) JSON(body any) *Builder {
	b.encoding = EncodingJSON
	if !isAbsent(body) {
		b.body = body
	}
	return b
}

// FormField adds one form-urlencoded field. Absent values are skipped.
func (b *Builder) FormField(name string, value any) *Builder {
	b.form = append(b.form, namedValue{name, value})
	return b
}

// Form switches the body encoding to application/x-www-form-urlencoded.
func (b *Builder) Form() *Builder {
	b.encoding = EncodingForm
	return b
}

// Build validates the collected arguments and returns the request descriptor.
func Build[T any](b *Builder, opts ...Option) (*Call[T], error) {
	req, err := b.build()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&req)
	}
	return &Call[T]{Request: req}, nil
}

func (b *Builder) build() (RequestOptions, error) {
	for _, set := range [][]namedValue{b.path, b.required} {
		for _, p := range set {
			if missing(p.value) {
				return RequestOptions{}, &RequiredError{Field: p.name, Operation: b.op.ID}
			}
		}
	}

	path := b.op.Path
	for _, p := range b.path {
		styled, err := runtime.StyleParamWithLocation("simple", false, p.name, runtime.ParamLocationPath, p.value)
		if err != nil {
			return RequestOptions{}, fmt.Errorf("%s: path parameter %s: %w", b.op.ID, p.name, err)
		}
		placeholder := "{" + p.name + "}"
		if !strings.Contains(path, placeholder) {
			return RequestOptions{}, fmt.Errorf("%s: path %s has no %s placeholder", b.op.ID, b.op.Path, placeholder)
		}
		path = strings.ReplaceAll(path, placeholder, styled)
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return RequestOptions{}, fmt.Errorf("%s: unbound placeholder in %s", b.op.ID, path)
	}

	query, err := encodeValues(b.op.ID, b.query)
	if err != nil {
		return RequestOptions{}, err
	}

	req := RequestOptions{
		Operation: b.op.ID,
		Method:    b.op.Method,
		URL:       path,
		Headers:   map[string]string{},
		Query:     query,
		Body:      "",
		Errors:    b.op.Errors,
	}

	switch b.encoding {
	case EncodingJSON:
		req.MediaType = EncodingJSON.MediaType()
		req.Headers["Content-Type"] = req.MediaType
		if b.body != nil {
			req.Body = b.body
		}
	case EncodingForm:
		req.MediaType = EncodingForm.MediaType()
		req.Headers["Content-Type"] = req.MediaType
		form, err := encodeValues(b.op.ID, b.form)
		if err != nil {
			return RequestOptions{}, err
		}
		if len(form) > 0 {
			req.Body = form
		}
	}
	return req, nil
}

func encodeValues(opID string, params []namedValue) (url.Values, error) {
	values := url.Values{}
	for _, p := range params {
		if isAbsent(p.value) {
			continue
		}
		frag, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %s: %w", opID, p.name, err)
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %s: %w", opID, p.name, err)
		}
		for k, vs := range parsed {
			for _, v := range vs {
				values.Add(k, v)
			}
		}
	}
	return values, nil
}

// isAbsent reports values that an optional parameter omits entirely.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return rv.IsNil()
	case reflect.Slice:
		return rv.Len() == 0
	}
	return false
}

// missing reports values that do not satisfy a required parameter. Zero
// values count as missing.
func missing(v any) bool {
	if isAbsent(v) {
		return true
	}
	return validate.Var(v, "required") != nil
}

// Default returns *v, or def when v is nil.
func Default[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
