package apiclient

import (
	"sort"
	"strings"
)

type ParamIn string

const (
	InPath  ParamIn = "path"
	InQuery ParamIn = "query"
)

// Param describes one path or query parameter of an operation. Example holds
// a zero value of the Go type the builder accepts and is used for documentation.
type Param struct {
	Name     string
	In       ParamIn
	Required bool
	Example  any
}

// PathParam declares a path placeholder. Path parameters are always required.
func PathParam(name string, example any) Param {
	return Param{Name: name, In: InPath, Required: true, Example: example}
}

// QueryParam declares an optional query parameter.
func QueryParam(name string, example any) Param {
	return Param{Name: name, In: InQuery, Example: example}
}

// RequiredQueryParam declares a query parameter that must be supplied.
func RequiredQueryParam(name string, example any) Param {
	return Param{Name: name, In: InQuery, Required: true, Example: example}
}

type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingJSON
	EncodingForm
)

func (e Encoding) MediaType() string {
	switch e {
	case EncodingJSON:
		return "application/json"
	case EncodingForm:
		return "application/x-www-form-urlencoded"
	default:
		return ""
	}
}

// Raw marks operations whose response payload is returned as bytes
// (CSV and Excel exports, opaque JSON).
type Raw struct{}

// NoContent marks operations whose response payload is discarded.
type NoContent struct{}

// Operation is the static description of one API endpoint.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	// Secured operations need a bearer token.
	Secured  bool
	Params   []Param
	Body     any
	Encoding Encoding
	Response any
	// Errors maps documented status codes to their description.
	Errors map[int]string
}

// PathParams returns the names of the path placeholders in declaration order.
func (o *Operation) PathParams() []string {
	var names []string
	for _, p := range o.Params {
		if p.In == InPath {
			names = append(names, p.Name)
		}
	}
	return names
}

// Placeholders extracts the {name} segments of the path template.
func (o *Operation) Placeholders() []string {
	var names []string
	rest := o.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// SortOperations orders operations by path, then method.
func SortOperations(ops []*Operation) {
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
}
