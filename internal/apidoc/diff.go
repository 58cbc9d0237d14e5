package apidoc

import (
	"fmt"
	"pcpro/pkg/apiclient"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Route identifies one endpoint by method and path template.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	ID     string `json:"id,omitempty"`
}

func (r Route) String() string {
	if r.ID == "" {
		return r.Method + " " + r.Path
	}
	return fmt.Sprintf("%s %s (%s)", r.Method, r.Path, r.ID)
}

// Report compares the backend schema with the client's endpoint tables.
type Report struct {
	// Missing lists backend endpoints the client has no builder for.
	Missing []Route `json:"missing"`
	// Unknown lists client endpoints the backend no longer publishes.
	Unknown []Route `json:"unknown"`
	Matched int     `json:"matched"`
}

// Clean reports whether both sides agree.
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unknown) == 0
}

// LoadBackendSpec reads the OpenAPI document published by the backend.
func LoadBackendSpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// ParseBackendSpec is LoadBackendSpec for an in-memory document.
func ParseBackendSpec(data []byte) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return doc, nil
}

var placeholder = regexp.MustCompile(`\{[^}]+\}`)

// routeKey ignores placeholder names, which differ between the backend
// schema and the client tables for a handful of routes.
func routeKey(method, path string) string {
	path = strings.TrimSuffix(path, "/")
	return strings.ToUpper(method) + " " + placeholder.ReplaceAllString(path, "{}")
}

// Diff matches every backend operation against ops.
func Diff(doc *openapi3.T, ops []*apiclient.Operation) Report {
	client := make(map[string]*apiclient.Operation, len(ops))
	for _, op := range ops {
		client[routeKey(op.Method, op.Path)] = op
	}

	var report Report
	seen := make(map[string]bool)
	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			for method, op := range item.Operations() {
				key := routeKey(method, path)
				seen[key] = true
				if _, ok := client[key]; ok {
					report.Matched++
					continue
				}
				report.Missing = append(report.Missing, Route{Method: method, Path: path, ID: op.OperationID})
			}
		}
	}
	for key, op := range client {
		if !seen[key] {
			report.Unknown = append(report.Unknown, Route{Method: op.Method, Path: op.Path, ID: op.ID})
		}
	}

	sortRoutes(report.Missing)
	sortRoutes(report.Unknown)
	return report
}

func sortRoutes(routes []Route) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
}
