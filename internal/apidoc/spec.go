package apidoc

import (
	"fmt"
	"net/http"
	"pcpro/pkg/apiclient"
	"reflect"
	"sort"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi31"
)

const bearerScheme = "JWTAuth"

// Group is one API surface, documented under a shared tag prefix.
type Group struct {
	Name       string
	Operations []*apiclient.Operation
}

// Build reflects the endpoint tables into an OpenAPI 3.1 document.
func Build(title, version string, groups ...Group) (*openapi31.Spec, error) {
	r := openapi31.NewReflector()
	r.Spec.Info.WithTitle(title).WithVersion(version)
	r.Spec.SetHTTPBearerTokenSecurity(bearerScheme, "JWT", "Adage iframe token")

	for _, g := range groups {
		for _, op := range g.Operations {
			if err := addOperation(r, g.Name, op); err != nil {
				return nil, fmt.Errorf("%s %s: %w", g.Name, op.ID, err)
			}
		}
	}
	return r.Spec, nil
}

// JSON builds the document and renders it as indented JSON.
func JSON(title, version string, groups ...Group) ([]byte, error) {
	spec, err := Build(title, version, groups...)
	if err != nil {
		return nil, err
	}
	return spec.MarshalJSON()
}

func addOperation(r *openapi31.Reflector, group string, op *apiclient.Operation) error {
	oc, err := r.NewOperationContext(op.Method, op.Path)
	if err != nil {
		return err
	}
	oc.SetID(group + "_" + op.ID)
	oc.SetSummary(op.ID)
	oc.SetDescription(op.Description)
	oc.SetIsDeprecated(op.Deprecated)
	tags := make([]string, 0, len(op.Tags))
	for _, t := range op.Tags {
		tags = append(tags, group+"/"+t)
	}
	oc.SetTags(tags...)
	if op.Secured {
		oc.AddSecurity(bearerScheme)
	}

	if params := paramsStructure(op.Params); params != nil {
		oc.AddReqStructure(params)
	}
	if op.Body != nil {
		oc.AddReqStructure(op.Body, openapi.WithContentType(op.Encoding.MediaType()))
	}

	switch op.Response.(type) {
	case apiclient.NoContent:
		oc.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	case apiclient.Raw:
		oc.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("application/octet-stream"))
	default:
		oc.AddRespStructure(op.Response, openapi.WithHTTPStatus(http.StatusOK))
	}

	codes := make([]int, 0, len(op.Errors))
	for code := range op.Errors {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		desc := op.Errors[code]
		oc.AddRespStructure(nil, openapi.WithHTTPStatus(code), func(cu *openapi.ContentUnit) {
			cu.Description = desc
		})
	}

	return r.AddOperation(oc)
}

var dateType = reflect.TypeOf(openapi_types.Date{})

// paramsStructure builds a struct value whose tags describe the path and
// query parameters, which is the shape the reflector reads parameters from.
func paramsStructure(params []apiclient.Param) interface{} {
	if len(params) == 0 {
		return nil
	}
	fields := make([]reflect.StructField, 0, len(params))
	for i, p := range params {
		typ := reflect.TypeOf(p.Example)
		tag := fmt.Sprintf(`%s:"%s"`, p.In, p.Name)
		if typ == nil {
			typ = reflect.TypeOf("")
		}
		if typ == dateType {
			typ = reflect.TypeOf("")
			tag += ` format:"date"`
		}
		if p.Required {
			tag += ` required:"true"`
		}
		fields = append(fields, reflect.StructField{
			Name: fmt.Sprintf("P%d%s", i, exportedSuffix(p.Name)),
			Type: typ,
			Tag:  reflect.StructTag(tag),
		})
	}
	return reflect.New(reflect.StructOf(fields)).Elem().Interface()
}

func exportedSuffix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
