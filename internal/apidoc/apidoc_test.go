package apidoc

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"pcpro/pkg/adage"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/pro"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	OpenAPI string                                `json:"openapi"`
	Info    map[string]any                        `json:"info"`
	Paths   map[string]map[string]documentedRoute `json:"paths"`
}

type documentedRoute struct {
	OperationID string                    `json:"operationId"`
	Tags        []string                  `json:"tags"`
	Deprecated  bool                      `json:"deprecated"`
	Security    []map[string][]string     `json:"security"`
	Parameters  []map[string]any          `json:"parameters"`
	Responses   map[string]map[string]any `json:"responses"`
}

func buildDocument(t *testing.T) document {
	t.Helper()
	raw, err := JSON("pass Culture pro API", "test",
		Group{Name: "pro", Operations: pro.Operations()},
		Group{Name: "adage", Operations: adage.Operations()},
	)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestJSONDocumentsEveryRoute(t *testing.T) {
	doc := buildDocument(t)

	assert.Equal(t, "pass Culture pro API", doc.Info["title"])
	assert.Equal(t, "test", doc.Info["version"])

	count := 0
	for _, item := range doc.Paths {
		count += len(item)
	}
	assert.Equal(t, len(pro.Operations())+len(adage.Operations()), count)

	offer := doc.Paths["/offers/{offer_id}"]
	require.Contains(t, offer, "get")
	require.Contains(t, offer, "patch")
	assert.Equal(t, "pro_getOffer", offer["get"].OperationID)
	assert.Equal(t, []string{"pro/offers"}, offer["get"].Tags)
	require.Len(t, offer["get"].Parameters, 1)
	assert.Equal(t, "offer_id", offer["get"].Parameters[0]["name"])
	assert.Equal(t, "path", offer["get"].Parameters[0]["in"])
	assert.Equal(t, true, offer["get"].Parameters[0]["required"])
}

func TestJSONResponsesAndFlags(t *testing.T) {
	doc := buildDocument(t)

	keep := doc.Paths["/bookings/keep/token/{token}"]["patch"]
	assert.Contains(t, keep.Responses, "204")
	require.Contains(t, keep.Responses, "404")
	assert.Equal(t, "La contremarque n'existe pas", keep.Responses["404"]["description"])

	assert.True(t, doc.Paths["/offers/draft"]["post"].Deprecated)

	auth := doc.Paths["/adage-iframe/authenticate"]["get"]
	require.NotEmpty(t, auth.Security)
	assert.Contains(t, auth.Security[0], bearerScheme)

	fake := doc.Paths["/adage-iframe/testing/token"]["get"]
	assert.Empty(t, fake.Security)
}

func TestParamsStructure(t *testing.T) {
	assert.Nil(t, paramsStructure(nil))

	v := paramsStructure([]apiclient.Param{
		apiclient.PathParam("offer_id", 0),
		apiclient.QueryParam("offerer-id", ""),
	})
	require.NotNil(t, v)
	assert.Equal(t, "P0offerid", reflectField(v, 0).Name)
	assert.Equal(t, `path:"offer_id" required:"true"`, string(reflectField(v, 0).Tag))
	assert.Equal(t, `query:"offerer-id"`, string(reflectField(v, 1).Tag))
}

func reflectField(v any, i int) reflect.StructField {
	return reflect.TypeOf(v).Field(i)
}

const backendSchema = `{
  "openapi": "3.0.2",
  "info": {"title": "pass Culture pro private API", "version": "2"},
  "paths": {
    "/features": {
      "get": {"operationId": "list_features", "responses": {"200": {"description": "OK"}}}
    },
    "/offers/{id}": {
      "get": {
        "operationId": "get_offer",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/offers/{offer_id}/highlights": {
      "post": {
        "operationId": "post_highlight_request",
        "parameters": [{"name": "offer_id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {"204": {"description": "No Content"}}
      }
    }
  }
}`

func TestDiff(t *testing.T) {
	doc, err := ParseBackendSpec([]byte(backendSchema))
	require.NoError(t, err)

	ops := []*apiclient.Operation{
		{ID: "listFeatures", Method: http.MethodGet, Path: "/features"},
		{ID: "getOffer", Method: http.MethodGet, Path: "/offers/{offer_id}"},
		{ID: "getVenues", Method: http.MethodGet, Path: "/venues"},
	}
	report := Diff(doc, ops)

	assert.Equal(t, 2, report.Matched)
	assert.False(t, report.Clean())
	if diff := cmp.Diff([]Route{{Method: http.MethodPost, Path: "/offers/{offer_id}/highlights", ID: "post_highlight_request"}}, report.Missing); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Route{{Method: http.MethodGet, Path: "/venues", ID: "getVenues"}}, report.Unknown); diff != "" {
		t.Errorf("unknown mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "GET /venues (getVenues)", report.Unknown[0].String())
}

func TestLoadBackendSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(path, []byte(backendSchema), 0o600))

	doc, err := LoadBackendSpec(path)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Paths.Len())

	_, err = LoadBackendSpec(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRouteKey(t *testing.T) {
	assert.Equal(t, "GET /offers/{}/stocks", routeKey("get", "/offers/{offer_id}/stocks/"))
	assert.Equal(t, routeKey("PATCH", "/bookings/keep/token/{token}"), routeKey("patch", "/bookings/keep/token/{t}"))
}
