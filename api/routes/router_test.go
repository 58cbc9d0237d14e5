package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"pcpro/internal/apidoc"
	"pcpro/internal/shared/config"
	"pcpro/pkg/adage"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"pcpro/pkg/metrics"
	"pcpro/pkg/pro"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendURL = "https://backend.passculture.local"

func setupTestRouter(t *testing.T, transport *httpmock.MockTransport) (*gin.Engine, *metrics.Collector) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.API.BaseURL = backendURL
	cfg.API.Version = "test"
	cfg.Docs.Title = "pass Culture pro API"

	collector := metrics.New()
	client, err := apiclient.NewClient(cfg.ClientConfig(),
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
		apiclient.WithLogger(logger.Discard()),
		apiclient.WithMetrics(collector),
	)
	require.NoError(t, err)

	engine := gin.New()
	NewRouter(cfg, client, collector,
		apidoc.Group{Name: "pro", Operations: pro.Operations()},
		apidoc.Group{Name: "adage", Operations: adage.Operations()},
	).SetupRoutes(engine)
	return engine, collector
}

func serve(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthProbesBackend(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, backendURL+"/features",
		httpmock.NewStringResponder(http.StatusOK, `[]`))
	engine, collector := setupTestRouter(t, transport)

	rec := serve(engine, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Equal(t, 1, transport.GetTotalCallCount())

	rec = serve(engine, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pcapi_client_requests_total{code="200",method="GET",operation="listFeatures"} 1`)
	count, err := testutil.GatherAndCount(collector.Registry(), "pcapi_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHealthReportsBackendFailure(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, backendURL+"/features",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{}`))
	engine, _ := setupTestRouter(t, transport)

	rec := serve(engine, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}

func TestPing(t *testing.T) {
	engine, _ := setupTestRouter(t, httpmock.NewMockTransport())

	rec := serve(engine, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong","version":"test"}`, rec.Body.String())
}

func TestOpenAPIDocument(t *testing.T) {
	engine, _ := setupTestRouter(t, httpmock.NewMockTransport())

	rec := serve(engine, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))

	var doc struct {
		Info  map[string]string          `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "pass Culture pro API", doc.Info["title"])
	assert.Contains(t, doc.Paths, "/offers/{offer_id}")
	assert.Contains(t, doc.Paths, "/adage-iframe/authenticate")

	// Served from memory on the second request.
	again := serve(engine, "/openapi.json")
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestSwaggerUI(t *testing.T) {
	engine, _ := setupTestRouter(t, httpmock.NewMockTransport())

	rec := serve(engine, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger")
}

func TestListOperations(t *testing.T) {
	engine, _ := setupTestRouter(t, httpmock.NewMockTransport())

	rec := serve(engine, "/operations?group=pro&tag=features")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, "listFeatures", ops[0]["id"])
	assert.Equal(t, "/features", ops[0]["path"])

	rec = serve(engine, "/operations?group=adage")
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &ops))
	assert.Len(t, ops, len(adage.Operations()))

	rec = serve(engine, "/operations?group=unknown")
	env = decodeEnvelope(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestGetOperation(t *testing.T) {
	engine, _ := setupTestRouter(t, httpmock.NewMockTransport())

	rec := serve(engine, "/operations/pro/getBookingByToken")
	require.Equal(t, http.StatusOK, rec.Code)

	var op struct {
		ID     string            `json:"id"`
		Method string            `json:"method"`
		Params []map[string]any  `json:"params"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &op))
	assert.Equal(t, "getBookingByToken", op.ID)
	assert.Equal(t, http.MethodGet, op.Method)
	require.Len(t, op.Params, 1)
	assert.Equal(t, "token", op.Params[0]["name"])
	assert.Equal(t, "La contremarque n'existe pas", op.Errors["404"])

	rec = serve(engine, "/operations/pro/doesNotExist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}
