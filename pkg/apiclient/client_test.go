package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"pcpro/pkg/logger"
	"pcpro/pkg/metrics"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, cfg Config, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithLogger(logger.Discard())}, opts...)
	c, err := NewClient(cfg, opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)

	_, err = NewClient(Config{BaseURL: "not a url"})
	require.Error(t, err)

	c, err := NewClient(Config{BaseURL: "https://backend.passculture.local/"})
	require.NoError(t, err)
	assert.Equal(t, "https://backend.passculture.local", c.Config().BaseURL)
}

func TestDoSendsJSONRequest(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/offers/3", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("debug"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "pcpro/1.2.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"name":"Concert"}`))
	}))
	defer server.Close()

	c := newTestClient(t, Config{
		BaseURL: server.URL,
		Version: "1.2.0",
		Token:   Static("secret"),
		Headers: map[string]string{"X-Custom": "yes"},
	})

	name := "Concert"
	call, err := Build[offer](NewBuilder(patchOp).Path("offer_id", 3).JSON(&patchBody{Name: &name}),
		WithQueryParam("debug", "1"))
	require.NoError(t, err)

	got, err := Do(context.Background(), c, call)
	require.NoError(t, err)
	assert.Equal(t, offer{ID: 3, Name: "Concert"}, got)
	assert.Equal(t, map[string]any{"name": "Concert"}, gotBody)
}

func TestDoFormBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Studio", r.PostForm.Get("credit"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, Config{BaseURL: server.URL})
	credit := "Studio"
	call, err := Build[NoContent](NewBuilder(imageOp).Path("offer_id", 1).FormField("credit", &credit).Form())
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)
}

func TestDoRawPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id;name\n1;Concert\n"))
	}))
	defer server.Close()

	c := newTestClient(t, Config{BaseURL: server.URL})
	call, err := Build[[]byte](NewBuilder(exportOp).
		Path("offer_id", 1).
		RequiredQuery("status", "all").
		RequiredQuery("event_date", "2024-01-01"))
	require.NoError(t, err)

	got, err := Do(context.Background(), c, call)
	require.NoError(t, err)
	assert.Equal(t, "id;name\n1;Concert\n", string(got))
}

func TestDoBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "pro@example.com", user)
		assert.Equal(t, "hunter2", pass)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, Config{
		BaseURL:  server.URL,
		Username: Static("pro@example.com"),
		Password: func(context.Context, RequestOptions) (string, error) { return "hunter2", nil },
	})
	call, err := Build[NoContent](NewBuilder(priceCategoryOp).Path("offer_id", 1).Path("price_category_id", 2))
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)
}

func TestDoResolverError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	c := newTestClient(t, Config{
		BaseURL: "https://backend.passculture.local",
		Token: func(context.Context, RequestOptions) (string, error) {
			return "", errors.New("vault sealed")
		},
	}, WithHTTPClient(&http.Client{Transport: transport}))

	call, err := Build[NoContent](NewBuilder(priceCategoryOp).Path("offer_id", 1).Path("price_category_id", 2))
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault sealed")
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestDoAPIError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/offers/9/stocks",
		httpmock.NewStringResponder(http.StatusNotFound, `{"global":["introuvable"]}`))

	reg := metrics.New()
	c := newTestClient(t, Config{BaseURL: "https://backend.passculture.local"},
		WithHTTPClient(&http.Client{Transport: transport}),
		WithMetrics(reg),
	)

	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 9))
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Description)
	assert.Equal(t, "getStocks", apiErr.Operation)
	assert.JSONEq(t, `{"global":["introuvable"]}`, string(apiErr.Body))
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "404 Not Found")

	count, err := testutil.GatherAndCount(reg.Registry(), "pcapi_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDoTransportError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/offers/9/stocks",
		httpmock.NewErrorResponder(errors.New("connection reset")))

	reg := metrics.New()
	c := newTestClient(t, Config{BaseURL: "https://backend.passculture.local"},
		WithHTTPClient(&http.Client{Transport: transport}),
		WithMetrics(reg),
	)

	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 9))
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	count, err := testutil.GatherAndCount(reg.Registry(), "pcapi_client_transport_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDoJSONResponder(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/offers/2/stocks",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, offer{ID: 2, Name: "Livre"}))

	c := newTestClient(t, Config{BaseURL: "https://backend.passculture.local"},
		WithHTTPClient(&http.Client{Transport: transport}))

	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 2))
	require.NoError(t, err)

	got, err := Do(context.Background(), c, call)
	require.NoError(t, err)
	assert.Equal(t, "Livre", got.Name)
}

func TestWithCredentialsKeepsSessionCookie(t *testing.T) {
	var sawCookie bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("session"); err == nil && cookie.Value == "abc" {
			sawCookie = true
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, Config{BaseURL: server.URL, WithCredentials: true})
	call, err := Build[NoContent](NewBuilder(priceCategoryOp).Path("offer_id", 1).Path("price_category_id", 2))
	require.NoError(t, err)

	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)
	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)
	assert.True(t, sawCookie)
}

func TestExpiredTokenIsLogged(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	token, err := expired.SignedString([]byte("test"))
	require.NoError(t, err)

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/offers/1/stocks",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	var buf bytes.Buffer
	c, err := NewClient(Config{BaseURL: "https://backend.passculture.local", Token: Static(token)},
		WithHTTPClient(&http.Client{Transport: transport}),
		WithLogger(logger.NewWithWriter(&buf)),
	)
	require.NoError(t, err)

	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 1))
	require.NoError(t, err)
	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Bearer Token Expired")

	exp, ok := TokenExpiry(token)
	assert.True(t, ok)
	assert.True(t, exp.Before(time.Now()))
	_, ok = TokenExpiry("opaque")
	assert.False(t, ok)
}

func TestRequestEditor(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/offers/1/stocks",
		func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "edited", r.Header.Get("X-Edited"))
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	c := newTestClient(t, Config{BaseURL: "https://backend.passculture.local"},
		WithHTTPClient(&http.Client{Transport: transport}),
		WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			req.Header.Set("X-Edited", "edited")
			return nil
		}),
	)
	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 1))
	require.NoError(t, err)
	_, err = Do(context.Background(), c, call)
	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestRecordBuildError(t *testing.T) {
	reg := metrics.New()
	c := newTestClient(t, Config{BaseURL: "https://backend.passculture.local"}, WithMetrics(reg))

	_, err := Build[NoContent](NewBuilder(priceCategoryOp).Path("offer_id", 0).Path("price_category_id", 1))
	assert.Same(t, err, c.RecordBuildError(context.Background(), err))

	count, gatherErr := testutil.GatherAndCount(reg.Registry(), "pcapi_client_required_param_errors_total")
	require.NoError(t, gatherErr)
	assert.Equal(t, 1, count)
}

func TestEncodeBody(t *testing.T) {
	r, err := encodeBody("")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = encodeBody(map[string]int{"a": 1})
	require.NoError(t, err)
	data, _ := io.ReadAll(r)
	assert.JSONEq(t, `{"a":1}`, string(data))
}
