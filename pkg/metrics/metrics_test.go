package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveResponse(t *testing.T) {
	c := New()
	c.ObserveResponse("getOffer", "GET", 200, 10*time.Millisecond)
	c.ObserveResponse("getOffer", "GET", 200, 20*time.Millisecond)
	c.ObserveResponse("getOffer", "GET", 404, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("getOffer", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("getOffer", "GET", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestObserveErrors(t *testing.T) {
	c := New()
	c.ObserveTransportError("listFeatures", time.Second)
	c.ObserveRequiredError("deletePriceCategory", "offer_id")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("listFeatures")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requiredFails.WithLabelValues("deletePriceCategory", "offer_id")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.ObserveResponse("signin", "POST", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `pcapi_client_requests_total{code="200",method="POST",operation="signin"} 1`), body)
}
