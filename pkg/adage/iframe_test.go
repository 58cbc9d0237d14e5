package adage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("adage-test-key")

type adageClaims struct {
	UAI  string `json:"uai"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// newFakeIframeBackend serves the token and authenticate routes the way the
// backend's testing environment does.
func newFakeIframeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/adage-iframe/testing/token", func(c *gin.Context) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, adageClaims{
			UAI:  "0470009E",
			Role: "redactor",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(testSigningKey)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": signed})
	})

	r.GET("/adage-iframe/authenticate", func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		claims := &adageClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return testSigningKey, nil
		})
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":            claims.Role,
			"uai":             claims.UAI,
			"institutionName": "Collège Jean Moulin",
			"favoritesCount":  2,
		})
	})

	return httptest.NewServer(r)
}

func TestFakeTokenThenAuthenticate(t *testing.T) {
	server := newFakeIframeBackend(t)
	defer server.Close()

	public, err := apiclient.NewClient(apiclient.Config{BaseURL: server.URL}, apiclient.WithLogger(logger.Discard()))
	require.NoError(t, err)

	tokenCall, err := CreateAdageJWTFakeToken()
	require.NoError(t, err)
	raw, err := apiclient.Do(context.Background(), public, tokenCall)
	require.NoError(t, err)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.NotEmpty(t, payload.Token)

	exp, ok := apiclient.TokenExpiry(payload.Token)
	require.True(t, ok)
	assert.True(t, exp.After(time.Now()))

	secured, err := apiclient.NewClient(apiclient.Config{
		BaseURL: server.URL,
		Token:   apiclient.Static(payload.Token),
	}, apiclient.WithLogger(logger.Discard()))
	require.NoError(t, err)

	authCall, err := Authenticate()
	require.NoError(t, err)
	me, err := apiclient.Do(context.Background(), secured, authCall)
	require.NoError(t, err)

	assert.Equal(t, AdageFrontRolesRedactor, me.Role)
	require.NotNil(t, me.UAI)
	assert.Equal(t, "0470009E", *me.UAI)
	require.NotNil(t, me.FavoritesCount)
	assert.Equal(t, 2, *me.FavoritesCount)
}

func TestAuthenticateWithoutToken(t *testing.T) {
	server := newFakeIframeBackend(t)
	defer server.Close()

	c, err := apiclient.NewClient(apiclient.Config{BaseURL: server.URL}, apiclient.WithLogger(logger.Discard()))
	require.NoError(t, err)

	call, err := Authenticate()
	require.NoError(t, err)
	_, err = apiclient.Do(context.Background(), c, call)

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Description)
}

func TestGetVenueByIDQuery(t *testing.T) {
	relative := true
	call, err := GetVenueByID(3, &relative)
	require.NoError(t, err)
	assert.Equal(t, "/adage-iframe/venues/3?getRelative=true", call.Request.FullURL())

	call, err = GetVenueByID(3, nil)
	require.NoError(t, err)
	assert.Equal(t, "/adage-iframe/venues/3", call.Request.FullURL())
}

func TestRequiredParameters(t *testing.T) {
	_, err := GetCollectiveOffer(0)
	var reqErr *apiclient.RequiredError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "offer_id", reqErr.Field)
	assert.Equal(t, "getCollectiveOffer", reqErr.Operation)

	_, err = GetCollectiveOfferTemplates(nil)
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "ids", reqErr.Field)

	_, err = GetVenueBySiret("", nil)
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "siret", reqErr.Field)
}

func TestGetCollectiveOfferTemplatesExplodesIDs(t *testing.T) {
	call, err := GetCollectiveOfferTemplates([]int{4, 8})
	require.NoError(t, err)
	assert.Equal(t, "/adage-iframe/collective/offers-template/?ids=4&ids=8", call.Request.FullURL())
}

func TestTrackingLogBody(t *testing.T) {
	body := &StockIdBody{IframeFrom: "search", StockID: 12}
	call, err := LogBookingModalButtonClick(body)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, call.Request.Method)
	assert.Equal(t, "/adage-iframe/logs/booking-modal-button", call.Request.URL)
	assert.Equal(t, "application/json", call.Request.Headers["Content-Type"])
	assert.Same(t, body, call.Request.Body)
}

func TestOperationsTable(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 45)

	var public []string
	for _, op := range ops {
		assert.True(t, strings.HasPrefix(op.Path, "/adage-iframe/"), op.ID)
		assert.Equal(t, op.Placeholders(), op.PathParams(), op.ID)
		if !op.Secured {
			public = append(public, op.ID)
		}
	}
	assert.Equal(t, []string{"createAdageJwtFakeToken"}, public)
}
