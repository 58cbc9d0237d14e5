package main

import (
	"bytes"
	"context"
	"net/http"
	"pcpro/internal/shared/config"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendURL = "https://backend.passculture.local"

func newMockedClient(t *testing.T) (*apiclient.Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	c, err := apiclient.NewClient(apiclient.Config{BaseURL: backendURL},
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
		apiclient.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	return c, transport
}

func TestRunFeatures(t *testing.T) {
	c, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodGet, backendURL+"/features",
		httpmock.NewStringResponder(http.StatusOK, `[{"id": 7, "isActive": false, "name": "ENABLE_PRO_TITELIVE_MUSIC_GENRES"}]`))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), c, []string{"features"}, &out))
	assert.Contains(t, out.String(), `"name": "ENABLE_PRO_TITELIVE_MUSIC_GENRES"`)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestRunOffer(t *testing.T) {
	c, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodGet, backendURL+"/offers/42",
		httpmock.NewStringResponder(http.StatusNotFound, `{"global": ["Aucun objet ne correspond"]}`))

	err := run(context.Background(), c, []string{"offer", "42"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusNotFound))

	err = run(context.Background(), c, []string{"offer", "forty-two"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid offer id "forty-two"`)

	err = run(context.Background(), c, []string{"offer"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunBookingWithoutTokenIsRejectedLocally(t *testing.T) {
	c, transport := newMockedClient(t)

	err := run(context.Background(), c, []string{"booking"}, &bytes.Buffer{})
	require.ErrorIs(t, err, apiclient.ErrRequired)
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestRunUnknownCommand(t *testing.T) {
	c, _ := newMockedClient(t)

	err := run(context.Background(), c, []string{"stocks"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown command "stocks"`)

	assert.Error(t, run(context.Background(), c, nil, &bytes.Buffer{}))
}

func TestSignin(t *testing.T) {
	c, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodPost, backendURL+"/users/signin",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			return httpmock.NewStringResponse(http.StatusOK, `{"id": 1, "email": "pro@example.com"}`), nil
		})

	err := signin(context.Background(), c, config.LoginConfig{Email: "pro@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}
