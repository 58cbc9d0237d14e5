package pro

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOffer(t *testing.T) {
	call, err := GetOffer(42)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, call.Request.Method)
	assert.Equal(t, "/offers/42", call.Request.URL)
	assert.Equal(t, "getOffer", call.Request.Operation)
	assert.Equal(t, "", call.Request.Body)
	assert.Empty(t, call.Request.Query)
}

func TestDeletePriceCategoryRequiresOfferID(t *testing.T) {
	call, err := DeletePriceCategory(0, 5)
	require.Error(t, err)
	assert.Nil(t, call)

	var reqErr *apiclient.RequiredError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "offer_id", reqErr.Field)
	assert.Equal(t, "deletePriceCategory", reqErr.Operation)
	assert.Equal(t, "Required parameter offer_id was null or undefined when calling deletePriceCategory.", err.Error())
}

func TestDeletePriceCategory(t *testing.T) {
	call, err := DeletePriceCategory(3, 5)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, call.Request.Method)
	assert.Equal(t, "/offers/3/price_categories/5", call.Request.URL)
}

func TestPostOfferSendsJSONBody(t *testing.T) {
	body := &PostOfferBodyModel{
		Name:          "Concert au parc",
		SubcategoryID: "CONCERT",
		VenueID:       12,
	}

	call, err := PostOffer(body)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, call.Request.Method)
	assert.Equal(t, "/offers", call.Request.URL)
	assert.Equal(t, "application/json", call.Request.Headers["Content-Type"])
	assert.Same(t, body, call.Request.Body)
}

func TestPostOfferWithoutBody(t *testing.T) {
	call, err := PostOffer(nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", call.Request.Headers["Content-Type"])
	assert.Equal(t, "", call.Request.Body)
}

func TestListOffersOmitsUnsetFilters(t *testing.T) {
	call, err := ListOffers(nil)
	require.NoError(t, err)
	assert.Equal(t, "/offers", call.Request.FullURL())

	offerer := 7
	begin := openapi_types.Date{Time: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)}
	kind := CollectiveOfferTypeTemplate
	call, err = ListOffers(&ListOffersQuery{
		OffererID:           &offerer,
		PeriodBeginningDate: &begin,
		CollectiveOfferType: &kind,
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"offererId":           {"7"},
		"periodBeginningDate": {"2024-05-01"},
		"collectiveOfferType": {"template"},
	}, call.Request.Query)
}

func TestGetBookingsProDefaultsPage(t *testing.T) {
	status := BookingStatusFilterValidated
	call, err := GetBookingsPro(&BookingsQuery{BookingStatusFilter: &status})
	require.NoError(t, err)

	assert.Equal(t, "/bookings/pro", call.Request.URL)
	assert.Equal(t, "1", call.Request.Query.Get("page"))
	assert.Equal(t, "validated", call.Request.Query.Get("bookingStatusFilter"))
	_, hasVenue := call.Request.Query["venueId"]
	assert.False(t, hasVenue)
}

func TestExportBookingsForOfferRequiresEventDate(t *testing.T) {
	_, err := ExportBookingsForOfferAsCsv(4, BookingsExportStatusFilterValidated, openapi_types.Date{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrRequired)
	assert.Contains(t, err.Error(), "event_date")
}

func TestAttachOfferImageUsesForm(t *testing.T) {
	call, err := AttachOfferImage(9, &AttachImageFormModel{
		Credit:             "Studio",
		CroppingRectHeight: 0.5,
		CroppingRectWidth:  0.5,
		CroppingRectX:      0.1,
		CroppingRectY:      0.2,
	})
	require.NoError(t, err)

	assert.Equal(t, "/collective/offers/9/image", call.Request.URL)
	assert.Equal(t, "application/x-www-form-urlencoded", call.Request.Headers["Content-Type"])
	form, ok := call.Request.Body.(url.Values)
	require.True(t, ok)
	assert.Equal(t, "Studio", form.Get("credit"))
	assert.Equal(t, "0.1", form.Get("croppingRectX"))
}

func TestCreateThumbnailSkipsUnsetFields(t *testing.T) {
	call, err := CreateThumbnail(&CreateThumbnailBodyModel{OfferID: 3})
	require.NoError(t, err)

	form, ok := call.Request.Body.(url.Values)
	require.True(t, ok)
	assert.Equal(t, url.Values{"offerId": {"3"}}, form)
}

func TestListFeaturesRoundTrip(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/features",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, []map[string]any{
			{"id": 1, "isActive": true, "name": "WIP_ENABLE_OFFER_ADDRESS"},
		}))

	c, err := apiclient.NewClient(apiclient.Config{BaseURL: "https://backend.passculture.local"},
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
		apiclient.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)

	call, err := ListFeatures()
	require.NoError(t, err)
	features, err := apiclient.Do(context.Background(), c, call)
	require.NoError(t, err)

	require.Len(t, features, 1)
	assert.Equal(t, FeatureResponseModel{ID: 1, IsActive: true, Name: "WIP_ENABLE_OFFER_ADDRESS"}, features[0])
}

func TestGetBookingByTokenErrorDescription(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://backend.passculture.local/bookings/token/ABC123",
		httpmock.NewStringResponder(http.StatusNotFound, `{}`))

	c, err := apiclient.NewClient(apiclient.Config{BaseURL: "https://backend.passculture.local"},
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
		apiclient.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)

	call, err := GetBookingByToken("ABC123")
	require.NoError(t, err)
	_, err = apiclient.Do(context.Background(), c, call)

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "La contremarque n'existe pas", apiErr.Description)
}
