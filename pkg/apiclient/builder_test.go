package apiclient

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stocksOp = &Operation{
		ID:     "getStocks",
		Method: http.MethodGet,
		Path:   "/offers/{offer_id}/stocks",
		Params: []Param{
			PathParam("offer_id", 0),
			QueryParam("date", openapi_types.Date{}),
			QueryParam("ids", []int{}),
			QueryParam("page", 0),
		},
		Errors: map[int]string{404: "Not Found"},
	}
	priceCategoryOp = &Operation{
		ID:     "deletePriceCategory",
		Method: http.MethodDelete,
		Path:   "/offers/{offer_id}/price_categories/{price_category_id}",
		Params: []Param{
			PathParam("offer_id", 0),
			PathParam("price_category_id", 0),
		},
	}
	exportOp = &Operation{
		ID:     "exportBookingsForOfferAsCsv",
		Method: http.MethodGet,
		Path:   "/bookings/offer/{offer_id}/csv",
		Params: []Param{
			PathParam("offer_id", 0),
			RequiredQueryParam("status", ""),
			RequiredQueryParam("event_date", openapi_types.Date{}),
		},
	}
	patchOp = &Operation{
		ID:       "patchOffer",
		Method:   http.MethodPatch,
		Path:     "/offers/{offer_id}",
		Body:     patchBody{},
		Encoding: EncodingJSON,
	}
	imageOp = &Operation{
		ID:       "attachOfferImage",
		Method:   http.MethodPost,
		Path:     "/offers/{offer_id}/image",
		Encoding: EncodingForm,
	}
)

type patchBody struct {
	Name *string `json:"name,omitempty"`
}

func TestBuildPathParams(t *testing.T) {
	call, err := Build[struct{}](NewBuilder(priceCategoryOp).
		Path("offer_id", 12).
		Path("price_category_id", 7))
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, call.Request.Method)
	assert.Equal(t, "/offers/12/price_categories/7", call.Request.URL)
	assert.Equal(t, "deletePriceCategory", call.Request.Operation)
	assert.Equal(t, "", call.Request.Body)
	assert.False(t, call.Request.HasBody())
	assert.Empty(t, call.Request.Headers)
}

func TestBuildEscapesPathValues(t *testing.T) {
	op := &Operation{ID: "getBookingByToken", Method: http.MethodGet, Path: "/v2/bookings/token/{token}"}
	call, err := Build[struct{}](NewBuilder(op).Path("token", "AB C/D"))
	require.NoError(t, err)
	assert.Equal(t, "/v2/bookings/token/AB%20C%2FD", call.Request.URL)
}

func TestBuildMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
		op    string
	}{
		{
			name: "zero path param",
			build: func() error {
				_, err := Build[struct{}](NewBuilder(priceCategoryOp).Path("offer_id", 0).Path("price_category_id", 5))
				return err
			},
			field: "offer_id",
			op:    "deletePriceCategory",
		},
		{
			name: "second path param",
			build: func() error {
				_, err := Build[struct{}](NewBuilder(priceCategoryOp).Path("offer_id", 3).Path("price_category_id", 0))
				return err
			},
			field: "price_category_id",
			op:    "deletePriceCategory",
		},
		{
			name: "empty string query",
			build: func() error {
				_, err := Build[[]byte](NewBuilder(exportOp).
					Path("offer_id", 3).
					RequiredQuery("status", "").
					RequiredQuery("event_date", openapi_types.Date{Time: time.Now()}))
				return err
			},
			field: "status",
			op:    "exportBookingsForOfferAsCsv",
		},
		{
			name: "zero date query",
			build: func() error {
				_, err := Build[[]byte](NewBuilder(exportOp).
					Path("offer_id", 3).
					RequiredQuery("status", "all").
					RequiredQuery("event_date", openapi_types.Date{}))
				return err
			},
			field: "event_date",
			op:    "exportBookingsForOfferAsCsv",
		},
		{
			name: "empty slice",
			build: func() error {
				op := &Operation{ID: "getCombinedInvoices", Method: http.MethodGet, Path: "/finance/combined-invoices"}
				_, err := Build[[]byte](NewBuilder(op).RequiredQuery("invoiceReferences", []string{}))
				return err
			},
			field: "invoiceReferences",
			op:    "getCombinedInvoices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)

			var reqErr *RequiredError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.field, reqErr.Field)
			assert.Equal(t, tt.op, reqErr.Operation)
			assert.ErrorIs(t, err, ErrRequired)
		})
	}
}

func TestRequiredErrorMessage(t *testing.T) {
	err := &RequiredError{Field: "offer_id", Operation: "getOffer"}
	assert.Equal(t, "Required parameter offer_id was null or undefined when calling getOffer.", err.Error())
}

func TestBuildQueryOmitsAbsentValues(t *testing.T) {
	var noPage *int
	call, err := Build[struct{}](NewBuilder(stocksOp).
		Path("offer_id", 1).
		Query("date", (*openapi_types.Date)(nil)).
		Query("ids", []int(nil)).
		Query("page", noPage))
	require.NoError(t, err)

	assert.Equal(t, "/offers/1/stocks", call.Request.URL)
	assert.Empty(t, call.Request.Query)
	assert.Equal(t, "/offers/1/stocks", call.Request.FullURL())
}

func TestBuildQueryEncodesValues(t *testing.T) {
	date := openapi_types.Date{Time: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)}
	page := 2
	call, err := Build[struct{}](NewBuilder(stocksOp).
		Path("offer_id", 1).
		Query("date", &date).
		Query("ids", []int{4, 5}).
		Query("page", &page))
	require.NoError(t, err)

	want := url.Values{
		"date": {"2024-03-09"},
		"ids":  {"4", "5"},
		"page": {"2"},
	}
	if diff := cmp.Diff(want, call.Request.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/offers/1/stocks?date=2024-03-09&ids=4&ids=5&page=2", call.Request.FullURL())
}

func TestBuildRequiredQueryKeepsOrderAndValue(t *testing.T) {
	date := openapi_types.Date{Time: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)}
	call, err := Build[[]byte](NewBuilder(exportOp).
		Path("offer_id", 8).
		RequiredQuery("status", "validated").
		RequiredQuery("event_date", date))
	require.NoError(t, err)

	assert.Equal(t, "/bookings/offer/8/csv", call.Request.URL)
	assert.Equal(t, "validated", call.Request.Query.Get("status"))
	assert.Equal(t, "2024-01-02", call.Request.Query.Get("event_date"))
}

func TestBuildJSONBody(t *testing.T) {
	name := "Concert"
	body := &patchBody{Name: &name}

	call, err := Build[struct{}](NewBuilder(patchOp).Path("offer_id", 3).JSON(body))
	require.NoError(t, err)

	assert.Equal(t, "application/json", call.Request.Headers["Content-Type"])
	assert.Equal(t, "application/json", call.Request.MediaType)
	assert.Same(t, body, call.Request.Body)
	assert.True(t, call.Request.HasBody())
}

func TestBuildJSONWithoutBody(t *testing.T) {
	call, err := Build[struct{}](NewBuilder(patchOp).Path("offer_id", 3).JSON((*patchBody)(nil)))
	require.NoError(t, err)

	assert.Equal(t, "application/json", call.Request.Headers["Content-Type"])
	assert.Equal(t, "", call.Request.Body)
}

func TestBuildFormBody(t *testing.T) {
	credit := "Photo: A. Martin"
	x := 0.25
	call, err := Build[struct{}](NewBuilder(imageOp).
		Path("offer_id", 3).
		FormField("credit", &credit).
		FormField("croppingRectX", &x).
		FormField("croppingRectY", (*float64)(nil)).
		Form())
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", call.Request.Headers["Content-Type"])
	form, ok := call.Request.Body.(url.Values)
	require.True(t, ok)
	assert.Equal(t, "Photo: A. Martin", form.Get("credit"))
	assert.Equal(t, "0.25", form.Get("croppingRectX"))
	_, present := form["croppingRectY"]
	assert.False(t, present)
}

func TestBuildEmptyForm(t *testing.T) {
	call, err := Build[struct{}](NewBuilder(imageOp).Path("offer_id", 3).Form())
	require.NoError(t, err)
	assert.Equal(t, "", call.Request.Body)
}

func TestBuildUnboundPlaceholder(t *testing.T) {
	_, err := Build[struct{}](NewBuilder(priceCategoryOp).Path("offer_id", 3))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequired)
	assert.Contains(t, err.Error(), "unbound placeholder")
}

func TestOptionsApplyLast(t *testing.T) {
	call, err := Build[struct{}](NewBuilder(patchOp).Path("offer_id", 3).JSON(nil),
		WithHeader("Content-Type", "application/merge-patch+json"),
		WithQueryParam("debug", "1"),
		WithPathPrefix("/native/v1/"),
		WithErrors(map[int]string{409: "Conflict"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "application/merge-patch+json", call.Request.Headers["Content-Type"])
	assert.Equal(t, "/native/v1/offers/3", call.Request.URL)
	assert.Equal(t, "/native/v1/offers/3?debug=1", call.Request.FullURL())
	assert.Equal(t, "Conflict", call.Request.Errors[409])
}

func TestDefault(t *testing.T) {
	assert.Equal(t, 1, Default[int](nil, 1))
	assert.Equal(t, 4, Default(Ptr(4), 1))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"offer_id", "price_category_id"}, priceCategoryOp.Placeholders())
	assert.Equal(t, []string{"offer_id", "price_category_id"}, priceCategoryOp.PathParams())
	assert.Nil(t, (&Operation{Path: "/features"}).Placeholders())
}

func TestSortOperations(t *testing.T) {
	ops := []*Operation{
		{ID: "b", Method: http.MethodPost, Path: "/offers"},
		{ID: "c", Method: http.MethodDelete, Path: "/bookings"},
		{ID: "a", Method: http.MethodGet, Path: "/offers"},
	}
	SortOperations(ops)
	var ids []string
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
