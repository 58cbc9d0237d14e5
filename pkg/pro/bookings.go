package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var (
	opGetBookingsCsv = &apiclient.Operation{
		ID:     "getBookingsCsv",
		Method: http.MethodGet,
		Path:   "/bookings/csv",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("offerId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", BookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("offererAddressId", 0),
			apiclient.QueryParam("exportType", BookingExportType("")),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetOfferPriceCategoriesAndSchedulesByDates = &apiclient.Operation{
		ID:     "getOfferPriceCategoriesAndSchedulesByDates",
		Method: http.MethodGet,
		Path:   "/bookings/dates/{offer_id}",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: EventDatesInfos{},
		Errors:   defaultErrors,
	}
	opGetBookingsExcel = &apiclient.Operation{
		ID:     "getBookingsExcel",
		Method: http.MethodGet,
		Path:   "/bookings/excel",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("offerId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", BookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("offererAddressId", 0),
			apiclient.QueryParam("exportType", BookingExportType("")),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opPatchBookingKeepByToken = &apiclient.Operation{
		ID:     "patchBookingKeepByToken",
		Method: http.MethodPatch,
		Path:   "/bookings/keep/token/{token}",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("token", ""),
		},
		Response: apiclient.NoContent{},
		Errors:   keepTokenErrors,
	}
	opExportBookingsForOfferAsCsv = &apiclient.Operation{
		ID:     "exportBookingsForOfferAsCsv",
		Method: http.MethodGet,
		Path:   "/bookings/offer/{offer_id}/csv",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
			apiclient.RequiredQueryParam("status", BookingsExportStatusFilter("")),
			apiclient.RequiredQueryParam("event_date", openapi_types.Date{}),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opExportBookingsForOfferAsExcel = &apiclient.Operation{
		ID:     "exportBookingsForOfferAsExcel",
		Method: http.MethodGet,
		Path:   "/bookings/offer/{offer_id}/excel",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
			apiclient.RequiredQueryParam("status", BookingsExportStatusFilter("")),
			apiclient.RequiredQueryParam("event_date", openapi_types.Date{}),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetBookingsPro = &apiclient.Operation{
		ID:     "getBookingsPro",
		Method: http.MethodGet,
		Path:   "/bookings/pro",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("offerId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", BookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("offererAddressId", 0),
			apiclient.QueryParam("exportType", BookingExportType("")),
		},
		Response: ListBookingsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetUserHasBookings = &apiclient.Operation{
		ID:       "getUserHasBookings",
		Method:   http.MethodGet,
		Path:     "/bookings/pro/userHasBookings",
		Tags:     []string{"bookings"},
		Response: UserHasBookingResponse{},
		Errors:   defaultErrors,
	}
	opGetBookingByToken = &apiclient.Operation{
		ID:     "getBookingByToken",
		Method: http.MethodGet,
		Path:   "/bookings/token/{token}",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("token", ""),
		},
		Response: GetBookingResponse{},
		Errors:   tokenErrors,
	}
	opPatchBookingUseByToken = &apiclient.Operation{
		ID:     "patchBookingUseByToken",
		Method: http.MethodPatch,
		Path:   "/bookings/use/token/{token}",
		Tags:   []string{"bookings"},
		Params: []apiclient.Param{
			apiclient.PathParam("token", ""),
		},
		Response: apiclient.NoContent{},
		Errors:   tokenErrors,
	}
)

// BookingsQuery holds the optional filters shared by GetBookingsCsv, GetBookingsExcel and GetBookingsPro.
// Unset Page defaults to 1.
type BookingsQuery struct {
	Page                       *int                 `query:"page"`
	OffererID                  *int                 `query:"offererId"`
	VenueID                    *int                 `query:"venueId"`
	OfferID                    *int                 `query:"offerId"`
	EventDate                  *openapi_types.Date  `query:"eventDate"`
	BookingStatusFilter        *BookingStatusFilter `query:"bookingStatusFilter"`
	BookingPeriodBeginningDate *openapi_types.Date  `query:"bookingPeriodBeginningDate"`
	BookingPeriodEndingDate    *openapi_types.Date  `query:"bookingPeriodEndingDate"`
	OffererAddressID           *int                 `query:"offererAddressId"`
	ExportType                 *BookingExportType   `query:"exportType"`
}

// GetBookingsCsv builds GET /bookings/csv.
func GetBookingsCsv(params *BookingsQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &BookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetBookingsCsv).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("offererId", params.OffererID).
		Query("venueId", params.VenueID).
		Query("offerId", params.OfferID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate).
		Query("offererAddressId", params.OffererAddressID).
		Query("exportType", params.ExportType)
	return apiclient.Build[[]byte](b, opts...)
}

// GetOfferPriceCategoriesAndSchedulesByDates builds GET /bookings/dates/{offer_id}.
func GetOfferPriceCategoriesAndSchedulesByDates(offerID int, opts ...apiclient.Option) (*apiclient.Call[EventDatesInfos], error) {
	b := apiclient.NewBuilder(opGetOfferPriceCategoriesAndSchedulesByDates).
		Path("offer_id", offerID)
	return apiclient.Build[EventDatesInfos](b, opts...)
}

// GetBookingsExcel builds GET /bookings/excel.
func GetBookingsExcel(params *BookingsQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &BookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetBookingsExcel).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("offererId", params.OffererID).
		Query("venueId", params.VenueID).
		Query("offerId", params.OfferID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate).
		Query("offererAddressId", params.OffererAddressID).
		Query("exportType", params.ExportType)
	return apiclient.Build[[]byte](b, opts...)
}

// PatchBookingKeepByToken builds PATCH /bookings/keep/token/{token}.
func PatchBookingKeepByToken(token string, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchBookingKeepByToken).
		Path("token", token)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// ExportBookingsForOfferAsCsv builds GET /bookings/offer/{offer_id}/csv.
func ExportBookingsForOfferAsCsv(offerID int, status BookingsExportStatusFilter, eventDate openapi_types.Date, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opExportBookingsForOfferAsCsv).
		Path("offer_id", offerID).
		RequiredQuery("status", status).
		RequiredQuery("event_date", eventDate)
	return apiclient.Build[[]byte](b, opts...)
}

// ExportBookingsForOfferAsExcel builds GET /bookings/offer/{offer_id}/excel.
func ExportBookingsForOfferAsExcel(offerID int, status BookingsExportStatusFilter, eventDate openapi_types.Date, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opExportBookingsForOfferAsExcel).
		Path("offer_id", offerID).
		RequiredQuery("status", status).
		RequiredQuery("event_date", eventDate)
	return apiclient.Build[[]byte](b, opts...)
}

// GetBookingsPro builds GET /bookings/pro.
func GetBookingsPro(params *BookingsQuery, opts ...apiclient.Option) (*apiclient.Call[ListBookingsResponseModel], error) {
	if params == nil {
		params = &BookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetBookingsPro).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("offererId", params.OffererID).
		Query("venueId", params.VenueID).
		Query("offerId", params.OfferID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate).
		Query("offererAddressId", params.OffererAddressID).
		Query("exportType", params.ExportType)
	return apiclient.Build[ListBookingsResponseModel](b, opts...)
}

// GetUserHasBookings builds GET /bookings/pro/userHasBookings.
func GetUserHasBookings(opts ...apiclient.Option) (*apiclient.Call[UserHasBookingResponse], error) {
	return apiclient.Build[UserHasBookingResponse](apiclient.NewBuilder(opGetUserHasBookings), opts...)
}

// GetBookingByToken builds GET /bookings/token/{token}.
func GetBookingByToken(token string, opts ...apiclient.Option) (*apiclient.Call[GetBookingResponse], error) {
	b := apiclient.NewBuilder(opGetBookingByToken).
		Path("token", token)
	return apiclient.Build[GetBookingResponse](b, opts...)
}

// PatchBookingUseByToken builds PATCH /bookings/use/token/{token}.
func PatchBookingUseByToken(token string, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchBookingUseByToken).
		Path("token", token)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
