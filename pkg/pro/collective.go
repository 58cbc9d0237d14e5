package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var (
	opGetCollectiveBookingsCsv = &apiclient.Operation{
		ID:     "getCollectiveBookingsCsv",
		Method: http.MethodGet,
		Path:   "/collective/bookings/csv",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", CollectiveBookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetCollectiveBookingsExcel = &apiclient.Operation{
		ID:     "getCollectiveBookingsExcel",
		Method: http.MethodGet,
		Path:   "/collective/bookings/excel",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", CollectiveBookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetCollectiveBookingsPro = &apiclient.Operation{
		ID:     "getCollectiveBookingsPro",
		Method: http.MethodGet,
		Path:   "/collective/bookings/pro",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("eventDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingStatusFilter", CollectiveBookingStatusFilter("")),
			apiclient.QueryParam("bookingPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("bookingPeriodEndingDate", openapi_types.Date{}),
		},
		Response: ListCollectiveBookingsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetUserHasCollectiveBookings = &apiclient.Operation{
		ID:       "getUserHasCollectiveBookings",
		Method:   http.MethodGet,
		Path:     "/collective/bookings/pro/userHasBookings",
		Tags:     []string{"collective"},
		Response: UserHasBookingResponse{},
		Errors:   defaultErrors,
	}
	opGetCollectiveBookingByID = &apiclient.Operation{
		ID:     "getCollectiveBookingById",
		Method: http.MethodGet,
		Path:   "/collective/bookings/{booking_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("booking_id", 0),
		},
		Response: CollectiveBookingByIdResponseModel{},
		Errors:   defaultErrors,
	}
	opListEducationalDomains = &apiclient.Operation{
		ID:       "listEducationalDomains",
		Method:   http.MethodGet,
		Path:     "/collective/educational-domains",
		Tags:     []string{"collective"},
		Response: EducationalDomainsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOffers = &apiclient.Operation{
		ID:     "getCollectiveOffers",
		Method: http.MethodGet,
		Path:   "/collective/offers",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("nameOrIsbn", ""),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("status", []CollectiveOfferDisplayedStatus(nil)),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("creationMode", ""),
			apiclient.QueryParam("periodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("periodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("collectiveOfferType", CollectiveOfferType("")),
			apiclient.QueryParam("format", EacFormat("")),
			apiclient.QueryParam("locationType", CollectiveLocationType("")),
			apiclient.QueryParam("offererAddressId", 0),
		},
		Response: ListCollectiveOffersResponseModel{},
		Errors:   defaultErrors,
	}
	opCreateCollectiveOffer = &apiclient.Operation{
		ID:       "createCollectiveOffer",
		Method:   http.MethodPost,
		Path:     "/collective/offers",
		Tags:     []string{"collective"},
		Body:     PostCollectiveOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: CollectiveOfferResponseIdModel{},
		Errors:   defaultErrors,
	}
	opCreateCollectiveOfferTemplate = &apiclient.Operation{
		ID:       "createCollectiveOfferTemplate",
		Method:   http.MethodPost,
		Path:     "/collective/offers-template",
		Tags:     []string{"collective"},
		Body:     PostCollectiveOfferTemplateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: CollectiveOfferResponseIdModel{},
		Errors:   defaultErrors,
	}
	opPatchCollectiveOffersTemplateActiveStatus = &apiclient.Operation{
		ID:       "patchCollectiveOffersTemplateActiveStatus",
		Method:   http.MethodPatch,
		Path:     "/collective/offers-template/active-status",
		Tags:     []string{"collective"},
		Body:     PatchCollectiveOfferActiveStatusBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPatchCollectiveOffersTemplateArchive = &apiclient.Operation{
		ID:       "patchCollectiveOffersTemplateArchive",
		Method:   http.MethodPatch,
		Path:     "/collective/offers-template/archive",
		Tags:     []string{"collective"},
		Body:     PatchCollectiveOfferArchiveBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOfferRequest = &apiclient.Operation{
		ID:     "getCollectiveOfferRequest",
		Method: http.MethodGet,
		Path:   "/collective/offers-template/request/{request_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("request_id", 0),
		},
		Response: GetCollectiveOfferRequestResponseModel{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOfferTemplate = &apiclient.Operation{
		ID:     "getCollectiveOfferTemplate",
		Method: http.MethodGet,
		Path:   "/collective/offers-template/{offer_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetCollectiveOfferTemplateResponseModel{},
		Errors:   defaultErrors,
	}
	opEditCollectiveOfferTemplate = &apiclient.Operation{
		ID:     "editCollectiveOfferTemplate",
		Method: http.MethodPatch,
		Path:   "/collective/offers-template/{offer_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PatchCollectiveOfferTemplateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetCollectiveOfferTemplateResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteOfferTemplateImage = &apiclient.Operation{
		ID:     "deleteOfferTemplateImage",
		Method: http.MethodDelete,
		Path:   "/collective/offers-template/{offer_id}/image",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opAttachOfferTemplateImage = &apiclient.Operation{
		ID:     "attachOfferTemplateImage",
		Method: http.MethodPost,
		Path:   "/collective/offers-template/{offer_id}/image",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     AttachImageFormModel{},
		Encoding: apiclient.EncodingForm,
		Response: AttachImageResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchCollectiveOfferTemplatePublication = &apiclient.Operation{
		ID:     "patchCollectiveOfferTemplatePublication",
		Method: http.MethodPatch,
		Path:   "/collective/offers-template/{offer_id}/publish",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetCollectiveOfferTemplateResponseModel{},
		Errors:   notFoundErrors,
	}
	opPatchCollectiveOffersArchive = &apiclient.Operation{
		ID:       "patchCollectiveOffersArchive",
		Method:   http.MethodPatch,
		Path:     "/collective/offers/archive",
		Tags:     []string{"collective"},
		Body:     PatchCollectiveOfferArchiveBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOffersCsv = &apiclient.Operation{
		ID:     "getCollectiveOffersCsv",
		Method: http.MethodGet,
		Path:   "/collective/offers/csv",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("nameOrIsbn", ""),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("status", []CollectiveOfferDisplayedStatus(nil)),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("creationMode", ""),
			apiclient.QueryParam("periodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("periodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("collectiveOfferType", CollectiveOfferType("")),
			apiclient.QueryParam("format", EacFormat("")),
			apiclient.QueryParam("locationType", CollectiveLocationType("")),
			apiclient.QueryParam("offererAddressId", 0),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOffersExcel = &apiclient.Operation{
		ID:     "getCollectiveOffersExcel",
		Method: http.MethodGet,
		Path:   "/collective/offers/excel",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("nameOrIsbn", ""),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("status", []CollectiveOfferDisplayedStatus(nil)),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("creationMode", ""),
			apiclient.QueryParam("periodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("periodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("collectiveOfferType", CollectiveOfferType("")),
			apiclient.QueryParam("format", EacFormat("")),
			apiclient.QueryParam("locationType", CollectiveLocationType("")),
			apiclient.QueryParam("offererAddressId", 0),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetAutocompleteEducationalRedactorsForUAI = &apiclient.Operation{
		ID:     "getAutocompleteEducationalRedactorsForUai",
		Method: http.MethodGet,
		Path:   "/collective/offers/redactors",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("uai", ""),
			apiclient.RequiredQueryParam("candidate", ""),
		},
		Response: EducationalRedactors{},
		Errors:   defaultErrors,
	}
	opGetCollectiveOffer = &apiclient.Operation{
		ID:     "getCollectiveOffer",
		Method: http.MethodGet,
		Path:   "/collective/offers/{offer_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetCollectiveOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opEditCollectiveOffer = &apiclient.Operation{
		ID:     "editCollectiveOffer",
		Method: http.MethodPatch,
		Path:   "/collective/offers/{offer_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PatchCollectiveOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetCollectiveOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opCancelCollectiveOfferBooking = &apiclient.Operation{
		ID:     "cancelCollectiveOfferBooking",
		Method: http.MethodPatch,
		Path:   "/collective/offers/{offer_id}/cancel_booking",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   badRequestNotFoundErrors,
	}
	opDuplicateCollectiveOffer = &apiclient.Operation{
		ID:     "duplicateCollectiveOffer",
		Method: http.MethodPost,
		Path:   "/collective/offers/{offer_id}/duplicate",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetCollectiveOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchCollectiveOffersEducationalInstitution = &apiclient.Operation{
		ID:     "patchCollectiveOffersEducationalInstitution",
		Method: http.MethodPatch,
		Path:   "/collective/offers/{offer_id}/educational_institution",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PatchCollectiveOfferEducationalInstitution{},
		Encoding: apiclient.EncodingJSON,
		Response: GetCollectiveOfferResponseModel{},
		Errors:   notFoundErrors,
	}
	opDeleteOfferImage = &apiclient.Operation{
		ID:     "deleteOfferImage",
		Method: http.MethodDelete,
		Path:   "/collective/offers/{offer_id}/image",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opAttachOfferImage = &apiclient.Operation{
		ID:     "attachOfferImage",
		Method: http.MethodPost,
		Path:   "/collective/offers/{offer_id}/image",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     AttachImageFormModel{},
		Encoding: apiclient.EncodingForm,
		Response: AttachImageResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchCollectiveOfferPublication = &apiclient.Operation{
		ID:     "patchCollectiveOfferPublication",
		Method: http.MethodPatch,
		Path:   "/collective/offers/{offer_id}/publish",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetCollectiveOfferResponseModel{},
		Errors:   notFoundErrors,
	}
	opCreateCollectiveStock = &apiclient.Operation{
		ID:       "createCollectiveStock",
		Method:   http.MethodPost,
		Path:     "/collective/stocks",
		Tags:     []string{"collective"},
		Body:     CollectiveStockCreationBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: CollectiveStockResponseModel{},
		Errors:   badRequestNotFoundErrors,
	}
	opEditCollectiveStock = &apiclient.Operation{
		ID:     "editCollectiveStock",
		Method: http.MethodPatch,
		Path:   "/collective/stocks/{collective_stock_id}",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.PathParam("collective_stock_id", 0),
		},
		Body:     CollectiveStockEditionBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: CollectiveStockResponseModel{},
		Errors:   fullErrors,
	}
	opGetEducationalPartners = &apiclient.Operation{
		ID:       "getEducationalPartners",
		Method:   http.MethodGet,
		Path:     "/cultural-partners",
		Tags:     []string{"collective"},
		Response: AdageCulturalPartnersResponseModel{},
		Errors:   unauthorizedErrors,
	}
	opGetEducationalInstitutions = &apiclient.Operation{
		ID:     "getEducationalInstitutions",
		Method: http.MethodGet,
		Path:   "/educational_institutions",
		Tags:   []string{"collective"},
		Params: []apiclient.Param{
			apiclient.QueryParam("perPageLimit", 0),
			apiclient.QueryParam("page", 0),
		},
		Response: EducationalInstitutionsResponseModel{},
		Errors:   unauthorizedErrors,
	}
)

// CollectiveBookingsQuery holds the optional filters shared by GetCollectiveBookingsCsv, GetCollectiveBookingsExcel and GetCollectiveBookingsPro.
// Unset Page defaults to 1.
type CollectiveBookingsQuery struct {
	Page                       *int                           `query:"page"`
	VenueID                    *int                           `query:"venueId"`
	EventDate                  *openapi_types.Date            `query:"eventDate"`
	BookingStatusFilter        *CollectiveBookingStatusFilter `query:"bookingStatusFilter"`
	BookingPeriodBeginningDate *openapi_types.Date            `query:"bookingPeriodBeginningDate"`
	BookingPeriodEndingDate    *openapi_types.Date            `query:"bookingPeriodEndingDate"`
}

// GetCollectiveBookingsCsv builds GET /collective/bookings/csv.
func GetCollectiveBookingsCsv(params *CollectiveBookingsQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &CollectiveBookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveBookingsCsv).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("venueId", params.VenueID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate)
	return apiclient.Build[[]byte](b, opts...)
}

// GetCollectiveBookingsExcel builds GET /collective/bookings/excel.
func GetCollectiveBookingsExcel(params *CollectiveBookingsQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &CollectiveBookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveBookingsExcel).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("venueId", params.VenueID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate)
	return apiclient.Build[[]byte](b, opts...)
}

// GetCollectiveBookingsPro builds GET /collective/bookings/pro.
func GetCollectiveBookingsPro(params *CollectiveBookingsQuery, opts ...apiclient.Option) (*apiclient.Call[ListCollectiveBookingsResponseModel], error) {
	if params == nil {
		params = &CollectiveBookingsQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveBookingsPro).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("venueId", params.VenueID).
		Query("eventDate", params.EventDate).
		Query("bookingStatusFilter", params.BookingStatusFilter).
		Query("bookingPeriodBeginningDate", params.BookingPeriodBeginningDate).
		Query("bookingPeriodEndingDate", params.BookingPeriodEndingDate)
	return apiclient.Build[ListCollectiveBookingsResponseModel](b, opts...)
}

// GetUserHasCollectiveBookings builds GET /collective/bookings/pro/userHasBookings.
func GetUserHasCollectiveBookings(opts ...apiclient.Option) (*apiclient.Call[UserHasBookingResponse], error) {
	return apiclient.Build[UserHasBookingResponse](apiclient.NewBuilder(opGetUserHasCollectiveBookings), opts...)
}

// GetCollectiveBookingByID builds GET /collective/bookings/{booking_id}.
func GetCollectiveBookingByID(bookingID int, opts ...apiclient.Option) (*apiclient.Call[CollectiveBookingByIdResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveBookingByID).
		Path("booking_id", bookingID)
	return apiclient.Build[CollectiveBookingByIdResponseModel](b, opts...)
}

// ListEducationalDomains builds GET /collective/educational-domains.
func ListEducationalDomains(opts ...apiclient.Option) (*apiclient.Call[EducationalDomainsResponseModel], error) {
	return apiclient.Build[EducationalDomainsResponseModel](apiclient.NewBuilder(opListEducationalDomains), opts...)
}

// CollectiveOffersQuery holds the optional filters shared by GetCollectiveOffers, GetCollectiveOffersCsv and GetCollectiveOffersExcel.
type CollectiveOffersQuery struct {
	NameOrISBN          *string                          `query:"nameOrIsbn"`
	OffererID           *int                             `query:"offererId"`
	Status              []CollectiveOfferDisplayedStatus `query:"status"`
	VenueID             *int                             `query:"venueId"`
	CreationMode        *string                          `query:"creationMode"`
	PeriodBeginningDate *openapi_types.Date              `query:"periodBeginningDate"`
	PeriodEndingDate    *openapi_types.Date              `query:"periodEndingDate"`
	CollectiveOfferType *CollectiveOfferType             `query:"collectiveOfferType"`
	Format              *EacFormat                       `query:"format"`
	LocationType        *CollectiveLocationType          `query:"locationType"`
	OffererAddressID    *int                             `query:"offererAddressId"`
}

// GetCollectiveOffers builds GET /collective/offers.
func GetCollectiveOffers(params *CollectiveOffersQuery, opts ...apiclient.Option) (*apiclient.Call[ListCollectiveOffersResponseModel], error) {
	if params == nil {
		params = &CollectiveOffersQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveOffers).
		Query("nameOrIsbn", params.NameOrISBN).
		Query("offererId", params.OffererID).
		Query("status", params.Status).
		Query("venueId", params.VenueID).
		Query("creationMode", params.CreationMode).
		Query("periodBeginningDate", params.PeriodBeginningDate).
		Query("periodEndingDate", params.PeriodEndingDate).
		Query("collectiveOfferType", params.CollectiveOfferType).
		Query("format", params.Format).
		Query("locationType", params.LocationType).
		Query("offererAddressId", params.OffererAddressID)
	return apiclient.Build[ListCollectiveOffersResponseModel](b, opts...)
}

// CreateCollectiveOffer builds POST /collective/offers.
func CreateCollectiveOffer(body *PostCollectiveOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[CollectiveOfferResponseIdModel], error) {
	b := apiclient.NewBuilder(opCreateCollectiveOffer).
		JSON(body)
	return apiclient.Build[CollectiveOfferResponseIdModel](b, opts...)
}

// CreateCollectiveOfferTemplate builds POST /collective/offers-template.
func CreateCollectiveOfferTemplate(body *PostCollectiveOfferTemplateBodyModel, opts ...apiclient.Option) (*apiclient.Call[CollectiveOfferResponseIdModel], error) {
	b := apiclient.NewBuilder(opCreateCollectiveOfferTemplate).
		JSON(body)
	return apiclient.Build[CollectiveOfferResponseIdModel](b, opts...)
}

// PatchCollectiveOffersTemplateActiveStatus builds PATCH /collective/offers-template/active-status.
func PatchCollectiveOffersTemplateActiveStatus(body *PatchCollectiveOfferActiveStatusBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOffersTemplateActiveStatus).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PatchCollectiveOffersTemplateArchive builds PATCH /collective/offers-template/archive.
func PatchCollectiveOffersTemplateArchive(body *PatchCollectiveOfferArchiveBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOffersTemplateArchive).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetCollectiveOfferRequest builds GET /collective/offers-template/request/{request_id}.
func GetCollectiveOfferRequest(requestID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferRequestResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOfferRequest).
		Path("request_id", requestID)
	return apiclient.Build[GetCollectiveOfferRequestResponseModel](b, opts...)
}

// GetCollectiveOfferTemplate builds GET /collective/offers-template/{offer_id}.
func GetCollectiveOfferTemplate(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferTemplateResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOfferTemplate).
		Path("offer_id", offerID)
	return apiclient.Build[GetCollectiveOfferTemplateResponseModel](b, opts...)
}

// EditCollectiveOfferTemplate builds PATCH /collective/offers-template/{offer_id}.
func EditCollectiveOfferTemplate(offerID int, body *PatchCollectiveOfferTemplateBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferTemplateResponseModel], error) {
	b := apiclient.NewBuilder(opEditCollectiveOfferTemplate).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetCollectiveOfferTemplateResponseModel](b, opts...)
}

// DeleteOfferTemplateImage builds DELETE /collective/offers-template/{offer_id}/image.
func DeleteOfferTemplateImage(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteOfferTemplateImage).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// AttachOfferTemplateImage builds POST /collective/offers-template/{offer_id}/image.
func AttachOfferTemplateImage(offerID int, form *AttachImageFormModel, opts ...apiclient.Option) (*apiclient.Call[AttachImageResponseModel], error) {
	b := apiclient.NewBuilder(opAttachOfferTemplateImage).
		Path("offer_id", offerID)
	if form != nil {
		b.FormField("credit", form.Credit).
			FormField("croppingRectHeight", form.CroppingRectHeight).
			FormField("croppingRectWidth", form.CroppingRectWidth).
			FormField("croppingRectX", form.CroppingRectX).
			FormField("croppingRectY", form.CroppingRectY)
	}
	return apiclient.Build[AttachImageResponseModel](b.Form(), opts...)
}

// PatchCollectiveOfferTemplatePublication builds PATCH /collective/offers-template/{offer_id}/publish.
func PatchCollectiveOfferTemplatePublication(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferTemplateResponseModel], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOfferTemplatePublication).
		Path("offer_id", offerID)
	return apiclient.Build[GetCollectiveOfferTemplateResponseModel](b, opts...)
}

// PatchCollectiveOffersArchive builds PATCH /collective/offers/archive.
func PatchCollectiveOffersArchive(body *PatchCollectiveOfferArchiveBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOffersArchive).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetCollectiveOffersCsv builds GET /collective/offers/csv.
func GetCollectiveOffersCsv(params *CollectiveOffersQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &CollectiveOffersQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveOffersCsv).
		Query("nameOrIsbn", params.NameOrISBN).
		Query("offererId", params.OffererID).
		Query("status", params.Status).
		Query("venueId", params.VenueID).
		Query("creationMode", params.CreationMode).
		Query("periodBeginningDate", params.PeriodBeginningDate).
		Query("periodEndingDate", params.PeriodEndingDate).
		Query("collectiveOfferType", params.CollectiveOfferType).
		Query("format", params.Format).
		Query("locationType", params.LocationType).
		Query("offererAddressId", params.OffererAddressID)
	return apiclient.Build[[]byte](b, opts...)
}

// GetCollectiveOffersExcel builds GET /collective/offers/excel.
func GetCollectiveOffersExcel(params *CollectiveOffersQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &CollectiveOffersQuery{}
	}
	b := apiclient.NewBuilder(opGetCollectiveOffersExcel).
		Query("nameOrIsbn", params.NameOrISBN).
		Query("offererId", params.OffererID).
		Query("status", params.Status).
		Query("venueId", params.VenueID).
		Query("creationMode", params.CreationMode).
		Query("periodBeginningDate", params.PeriodBeginningDate).
		Query("periodEndingDate", params.PeriodEndingDate).
		Query("collectiveOfferType", params.CollectiveOfferType).
		Query("format", params.Format).
		Query("locationType", params.LocationType).
		Query("offererAddressId", params.OffererAddressID)
	return apiclient.Build[[]byte](b, opts...)
}

// GetAutocompleteEducationalRedactorsForUAI builds GET /collective/offers/redactors.
func GetAutocompleteEducationalRedactorsForUAI(uai string, candidate string, opts ...apiclient.Option) (*apiclient.Call[EducationalRedactors], error) {
	b := apiclient.NewBuilder(opGetAutocompleteEducationalRedactorsForUAI).
		RequiredQuery("uai", uai).
		RequiredQuery("candidate", candidate)
	return apiclient.Build[EducationalRedactors](b, opts...)
}

// GetCollectiveOffer builds GET /collective/offers/{offer_id}.
func GetCollectiveOffer(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOffer).
		Path("offer_id", offerID)
	return apiclient.Build[GetCollectiveOfferResponseModel](b, opts...)
}

// EditCollectiveOffer builds PATCH /collective/offers/{offer_id}.
func EditCollectiveOffer(offerID int, body *PatchCollectiveOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opEditCollectiveOffer).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetCollectiveOfferResponseModel](b, opts...)
}

// CancelCollectiveOfferBooking builds PATCH /collective/offers/{offer_id}/cancel_booking.
func CancelCollectiveOfferBooking(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opCancelCollectiveOfferBooking).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// DuplicateCollectiveOffer builds POST /collective/offers/{offer_id}/duplicate.
func DuplicateCollectiveOffer(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opDuplicateCollectiveOffer).
		Path("offer_id", offerID)
	return apiclient.Build[GetCollectiveOfferResponseModel](b, opts...)
}

// PatchCollectiveOffersEducationalInstitution builds PATCH /collective/offers/{offer_id}/educational_institution.
func PatchCollectiveOffersEducationalInstitution(offerID int, body *PatchCollectiveOfferEducationalInstitution, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOffersEducationalInstitution).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetCollectiveOfferResponseModel](b, opts...)
}

// DeleteOfferImage builds DELETE /collective/offers/{offer_id}/image.
func DeleteOfferImage(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteOfferImage).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// AttachOfferImage builds POST /collective/offers/{offer_id}/image.
func AttachOfferImage(offerID int, form *AttachImageFormModel, opts ...apiclient.Option) (*apiclient.Call[AttachImageResponseModel], error) {
	b := apiclient.NewBuilder(opAttachOfferImage).
		Path("offer_id", offerID)
	if form != nil {
		b.FormField("credit", form.Credit).
			FormField("croppingRectHeight", form.CroppingRectHeight).
			FormField("croppingRectWidth", form.CroppingRectWidth).
			FormField("croppingRectX", form.CroppingRectX).
			FormField("croppingRectY", form.CroppingRectY)
	}
	return apiclient.Build[AttachImageResponseModel](b.Form(), opts...)
}

// PatchCollectiveOfferPublication builds PATCH /collective/offers/{offer_id}/publish.
func PatchCollectiveOfferPublication(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetCollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPatchCollectiveOfferPublication).
		Path("offer_id", offerID)
	return apiclient.Build[GetCollectiveOfferResponseModel](b, opts...)
}

// CreateCollectiveStock builds POST /collective/stocks.
func CreateCollectiveStock(body *CollectiveStockCreationBodyModel, opts ...apiclient.Option) (*apiclient.Call[CollectiveStockResponseModel], error) {
	b := apiclient.NewBuilder(opCreateCollectiveStock).
		JSON(body)
	return apiclient.Build[CollectiveStockResponseModel](b, opts...)
}

// EditCollectiveStock builds PATCH /collective/stocks/{collective_stock_id}.
func EditCollectiveStock(collectiveStockID int, body *CollectiveStockEditionBodyModel, opts ...apiclient.Option) (*apiclient.Call[CollectiveStockResponseModel], error) {
	b := apiclient.NewBuilder(opEditCollectiveStock).
		Path("collective_stock_id", collectiveStockID).
		JSON(body)
	return apiclient.Build[CollectiveStockResponseModel](b, opts...)
}

// GetEducationalPartners builds GET /cultural-partners.
func GetEducationalPartners(opts ...apiclient.Option) (*apiclient.Call[AdageCulturalPartnersResponseModel], error) {
	return apiclient.Build[AdageCulturalPartnersResponseModel](apiclient.NewBuilder(opGetEducationalPartners), opts...)
}

// GetEducationalInstitutionsQuery holds the optional query parameters of GetEducationalInstitutions.
// Unset PerPageLimit defaults to 1000, Page defaults to 1.
type GetEducationalInstitutionsQuery struct {
	PerPageLimit *int `query:"perPageLimit"`
	Page         *int `query:"page"`
}

// GetEducationalInstitutions builds GET /educational_institutions.
func GetEducationalInstitutions(params *GetEducationalInstitutionsQuery, opts ...apiclient.Option) (*apiclient.Call[EducationalInstitutionsResponseModel], error) {
	if params == nil {
		params = &GetEducationalInstitutionsQuery{}
	}
	b := apiclient.NewBuilder(opGetEducationalInstitutions).
		Query("perPageLimit", apiclient.Default(params.PerPageLimit, 1000)).
		Query("page", apiclient.Default(params.Page, 1))
	return apiclient.Build[EducationalInstitutionsResponseModel](b, opts...)
}
