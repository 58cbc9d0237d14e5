package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opFetchVenueLabels = &apiclient.Operation{
		ID:       "fetchVenueLabels",
		Method:   http.MethodGet,
		Path:     "/venue-labels",
		Tags:     []string{"venues"},
		Response: VenueLabelListResponseModel{},
		Errors:   defaultErrors,
	}
	opGetVenueTypes = &apiclient.Operation{
		ID:       "getVenueTypes",
		Method:   http.MethodGet,
		Path:     "/venue-types",
		Tags:     []string{"venues"},
		Response: VenueTypeListResponseModel{},
		Errors:   defaultErrors,
	}
	opListVenueProviders = &apiclient.Operation{
		ID:     "listVenueProviders",
		Method: http.MethodGet,
		Path:   "/venueProviders",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("venueId", 0),
		},
		Response: ListVenueProviderResponse{},
		Errors:   defaultErrors,
	}
	opCreateVenueProvider = &apiclient.Operation{
		ID:       "createVenueProvider",
		Method:   http.MethodPost,
		Path:     "/venueProviders",
		Tags:     []string{"venues"},
		Body:     PostVenueProviderBody{},
		Encoding: apiclient.EncodingJSON,
		Response: VenueProviderResponse{},
		Errors:   defaultErrors,
	}
	opUpdateVenueProvider = &apiclient.Operation{
		ID:       "updateVenueProvider",
		Method:   http.MethodPut,
		Path:     "/venueProviders",
		Tags:     []string{"venues"},
		Body:     PostVenueProviderBody{},
		Encoding: apiclient.EncodingJSON,
		Response: VenueProviderResponse{},
		Errors:   defaultErrors,
	}
	opGetProvidersByVenue = &apiclient.Operation{
		ID:     "getProvidersByVenue",
		Method: http.MethodGet,
		Path:   "/venueProviders/{venue_id}",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Response: ListProviderResponse{},
		Errors:   unauthorizedNotFoundErrors,
	}
	opDeleteVenueProvider = &apiclient.Operation{
		ID:     "deleteVenueProvider",
		Method: http.MethodDelete,
		Path:   "/venueProviders/{venue_provider_id}",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_provider_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetVenues = &apiclient.Operation{
		ID:     "getVenues",
		Method: http.MethodGet,
		Path:   "/venues",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.QueryParam("validated", false),
			apiclient.QueryParam("activeOfferersOnly", false),
			apiclient.QueryParam("offererId", 0),
		},
		Response: GetVenueListResponseModel{},
		Errors:   defaultErrors,
	}
	opGetVenuesEducationalStatuses = &apiclient.Operation{
		ID:       "getVenuesEducationalStatuses",
		Method:   http.MethodGet,
		Path:     "/venues-educational-statuses",
		Tags:     []string{"venues"},
		Response: VenuesEducationalStatusesResponseModel{},
		Errors:   defaultErrors,
	}
	opGetVenuesOfOffererFromSiret = &apiclient.Operation{
		ID:     "getVenuesOfOffererFromSiret",
		Method: http.MethodGet,
		Path:   "/venues/siret/{siret}",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("siret", ""),
		},
		Response: GetVenuesOfOffererFromSiretResponseModel{},
		Errors:   defaultErrors,
	}
	opGetVenue = &apiclient.Operation{
		ID:     "getVenue",
		Method: http.MethodGet,
		Path:   "/venues/{venue_id}",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Response: GetVenueResponseModel{},
		Errors:   defaultErrors,
	}
	opEditVenue = &apiclient.Operation{
		ID:     "editVenue",
		Method: http.MethodPatch,
		Path:   "/venues/{venue_id}",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Body:     EditVenueBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetVenueResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteVenueBanner = &apiclient.Operation{
		ID:     "deleteVenueBanner",
		Method: http.MethodDelete,
		Path:   "/venues/{venue_id}/banner",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opEditVenueCollectiveData = &apiclient.Operation{
		ID:     "editVenueCollectiveData",
		Method: http.MethodPatch,
		Path:   "/venues/{venue_id}/collective-data",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Body:     EditVenueCollectiveDataBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetVenueResponseModel{},
		Errors:   defaultErrors,
	}
	opLinkVenueToPricingPoint = &apiclient.Operation{
		ID:     "linkVenueToPricingPoint",
		Method: http.MethodPost,
		Path:   "/venues/{venue_id}/pricing-point",
		Tags:   []string{"venues"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
		},
		Body:     LinkVenueToPricingPointBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
)

// FetchVenueLabels builds GET /venue-labels.
func FetchVenueLabels(opts ...apiclient.Option) (*apiclient.Call[VenueLabelListResponseModel], error) {
	return apiclient.Build[VenueLabelListResponseModel](apiclient.NewBuilder(opFetchVenueLabels), opts...)
}

// GetVenueTypes builds GET /venue-types.
func GetVenueTypes(opts ...apiclient.Option) (*apiclient.Call[VenueTypeListResponseModel], error) {
	return apiclient.Build[VenueTypeListResponseModel](apiclient.NewBuilder(opGetVenueTypes), opts...)
}

// ListVenueProviders builds GET /venueProviders.
func ListVenueProviders(venueID int, opts ...apiclient.Option) (*apiclient.Call[ListVenueProviderResponse], error) {
	b := apiclient.NewBuilder(opListVenueProviders).
		RequiredQuery("venueId", venueID)
	return apiclient.Build[ListVenueProviderResponse](b, opts...)
}

// CreateVenueProvider builds POST /venueProviders.
func CreateVenueProvider(body *PostVenueProviderBody, opts ...apiclient.Option) (*apiclient.Call[VenueProviderResponse], error) {
	b := apiclient.NewBuilder(opCreateVenueProvider).
		JSON(body)
	return apiclient.Build[VenueProviderResponse](b, opts...)
}

// UpdateVenueProvider builds PUT /venueProviders.
func UpdateVenueProvider(body *PostVenueProviderBody, opts ...apiclient.Option) (*apiclient.Call[VenueProviderResponse], error) {
	b := apiclient.NewBuilder(opUpdateVenueProvider).
		JSON(body)
	return apiclient.Build[VenueProviderResponse](b, opts...)
}

// GetProvidersByVenue builds GET /venueProviders/{venue_id}.
func GetProvidersByVenue(venueID int, opts ...apiclient.Option) (*apiclient.Call[ListProviderResponse], error) {
	b := apiclient.NewBuilder(opGetProvidersByVenue).
		Path("venue_id", venueID)
	return apiclient.Build[ListProviderResponse](b, opts...)
}

// DeleteVenueProvider builds DELETE /venueProviders/{venue_provider_id}.
func DeleteVenueProvider(venueProviderID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteVenueProvider).
		Path("venue_provider_id", venueProviderID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetVenuesQuery holds the optional query parameters of GetVenues.
type GetVenuesQuery struct {
	Validated          *bool `query:"validated"`
	ActiveOfferersOnly *bool `query:"activeOfferersOnly"`
	OffererID          *int  `query:"offererId"`
}

// GetVenues builds GET /venues.
func GetVenues(params *GetVenuesQuery, opts ...apiclient.Option) (*apiclient.Call[GetVenueListResponseModel], error) {
	if params == nil {
		params = &GetVenuesQuery{}
	}
	b := apiclient.NewBuilder(opGetVenues).
		Query("validated", params.Validated).
		Query("activeOfferersOnly", params.ActiveOfferersOnly).
		Query("offererId", params.OffererID)
	return apiclient.Build[GetVenueListResponseModel](b, opts...)
}

// GetVenuesEducationalStatuses builds GET /venues-educational-statuses.
func GetVenuesEducationalStatuses(opts ...apiclient.Option) (*apiclient.Call[VenuesEducationalStatusesResponseModel], error) {
	return apiclient.Build[VenuesEducationalStatusesResponseModel](apiclient.NewBuilder(opGetVenuesEducationalStatuses), opts...)
}

// GetVenuesOfOffererFromSiret builds GET /venues/siret/{siret}.
func GetVenuesOfOffererFromSiret(siret string, opts ...apiclient.Option) (*apiclient.Call[GetVenuesOfOffererFromSiretResponseModel], error) {
	b := apiclient.NewBuilder(opGetVenuesOfOffererFromSiret).
		Path("siret", siret)
	return apiclient.Build[GetVenuesOfOffererFromSiretResponseModel](b, opts...)
}

// GetVenue builds GET /venues/{venue_id}.
func GetVenue(venueID int, opts ...apiclient.Option) (*apiclient.Call[GetVenueResponseModel], error) {
	b := apiclient.NewBuilder(opGetVenue).
		Path("venue_id", venueID)
	return apiclient.Build[GetVenueResponseModel](b, opts...)
}

// EditVenue builds PATCH /venues/{venue_id}.
func EditVenue(venueID int, body *EditVenueBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetVenueResponseModel], error) {
	b := apiclient.NewBuilder(opEditVenue).
		Path("venue_id", venueID).
		JSON(body)
	return apiclient.Build[GetVenueResponseModel](b, opts...)
}

// DeleteVenueBanner builds DELETE /venues/{venue_id}/banner.
func DeleteVenueBanner(venueID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteVenueBanner).
		Path("venue_id", venueID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// EditVenueCollectiveData builds PATCH /venues/{venue_id}/collective-data.
func EditVenueCollectiveData(venueID int, body *EditVenueCollectiveDataBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetVenueResponseModel], error) {
	b := apiclient.NewBuilder(opEditVenueCollectiveData).
		Path("venue_id", venueID).
		JSON(body)
	return apiclient.Build[GetVenueResponseModel](b, opts...)
}

// LinkVenueToPricingPoint builds POST /venues/{venue_id}/pricing-point.
func LinkVenueToPricingPoint(venueID int, body *LinkVenueToPricingPointBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLinkVenueToPricingPoint).
		Path("venue_id", venueID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
