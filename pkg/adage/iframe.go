package adage

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opAuthenticate = &apiclient.Operation{
		ID:       "authenticate",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/authenticate",
		Tags:     []string{"iframe"},
		Secured:  true,
		Response: AuthenticatedResponse{},
		Errors:   securedErrors,
	}
	opCreateAdageJWTFakeToken = &apiclient.Operation{
		ID:       "createAdageJwtFakeToken",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/testing/token",
		Tags:     []string{"iframe"},
		Response: apiclient.Raw{},
		Errors:   publicErrors,
	}
	opGetEducationalOffersCategories = &apiclient.Operation{
		ID:       "getEducationalOffersCategories",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/offers/categories",
		Tags:     []string{"iframe"},
		Secured:  true,
		Response: CategoriesResponseModel{},
		Errors:   securedErrors,
	}
	opGetEducationalOffersFormats = &apiclient.Operation{
		ID:       "getEducationalOffersFormats",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/offers/formats",
		Tags:     []string{"iframe"},
		Secured:  true,
		Response: EacFormatsResponseModel{},
		Errors:   securedErrors,
	}
	opGetVenueByID = &apiclient.Operation{
		ID:      "getVenueById",
		Method:  http.MethodGet,
		Path:    "/adage-iframe/venues/{venue_id}",
		Tags:    []string{"iframe"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
			apiclient.QueryParam("getRelative", false),
		},
		Response: VenueResponse{},
		Errors:   securedErrors,
	}
	opGetVenueBySiret = &apiclient.Operation{
		ID:      "getVenueBySiret",
		Method:  http.MethodGet,
		Path:    "/adage-iframe/venues/siret/{siret}",
		Tags:    []string{"iframe"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("siret", ""),
			apiclient.QueryParam("getRelative", false),
		},
		Response: VenueResponse{},
		Errors:   securedErrors,
	}
	opListFeatures = &apiclient.Operation{
		ID:       "listFeatures",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/features",
		Tags:     []string{"iframe"},
		Secured:  true,
		Response: ListFeatureResponseModel{},
		Errors:   securedErrors,
	}
	opSaveRedactorPreferences = &apiclient.Operation{
		ID:       "saveRedactorPreferences",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/redactor/preferences",
		Tags:     []string{"iframe"},
		Secured:  true,
		Body:     RedactorPreferences{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
)

// Authenticate builds GET /adage-iframe/authenticate.
func Authenticate(opts ...apiclient.Option) (*apiclient.Call[AuthenticatedResponse], error) {
	return apiclient.Build[AuthenticatedResponse](apiclient.NewBuilder(opAuthenticate), opts...)
}

// CreateAdageJWTFakeToken builds GET /adage-iframe/testing/token.
func CreateAdageJWTFakeToken(opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	return apiclient.Build[[]byte](apiclient.NewBuilder(opCreateAdageJWTFakeToken), opts...)
}

// GetEducationalOffersCategories builds GET /adage-iframe/offers/categories.
func GetEducationalOffersCategories(opts ...apiclient.Option) (*apiclient.Call[CategoriesResponseModel], error) {
	return apiclient.Build[CategoriesResponseModel](apiclient.NewBuilder(opGetEducationalOffersCategories), opts...)
}

// GetEducationalOffersFormats builds GET /adage-iframe/offers/formats.
func GetEducationalOffersFormats(opts ...apiclient.Option) (*apiclient.Call[EacFormatsResponseModel], error) {
	return apiclient.Build[EacFormatsResponseModel](apiclient.NewBuilder(opGetEducationalOffersFormats), opts...)
}

// GetVenueByID builds GET /adage-iframe/venues/{venue_id}.
func GetVenueByID(venueID int, getRelative *bool, opts ...apiclient.Option) (*apiclient.Call[VenueResponse], error) {
	b := apiclient.NewBuilder(opGetVenueByID).
		Path("venue_id", venueID).
		Query("getRelative", getRelative)
	return apiclient.Build[VenueResponse](b, opts...)
}

// GetVenueBySiret builds GET /adage-iframe/venues/siret/{siret}.
func GetVenueBySiret(siret string, getRelative *bool, opts ...apiclient.Option) (*apiclient.Call[VenueResponse], error) {
	b := apiclient.NewBuilder(opGetVenueBySiret).
		Path("siret", siret).
		Query("getRelative", getRelative)
	return apiclient.Build[VenueResponse](b, opts...)
}

// ListFeatures builds GET /adage-iframe/features.
func ListFeatures(opts ...apiclient.Option) (*apiclient.Call[ListFeatureResponseModel], error) {
	return apiclient.Build[ListFeatureResponseModel](apiclient.NewBuilder(opListFeatures), opts...)
}

// SaveRedactorPreferences builds POST /adage-iframe/redactor/preferences.
func SaveRedactorPreferences(body *RedactorPreferences, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opSaveRedactorPreferences).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
