package adage

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opDeleteFavoriteForCollectiveOffer = &apiclient.Operation{
		ID:      "deleteFavoriteForCollectiveOffer",
		Method:  http.MethodDelete,
		Path:    "/adage-iframe/collective/offer/{offer_id}/favorites",
		Tags:    []string{"favorites"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opDeleteFavoriteForCollectiveOfferTemplate = &apiclient.Operation{
		ID:      "deleteFavoriteForCollectiveOfferTemplate",
		Method:  http.MethodDelete,
		Path:    "/adage-iframe/collective/template/{offer_template_id}/favorites",
		Tags:    []string{"favorites"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_template_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opGetCollectiveFavorites = &apiclient.Operation{
		ID:       "getCollectiveFavorites",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/collective/favorites",
		Tags:     []string{"favorites"},
		Secured:  true,
		Response: FavoritesResponseModel{},
		Errors:   securedErrors,
	}
	opPostCollectiveOfferFavorites = &apiclient.Operation{
		ID:      "postCollectiveOfferFavorites",
		Method:  http.MethodPost,
		Path:    "/adage-iframe/collective/offers/{offer_id}/favorites",
		Tags:    []string{"favorites"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opPostCollectiveTemplateFavorites = &apiclient.Operation{
		ID:      "postCollectiveTemplateFavorites",
		Method:  http.MethodPost,
		Path:    "/adage-iframe/collective/templates/{offer_id}/favorites",
		Tags:    []string{"favorites"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
)

// DeleteFavoriteForCollectiveOffer builds DELETE /adage-iframe/collective/offer/{offer_id}/favorites.
func DeleteFavoriteForCollectiveOffer(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteFavoriteForCollectiveOffer).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// DeleteFavoriteForCollectiveOfferTemplate builds DELETE /adage-iframe/collective/template/{offer_template_id}/favorites.
func DeleteFavoriteForCollectiveOfferTemplate(offerTemplateID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteFavoriteForCollectiveOfferTemplate).
		Path("offer_template_id", offerTemplateID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetCollectiveFavorites builds GET /adage-iframe/collective/favorites.
func GetCollectiveFavorites(opts ...apiclient.Option) (*apiclient.Call[FavoritesResponseModel], error) {
	return apiclient.Build[FavoritesResponseModel](apiclient.NewBuilder(opGetCollectiveFavorites), opts...)
}

// PostCollectiveOfferFavorites builds POST /adage-iframe/collective/offers/{offer_id}/favorites.
func PostCollectiveOfferFavorites(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostCollectiveOfferFavorites).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PostCollectiveTemplateFavorites builds POST /adage-iframe/collective/templates/{offer_id}/favorites.
func PostCollectiveTemplateFavorites(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostCollectiveTemplateFavorites).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
