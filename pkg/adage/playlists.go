package adage

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opGetClassroomPlaylist = &apiclient.Operation{
		ID:       "getClassroomPlaylist",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/playlists/classroom",
		Tags:     []string{"playlists"},
		Secured:  true,
		Response: ListCollectiveOfferTemplateResponseModel{},
		Errors:   securedErrors,
	}
	opGetLocalOfferersPlaylist = &apiclient.Operation{
		ID:       "getLocalOfferersPlaylist",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/playlists/local-offerers",
		Tags:     []string{"playlists"},
		Secured:  true,
		Response: LocalOfferersPlaylist{},
		Errors:   securedErrors,
	}
	opGetNewOfferersPlaylist = &apiclient.Operation{
		ID:       "getNewOfferersPlaylist",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/playlists/new_offerers",
		Tags:     []string{"playlists"},
		Secured:  true,
		Response: LocalOfferersPlaylist{},
		Errors:   securedErrors,
	}
	opNewTemplateOffersPlaylist = &apiclient.Operation{
		ID:       "newTemplateOffersPlaylist",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/playlists/new_template_offers",
		Tags:     []string{"playlists"},
		Secured:  true,
		Response: ListCollectiveOfferTemplateResponseModel{},
		Errors:   securedErrors,
	}
)

// GetClassroomPlaylist builds GET /adage-iframe/playlists/classroom.
func GetClassroomPlaylist(opts ...apiclient.Option) (*apiclient.Call[ListCollectiveOfferTemplateResponseModel], error) {
	return apiclient.Build[ListCollectiveOfferTemplateResponseModel](apiclient.NewBuilder(opGetClassroomPlaylist), opts...)
}

// GetLocalOfferersPlaylist builds GET /adage-iframe/playlists/local-offerers.
func GetLocalOfferersPlaylist(opts ...apiclient.Option) (*apiclient.Call[LocalOfferersPlaylist], error) {
	return apiclient.Build[LocalOfferersPlaylist](apiclient.NewBuilder(opGetLocalOfferersPlaylist), opts...)
}

// GetNewOfferersPlaylist builds GET /adage-iframe/playlists/new_offerers.
func GetNewOfferersPlaylist(opts ...apiclient.Option) (*apiclient.Call[LocalOfferersPlaylist], error) {
	return apiclient.Build[LocalOfferersPlaylist](apiclient.NewBuilder(opGetNewOfferersPlaylist), opts...)
}

// NewTemplateOffersPlaylist builds GET /adage-iframe/playlists/new_template_offers.
func NewTemplateOffersPlaylist(opts ...apiclient.Option) (*apiclient.Call[ListCollectiveOfferTemplateResponseModel], error) {
	return apiclient.Build[ListCollectiveOfferTemplateResponseModel](apiclient.NewBuilder(opNewTemplateOffersPlaylist), opts...)
}
