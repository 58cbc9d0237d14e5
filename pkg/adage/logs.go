package adage

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opLogBookingModalButtonClick = &apiclient.Operation{
		ID:       "logBookingModalButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/booking-modal-button",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     StockIdBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogCatalogView = &apiclient.Operation{
		ID:       "logCatalogView",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/catalog-view",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     CatalogViewBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogConsultPlaylistElement = &apiclient.Operation{
		ID:       "logConsultPlaylistElement",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/consult-playlist-element",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     PlaylistBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogContactModalButtonClick = &apiclient.Operation{
		ID:       "logContactModalButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/contact-modal-button",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     OfferIdBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogContactURLClick = &apiclient.Operation{
		ID:       "logContactUrlClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/contact-url-click",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     OfferIdBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogFavOfferButtonClick = &apiclient.Operation{
		ID:       "logFavOfferButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/fav-offer/",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     OfferFavoriteBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogHasSeenAllPlaylist = &apiclient.Operation{
		ID:       "logHasSeenAllPlaylist",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/playlist",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     AdageBaseModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogHasSeenWholePlaylist = &apiclient.Operation{
		ID:       "logHasSeenWholePlaylist",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/has-seen-whole-playlist/",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     PlaylistBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogHeaderLinkClick = &apiclient.Operation{
		ID:       "logHeaderLinkClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/header-link-click/",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     AdageHeaderLogBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogOfferDetailsButtonClick = &apiclient.Operation{
		ID:       "logOfferDetailsButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/offer-detail",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     StockIdBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogOfferListViewSwitch = &apiclient.Operation{
		ID:       "logOfferListViewSwitch",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/offer-list-view-switch",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     OfferListSwitch{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogOfferTemplateDetailsButtonClick = &apiclient.Operation{
		ID:       "logOfferTemplateDetailsButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/offer-template-detail",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     OfferIdBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogOpenSatisfactionSurvey = &apiclient.Operation{
		ID:       "logOpenSatisfactionSurvey",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/sat-survey",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     AdageBaseModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogRequestFormPopinDismiss = &apiclient.Operation{
		ID:       "logRequestFormPopinDismiss",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/request-popin-dismiss",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     CollectiveRequestBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogSearchButtonClick = &apiclient.Operation{
		ID:       "logSearchButtonClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/search-button",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     SearchBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogSearchShowMore = &apiclient.Operation{
		ID:       "logSearchShowMore",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/search-show-more",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     TrackingShowMoreBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogTrackingAutocompleteSuggestionClick = &apiclient.Operation{
		ID:       "logTrackingAutocompleteSuggestionClick",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/tracking-autocompletion",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     TrackingAutocompleteSuggestionBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogTrackingCTAShare = &apiclient.Operation{
		ID:       "logTrackingCtaShare",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/tracking-cta-share",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     TrackingCTAShareBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogTrackingFilter = &apiclient.Operation{
		ID:       "logTrackingFilter",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/tracking-filter",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     TrackingFilterBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
	opLogTrackingMap = &apiclient.Operation{
		ID:       "logTrackingMap",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/logs/tracking-map",
		Tags:     []string{"logs"},
		Secured:  true,
		Body:     AdageBaseModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   securedErrors,
	}
)

// LogBookingModalButtonClick builds POST /adage-iframe/logs/booking-modal-button.
func LogBookingModalButtonClick(body *StockIdBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogBookingModalButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogCatalogView builds POST /adage-iframe/logs/catalog-view.
func LogCatalogView(body *CatalogViewBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogCatalogView).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogConsultPlaylistElement builds POST /adage-iframe/logs/consult-playlist-element.
func LogConsultPlaylistElement(body *PlaylistBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogConsultPlaylistElement).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogContactModalButtonClick builds POST /adage-iframe/logs/contact-modal-button.
func LogContactModalButtonClick(body *OfferIdBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogContactModalButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogContactURLClick builds POST /adage-iframe/logs/contact-url-click.
func LogContactURLClick(body *OfferIdBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogContactURLClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogFavOfferButtonClick builds POST /adage-iframe/logs/fav-offer/.
func LogFavOfferButtonClick(body *OfferFavoriteBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogFavOfferButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogHasSeenAllPlaylist builds POST /adage-iframe/logs/playlist.
func LogHasSeenAllPlaylist(body *AdageBaseModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogHasSeenAllPlaylist).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogHasSeenWholePlaylist builds POST /adage-iframe/logs/has-seen-whole-playlist/.
func LogHasSeenWholePlaylist(body *PlaylistBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogHasSeenWholePlaylist).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogHeaderLinkClick builds POST /adage-iframe/logs/header-link-click/.
func LogHeaderLinkClick(body *AdageHeaderLogBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogHeaderLinkClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogOfferDetailsButtonClick builds POST /adage-iframe/logs/offer-detail.
func LogOfferDetailsButtonClick(body *StockIdBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogOfferDetailsButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogOfferListViewSwitch builds POST /adage-iframe/logs/offer-list-view-switch.
func LogOfferListViewSwitch(body *OfferListSwitch, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogOfferListViewSwitch).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogOfferTemplateDetailsButtonClick builds POST /adage-iframe/logs/offer-template-detail.
func LogOfferTemplateDetailsButtonClick(body *OfferIdBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogOfferTemplateDetailsButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogOpenSatisfactionSurvey builds POST /adage-iframe/logs/sat-survey.
func LogOpenSatisfactionSurvey(body *AdageBaseModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogOpenSatisfactionSurvey).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogRequestFormPopinDismiss builds POST /adage-iframe/logs/request-popin-dismiss.
func LogRequestFormPopinDismiss(body *CollectiveRequestBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogRequestFormPopinDismiss).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogSearchButtonClick builds POST /adage-iframe/logs/search-button.
func LogSearchButtonClick(body *SearchBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogSearchButtonClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogSearchShowMore builds POST /adage-iframe/logs/search-show-more.
func LogSearchShowMore(body *TrackingShowMoreBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogSearchShowMore).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogTrackingAutocompleteSuggestionClick builds POST /adage-iframe/logs/tracking-autocompletion.
func LogTrackingAutocompleteSuggestionClick(body *TrackingAutocompleteSuggestionBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogTrackingAutocompleteSuggestionClick).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogTrackingCTAShare builds POST /adage-iframe/logs/tracking-cta-share.
func LogTrackingCTAShare(body *TrackingCTAShareBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogTrackingCTAShare).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogTrackingFilter builds POST /adage-iframe/logs/tracking-filter.
func LogTrackingFilter(body *TrackingFilterBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogTrackingFilter).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// LogTrackingMap builds POST /adage-iframe/logs/tracking-map.
func LogTrackingMap(body *AdageBaseModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLogTrackingMap).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
