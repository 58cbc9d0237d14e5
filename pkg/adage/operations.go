package adage

import "pcpro/pkg/apiclient"

var (
	securedErrors = map[int]string{401: "Unauthorized", 403: "Forbidden", 422: "Unprocessable Content"}
	publicErrors  = map[int]string{422: "Unprocessable Content"}
)

// Operations returns the endpoint table of the adage-iframe API, sorted by path then method.
func Operations() []*apiclient.Operation {
	ops := []*apiclient.Operation{
		opAuthenticate,
		opCreateAdageJWTFakeToken,
		opGetEducationalOffersCategories,
		opGetEducationalOffersFormats,
		opGetVenueByID,
		opGetVenueBySiret,
		opListFeatures,
		opSaveRedactorPreferences,
		opBookCollectiveOffer,
		opCreateCollectiveRequest,
		opGetAcademies,
		opGetCollectiveOffer,
		opGetCollectiveOfferTemplate,
		opGetCollectiveOfferTemplates,
		opGetCollectiveOffersForMyInstitution,
		opGetEducationalInstitutionWithBudget,
		opDeleteFavoriteForCollectiveOffer,
		opDeleteFavoriteForCollectiveOfferTemplate,
		opGetCollectiveFavorites,
		opPostCollectiveOfferFavorites,
		opPostCollectiveTemplateFavorites,
		opGetClassroomPlaylist,
		opGetLocalOfferersPlaylist,
		opGetNewOfferersPlaylist,
		opNewTemplateOffersPlaylist,
		opLogBookingModalButtonClick,
		opLogCatalogView,
		opLogConsultPlaylistElement,
		opLogContactModalButtonClick,
		opLogContactURLClick,
		opLogFavOfferButtonClick,
		opLogHasSeenAllPlaylist,
		opLogHasSeenWholePlaylist,
		opLogHeaderLinkClick,
		opLogOfferDetailsButtonClick,
		opLogOfferListViewSwitch,
		opLogOfferTemplateDetailsButtonClick,
		opLogOpenSatisfactionSurvey,
		opLogRequestFormPopinDismiss,
		opLogSearchButtonClick,
		opLogSearchShowMore,
		opLogTrackingAutocompleteSuggestionClick,
		opLogTrackingCTAShare,
		opLogTrackingFilter,
		opLogTrackingMap,
	}
	apiclient.SortOperations(ops)
	return ops
}
