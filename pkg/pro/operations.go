package pro

import "pcpro/pkg/apiclient"

var (
	defaultErrors              = map[int]string{403: "Forbidden", 422: "Unprocessable Content"}
	notFoundErrors             = map[int]string{403: "Forbidden", 404: "Not Found", 422: "Unprocessable Content"}
	badRequestErrors           = map[int]string{400: "Bad Request", 403: "Forbidden", 422: "Unprocessable Content"}
	badRequestNotFoundErrors   = map[int]string{400: "Bad Request", 403: "Forbidden", 404: "Not Found", 422: "Unprocessable Content"}
	unauthorizedErrors         = map[int]string{401: "Unauthorized", 403: "Forbidden", 422: "Unprocessable Content"}
	fullErrors                 = map[int]string{400: "Bad Request", 401: "Unauthorized", 403: "Forbidden", 404: "Not Found", 422: "Unprocessable Content"}
	unauthorizedNotFoundErrors = map[int]string{401: "Unauthorized", 403: "Forbidden", 404: "Not Found", 422: "Unprocessable Content"}
	keepTokenErrors            = map[int]string{
		401: "Authentification nécessaire",
		403: "Vous n'avez pas les droits nécessaires pour voir cette contremarque",
		404: "La contremarque n'existe pas",
		410: "La requête est refusée car la contremarque n'a pas encore été validée, a été annulée, ou son remboursement a été initié",
		422: "Unprocessable Content",
	}
	tokenErrors = map[int]string{
		401: "Authentification nécessaire",
		403: "Vous n'avez pas les droits nécessaires pour voir cette contremarque",
		404: "La contremarque n'existe pas",
		410: "Cette contremarque a été validée. En l’invalidant vous indiquez qu’elle n’a pas été utilisée et vous ne serez pas remboursé.",
		422: "Unprocessable Content",
	}
)

// Operations returns the endpoint table of the pro API, sorted by path then method.
func Operations() []*apiclient.Operation {
	ops := []*apiclient.Operation{
		opGetBookingsCsv,
		opGetOfferPriceCategoriesAndSchedulesByDates,
		opGetBookingsExcel,
		opPatchBookingKeepByToken,
		opExportBookingsForOfferAsCsv,
		opExportBookingsForOfferAsExcel,
		opGetBookingsPro,
		opGetUserHasBookings,
		opGetBookingByToken,
		opPatchBookingUseByToken,
		opGetCollectiveBookingsCsv,
		opGetCollectiveBookingsExcel,
		opGetCollectiveBookingsPro,
		opGetUserHasCollectiveBookings,
		opGetCollectiveBookingByID,
		opListEducationalDomains,
		opGetCollectiveOffers,
		opCreateCollectiveOffer,
		opCreateCollectiveOfferTemplate,
		opPatchCollectiveOffersTemplateActiveStatus,
		opPatchCollectiveOffersTemplateArchive,
		opGetCollectiveOfferRequest,
		opGetCollectiveOfferTemplate,
		opEditCollectiveOfferTemplate,
		opDeleteOfferTemplateImage,
		opAttachOfferTemplateImage,
		opPatchCollectiveOfferTemplatePublication,
		opPatchCollectiveOffersArchive,
		opGetCollectiveOffersCsv,
		opGetCollectiveOffersExcel,
		opGetAutocompleteEducationalRedactorsForUAI,
		opGetCollectiveOffer,
		opEditCollectiveOffer,
		opCancelCollectiveOfferBooking,
		opDuplicateCollectiveOffer,
		opPatchCollectiveOffersEducationalInstitution,
		opDeleteOfferImage,
		opAttachOfferImage,
		opPatchCollectiveOfferPublication,
		opCreateCollectiveStock,
		opEditCollectiveStock,
		opGetEducationalPartners,
		opGetEducationalInstitutions,
		opListFeatures,
		opGetBankAccounts,
		opGetCombinedInvoices,
		opGetStatistics,
		opGetReimbursementsCsv,
		opHasInvoice,
		opGetInvoicesV2,
		opGetReimbursementsCsvV2,
		opGetOfferVideoMetadata,
		opGetProductByEAN,
		opListOffers,
		opPostOffer,
		opPatchOffersActiveStatus,
		opPatchAllOffersActiveStatus,
		opGetCategories,
		opDeleteDraftOffers,
		opDeleteHeadlineOffer,
		opPostDraftOffer,
		opPatchDraftOffer,
		opGetMusicTypes,
		opPatchPublishOffer,
		opCreateThumbnail,
		opDeleteThumbnail,
		opUpsertHeadlineOffer,
		opGetOffer,
		opPatchOffer,
		opPostHighlightRequestOffer,
		opGetOfferOpeningHours,
		opUpsertOfferOpeningHours,
		opPostPriceCategories,
		opDeletePriceCategory,
		opGetStocksStats,
		opGetStocks,
		opDeleteAllFilteredStocks,
		opDeleteStocks,
		opGetActiveVenueOfferByEAN,
		opCreateThingStock,
		opBulkUpdateEventStocks,
		opBulkCreateEventStocks,
		opDeleteStock,
		opUpdateThingStock,
		opCreateOffer,
		opCreateOfferer,
		opListEducationalOfferers,
		opListOfferersNames,
		opSaveNewOnboardingData,
		opGetOfferer,
		opGetOffererBankAccountsAndAttachedVenues,
		opLinkVenueToBankAccount,
		opGetOffererEligibility,
		opGetOffererHeadlineOffer,
		opInviteMember,
		opInviteMemberAgain,
		opGetOffererMembers,
		opGetOffererAddresses,
		opGetOffererStats,
		opGetOffererV2Stats,
		opGetStructureData,
		opPostCheckToken,
		opConnectAs,
		opCookiesConsent,
		opGetProfile,
		opPostUserEmail,
		opGetUserEmailPendingValidation,
		opPatchUserIdentity,
		opSubmitUserReview,
		opPostNewPassword,
		opPostChangePassword,
		opPatchUserPhone,
		opResetPassword,
		opPatchProUserRGSSeen,
		opSignin,
		opSignout,
		opSignupPro,
		opPatchUserTutoSeen,
		opPatchValidateEmail,
		opValidateUser,
		opFetchVenueLabels,
		opGetVenueTypes,
		opListVenueProviders,
		opCreateVenueProvider,
		opUpdateVenueProvider,
		opGetProvidersByVenue,
		opDeleteVenueProvider,
		opGetVenues,
		opGetVenuesEducationalStatuses,
		opGetVenuesOfOffererFromSiret,
		opGetVenue,
		opEditVenue,
		opDeleteVenueBanner,
		opEditVenueCollectiveData,
		opLinkVenueToPricingPoint,
	}
	apiclient.SortOperations(ops)
	return ops
}
