package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opCreateOfferer = &apiclient.Operation{
		ID:       "createOfferer",
		Method:   http.MethodPost,
		Path:     "/offerers",
		Tags:     []string{"offerers"},
		Body:     CreateOffererQueryModel{},
		Encoding: apiclient.EncodingJSON,
		Response: PostOffererResponseModel{},
		Errors:   defaultErrors,
	}
	opListEducationalOfferers = &apiclient.Operation{
		ID:     "listEducationalOfferers",
		Method: http.MethodGet,
		Path:   "/offerers/educational",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.QueryParam("offerer_id", 0),
		},
		Response: GetEducationalOfferersResponseModel{},
		Errors:   defaultErrors,
	}
	opListOfferersNames = &apiclient.Operation{
		ID:     "listOfferersNames",
		Method: http.MethodGet,
		Path:   "/offerers/names",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.QueryParam("validated", false),
			apiclient.QueryParam("validated_for_user", false),
			apiclient.QueryParam("offerer_id", 0),
		},
		Response: GetOfferersNamesResponseModel{},
		Errors:   defaultErrors,
	}
	opSaveNewOnboardingData = &apiclient.Operation{
		ID:       "saveNewOnboardingData",
		Method:   http.MethodPost,
		Path:     "/offerers/new",
		Tags:     []string{"offerers"},
		Body:     SaveNewOnboardingDataQueryModel{},
		Encoding: apiclient.EncodingJSON,
		Response: PostOffererResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOfferer = &apiclient.Operation{
		ID:     "getOfferer",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetOffererResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffererBankAccountsAndAttachedVenues = &apiclient.Operation{
		ID:     "getOffererBankAccountsAndAttachedVenues",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/bank-accounts",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetOffererBankAccountsResponseModel{},
		Errors:   defaultErrors,
	}
	opLinkVenueToBankAccount = &apiclient.Operation{
		ID:     "linkVenueToBankAccount",
		Method: http.MethodPatch,
		Path:   "/offerers/{offerer_id}/bank-accounts/{bank_account_id}",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
			apiclient.PathParam("bank_account_id", 0),
		},
		Body:     LinkVenueToBankAccountBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetOffererEligibility = &apiclient.Operation{
		ID:     "getOffererEligibility",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/eligibility",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: OffererEligibilityResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffererHeadlineOffer = &apiclient.Operation{
		ID:     "getOffererHeadlineOffer",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/headline-offer",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: HeadLineOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opInviteMember = &apiclient.Operation{
		ID:     "inviteMember",
		Method: http.MethodPost,
		Path:   "/offerers/{offerer_id}/invite",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Body:     InviteMemberQueryModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opInviteMemberAgain = &apiclient.Operation{
		ID:     "inviteMemberAgain",
		Method: http.MethodPost,
		Path:   "/offerers/{offerer_id}/invite-again",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Body:     InviteMemberQueryModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetOffererMembers = &apiclient.Operation{
		ID:     "getOffererMembers",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/members",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetOffererMembersResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffererAddresses = &apiclient.Operation{
		ID:     "getOffererAddresses",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/offerer_addresses",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
			apiclient.QueryParam("withOffersOption", GetOffererAddressesWithOffersOption("")),
		},
		Response: GetOffererAddressesResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffererStats = &apiclient.Operation{
		ID:     "getOffererStats",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/stats",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetOffererStatsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffererV2Stats = &apiclient.Operation{
		ID:     "getOffererV2Stats",
		Method: http.MethodGet,
		Path:   "/offerers/{offerer_id}/v2/stats",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetOffererV2StatsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetStructureData = &apiclient.Operation{
		ID:     "getStructureData",
		Method: http.MethodGet,
		Path:   "/structure/search/{search_input}",
		Tags:   []string{"offerers"},
		Params: []apiclient.Param{
			apiclient.PathParam("search_input", ""),
		},
		Response: StructureDataBodyModel{},
		Errors:   defaultErrors,
	}
)

// CreateOfferer builds POST /offerers.
func CreateOfferer(body *CreateOffererQueryModel, opts ...apiclient.Option) (*apiclient.Call[PostOffererResponseModel], error) {
	b := apiclient.NewBuilder(opCreateOfferer).
		JSON(body)
	return apiclient.Build[PostOffererResponseModel](b, opts...)
}

// ListEducationalOfferersQuery holds the optional query parameters of ListEducationalOfferers.
type ListEducationalOfferersQuery struct {
	OffererID *int `query:"offerer_id"`
}

// ListEducationalOfferers builds GET /offerers/educational.
func ListEducationalOfferers(params *ListEducationalOfferersQuery, opts ...apiclient.Option) (*apiclient.Call[GetEducationalOfferersResponseModel], error) {
	if params == nil {
		params = &ListEducationalOfferersQuery{}
	}
	b := apiclient.NewBuilder(opListEducationalOfferers).
		Query("offerer_id", params.OffererID)
	return apiclient.Build[GetEducationalOfferersResponseModel](b, opts...)
}

// ListOfferersNamesQuery holds the optional query parameters of ListOfferersNames.
type ListOfferersNamesQuery struct {
	Validated        *bool `query:"validated"`
	ValidatedForUser *bool `query:"validated_for_user"`
	OffererID        *int  `query:"offerer_id"`
}

// ListOfferersNames builds GET /offerers/names.
func ListOfferersNames(params *ListOfferersNamesQuery, opts ...apiclient.Option) (*apiclient.Call[GetOfferersNamesResponseModel], error) {
	if params == nil {
		params = &ListOfferersNamesQuery{}
	}
	b := apiclient.NewBuilder(opListOfferersNames).
		Query("validated", params.Validated).
		Query("validated_for_user", params.ValidatedForUser).
		Query("offerer_id", params.OffererID)
	return apiclient.Build[GetOfferersNamesResponseModel](b, opts...)
}

// SaveNewOnboardingData builds POST /offerers/new.
func SaveNewOnboardingData(body *SaveNewOnboardingDataQueryModel, opts ...apiclient.Option) (*apiclient.Call[PostOffererResponseModel], error) {
	b := apiclient.NewBuilder(opSaveNewOnboardingData).
		JSON(body)
	return apiclient.Build[PostOffererResponseModel](b, opts...)
}

// GetOfferer builds GET /offerers/{offerer_id}.
func GetOfferer(offererID int, opts ...apiclient.Option) (*apiclient.Call[GetOffererResponseModel], error) {
	b := apiclient.NewBuilder(opGetOfferer).
		Path("offerer_id", offererID)
	return apiclient.Build[GetOffererResponseModel](b, opts...)
}

// GetOffererBankAccountsAndAttachedVenues builds GET /offerers/{offerer_id}/bank-accounts.
func GetOffererBankAccountsAndAttachedVenues(offererID int, opts ...apiclient.Option) (*apiclient.Call[GetOffererBankAccountsResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererBankAccountsAndAttachedVenues).
		Path("offerer_id", offererID)
	return apiclient.Build[GetOffererBankAccountsResponseModel](b, opts...)
}

// LinkVenueToBankAccount builds PATCH /offerers/{offerer_id}/bank-accounts/{bank_account_id}.
func LinkVenueToBankAccount(offererID int, bankAccountID int, body *LinkVenueToBankAccountBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opLinkVenueToBankAccount).
		Path("offerer_id", offererID).
		Path("bank_account_id", bankAccountID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetOffererEligibility builds GET /offerers/{offerer_id}/eligibility.
func GetOffererEligibility(offererID int, opts ...apiclient.Option) (*apiclient.Call[OffererEligibilityResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererEligibility).
		Path("offerer_id", offererID)
	return apiclient.Build[OffererEligibilityResponseModel](b, opts...)
}

// GetOffererHeadlineOffer builds GET /offerers/{offerer_id}/headline-offer.
func GetOffererHeadlineOffer(offererID int, opts ...apiclient.Option) (*apiclient.Call[HeadLineOfferResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererHeadlineOffer).
		Path("offerer_id", offererID)
	return apiclient.Build[HeadLineOfferResponseModel](b, opts...)
}

// InviteMember builds POST /offerers/{offerer_id}/invite.
func InviteMember(offererID int, body *InviteMemberQueryModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opInviteMember).
		Path("offerer_id", offererID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// InviteMemberAgain builds POST /offerers/{offerer_id}/invite-again.
func InviteMemberAgain(offererID int, body *InviteMemberQueryModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opInviteMemberAgain).
		Path("offerer_id", offererID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetOffererMembers builds GET /offerers/{offerer_id}/members.
func GetOffererMembers(offererID int, opts ...apiclient.Option) (*apiclient.Call[GetOffererMembersResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererMembers).
		Path("offerer_id", offererID)
	return apiclient.Build[GetOffererMembersResponseModel](b, opts...)
}

// GetOffererAddressesQuery holds the optional query parameters of GetOffererAddresses.
type GetOffererAddressesQuery struct {
	WithOffersOption *GetOffererAddressesWithOffersOption `query:"withOffersOption"`
}

// GetOffererAddresses builds GET /offerers/{offerer_id}/offerer_addresses.
func GetOffererAddresses(offererID int, params *GetOffererAddressesQuery, opts ...apiclient.Option) (*apiclient.Call[GetOffererAddressesResponseModel], error) {
	if params == nil {
		params = &GetOffererAddressesQuery{}
	}
	b := apiclient.NewBuilder(opGetOffererAddresses).
		Path("offerer_id", offererID).
		Query("withOffersOption", params.WithOffersOption)
	return apiclient.Build[GetOffererAddressesResponseModel](b, opts...)
}

// GetOffererStats builds GET /offerers/{offerer_id}/stats.
func GetOffererStats(offererID int, opts ...apiclient.Option) (*apiclient.Call[GetOffererStatsResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererStats).
		Path("offerer_id", offererID)
	return apiclient.Build[GetOffererStatsResponseModel](b, opts...)
}

// GetOffererV2Stats builds GET /offerers/{offerer_id}/v2/stats.
func GetOffererV2Stats(offererID int, opts ...apiclient.Option) (*apiclient.Call[GetOffererV2StatsResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffererV2Stats).
		Path("offerer_id", offererID)
	return apiclient.Build[GetOffererV2StatsResponseModel](b, opts...)
}

// GetStructureData builds GET /structure/search/{search_input}.
func GetStructureData(searchInput string, opts ...apiclient.Option) (*apiclient.Call[StructureDataBodyModel], error) {
	b := apiclient.NewBuilder(opGetStructureData).
		Path("search_input", searchInput)
	return apiclient.Build[StructureDataBodyModel](b, opts...)
}
