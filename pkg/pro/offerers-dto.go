package pro

type CreateOffererQueryModel struct {
	City        string   `json:"city"`
	InseeCode   *string  `json:"inseeCode,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Name        string   `json:"name"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	PostalCode  string   `json:"postalCode"`
	Siren       string   `json:"siren"`
	Street      *string  `json:"street,omitempty"`
}

type GetOfferManagingOffererResponseModel struct {
	AllowedOnAdage bool   `json:"allowedOnAdage"`
	ID             int    `json:"id"`
	Name           string `json:"name"`
}

type GetOffererAddressResponseModel struct {
	City            string  `json:"city"`
	DepartmentCode  *string `json:"departmentCode,omitempty"`
	ID              int     `json:"id"`
	IsLinkedToVenue bool    `json:"isLinkedToVenue"`
	Label           *string `json:"label,omitempty"`
	PostalCode      string  `json:"postalCode"`
	Street          *string `json:"street,omitempty"`
}

type GetOffererAddressesQueryModel struct {
	WithOffersOption *GetOffererAddressesWithOffersOption `json:"withOffersOption,omitempty"`
}

type GetOffererAddressesResponseModel []GetOffererAddressResponseModel

type GetOffererMemberResponseModel struct {
	Email  string              `json:"email"`
	Status OffererMemberStatus `json:"status"`
}

type GetOffererMembersResponseModel struct {
	Members []GetOffererMemberResponseModel `json:"members"`
}

type GetOffererNameResponseModel struct {
	AllowedOnAdage bool   `json:"allowedOnAdage"`
	ID             int    `json:"id"`
	Name           string `json:"name"`
}

type GetOffererResponseModel struct {
	AllowedOnAdage                             bool                           `json:"allowedOnAdage"`
	CanDisplayHighlights                       bool                           `json:"canDisplayHighlights"`
	HasActiveOffer                             bool                           `json:"hasActiveOffer"`
	HasAvailablePricingPoints                  bool                           `json:"hasAvailablePricingPoints"`
	HasBankAccountWithPendingCorrections       bool                           `json:"hasBankAccountWithPendingCorrections"`
	HasDigitalVenueAtLeastOneOffer             bool                           `json:"hasDigitalVenueAtLeastOneOffer"`
	HasHeadlineOffer                           bool                           `json:"hasHeadlineOffer"`
	HasNonFreeOffer                            bool                           `json:"hasNonFreeOffer"`
	HasPartnerPage                             bool                           `json:"hasPartnerPage"`
	HasPendingBankAccount                      bool                           `json:"hasPendingBankAccount"`
	HasValidBankAccount                        bool                           `json:"hasValidBankAccount"`
	ID                                         int                            `json:"id"`
	IsActive                                   bool                           `json:"isActive"`
	IsCaledonian                               bool                           `json:"isCaledonian"`
	IsOnboarded                                bool                           `json:"isOnboarded"`
	IsValidated                                bool                           `json:"isValidated"`
	ManagedVenues                              []GetOffererVenueResponseModel `json:"managedVenues,omitempty"`
	Name                                       string                         `json:"name"`
	Siren                                      string                         `json:"siren"`
	VenuesWithNonFreeOffersWithoutBankAccounts []int                          `json:"venuesWithNonFreeOffersWithoutBankAccounts"`
}

type GetOffererV2StatsResponseModel struct {
	PendingEducationalOffers   int `json:"pendingEducationalOffers"`
	PendingPublicOffers        int `json:"pendingPublicOffers"`
	PublishedEducationalOffers int `json:"publishedEducationalOffers"`
	PublishedPublicOffers      int `json:"publishedPublicOffers"`
}

type GetOfferersNamesQueryModel struct {
	OffererID        *int  `json:"offerer_id,omitempty"`
	Validated        *bool `json:"validated,omitempty"`
	ValidatedForUser *bool `json:"validated_for_user,omitempty"`
}

type GetOfferersNamesResponseModel struct {
	OfferersNames []GetOffererNameResponseModel `json:"offerersNames"`
}

type HeadlineOfferCreationBodyModel struct {
	OfferID int `json:"offerId"`
}

type HeadlineOfferDeleteBodyModel struct {
	OffererID int `json:"offererId"`
}

type InviteMemberQueryModel struct {
	Email string `json:"email"`
}

type LegalStatusResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OffererEligibilityResponseModel struct {
	HasAdageID       *bool `json:"hasAdageId,omitempty"`
	HasDSApplication *bool `json:"hasDsApplication,omitempty"`
	IsOnboarded      *bool `json:"isOnboarded,omitempty"`
	OffererID        int   `json:"offererId"`
}

type PostOffererResponseModel struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Siren string `json:"siren"`
}

type SaveNewOnboardingDataQueryModel struct {
	Activity                *string           `json:"activity,omitempty"`
	Address                 LocationBodyModel `json:"address"`
	CreateVenueWithoutSiret *bool             `json:"createVenueWithoutSiret,omitempty"`
	CulturalDomains         []string          `json:"culturalDomains,omitempty"`
	IsOpenToPublic          bool              `json:"isOpenToPublic"`
	PhoneNumber             *string           `json:"phoneNumber,omitempty"`
	PublicName              *string           `json:"publicName,omitempty"`
	Siret                   string            `json:"siret"`
	Target                  Target            `json:"target"`
	Token                   string            `json:"token"`
	VenueTypeCode           *string           `json:"venueTypeCode,omitempty"`
	WebPresence             string            `json:"webPresence"`
}

type StructureDataBodyModel struct {
	ApeCode      *string `json:"apeCode,omitempty"`
	IsDiffusible bool    `json:"isDiffusible"`
	// LocationModel
	Location *LocationModel `json:"location,omitempty"`
	Name     *string        `json:"name,omitempty"`
	Siren    *string        `json:"siren,omitempty"`
	Siret    string         `json:"siret"`
}
