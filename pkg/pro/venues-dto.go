package pro

import "encoding/json"

type AudioDisabilityModel struct {
	DeafAndHardOfHearing []string `json:"deafAndHardOfHearing,omitempty"`
}

type BannerMetaModel struct {
	CropParams       *CropParams `json:"crop_params,omitempty"`
	ImageCredit      *string     `json:"image_credit,omitempty"`
	OriginalImageURL *string     `json:"original_image_url,omitempty"`
}

type CropParams struct {
	HeightCropPercent *float64 `json:"height_crop_percent,omitempty"`
	WidthCropPercent  *float64 `json:"width_crop_percent,omitempty"`
	XCropPercent      *float64 `json:"x_crop_percent,omitempty"`
	YCropPercent      *float64 `json:"y_crop_percent,omitempty"`
}

type EditVenueBodyModel struct {
	Activity                 *string `json:"activity,omitempty"`
	AudioDisabilityCompliant *bool   `json:"audioDisabilityCompliant,omitempty"`
	BanID                    *string `json:"banId,omitempty"`
	BookingEmail             *string `json:"bookingEmail,omitempty"`
	City                     *string `json:"city,omitempty"`
	Comment                  *string `json:"comment,omitempty"`
	// VenueContactModel
	Contact                           *VenueContactModel `json:"contact,omitempty"`
	CulturalDomains                   []string           `json:"culturalDomains,omitempty"`
	Description                       *string            `json:"description,omitempty"`
	InseeCode                         *string            `json:"inseeCode,omitempty"`
	IsAccessibilityAppliedOnAllOffers *bool              `json:"isAccessibilityAppliedOnAllOffers,omitempty"`
	IsManualEdition                   *bool              `json:"isManualEdition,omitempty"`
	IsOpenToPublic                    *bool              `json:"isOpenToPublic,omitempty"`
	Latitude                          *float64           `json:"latitude,omitempty"`
	Longitude                         *float64           `json:"longitude,omitempty"`
	MentalDisabilityCompliant         *bool              `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant          *bool              `json:"motorDisabilityCompliant,omitempty"`
	Name                              *string            `json:"name,omitempty"`
	// WeekdayOpeningHoursTimespans
	OpeningHours              *WeekdayOpeningHoursTimespans `json:"openingHours,omitempty"`
	PostalCode                *string                       `json:"postalCode,omitempty"`
	PublicName                *string                       `json:"publicName,omitempty"`
	Siret                     *string                       `json:"siret,omitempty"`
	Street                    *string                       `json:"street,omitempty"`
	VenueLabelID              *int                          `json:"venueLabelId,omitempty"`
	VenueTypeCode             *VenueTypeCode                `json:"venueTypeCode,omitempty"`
	VisualDisabilityCompliant *bool                         `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDetails         *string                       `json:"withdrawalDetails,omitempty"`
}

type ExternalAccessibilityDataModel struct {
	AudioDisability              *AudioDisabilityModel  `json:"audioDisability,omitempty"`
	IsAccessibleAudioDisability  *bool                  `json:"isAccessibleAudioDisability,omitempty"`
	IsAccessibleMentalDisability *bool                  `json:"isAccessibleMentalDisability,omitempty"`
	IsAccessibleMotorDisability  *bool                  `json:"isAccessibleMotorDisability,omitempty"`
	IsAccessibleVisualDisability *bool                  `json:"isAccessibleVisualDisability,omitempty"`
	MentalDisability             *MentalDisabilityModel `json:"mentalDisability,omitempty"`
	MotorDisability              *MotorDisabilityModel  `json:"motorDisability,omitempty"`
	VisualDisability             *VisualDisabilityModel `json:"visualDisability,omitempty"`
}

type GetOfferLastProviderResponseModel struct {
	Name string `json:"name"`
}

type GetOfferVenueResponseModel struct {
	AudioDisabilityCompliant  *bool                                `json:"audioDisabilityCompliant,omitempty"`
	BookingEmail              *string                              `json:"bookingEmail,omitempty"`
	City                      *string                              `json:"city,omitempty"`
	DepartementCode           *string                              `json:"departementCode,omitempty"`
	ID                        int                                  `json:"id"`
	IsVirtual                 bool                                 `json:"isVirtual"`
	ManagingOfferer           GetOfferManagingOffererResponseModel `json:"managingOfferer"`
	MentalDisabilityCompliant *bool                                `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                                `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                               `json:"name"`
	PostalCode                *string                              `json:"postalCode,omitempty"`
	PublicName                *string                              `json:"publicName,omitempty"`
	Street                    *string                              `json:"street,omitempty"`
	VisualDisabilityCompliant *bool                                `json:"visualDisabilityCompliant,omitempty"`
}

type GetOffererVenueResponseModel struct {
	Activity *DisplayableActivity `json:"activity,omitempty"`
	// BannerMetaModel
	BannerMeta                *BannerMetaModel       `json:"bannerMeta,omitempty"`
	BannerURL                 *string                `json:"bannerUrl,omitempty"`
	BookingEmail              *string                `json:"bookingEmail,omitempty"`
	CollectiveDMSApplications []DMSApplicationForEAC `json:"collectiveDmsApplications"`
	HasAdageID                bool                   `json:"hasAdageId"`
	HasCreatedOffer           bool                   `json:"hasCreatedOffer"`
	HasPartnerPage            bool                   `json:"hasPartnerPage"`
	HasVenueProviders         bool                   `json:"hasVenueProviders"`
	ID                        int                    `json:"id"`
	IsPermanent               bool                   `json:"isPermanent"`
	IsVirtual                 bool                   `json:"isVirtual"`
	Name                      string                 `json:"name"`
	PublicName                *string                `json:"publicName,omitempty"`
	Siret                     *string                `json:"siret,omitempty"`
	VenueTypeCode             *VenueTypeCode         `json:"venueTypeCode,omitempty"`
	WithdrawalDetails         *string                `json:"withdrawalDetails,omitempty"`
}

type GetVenueDomainResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GetVenueListLiteResponseModel struct {
	Venues []VenueListItemLiteResponseModel `json:"venues"`
}

type GetVenueListResponseModel struct {
	Venues []VenueListItemResponseModel `json:"venues"`
}

type GetVenueManagingOffererResponseModel struct {
	AllowedOnAdage bool   `json:"allowedOnAdage"`
	ID             int    `json:"id"`
	IsValidated    bool   `json:"isValidated"`
	Name           string `json:"name"`
	Siren          string `json:"siren"`
}

type GetVenuePricingPointResponseModel struct {
	ID        int    `json:"id"`
	Siret     string `json:"siret"`
	VenueName string `json:"venueName"`
}

type GetVenueResponseModel struct {
	Activity                 *DisplayableActivity         `json:"activity,omitempty"`
	AdageInscriptionDate     *string                      `json:"adageInscriptionDate,omitempty"`
	AudioDisabilityCompliant *bool                        `json:"audioDisabilityCompliant,omitempty"`
	BankAccountStatus        *SimplifiedBankAccountStatus `json:"bankAccountStatus,omitempty"`
	// BannerMetaModel
	BannerMeta                  *BannerMetaModel              `json:"bannerMeta,omitempty"`
	BannerURL                   *string                       `json:"bannerUrl,omitempty"`
	BookingEmail                *string                       `json:"bookingEmail,omitempty"`
	CollectiveAccessInformation *string                       `json:"collectiveAccessInformation,omitempty"`
	CollectiveDescription       *string                       `json:"collectiveDescription,omitempty"`
	CollectiveDMSApplications   []DMSApplicationForEAC        `json:"collectiveDmsApplications"`
	CollectiveDomains           []GetVenueDomainResponseModel `json:"collectiveDomains"`
	CollectiveEmail             *string                       `json:"collectiveEmail,omitempty"`
	CollectiveInterventionArea  []string                      `json:"collectiveInterventionArea,omitempty"`
	// LegalStatusResponseModel
	CollectiveLegalStatus *LegalStatusResponseModel `json:"collectiveLegalStatus,omitempty"`
	CollectiveNetwork     []string                  `json:"collectiveNetwork,omitempty"`
	CollectivePhone       *string                   `json:"collectivePhone,omitempty"`
	CollectiveStudents    []StudentLevels           `json:"collectiveStudents,omitempty"`
	CollectiveWebsite     *string                   `json:"collectiveWebsite,omitempty"`
	Comment               *string                   `json:"comment,omitempty"`
	// VenueContactModel
	Contact     *VenueContactModel `json:"contact,omitempty"`
	DateCreated string             `json:"dateCreated"`
	Description *string            `json:"description,omitempty"`
	DMSToken    string             `json:"dmsToken"`
	// ExternalAccessibilityDataModel
	ExternalAccessibilityData *ExternalAccessibilityDataModel `json:"externalAccessibilityData,omitempty"`
	ExternalAccessibilityID   *string                         `json:"externalAccessibilityId,omitempty"`
	ExternalAccessibilityURL  *string                         `json:"externalAccessibilityUrl,omitempty"`
	HasActiveIndividualOffer  bool                            `json:"hasActiveIndividualOffer"`
	HasAdageID                bool                            `json:"hasAdageId"`
	HasNonFreeOffers          bool                            `json:"hasNonFreeOffers"`
	HasOffers                 bool                            `json:"hasOffers"`
	HasPartnerPage            bool                            `json:"hasPartnerPage"`
	ID                        int                             `json:"id"`
	IsActive                  bool                            `json:"isActive"`
	IsCaledonian              bool                            `json:"isCaledonian"`
	IsOpenToPublic            bool                            `json:"isOpenToPublic"`
	IsPermanent               *bool                           `json:"isPermanent,omitempty"`
	IsValidated               bool                            `json:"isValidated"`
	IsVirtual                 bool                            `json:"isVirtual"`
	// LocationResponseModel
	Location                  *LocationResponseModel               `json:"location,omitempty"`
	ManagingOfferer           GetVenueManagingOffererResponseModel `json:"managingOfferer"`
	MentalDisabilityCompliant *bool                                `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                                `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                               `json:"name"`
	// WeekdayOpeningHoursTimespans
	OpeningHours *WeekdayOpeningHoursTimespans `json:"openingHours,omitempty"`
	// GetVenuePricingPointResponseModel
	PricingPoint              *GetVenuePricingPointResponseModel `json:"pricingPoint,omitempty"`
	PublicName                *string                            `json:"publicName,omitempty"`
	Siret                     *string                            `json:"siret,omitempty"`
	VenueLabelID              *int                               `json:"venueLabelId,omitempty"`
	VenueType                 VenueTypeResponseModel             `json:"venueType"`
	VisualDisabilityCompliant *bool                              `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDetails         *string                            `json:"withdrawalDetails,omitempty"`
}

type GetVenuesOfOffererFromSiretResponseModel struct {
	OffererName  *string                                `json:"offererName,omitempty"`
	OffererSiren *string                                `json:"offererSiren,omitempty"`
	Venues       []VenueOfOffererFromSiretResponseModel `json:"venues"`
}

type LinkVenueToPricingPointBodyModel struct {
	PricingPointID int `json:"pricingPointId"`
}

// A venue that is already linked to a bank account.
type LinkedVenue struct {
	CommonName string `json:"commonName"`
	ID         int    `json:"id"`
}

type ListOffersVenueResponseModel struct {
	DepartementCode *string `json:"departementCode,omitempty"`
	ID              int     `json:"id"`
	IsVirtual       bool    `json:"isVirtual"`
	Name            string  `json:"name"`
	OffererName     string  `json:"offererName"`
	PublicName      *string `json:"publicName,omitempty"`
}

type ListProviderResponse []ProviderResponse

type ListVenueProviderQuery struct {
	VenueID int `json:"venueId"`
}

type ListVenueProviderResponse struct {
	VenueProviders []VenueProviderResponse `json:"venueProviders"`
}

type LocationBodyModel struct {
	BanID           *string         `json:"banId,omitempty"`
	City            string          `json:"city"`
	InseeCode       *string         `json:"inseeCode,omitempty"`
	IsManualEdition *bool           `json:"isManualEdition,omitempty"`
	IsVenueLocation *bool           `json:"isVenueLocation,omitempty"`
	Label           *string         `json:"label,omitempty"`
	Latitude        json.RawMessage `json:"latitude"`
	Longitude       json.RawMessage `json:"longitude"`
	PostalCode      string          `json:"postalCode"`
	Street          string          `json:"street"`
}

type LocationModel struct {
	BanID           *string         `json:"banId,omitempty"`
	City            string          `json:"city"`
	InseeCode       *string         `json:"inseeCode,omitempty"`
	IsManualEdition *bool           `json:"isManualEdition,omitempty"`
	IsVenueLocation *bool           `json:"isVenueLocation,omitempty"`
	Label           *string         `json:"label,omitempty"`
	Latitude        json.RawMessage `json:"latitude"`
	Longitude       json.RawMessage `json:"longitude"`
	PostalCode      string          `json:"postalCode"`
	Street          string          `json:"street"`
}

type LocationOnlyOnVenueBodyModel struct {
	IsVenueLocation bool `json:"isVenueLocation"`
}

type LocationResponseModel struct {
	BanID           *string `json:"banId,omitempty"`
	City            string  `json:"city"`
	DepartmentCode  *string `json:"departmentCode,omitempty"`
	ID              int     `json:"id"`
	InseeCode       *string `json:"inseeCode,omitempty"`
	IsManualEdition bool    `json:"isManualEdition"`
	IsVenueLocation bool    `json:"isVenueLocation"`
	Label           *string `json:"label,omitempty"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	PostalCode      string  `json:"postalCode"`
	Street          *string `json:"street,omitempty"`
}

type ManagedVenue struct {
	BankAccountID   *int    `json:"bankAccountId"`
	CommonName      string  `json:"commonName"`
	HasPricingPoint bool    `json:"hasPricingPoint"`
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Siret           *string `json:"siret"`
}

type MentalDisabilityModel struct {
	TrainedPersonnel *string `json:"trainedPersonnel,omitempty"`
}

type MotorDisabilityModel struct {
	Entrance   *string `json:"entrance,omitempty"`
	Exterior   *string `json:"exterior,omitempty"`
	Facilities *string `json:"facilities,omitempty"`
	Parking    *string `json:"parking,omitempty"`
}

type PostVenueProviderBody struct {
	IsActive               *bool    `json:"isActive,omitempty"`
	IsDuo                  *bool    `json:"isDuo,omitempty"`
	Price                  *float64 `json:"price,omitempty"`
	ProviderID             int      `json:"providerId"`
	Quantity               *int     `json:"quantity,omitempty"`
	VenueID                int      `json:"venueId"`
	VenueIDAtOfferProvider *string  `json:"venueIdAtOfferProvider,omitempty"`
}

type ProviderResponse struct {
	EnabledForPro      bool   `json:"enabledForPro"`
	HasOffererProvider bool   `json:"hasOffererProvider"`
	ID                 int    `json:"id"`
	IsActive           bool   `json:"isActive"`
	Name               string `json:"name"`
}

type VenueContactModel struct {
	Email        *string           `json:"email,omitempty"`
	PhoneNumber  *string           `json:"phoneNumber,omitempty"`
	SocialMedias map[string]string `json:"socialMedias,omitempty"`
	Website      *string           `json:"website,omitempty"`
}

type VenueLabelListResponseModel []VenueLabelResponseModel

type VenueLabelResponseModel struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type VenueListItemLiteResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type VenueListItemResponseModel struct {
	AudioDisabilityCompliant *bool                        `json:"audioDisabilityCompliant,omitempty"`
	BankAccountStatus        *SimplifiedBankAccountStatus `json:"bankAccountStatus,omitempty"`
	BookingEmail             *string                      `json:"bookingEmail,omitempty"`
	// ExternalAccessibilityDataModel
	ExternalAccessibilityData *ExternalAccessibilityDataModel `json:"externalAccessibilityData,omitempty"`
	HasCreatedOffer           bool                            `json:"hasCreatedOffer"`
	HasNonFreeOffers          bool                            `json:"hasNonFreeOffers"`
	ID                        int                             `json:"id"`
	IsActive                  bool                            `json:"isActive"`
	IsCaledonian              bool                            `json:"isCaledonian"`
	IsPermanent               bool                            `json:"isPermanent"`
	IsValidated               bool                            `json:"isValidated"`
	IsVirtual                 bool                            `json:"isVirtual"`
	// LocationResponseModel
	Location                  *LocationResponseModel `json:"location,omitempty"`
	ManagingOffererID         int                    `json:"managingOffererId"`
	MentalDisabilityCompliant *bool                  `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                  `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                 `json:"name"`
	OffererName               string                 `json:"offererName"`
	PublicName                *string                `json:"publicName,omitempty"`
	Siret                     *string                `json:"siret,omitempty"`
	VenueTypeCode             VenueTypeCode          `json:"venueTypeCode"`
	VisualDisabilityCompliant *bool                  `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDetails         *string                `json:"withdrawalDetails,omitempty"`
}

type VenueListQueryModel struct {
	ActiveOfferersOnly *bool `json:"activeOfferersOnly,omitempty"`
	OffererID          *int  `json:"offererId,omitempty"`
	Validated          *bool `json:"validated,omitempty"`
}

type VenueOfOffererFromSiretResponseModel struct {
	ID          int     `json:"id"`
	IsPermanent bool    `json:"isPermanent"`
	Name        string  `json:"name"`
	PublicName  *string `json:"publicName,omitempty"`
	Siret       *string `json:"siret,omitempty"`
}

type VenueProviderResponse struct {
	DateCreated            string           `json:"dateCreated"`
	ID                     int              `json:"id"`
	IsActive               bool             `json:"isActive"`
	IsDuo                  *bool            `json:"isDuo"`
	IsFromAllocineProvider bool             `json:"isFromAllocineProvider"`
	LastSyncDate           *string          `json:"lastSyncDate"`
	Price                  *float64         `json:"price,omitempty"`
	Provider               ProviderResponse `json:"provider"`
	Quantity               *int             `json:"quantity,omitempty"`
	VenueID                int              `json:"venueId"`
	VenueIDAtOfferProvider *string          `json:"venueIdAtOfferProvider"`
}

type VenueTypeListResponseModel []VenueTypeResponseModelV2

type VenueTypeResponseModel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type VenueTypeResponseModelV2 struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type VisualDisabilityModel struct {
	AudioDescription []string `json:"audioDescription,omitempty"`
	SoundBeacon      *string  `json:"soundBeacon,omitempty"`
}
