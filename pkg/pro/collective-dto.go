package pro

import "encoding/json"

type CollectiveOfferDatesModel struct {
	End   string `json:"end"`
	Start string `json:"start"`
}

type CollectiveOfferHistory struct {
	Future []CollectiveOfferDisplayedStatus `json:"future"`
	Past   []HistoryStep                    `json:"past"`
}

type CollectiveOfferInstitutionModel struct {
	City            string `json:"city"`
	InstitutionID   string `json:"institutionId"`
	InstitutionType string `json:"institutionType"`
	Name            string `json:"name"`
	PostalCode      string `json:"postalCode"`
}

type CollectiveOfferLocationModel struct {
	Location        json.RawMessage        `json:"location,omitempty"`
	LocationComment *string                `json:"locationComment,omitempty"`
	LocationType    CollectiveLocationType `json:"locationType"`
}

type CollectiveOfferRedactorModel struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type CollectiveOfferResponseIdModel struct {
	ID int `json:"id"`
}

type CollectiveOfferResponseModel struct {
	AllowedActions []CollectiveOfferAllowedAction `json:"allowedActions"`
	// CollectiveOfferDatesModel
	Dates           *CollectiveOfferDatesModel     `json:"dates,omitempty"`
	DisplayedStatus CollectiveOfferDisplayedStatus `json:"displayedStatus"`
	// EducationalInstitutionResponseModel
	EducationalInstitution *EducationalInstitutionResponseModel `json:"educationalInstitution,omitempty"`
	ID                     int                                  `json:"id"`
	ImageURL               *string                              `json:"imageUrl,omitempty"`
	Location               GetCollectiveOfferLocationModel      `json:"location"`
	Name                   string                               `json:"name"`
	// CollectiveOfferStockResponseModel
	Stock *CollectiveOfferStockResponseModel `json:"stock,omitempty"`
	Venue ListOffersVenueResponseModel       `json:"venue"`
}

type CollectiveOfferStockResponseModel struct {
	BookingLimitDatetime *string  `json:"bookingLimitDatetime,omitempty"`
	NumberOfTickets      *int     `json:"numberOfTickets,omitempty"`
	Price                *float64 `json:"price,omitempty"`
}

type CollectiveOfferTemplateResponseModel struct {
	AllowedActions []CollectiveOfferTemplateAllowedAction `json:"allowedActions"`
	// CollectiveOfferDatesModel
	Dates           *CollectiveOfferDatesModel      `json:"dates,omitempty"`
	DisplayedStatus CollectiveOfferDisplayedStatus  `json:"displayedStatus"`
	ID              int                             `json:"id"`
	ImageURL        *string                         `json:"imageUrl,omitempty"`
	Location        GetCollectiveOfferLocationModel `json:"location"`
	Name            string                          `json:"name"`
	Venue           ListOffersVenueResponseModel    `json:"venue"`
}

type CollectiveStockCreationBodyModel struct {
	BookingLimitDatetime   *string `json:"bookingLimitDatetime"`
	EducationalPriceDetail *string `json:"educationalPriceDetail"`
	EndDatetime            string  `json:"endDatetime"`
	NumberOfTickets        int     `json:"numberOfTickets"`
	OfferID                int     `json:"offerId"`
	StartDatetime          string  `json:"startDatetime"`
	TotalPrice             float64 `json:"totalPrice"`
}

type CollectiveStockEditionBodyModel struct {
	BookingLimitDatetime   *string  `json:"bookingLimitDatetime,omitempty"`
	EducationalPriceDetail *string  `json:"educationalPriceDetail,omitempty"`
	EndDatetime            *string  `json:"endDatetime,omitempty"`
	NumberOfTickets        *int     `json:"numberOfTickets,omitempty"`
	StartDatetime          *string  `json:"startDatetime,omitempty"`
	TotalPrice             *float64 `json:"totalPrice,omitempty"`
}

type CollectiveStockResponseModel struct {
	BookingLimitDatetime   string  `json:"bookingLimitDatetime"`
	EducationalPriceDetail *string `json:"educationalPriceDetail"`
	EndDatetime            string  `json:"endDatetime"`
	ID                     int     `json:"id"`
	NumberOfTickets        int     `json:"numberOfTickets"`
	Price                  float64 `json:"price"`
	StartDatetime          string  `json:"startDatetime"`
}

type DMSApplicationForEAC struct {
	Application      int                  `json:"application"`
	BuildDate        *string              `json:"buildDate,omitempty"`
	DepositDate      string               `json:"depositDate"`
	ExpirationDate   *string              `json:"expirationDate,omitempty"`
	InstructionDate  *string              `json:"instructionDate,omitempty"`
	LastChangeDate   string               `json:"lastChangeDate"`
	Procedure        int                  `json:"procedure"`
	ProcessingDate   *string              `json:"processingDate,omitempty"`
	State            DMSApplicationstatus `json:"state"`
	UserDeletionDate *string              `json:"userDeletionDate,omitempty"`
	VenueID          int                  `json:"venueId"`
}

type EditVenueCollectiveDataBodyModel struct {
	CollectiveAccessInformation *string         `json:"collectiveAccessInformation,omitempty"`
	CollectiveDescription       *string         `json:"collectiveDescription,omitempty"`
	CollectiveDomains           []int           `json:"collectiveDomains,omitempty"`
	CollectiveEmail             *string         `json:"collectiveEmail,omitempty"`
	CollectiveInterventionArea  []string        `json:"collectiveInterventionArea,omitempty"`
	CollectiveNetwork           []string        `json:"collectiveNetwork,omitempty"`
	CollectivePhone             *string         `json:"collectivePhone,omitempty"`
	CollectiveStudents          []StudentLevels `json:"collectiveStudents,omitempty"`
	CollectiveWebsite           *string         `json:"collectiveWebsite,omitempty"`
	VenueEducationalStatusID    *int            `json:"venueEducationalStatusId,omitempty"`
}

type EducationalDomainResponseModel struct {
	ID               int                            `json:"id"`
	Name             string                         `json:"name"`
	NationalPrograms []NationalProgramResponseModel `json:"nationalPrograms"`
}

type EducationalDomainsResponseModel []EducationalDomainResponseModel

type EducationalInstitutionResponseModel struct {
	City            string  `json:"city"`
	ID              int     `json:"id"`
	InstitutionID   string  `json:"institutionId"`
	InstitutionType *string `json:"institutionType,omitempty"`
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phoneNumber"`
	PostalCode      string  `json:"postalCode"`
}

type EducationalInstitutionsQueryModel struct {
	Page         *int `json:"page,omitempty"`
	PerPageLimit *int `json:"perPageLimit,omitempty"`
}

type EducationalInstitutionsResponseModel struct {
	EducationalInstitutions []EducationalInstitutionResponseModel `json:"educationalInstitutions"`
	Page                    int                                   `json:"page"`
	Pages                   int                                   `json:"pages"`
	Total                   int                                   `json:"total"`
}

type EducationalRedactor struct {
	Email   string  `json:"email"`
	Gender  *string `json:"gender,omitempty"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
}

type EducationalRedactorQueryModel struct {
	Candidate string `json:"candidate"`
	UAI       string `json:"uai"`
}

type EducationalRedactorResponseModel struct {
	Civility  *string `json:"civility,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type EducationalRedactors []EducationalRedactor

type GetCollectiveOfferCollectiveStockResponseModel struct {
	BookingLimitDatetime   *string `json:"bookingLimitDatetime,omitempty"`
	EducationalPriceDetail *string `json:"educationalPriceDetail,omitempty"`
	EndDatetime            *string `json:"endDatetime,omitempty"`
	ID                     int     `json:"id"`
	IsBooked               bool    `json:"isBooked"`
	NumberOfTickets        *int    `json:"numberOfTickets,omitempty"`
	Price                  float64 `json:"price"`
	StartDatetime          *string `json:"startDatetime,omitempty"`
}

type GetCollectiveOfferLocationModel struct {
	// LocationResponseModel
	Location        *LocationResponseModel `json:"location,omitempty"`
	LocationComment *string                `json:"locationComment,omitempty"`
	LocationType    CollectiveLocationType `json:"locationType"`
}

type GetCollectiveOfferManagingOffererResponseModel struct {
	AllowedOnAdage bool   `json:"allowedOnAdage"`
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Siren          string `json:"siren"`
}

type GetCollectiveOfferProviderResponseModel struct {
	Name string `json:"name"`
}

type GetCollectiveOfferRequestResponseModel struct {
	Comment       string                          `json:"comment"`
	DateCreated   *string                         `json:"dateCreated,omitempty"`
	Institution   CollectiveOfferInstitutionModel `json:"institution"`
	PhoneNumber   *string                         `json:"phoneNumber,omitempty"`
	Redactor      CollectiveOfferRedactorModel    `json:"redactor"`
	RequestedDate *string                         `json:"requestedDate,omitempty"`
	TotalStudents *int                            `json:"totalStudents,omitempty"`
	TotalTeachers *int                            `json:"totalTeachers,omitempty"`
}

type GetCollectiveOfferResponseModel struct {
	AllowedActions           []CollectiveOfferAllowedAction `json:"allowedActions"`
	AudioDisabilityCompliant *bool                          `json:"audioDisabilityCompliant,omitempty"`
	// GetCollectiveOfferBookingResponseModel
	Booking       *GetCollectiveOfferBookingResponseModel `json:"booking,omitempty"`
	BookingEmails []string                                `json:"bookingEmails"`
	// GetCollectiveOfferCollectiveStockResponseModel
	CollectiveStock *GetCollectiveOfferCollectiveStockResponseModel `json:"collectiveStock,omitempty"`
	ContactEmail    *string                                         `json:"contactEmail,omitempty"`
	ContactPhone    *string                                         `json:"contactPhone,omitempty"`
	DateCreated     string                                          `json:"dateCreated"`
	// CollectiveOfferDatesModel
	Dates                          *CollectiveOfferDatesModel     `json:"dates,omitempty"`
	Description                    string                         `json:"description"`
	DisplayedStatus                CollectiveOfferDisplayedStatus `json:"displayedStatus"`
	Domains                        []OfferDomain                  `json:"domains"`
	DurationMinutes                *int                           `json:"durationMinutes,omitempty"`
	Formats                        []EacFormat                    `json:"formats"`
	HasBookingLimitDatetimesPassed bool                           `json:"hasBookingLimitDatetimesPassed"`
	History                        CollectiveOfferHistory         `json:"history"`
	ID                             int                            `json:"id"`
	ImageCredit                    *string                        `json:"imageCredit,omitempty"`
	ImageURL                       *string                        `json:"imageUrl,omitempty"`
	// EducationalInstitutionResponseModel
	Institution               *EducationalInstitutionResponseModel `json:"institution,omitempty"`
	InterventionArea          []string                             `json:"interventionArea"`
	IsActive                  bool                                 `json:"isActive"`
	IsBookable                bool                                 `json:"isBookable"`
	IsNonFreeOffer            *bool                                `json:"isNonFreeOffer,omitempty"`
	IsPublicAPI               bool                                 `json:"isPublicApi"`
	IsTemplate                *bool                                `json:"isTemplate,omitempty"`
	Location                  GetCollectiveOfferLocationModel      `json:"location"`
	MentalDisabilityCompliant *bool                                `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                                `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                               `json:"name"`
	// NationalProgramModel
	NationalProgram *NationalProgramModel `json:"nationalProgram,omitempty"`
	// GetCollectiveOfferProviderResponseModel
	Provider *GetCollectiveOfferProviderResponseModel `json:"provider,omitempty"`
	Students []StudentLevels                          `json:"students"`
	// EducationalRedactorResponseModel
	Teacher                   *EducationalRedactorResponseModel    `json:"teacher,omitempty"`
	TemplateID                *int                                 `json:"templateId,omitempty"`
	Venue                     GetCollectiveOfferVenueResponseModel `json:"venue"`
	VisualDisabilityCompliant *bool                                `json:"visualDisabilityCompliant,omitempty"`
}

type GetCollectiveOfferTemplateResponseModel struct {
	AllowedActions           []CollectiveOfferTemplateAllowedAction `json:"allowedActions"`
	AudioDisabilityCompliant *bool                                  `json:"audioDisabilityCompliant,omitempty"`
	BookingEmails            []string                               `json:"bookingEmails"`
	ContactEmail             *string                                `json:"contactEmail,omitempty"`
	ContactForm              *OfferContactFormEnum                  `json:"contactForm,omitempty"`
	ContactPhone             *string                                `json:"contactPhone,omitempty"`
	ContactURL               *string                                `json:"contactUrl,omitempty"`
	DateCreated              string                                 `json:"dateCreated"`
	// CollectiveOfferDatesModel
	Dates                          *CollectiveOfferDatesModel      `json:"dates,omitempty"`
	Description                    string                          `json:"description"`
	DisplayedStatus                CollectiveOfferDisplayedStatus  `json:"displayedStatus"`
	Domains                        []OfferDomain                   `json:"domains"`
	DurationMinutes                *int                            `json:"durationMinutes,omitempty"`
	EducationalPriceDetail         *string                         `json:"educationalPriceDetail,omitempty"`
	Formats                        []EacFormat                     `json:"formats"`
	HasBookingLimitDatetimesPassed bool                            `json:"hasBookingLimitDatetimesPassed"`
	ID                             int                             `json:"id"`
	ImageCredit                    *string                         `json:"imageCredit,omitempty"`
	ImageURL                       *string                         `json:"imageUrl,omitempty"`
	InterventionArea               []string                        `json:"interventionArea"`
	IsActive                       bool                            `json:"isActive"`
	IsNonFreeOffer                 *bool                           `json:"isNonFreeOffer,omitempty"`
	IsTemplate                     *bool                           `json:"isTemplate,omitempty"`
	Location                       GetCollectiveOfferLocationModel `json:"location"`
	MentalDisabilityCompliant      *bool                           `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant       *bool                           `json:"motorDisabilityCompliant,omitempty"`
	Name                           string                          `json:"name"`
	// NationalProgramModel
	NationalProgram           *NationalProgramModel                `json:"nationalProgram,omitempty"`
	Students                  []StudentLevels                      `json:"students"`
	Venue                     GetCollectiveOfferVenueResponseModel `json:"venue"`
	VisualDisabilityCompliant *bool                                `json:"visualDisabilityCompliant,omitempty"`
}

type GetCollectiveOfferVenueResponseModel struct {
	DepartementCode *string                                        `json:"departementCode,omitempty"`
	ID              int                                            `json:"id"`
	ImgURL          *string                                        `json:"imgUrl,omitempty"`
	ManagingOfferer GetCollectiveOfferManagingOffererResponseModel `json:"managingOfferer"`
	Name            string                                         `json:"name"`
	PublicName      *string                                        `json:"publicName,omitempty"`
}

type GetEducationalOffererResponseModel struct {
	AllowedOnAdage bool                                      `json:"allowedOnAdage"`
	ID             int                                       `json:"id"`
	ManagedVenues  []GetEducationalOffererVenueResponseModel `json:"managedVenues"`
	Name           string                                    `json:"name"`
}

type GetEducationalOffererVenueResponseModel struct {
	AudioDisabilityCompliant   *bool    `json:"audioDisabilityCompliant,omitempty"`
	City                       *string  `json:"city,omitempty"`
	CollectiveEmail            *string  `json:"collectiveEmail,omitempty"`
	CollectiveInterventionArea []string `json:"collectiveInterventionArea,omitempty"`
	CollectivePhone            *string  `json:"collectivePhone,omitempty"`
	ID                         int      `json:"id"`
	IsVirtual                  bool     `json:"isVirtual"`
	MentalDisabilityCompliant  *bool    `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant   *bool    `json:"motorDisabilityCompliant,omitempty"`
	Name                       string   `json:"name"`
	PostalCode                 *string  `json:"postalCode,omitempty"`
	PublicName                 *string  `json:"publicName,omitempty"`
	Street                     *string  `json:"street,omitempty"`
	VisualDisabilityCompliant  *bool    `json:"visualDisabilityCompliant,omitempty"`
}

type GetEducationalOfferersQueryModel struct {
	OffererID *int `json:"offerer_id,omitempty"`
}

type GetEducationalOfferersResponseModel struct {
	EducationalOfferers []GetEducationalOffererResponseModel `json:"educationalOfferers"`
}

type ListCollectiveOfferTemplatesResponseModel []CollectiveOfferTemplateResponseModel

type ListCollectiveOffersQueryModel struct {
	Format              *EacFormat                       `json:"format,omitempty"`
	LocationType        *CollectiveLocationType          `json:"locationType,omitempty"`
	Name                *string                          `json:"name,omitempty"`
	OffererAddressID    *int                             `json:"offererAddressId,omitempty"`
	OffererID           *int                             `json:"offererId,omitempty"`
	PeriodBeginningDate *string                          `json:"periodBeginningDate,omitempty"`
	PeriodEndingDate    *string                          `json:"periodEndingDate,omitempty"`
	Status              []CollectiveOfferDisplayedStatus `json:"status,omitempty"`
	VenueID             *int                             `json:"venueId,omitempty"`
}

type ListCollectiveOffersResponseModel []CollectiveOfferResponseModel

type NationalProgramModel struct {
	// National program id
	ID int `json:"id"`
	// National program name
	Name string `json:"name"`
}

type NationalProgramResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PatchCollectiveOfferActiveStatusBodyModel struct {
	IDs      []int `json:"ids"`
	IsActive bool  `json:"isActive"`
}

type PatchCollectiveOfferArchiveBodyModel struct {
	IDs []int `json:"ids"`
}

type PatchCollectiveOfferBodyModel struct {
	AudioDisabilityCompliant *bool       `json:"audioDisabilityCompliant,omitempty"`
	BookingEmails            []string    `json:"bookingEmails,omitempty"`
	ContactEmail             *string     `json:"contactEmail,omitempty"`
	ContactPhone             *string     `json:"contactPhone,omitempty"`
	Description              *string     `json:"description,omitempty"`
	Domains                  []int       `json:"domains,omitempty"`
	DurationMinutes          *int        `json:"durationMinutes,omitempty"`
	Formats                  []EacFormat `json:"formats,omitempty"`
	InterventionArea         []string    `json:"interventionArea,omitempty"`
	// CollectiveOfferLocationModel
	Location                  *CollectiveOfferLocationModel `json:"location,omitempty"`
	MentalDisabilityCompliant *bool                         `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                         `json:"motorDisabilityCompliant,omitempty"`
	Name                      *string                       `json:"name,omitempty"`
	NationalProgramID         *int                          `json:"nationalProgramId,omitempty"`
	Students                  []StudentLevels               `json:"students,omitempty"`
	VenueID                   *int                          `json:"venueId,omitempty"`
	VisualDisabilityCompliant *bool                         `json:"visualDisabilityCompliant,omitempty"`
}

type PatchCollectiveOfferEducationalInstitution struct {
	EducationalInstitutionID int     `json:"educationalInstitutionId"`
	TeacherEmail             *string `json:"teacherEmail,omitempty"`
}

type PatchCollectiveOfferTemplateBodyModel struct {
	AudioDisabilityCompliant *bool                 `json:"audioDisabilityCompliant,omitempty"`
	BookingEmails            []string              `json:"bookingEmails,omitempty"`
	ContactEmail             *string               `json:"contactEmail,omitempty"`
	ContactForm              *OfferContactFormEnum `json:"contactForm,omitempty"`
	ContactPhone             *string               `json:"contactPhone,omitempty"`
	ContactURL               *string               `json:"contactUrl,omitempty"`
	// DateRangeModel
	Dates            *DateRangeModel `json:"dates,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Domains          []int           `json:"domains,omitempty"`
	DurationMinutes  *int            `json:"durationMinutes,omitempty"`
	Formats          []EacFormat     `json:"formats,omitempty"`
	InterventionArea []string        `json:"interventionArea,omitempty"`
	// CollectiveOfferLocationModel
	Location                  *CollectiveOfferLocationModel `json:"location,omitempty"`
	MentalDisabilityCompliant *bool                         `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                         `json:"motorDisabilityCompliant,omitempty"`
	Name                      *string                       `json:"name,omitempty"`
	NationalProgramID         *int                          `json:"nationalProgramId,omitempty"`
	PriceDetail               *string                       `json:"priceDetail,omitempty"`
	Students                  []StudentLevels               `json:"students,omitempty"`
	VenueID                   *int                          `json:"venueId,omitempty"`
	VisualDisabilityCompliant *bool                         `json:"visualDisabilityCompliant,omitempty"`
}

type PostCollectiveOfferBodyModel struct {
	AudioDisabilityCompliant  *bool                        `json:"audioDisabilityCompliant,omitempty"`
	BookingEmails             []string                     `json:"bookingEmails"`
	ContactEmail              *string                      `json:"contactEmail,omitempty"`
	ContactPhone              *string                      `json:"contactPhone,omitempty"`
	Description               string                       `json:"description"`
	Domains                   []int                        `json:"domains"`
	DurationMinutes           *int                         `json:"durationMinutes,omitempty"`
	Formats                   []EacFormat                  `json:"formats"`
	InterventionArea          []string                     `json:"interventionArea,omitempty"`
	Location                  CollectiveOfferLocationModel `json:"location"`
	MentalDisabilityCompliant *bool                        `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                        `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                       `json:"name"`
	NationalProgramID         *int                         `json:"nationalProgramId,omitempty"`
	Students                  []StudentLevels              `json:"students"`
	TemplateID                *int                         `json:"templateId,omitempty"`
	VenueID                   int                          `json:"venueId"`
	VisualDisabilityCompliant *bool                        `json:"visualDisabilityCompliant,omitempty"`
}

type PostCollectiveOfferTemplateBodyModel struct {
	AudioDisabilityCompliant *bool                 `json:"audioDisabilityCompliant,omitempty"`
	BookingEmails            []string              `json:"bookingEmails"`
	ContactEmail             *string               `json:"contactEmail,omitempty"`
	ContactForm              *OfferContactFormEnum `json:"contactForm,omitempty"`
	ContactPhone             *string               `json:"contactPhone,omitempty"`
	ContactURL               *string               `json:"contactUrl,omitempty"`
	// DateRangeOnCreateModel
	Dates                     *DateRangeOnCreateModel      `json:"dates,omitempty"`
	Description               string                       `json:"description"`
	Domains                   []int                        `json:"domains"`
	DurationMinutes           *int                         `json:"durationMinutes,omitempty"`
	Formats                   []EacFormat                  `json:"formats"`
	InterventionArea          []string                     `json:"interventionArea,omitempty"`
	Location                  CollectiveOfferLocationModel `json:"location"`
	MentalDisabilityCompliant *bool                        `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                        `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                       `json:"name"`
	NationalProgramID         *int                         `json:"nationalProgramId,omitempty"`
	PriceDetail               *string                      `json:"priceDetail,omitempty"`
	Students                  []StudentLevels              `json:"students"`
	TemplateID                *int                         `json:"templateId,omitempty"`
	VenueID                   int                          `json:"venueId"`
	VisualDisabilityCompliant *bool                        `json:"visualDisabilityCompliant,omitempty"`
}

type VenuesEducationalStatusResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type VenuesEducationalStatusesResponseModel struct {
	Statuses []VenuesEducationalStatusResponseModel `json:"statuses"`
}

type AdageCulturalPartnerResponseModel struct {
	Actif            *int    `json:"actif,omitempty"`
	DateModification string  `json:"dateModification"`
	DomaineIDs       []int   `json:"domaineIds"`
	ID               int     `json:"id"`
	Libelle          string  `json:"libelle"`
	RegionID         *int    `json:"regionId,omitempty"`
	Siret            *string `json:"siret,omitempty"`
	StatutID         *int    `json:"statutId,omitempty"`
	VenueID          *int    `json:"venueId,omitempty"`
}

type AdageCulturalPartnersResponseModel struct {
	Partners []AdageCulturalPartnerResponseModel `json:"partners"`
}
