package adage

type BookCollectiveOfferRequest struct {
	StockID int `json:"stockId"`
}

type BookCollectiveOfferResponse struct {
	BookingID int `json:"bookingId"`
}

type CategoriesResponseModel struct {
	Categories    []CategoryResponseModel    `json:"categories"`
	Subcategories []SubcategoryResponseModel `json:"subcategories"`
}

type CategoryResponseModel struct {
	ID       string `json:"id"`
	ProLabel string `json:"proLabel"`
}

type CollectiveOfferOfferVenue struct {
	Address      *string          `json:"address,omitempty"`
	AddressType  OfferAddressType `json:"addressType"`
	City         *string          `json:"city,omitempty"`
	Distance     *float64         `json:"distance,omitempty"`
	Name         *string          `json:"name,omitempty"`
	OtherAddress string           `json:"otherAddress"`
	PostalCode   *string          `json:"postalCode,omitempty"`
	PublicName   *string          `json:"publicName,omitempty"`
	VenueID      *int             `json:"venueId,omitempty"`
}

type CollectiveOfferResponseModel struct {
	AudioDisabilityCompliant  *bool                                `json:"audioDisabilityCompliant,omitempty"`
	ContactEmail              *string                              `json:"contactEmail,omitempty"`
	ContactPhone              *string                              `json:"contactPhone,omitempty"`
	Description               *string                              `json:"description,omitempty"`
	Domains                   []OfferDomain                        `json:"domains"`
	DurationMinutes           *int                                 `json:"durationMinutes,omitempty"`
	EducationalInstitution    *EducationalInstitutionResponseModel `json:"educationalInstitution,omitempty"`
	EducationalPriceDetail    *string                              `json:"educationalPriceDetail,omitempty"`
	Formats                   []EacFormat                          `json:"formats,omitempty"`
	ID                        int                                  `json:"id"`
	ImageCredit               *string                              `json:"imageCredit,omitempty"`
	ImageURL                  *string                              `json:"imageUrl,omitempty"`
	InterventionArea          []string                             `json:"interventionArea"`
	IsExpired                 bool                                 `json:"isExpired"`
	IsFavorite                *bool                                `json:"isFavorite,omitempty"`
	IsSoldOut                 bool                                 `json:"isSoldOut"`
	IsTemplate                *bool                                `json:"isTemplate,omitempty"`
	MentalDisabilityCompliant *bool                                `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                                `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                               `json:"name"`
	NationalProgram           *NationalProgramModel                `json:"nationalProgram,omitempty"`
	OfferID                   *int                                 `json:"offerId,omitempty"`
	OfferVenue                CollectiveOfferOfferVenue            `json:"offerVenue"`
	Stock                     OfferStockResponse                   `json:"stock"`
	Students                  []StudentLevels                      `json:"students"`
	Teacher                   *EducationalRedactorResponseModel    `json:"teacher,omitempty"`
	Venue                     OfferVenueResponse                   `json:"venue"`
	VisualDisabilityCompliant *bool                                `json:"visualDisabilityCompliant,omitempty"`
}

type CollectiveOfferTemplateResponseModel struct {
	AudioDisabilityCompliant  *bool                     `json:"audioDisabilityCompliant,omitempty"`
	ContactEmail              *string                   `json:"contactEmail,omitempty"`
	ContactForm               *OfferContactFormEnum     `json:"contactForm,omitempty"`
	ContactPhone              *string                   `json:"contactPhone,omitempty"`
	ContactURL                *string                   `json:"contactUrl,omitempty"`
	Dates                     *TemplateDatesModel       `json:"dates,omitempty"`
	Description               *string                   `json:"description,omitempty"`
	Domains                   []OfferDomain             `json:"domains"`
	DurationMinutes           *int                      `json:"durationMinutes,omitempty"`
	EducationalPriceDetail    *string                   `json:"educationalPriceDetail,omitempty"`
	Formats                   []EacFormat               `json:"formats,omitempty"`
	ID                        int                       `json:"id"`
	ImageCredit               *string                   `json:"imageCredit,omitempty"`
	ImageURL                  *string                   `json:"imageUrl,omitempty"`
	InterventionArea          []string                  `json:"interventionArea"`
	IsExpired                 bool                      `json:"isExpired"`
	IsFavorite                *bool                     `json:"isFavorite,omitempty"`
	IsSoldOut                 bool                      `json:"isSoldOut"`
	IsTemplate                *bool                     `json:"isTemplate,omitempty"`
	MentalDisabilityCompliant *bool                     `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                     `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                    `json:"name"`
	NationalProgram           *NationalProgramModel     `json:"nationalProgram,omitempty"`
	OfferID                   *int                      `json:"offerId,omitempty"`
	OfferVenue                CollectiveOfferOfferVenue `json:"offerVenue"`
	Students                  []StudentLevels           `json:"students"`
	Venue                     OfferVenueResponse        `json:"venue"`
	VisualDisabilityCompliant *bool                     `json:"visualDisabilityCompliant,omitempty"`
}

type CollectiveRequestResponseModel struct {
	Comment       string  `json:"comment"`
	Email         string  `json:"email"`
	ID            int     `json:"id"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	RequestedDate *string `json:"requestedDate,omitempty"`
	TotalStudents *int    `json:"totalStudents,omitempty"`
	TotalTeachers *int    `json:"totalTeachers,omitempty"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type EacFormatsResponseModel struct {
	Formats []EacFormat `json:"formats"`
}

type EducationalInstitutionProgramModel struct {
	Description *string `json:"description,omitempty"`
	Label       *string `json:"label,omitempty"`
	Name        string  `json:"name"`
}

type EducationalInstitutionResponseModel struct {
	City            string  `json:"city"`
	ID              int     `json:"id"`
	InstitutionType *string `json:"institutionType,omitempty"`
	Name            string  `json:"name"`
	PostalCode      string  `json:"postalCode"`
}

type EducationalInstitutionWithBudgetResponseModel struct {
	Budget          float64 `json:"budget"`
	City            string  `json:"city"`
	ID              int     `json:"id"`
	InstitutionType string  `json:"institutionType"`
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phoneNumber"`
	PostalCode      string  `json:"postalCode"`
}

type EducationalRedactorResponseModel struct {
	Civility  *string `json:"civility,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type FavoritesResponseModel struct {
	FavoritesOffer    []CollectiveOfferResponseModel         `json:"favoritesOffer"`
	FavoritesTemplate []CollectiveOfferTemplateResponseModel `json:"favoritesTemplate"`
}

type ListCollectiveOfferTemplateResponseModel struct {
	CollectiveOffers []CollectiveOfferTemplateResponseModel `json:"collectiveOffers"`
}

type ListCollectiveOffersResponseModel struct {
	CollectiveOffers []CollectiveOfferResponseModel `json:"collectiveOffers"`
}

type LocalOfferersPlaylist struct {
	Venues []LocalOfferersPlaylistOffer `json:"venues"`
}

type LocalOfferersPlaylistOffer struct {
	City       *string  `json:"city,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
	ID         int      `json:"id"`
	ImgURL     *string  `json:"imgUrl,omitempty"`
	Name       string   `json:"name"`
	PublicName *string  `json:"publicName,omitempty"`
}

type NationalProgramModel struct {
	// National program id
	ID int `json:"id"`
	// National program name
	Name string `json:"name"`
}

type OfferDomain struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OfferManagingOffererResponse struct {
	Name string `json:"name"`
}

type OfferStockResponse struct {
	BeginningDatetime      *string `json:"beginningDatetime,omitempty"`
	BookingLimitDatetime   *string `json:"bookingLimitDatetime,omitempty"`
	EducationalPriceDetail *string `json:"educationalPriceDetail,omitempty"`
	EndDatetime            *string `json:"endDatetime,omitempty"`
	ID                     int     `json:"id"`
	IsBookable             bool    `json:"isBookable"`
	NumberOfTickets        *int    `json:"numberOfTickets,omitempty"`
	Price                  float64 `json:"price"`
	StartDatetime          *string `json:"startDatetime,omitempty"`
}

type OfferVenueResponse struct {
	AdageID         *string                      `json:"adageId,omitempty"`
	Address         *string                      `json:"address,omitempty"`
	City            *string                      `json:"city,omitempty"`
	Coordinates     Coordinates                  `json:"coordinates"`
	DepartmentCode  *string                      `json:"departmentCode,omitempty"`
	Distance        *float64                     `json:"distance,omitempty"`
	ID              int                          `json:"id"`
	ImgURL          *string                      `json:"imgUrl,omitempty"`
	ManagingOfferer OfferManagingOffererResponse `json:"managingOfferer"`
	Name            string                       `json:"name"`
	PostalCode      *string                      `json:"postalCode,omitempty"`
	PublicName      *string                      `json:"publicName,omitempty"`
}

type PostCollectiveRequestBodyModel struct {
	Comment       string  `json:"comment"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	RequestedDate *string `json:"requestedDate,omitempty"`
	TotalStudents *int    `json:"totalStudents,omitempty"`
	TotalTeachers *int    `json:"totalTeachers,omitempty"`
}

type SubcategoryResponseModel struct {
	CategoryID string `json:"categoryId"`
	ID         string `json:"id"`
}

type TemplateDatesModel struct {
	End   string `json:"end"`
	Start string `json:"start"`
}

type VenueResponse struct {
	AdageID         *string `json:"adageId,omitempty"`
	DepartementCode string  `json:"departementCode"`
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	PublicName      *string `json:"publicName,omitempty"`
	Relative        []int   `json:"relative"`
}
