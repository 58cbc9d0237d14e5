package pro

import "encoding/json"

type ArtistOfferResponseModel struct {
	ArtistID *string `json:"artistId"`
	// A link Artist <> Product also bears a type
	// An artist can be an author or a musician for different products
	ArtistType ArtistType `json:"artistType"`
	CustomName *string    `json:"customName"`
}

type ArtistQueryModel struct {
	Search string `json:"search"`
}

type ArtistResponseModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ThumbURL *string `json:"thumbUrl"`
}

type ArtistsResponseModel []ArtistResponseModel

type AttachImageFormModel struct {
	Credit             string  `json:"credit" formData:"credit"`
	CroppingRectHeight float64 `json:"croppingRectHeight" formData:"croppingRectHeight"`
	CroppingRectWidth  float64 `json:"croppingRectWidth" formData:"croppingRectWidth"`
	CroppingRectX      float64 `json:"croppingRectX" formData:"croppingRectX"`
	CroppingRectY      float64 `json:"croppingRectY" formData:"croppingRectY"`
}

type AttachImageResponseModel struct {
	ImageURL string `json:"imageUrl"`
}

type CategoryResponseModel struct {
	ID           string `json:"id"`
	IsSelectable bool   `json:"isSelectable"`
	ProLabel     string `json:"proLabel"`
}

type CreateOfferHighlightRequestBodyModel struct {
	HighlightIDs []int `json:"highlight_ids"`
}

type CreatePriceCategoryModel struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type CreateThumbnailBodyModel struct {
	Credit             *string  `json:"credit,omitempty" formData:"credit"`
	CroppingRectHeight *float64 `json:"croppingRectHeight,omitempty" formData:"croppingRectHeight"`
	CroppingRectWidth  *float64 `json:"croppingRectWidth,omitempty" formData:"croppingRectWidth"`
	CroppingRectX      *float64 `json:"croppingRectX,omitempty" formData:"croppingRectX"`
	CroppingRectY      *float64 `json:"croppingRectY,omitempty" formData:"croppingRectY"`
	OfferID            int      `json:"offerId" formData:"offerId"`
}

type CreateThumbnailResponseModel struct {
	Credit *string `json:"credit,omitempty"`
	ID     int     `json:"id"`
	URL    string  `json:"url"`
}

type DeleteOfferRequestBody struct {
	IDs []int `json:"ids"`
}

type DeleteStockListBody struct {
	IDsToDelete []int `json:"ids_to_delete"`
}

type EditPriceCategoryModel struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type EventDateScheduleAndPriceCategoriesCountModel struct {
	EventDate            string  `json:"eventDate"`
	PriceCategoriesCount float64 `json:"priceCategoriesCount"`
	ScheduleCount        int     `json:"scheduleCount"`
}

type EventDatesInfos []EventDateScheduleAndPriceCategoriesCountModel

type EventStockCreateBodyModel struct {
	BeginningDatetime    string  `json:"beginningDatetime"`
	BookingLimitDatetime *string `json:"bookingLimitDatetime,omitempty"`
	PriceCategoryID      float64 `json:"priceCategoryId"`
	Quantity             *int    `json:"quantity,omitempty"`
}

type EventStockUpdateBodyModel struct {
	BeginningDatetime    string  `json:"beginningDatetime"`
	BookingLimitDatetime *string `json:"bookingLimitDatetime,omitempty"`
	ID                   int     `json:"id"`
	PriceCategoryID      float64 `json:"priceCategoryId"`
	Quantity             *int    `json:"quantity,omitempty"`
}

type EventStocksBulkCreateBodyModel struct {
	OfferID int                         `json:"offerId"`
	Stocks  []EventStockCreateBodyModel `json:"stocks"`
}

type EventStocksBulkUpdateBodyModel struct {
	OfferID int                         `json:"offerId"`
	Stocks  []EventStockUpdateBodyModel `json:"stocks"`
}

type GetActiveEANOfferResponseModel struct {
	AudioDisabilityCompliant  *bool             `json:"audioDisabilityCompliant,omitempty"`
	DateCreated               string            `json:"dateCreated"`
	ID                        int               `json:"id"`
	IsActive                  bool              `json:"isActive"`
	MentalDisabilityCompliant *bool             `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool             `json:"motorDisabilityCompliant,omitempty"`
	Name                      string            `json:"name"`
	ProductID                 *int              `json:"productId,omitempty"`
	Status                    OfferStatus       `json:"status"`
	SubcategoryID             SubcategoryIdEnum `json:"subcategoryId"`
	VisualDisabilityCompliant *bool             `json:"visualDisabilityCompliant,omitempty"`
}

type GetIndividualOfferResponseModel struct {
	// GetOfferMediationResponseModel
	ActiveMediation                *GetOfferMediationResponseModel `json:"activeMediation,omitempty"`
	ArtistOfferLinks               []ArtistOfferResponseModel      `json:"artistOfferLinks"`
	AudioDisabilityCompliant       *bool                           `json:"audioDisabilityCompliant,omitempty"`
	BookingAllowedDatetime         *string                         `json:"bookingAllowedDatetime,omitempty"`
	BookingContact                 *string                         `json:"bookingContact,omitempty"`
	BookingEmail                   *string                         `json:"bookingEmail,omitempty"`
	BookingsCount                  *int                            `json:"bookingsCount,omitempty"`
	CanBeEvent                     bool                            `json:"canBeEvent"`
	DateCreated                    string                          `json:"dateCreated"`
	Description                    *string                         `json:"description,omitempty"`
	DurationMinutes                *int                            `json:"durationMinutes,omitempty"`
	ExternalTicketOfficeURL        *string                         `json:"externalTicketOfficeUrl,omitempty"`
	ExtraData                      json.RawMessage                 `json:"extraData,omitempty"`
	HasBookingLimitDatetimesPassed bool                            `json:"hasBookingLimitDatetimesPassed"`
	HasStocks                      bool                            `json:"hasStocks"`
	HighlightRequests              []ShortHighlightResponseModel   `json:"highlightRequests"`
	ID                             int                             `json:"id"`
	IsActive                       bool                            `json:"isActive"`
	IsDigital                      bool                            `json:"isDigital"`
	IsDuo                          bool                            `json:"isDuo"`
	IsEditable                     bool                            `json:"isEditable"`
	IsEvent                        bool                            `json:"isEvent"`
	IsNational                     bool                            `json:"isNational"`
	IsNonFreeOffer                 *bool                           `json:"isNonFreeOffer,omitempty"`
	IsThing                        bool                            `json:"isThing"`
	// GetOfferLastProviderResponseModel
	LastProvider              *GetOfferLastProviderResponseModel `json:"lastProvider,omitempty"`
	MentalDisabilityCompliant *bool                              `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                              `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                             `json:"name"`
	PriceCategories           []PriceCategoryResponseModel       `json:"priceCategories,omitempty"`
	ProductID                 *int                               `json:"productId,omitempty"`
	PublicationDate           *string                            `json:"publicationDate,omitempty"`
	PublicationDatetime       *string                            `json:"publicationDatetime,omitempty"`
	Status                    OfferStatus                        `json:"status"`
	SubcategoryID             SubcategoryIdEnum                  `json:"subcategoryId"`
	ThumbURL                  *string                            `json:"thumbUrl,omitempty"`
	URL                       *string                            `json:"url,omitempty"`
	Venue                     GetOfferVenueResponseModel         `json:"venue"`
	VideoData                 VideoData                          `json:"videoData"`
	VisualDisabilityCompliant *bool                              `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDelay           *int                               `json:"withdrawalDelay,omitempty"`
	WithdrawalDetails         *string                            `json:"withdrawalDetails,omitempty"`
	WithdrawalType            *WithdrawalTypeEnum                `json:"withdrawalType,omitempty"`
}

type GetIndividualOfferWithAddressResponseModel struct {
	// GetOfferMediationResponseModel
	ActiveMediation                *GetOfferMediationResponseModel `json:"activeMediation,omitempty"`
	ArtistOfferLinks               []ArtistOfferResponseModel      `json:"artistOfferLinks"`
	AudioDisabilityCompliant       *bool                           `json:"audioDisabilityCompliant,omitempty"`
	BookingAllowedDatetime         *string                         `json:"bookingAllowedDatetime,omitempty"`
	BookingContact                 *string                         `json:"bookingContact,omitempty"`
	BookingEmail                   *string                         `json:"bookingEmail,omitempty"`
	BookingsCount                  *int                            `json:"bookingsCount,omitempty"`
	CanBeEvent                     bool                            `json:"canBeEvent"`
	DateCreated                    string                          `json:"dateCreated"`
	Description                    *string                         `json:"description,omitempty"`
	DurationMinutes                *int                            `json:"durationMinutes,omitempty"`
	ExternalTicketOfficeURL        *string                         `json:"externalTicketOfficeUrl,omitempty"`
	ExtraData                      json.RawMessage                 `json:"extraData,omitempty"`
	HasBookingLimitDatetimesPassed bool                            `json:"hasBookingLimitDatetimesPassed"`
	HasPendingBookings             bool                            `json:"hasPendingBookings"`
	HasStocks                      bool                            `json:"hasStocks"`
	HighlightRequests              []ShortHighlightResponseModel   `json:"highlightRequests"`
	ID                             int                             `json:"id"`
	IsActive                       bool                            `json:"isActive"`
	IsDigital                      bool                            `json:"isDigital"`
	IsDuo                          bool                            `json:"isDuo"`
	IsEditable                     bool                            `json:"isEditable"`
	IsEvent                        bool                            `json:"isEvent"`
	IsHeadlineOffer                bool                            `json:"isHeadlineOffer"`
	IsNational                     bool                            `json:"isNational"`
	IsNonFreeOffer                 *bool                           `json:"isNonFreeOffer,omitempty"`
	IsThing                        bool                            `json:"isThing"`
	// GetOfferLastProviderResponseModel
	LastProvider *GetOfferLastProviderResponseModel `json:"lastProvider,omitempty"`
	// LocationResponseModel
	Location                  *LocationResponseModel       `json:"location,omitempty"`
	MentalDisabilityCompliant *bool                        `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool                        `json:"motorDisabilityCompliant,omitempty"`
	Name                      string                       `json:"name"`
	PriceCategories           []PriceCategoryResponseModel `json:"priceCategories,omitempty"`
	ProductID                 *int                         `json:"productId,omitempty"`
	PublicationDate           *string                      `json:"publicationDate,omitempty"`
	PublicationDatetime       *string                      `json:"publicationDatetime,omitempty"`
	Status                    OfferStatus                  `json:"status"`
	SubcategoryID             SubcategoryIdEnum            `json:"subcategoryId"`
	ThumbURL                  *string                      `json:"thumbUrl,omitempty"`
	URL                       *string                      `json:"url,omitempty"`
	Venue                     GetOfferVenueResponseModel   `json:"venue"`
	VideoData                 VideoData                    `json:"videoData"`
	VisualDisabilityCompliant *bool                        `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDelay           *int                         `json:"withdrawalDelay,omitempty"`
	WithdrawalDetails         *string                      `json:"withdrawalDetails,omitempty"`
	WithdrawalType            *WithdrawalTypeEnum          `json:"withdrawalType,omitempty"`
}

type GetMusicTypesResponse []MusicTypeResponse

type GetOfferMediationResponseModel struct {
	AuthorID *string `json:"authorId,omitempty"`
	Credit   *string `json:"credit,omitempty"`
	ThumbURL *string `json:"thumbUrl,omitempty"`
}

type GetOfferStockResponseModel struct {
	ActivationCodesExpirationDatetime *string         `json:"activationCodesExpirationDatetime,omitempty"`
	BeginningDatetime                 *string         `json:"beginningDatetime,omitempty"`
	BookingLimitDatetime              *string         `json:"bookingLimitDatetime,omitempty"`
	BookingsQuantity                  int             `json:"bookingsQuantity"`
	HasActivationCode                 bool            `json:"hasActivationCode"`
	ID                                int             `json:"id"`
	IsEventDeletable                  bool            `json:"isEventDeletable"`
	Price                             float64         `json:"price"`
	PriceCategoryID                   *float64        `json:"priceCategoryId,omitempty"`
	Quantity                          *int            `json:"quantity,omitempty"`
	RemainingQuantity                 json.RawMessage `json:"remainingQuantity,omitempty"`
}

type GetOffersStatsResponseModel struct {
	PendingEducationalOffers   int `json:"pendingEducationalOffers"`
	PendingPublicOffers        int `json:"pendingPublicOffers"`
	PublishedEducationalOffers int `json:"publishedEducationalOffers"`
	PublishedPublicOffers      int `json:"publishedPublicOffers"`
}

type GetProductInformations struct {
	Author        string          `json:"author"`
	Description   *string         `json:"description,omitempty"`
	GtlID         string          `json:"gtlId"`
	ID            int             `json:"id"`
	Images        json.RawMessage `json:"images"`
	Name          string          `json:"name"`
	Performer     string          `json:"performer"`
	SubcategoryID string          `json:"subcategoryId"`
}

type GetStocksResponseModel struct {
	EditedStockCount int                          `json:"editedStockCount"`
	Stocks           []GetOfferStockResponseModel `json:"stocks"`
	TotalStockCount  int                          `json:"totalStockCount"`
}

type HeadLineOfferResponseModel struct {
	ID      int           `json:"id"`
	Image   *OfferImageV2 `json:"image,omitempty"`
	Name    string        `json:"name"`
	VenueID int           `json:"venueId"`
}

type HighlightResponseModel struct {
	AvailabilityDatespan []string `json:"availabilityDatespan"`
	CommunicationDate    string   `json:"communicationDate"`
	Description          string   `json:"description"`
	HighlightDatespan    []string `json:"highlightDatespan"`
	ID                   int      `json:"id"`
	MediationURL         string   `json:"mediationUrl"`
	Name                 string   `json:"name"`
}

type HighlightsResponseModel []HighlightResponseModel

type ListOffersOfferResponseModel struct {
	BookingAllowedDatetime         *string                       `json:"bookingAllowedDatetime,omitempty"`
	BookingsCount                  *int                          `json:"bookingsCount,omitempty"`
	CanBeEvent                     bool                          `json:"canBeEvent"`
	HasBookingLimitDatetimesPassed bool                          `json:"hasBookingLimitDatetimesPassed"`
	HighlightRequests              []ShortHighlightResponseModel `json:"highlightRequests"`
	ID                             int                           `json:"id"`
	IsActive                       bool                          `json:"isActive"`
	IsDigital                      bool                          `json:"isDigital"`
	IsEditable                     bool                          `json:"isEditable"`
	IsEducational                  bool                          `json:"isEducational"`
	IsEvent                        bool                          `json:"isEvent"`
	IsHeadlineOffer                bool                          `json:"isHeadlineOffer"`
	IsShowcase                     *bool                         `json:"isShowcase,omitempty"`
	IsThing                        bool                          `json:"isThing"`
	// LocationResponseModel
	Location            *LocationResponseModel         `json:"location,omitempty"`
	Name                string                         `json:"name"`
	ProductID           *int                           `json:"productId,omitempty"`
	ProductISBN         *string                        `json:"productIsbn,omitempty"`
	PublicationDatetime *string                        `json:"publicationDatetime,omitempty"`
	Status              OfferStatus                    `json:"status"`
	Stocks              []ListOffersStockResponseModel `json:"stocks"`
	SubcategoryID       SubcategoryIdEnum              `json:"subcategoryId"`
	ThumbURL            *string                        `json:"thumbUrl,omitempty"`
	Venue               ListOffersVenueResponseModel   `json:"venue"`
}

type ListOffersQueryModel struct {
	CategoryID          *string `json:"categoryId,omitempty"`
	CreationMode        *string `json:"creationMode,omitempty"`
	NameOrISBN          *string `json:"nameOrIsbn,omitempty"`
	OffererAddressID    *int    `json:"offererAddressId,omitempty"`
	OffererID           *int    `json:"offererId,omitempty"`
	PeriodBeginningDate *string `json:"periodBeginningDate,omitempty"`
	PeriodEndingDate    *string `json:"periodEndingDate,omitempty"`
	Status              *string `json:"status,omitempty"`
	VenueID             *int    `json:"venueId,omitempty"`
}

type ListOffersResponseModel []ListOffersOfferResponseModel

type ListOffersStockResponseModel struct {
	BeginningDatetime             *string         `json:"beginningDatetime,omitempty"`
	BookingQuantity               *int            `json:"bookingQuantity,omitempty"`
	HasBookingLimitDatetimePassed bool            `json:"hasBookingLimitDatetimePassed"`
	ID                            int             `json:"id"`
	RemainingQuantity             json.RawMessage `json:"remainingQuantity"`
}

type MinimalPostOfferBodyModel struct {
	AudioDisabilityCompliant  bool            `json:"audioDisabilityCompliant"`
	Description               *string         `json:"description,omitempty"`
	DurationMinutes           *int            `json:"durationMinutes,omitempty"`
	ExtraData                 json.RawMessage `json:"extraData,omitempty"`
	MentalDisabilityCompliant bool            `json:"mentalDisabilityCompliant"`
	MotorDisabilityCompliant  bool            `json:"motorDisabilityCompliant"`
	Name                      string          `json:"name"`
	SubcategoryID             string          `json:"subcategoryId"`
	VenueID                   int             `json:"venueId"`
	VisualDisabilityCompliant bool            `json:"visualDisabilityCompliant"`
}

type MusicTypeResponse struct {
	CanBeEvent bool   `json:"canBeEvent"`
	GtlID      string `json:"gtl_id"`
	Label      string `json:"label"`
}

type OfferDomain struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OfferImage struct {
	Credit *string `json:"credit,omitempty"`
	URL    string  `json:"url"`
}

type OfferImageV2 struct {
	Credit *string `json:"credit,omitempty"`
	URL    string  `json:"url"`
}

type OfferOpeningHoursSchema struct {
	OpeningHours WeekdayOpeningHoursTimespans `json:"openingHours"`
}

type PatchAllOffersActiveStatusBodyModel struct {
	CategoryID          *string `json:"categoryId,omitempty"`
	CreationMode        *string `json:"creationMode,omitempty"`
	IsActive            bool    `json:"isActive"`
	NameOrISBN          *string `json:"nameOrIsbn,omitempty"`
	OffererAddressID    *int    `json:"offererAddressId,omitempty"`
	OffererID           *int    `json:"offererId,omitempty"`
	PeriodBeginningDate *string `json:"periodBeginningDate,omitempty"`
	PeriodEndingDate    *string `json:"periodEndingDate,omitempty"`
	Status              *string `json:"status,omitempty"`
	VenueID             *int    `json:"venueId,omitempty"`
}

type PatchOfferActiveStatusBodyModel struct {
	IDs      []int `json:"ids"`
	IsActive bool  `json:"isActive"`
}

type PatchOfferBodyModel struct {
	AudioDisabilityCompliant  *bool               `json:"audioDisabilityCompliant,omitempty"`
	BookingAllowedDatetime    *string             `json:"bookingAllowedDatetime,omitempty"`
	BookingContact            *string             `json:"bookingContact,omitempty"`
	BookingEmail              *string             `json:"bookingEmail,omitempty"`
	Description               *string             `json:"description,omitempty"`
	DurationMinutes           *int                `json:"durationMinutes,omitempty"`
	ExternalTicketOfficeURL   *string             `json:"externalTicketOfficeUrl,omitempty"`
	ExtraData                 json.RawMessage     `json:"extraData,omitempty"`
	IsDuo                     *bool               `json:"isDuo,omitempty"`
	IsNational                *bool               `json:"isNational,omitempty"`
	Location                  json.RawMessage     `json:"location,omitempty"`
	MentalDisabilityCompliant *bool               `json:"mentalDisabilityCompliant,omitempty"`
	MotorDisabilityCompliant  *bool               `json:"motorDisabilityCompliant,omitempty"`
	Name                      *string             `json:"name,omitempty"`
	PublicationDatetime       *string             `json:"publicationDatetime,omitempty"`
	ShouldSendMail            *bool               `json:"shouldSendMail,omitempty"`
	SubcategoryID             *string             `json:"subcategoryId,omitempty"`
	URL                       *string             `json:"url,omitempty"`
	VideoURL                  *string             `json:"videoUrl,omitempty"`
	VisualDisabilityCompliant *bool               `json:"visualDisabilityCompliant,omitempty"`
	WithdrawalDelay           *int                `json:"withdrawalDelay,omitempty"`
	WithdrawalDetails         *string             `json:"withdrawalDetails,omitempty"`
	WithdrawalType            *WithdrawalTypeEnum `json:"withdrawalType,omitempty"`
}

type PatchOfferPublishBodyModel struct {
	BookingAllowedDatetime *string `json:"bookingAllowedDatetime,omitempty"`
	ID                     int     `json:"id"`
	PublicationDatetime    *string `json:"publicationDatetime,omitempty"`
}

type PostOfferBodyModel struct {
	Address                   json.RawMessage     `json:"address,omitempty"`
	AudioDisabilityCompliant  bool                `json:"audioDisabilityCompliant"`
	BookingContact            *string             `json:"bookingContact,omitempty"`
	BookingEmail              *string             `json:"bookingEmail,omitempty"`
	Description               *string             `json:"description,omitempty"`
	DurationMinutes           *int                `json:"durationMinutes,omitempty"`
	ExternalTicketOfficeURL   *string             `json:"externalTicketOfficeUrl,omitempty"`
	ExtraData                 json.RawMessage     `json:"extraData,omitempty"`
	IsDuo                     *bool               `json:"isDuo,omitempty"`
	IsNational                *bool               `json:"isNational,omitempty"`
	MentalDisabilityCompliant bool                `json:"mentalDisabilityCompliant"`
	MotorDisabilityCompliant  bool                `json:"motorDisabilityCompliant"`
	Name                      string              `json:"name"`
	ProductID                 *int                `json:"productId,omitempty"`
	SubcategoryID             string              `json:"subcategoryId"`
	URL                       *string             `json:"url,omitempty"`
	VenueID                   int                 `json:"venueId"`
	VisualDisabilityCompliant bool                `json:"visualDisabilityCompliant"`
	WithdrawalDelay           *int                `json:"withdrawalDelay,omitempty"`
	WithdrawalDetails         *string             `json:"withdrawalDetails,omitempty"`
	WithdrawalType            *WithdrawalTypeEnum `json:"withdrawalType,omitempty"`
}

type PriceCategoryBody struct {
	PriceCategories []json.RawMessage `json:"priceCategories"`
}

type PriceCategoryResponseModel struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type ShortHighlightResponseModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StockStatsResponseModel struct {
	NewestStock       *string `json:"newestStock,omitempty"`
	OldestStock       *string `json:"oldestStock,omitempty"`
	RemainingQuantity *int    `json:"remainingQuantity,omitempty"`
	StockCount        *int    `json:"stockCount,omitempty"`
}

type StocksQueryModel struct {
	Date               *string          `json:"date,omitempty"`
	OrderBy            *StocksOrderedBy `json:"order_by,omitempty"`
	OrderByDesc        *bool            `json:"order_by_desc,omitempty"`
	Page               *int             `json:"page,omitempty"`
	PriceCategoryID    *float64         `json:"price_category_id,omitempty"`
	StocksLimitPerPage *int             `json:"stocks_limit_per_page,omitempty"`
	Time               *string          `json:"time,omitempty"`
}

type SubcategoryResponseModel struct {
	AppLabel              string   `json:"appLabel"`
	CanBeDuo              bool     `json:"canBeDuo"`
	CanBeWithdrawable     bool     `json:"canBeWithdrawable"`
	CanExpire             bool     `json:"canExpire"`
	CanHaveOpeningHours   bool     `json:"canHaveOpeningHours"`
	CategoryID            string   `json:"categoryId"`
	ConditionalFields     []string `json:"conditionalFields"`
	ID                    string   `json:"id"`
	IsDigitalDeposit      bool     `json:"isDigitalDeposit"`
	IsEvent               bool     `json:"isEvent"`
	IsPhysicalDeposit     bool     `json:"isPhysicalDeposit"`
	IsSelectable          bool     `json:"isSelectable"`
	OnlineOfflinePlatform string   `json:"onlineOfflinePlatform"`
	ProLabel              string   `json:"proLabel"`
	ReimbursementRule     string   `json:"reimbursementRule"`
}

type ThingStockUpsertBodyModel struct {
	ActivationCodes                   []string `json:"activationCodes,omitempty"`
	ActivationCodesExpirationDatetime *string  `json:"activationCodesExpirationDatetime,omitempty"`
	BookingLimitDatetime              *string  `json:"bookingLimitDatetime,omitempty"`
	ID                                *int     `json:"id,omitempty"`
	OfferID                           int      `json:"offerId"`
	Price                             float64  `json:"price"`
	Quantity                          *int     `json:"quantity,omitempty"`
}

type ThingStocksBulkUpsertBodyModel struct {
	Stocks []ThingStockUpsertBodyModel `json:"stocks"`
}

type VideoData struct {
	VideoDuration     *int    `json:"videoDuration,omitempty"`
	VideoExternalID   *string `json:"videoExternalId,omitempty"`
	VideoThumbnailURL *string `json:"videoThumbnailUrl,omitempty"`
	VideoTitle        *string `json:"videoTitle,omitempty"`
	VideoURL          *string `json:"videoUrl,omitempty"`
}

type VideoMetatdataQueryModel struct {
	VideoURL string `json:"videoUrl"`
}

type WeekdayOpeningHoursTimespans struct {
	Friday    [][]string `json:"FRIDAY,omitempty"`
	Monday    [][]string `json:"MONDAY,omitempty"`
	Saturday  [][]string `json:"SATURDAY,omitempty"`
	Sunday    [][]string `json:"SUNDAY,omitempty"`
	Thursday  [][]string `json:"THURSDAY,omitempty"`
	Tuesday   [][]string `json:"TUESDAY,omitempty"`
	Wednesday [][]string `json:"WEDNESDAY,omitempty"`
}

type DeleteFilteredStockListBody struct {
	Date            *string  `json:"date,omitempty"`
	PriceCategoryID *float64 `json:"price_category_id,omitempty"`
	Time            *string  `json:"time,omitempty"`
}

type OfferHighlightResquestsResponseModel struct {
	HighlightRequests []ShortHighlightResponseModel `json:"highlightRequests"`
}

type PostDraftOfferBodyModel struct {
	Description     *string         `json:"description,omitempty"`
	DurationMinutes *int            `json:"durationMinutes,omitempty"`
	ExtraData       json.RawMessage `json:"extraData,omitempty"`
	Name            string          `json:"name"`
	ProductID       *int            `json:"productId,omitempty"`
	SubcategoryID   string          `json:"subcategoryId"`
	URL             *string         `json:"url,omitempty"`
	VenueID         int             `json:"venueId"`
	VideoURL        *string         `json:"videoUrl,omitempty"`
}

type PatchDraftOfferBodyModel struct {
	Description     *string         `json:"description,omitempty"`
	DurationMinutes *int            `json:"durationMinutes,omitempty"`
	ExtraData       json.RawMessage `json:"extraData,omitempty"`
	Name            *string         `json:"name,omitempty"`
	SubcategoryID   *string         `json:"subcategoryId,omitempty"`
	URL             *string         `json:"url,omitempty"`
	VideoURL        *string         `json:"videoUrl,omitempty"`
}

type StockIdResponseModel struct {
	ID int `json:"id"`
}

type StocksResponseModel struct {
	StocksCount int `json:"stocks_count"`
}

type ThingStockCreateBodyModel struct {
	ActivationCodes                   []string `json:"activationCodes,omitempty"`
	ActivationCodesExpirationDatetime *string  `json:"activationCodesExpirationDatetime,omitempty"`
	BookingLimitDatetime              *string  `json:"bookingLimitDatetime,omitempty"`
	OfferID                           int      `json:"offerId"`
	Price                             float64  `json:"price"`
	Quantity                          *int     `json:"quantity,omitempty"`
}

type ThingStockUpdateBodyModel struct {
	BookingLimitDatetime *string  `json:"bookingLimitDatetime,omitempty"`
	Price                *float64 `json:"price,omitempty"`
	Quantity             *int     `json:"quantity,omitempty"`
}
