package pro

type BookingRecapResponseBeneficiaryModel struct {
	Email       *string `json:"email,omitempty"`
	Firstname   *string `json:"firstname,omitempty"`
	Lastname    *string `json:"lastname,omitempty"`
	Phonenumber *string `json:"phonenumber,omitempty"`
}

type BookingRecapResponseBookingStatusHistoryModel struct {
	Date   *string            `json:"date,omitempty"`
	Status BookingRecapStatus `json:"status"`
}

type BookingRecapResponseModel struct {
	Beneficiary               BookingRecapResponseBeneficiaryModel            `json:"beneficiary"`
	BookingAmount             float64                                         `json:"bookingAmount"`
	BookingDate               string                                          `json:"bookingDate"`
	BookingIsDuo              bool                                            `json:"bookingIsDuo"`
	BookingPriceCategoryLabel *string                                         `json:"bookingPriceCategoryLabel,omitempty"`
	BookingStatus             BookingRecapStatus                              `json:"bookingStatus"`
	BookingStatusHistory      []BookingRecapResponseBookingStatusHistoryModel `json:"bookingStatusHistory"`
	BookingToken              *string                                         `json:"bookingToken,omitempty"`
	Stock                     BookingRecapResponseStockModel                  `json:"stock"`
}

type BookingRecapResponseStockModel struct {
	EventBeginningDatetime *string `json:"eventBeginningDatetime,omitempty"`
	OfferEAN               *string `json:"offerEan,omitempty"`
	OfferID                int     `json:"offerId"`
	OfferIsEducational     bool    `json:"offerIsEducational"`
	OfferName              string  `json:"offerName"`
}

type BookingsExportQueryModel struct {
	EventDate string                     `json:"eventDate"`
	Status    BookingsExportStatusFilter `json:"status"`
}

type GetBookingResponse struct {
	BookingID           string           `json:"bookingId"`
	DateOfBirth         *string          `json:"dateOfBirth"`
	Datetime            string           `json:"datetime"`
	Ean13               *string          `json:"ean13"`
	Email               string           `json:"email"`
	FirstName           *string          `json:"firstName"`
	IsUsed              bool             `json:"isUsed"`
	LastName            *string          `json:"lastName"`
	OfferAddress        *string          `json:"offerAddress"`
	OfferDepartmentCode *string          `json:"offerDepartmentCode"`
	OfferID             int              `json:"offerId"`
	OfferName           string           `json:"offerName"`
	OfferType           BookingOfferType `json:"offerType"`
	PhoneNumber         *string          `json:"phoneNumber"`
	Price               float64          `json:"price"`
	PriceCategoryLabel  *string          `json:"priceCategoryLabel"`
	PublicOfferID       string           `json:"publicOfferId"`
	Quantity            int              `json:"quantity"`
	UserName            string           `json:"userName"`
	VenueName           string           `json:"venueName"`
}

type GetCollectiveOfferBookingResponseModel struct {
	CancellationLimitDate string                                `json:"cancellationLimitDate"`
	CancellationReason    *CollectiveBookingCancellationReasons `json:"cancellationReason,omitempty"`
	ConfirmationLimitDate string                                `json:"confirmationLimitDate"`
	DateCreated           string                                `json:"dateCreated"`
	// EducationalRedactorResponseModel
	EducationalRedactor *EducationalRedactorResponseModel `json:"educationalRedactor,omitempty"`
	ID                  int                               `json:"id"`
	Status              CollectiveBookingStatus           `json:"status"`
}

type ListBookingsQueryModel struct {
	BookingPeriodBeginningDate *string              `json:"bookingPeriodBeginningDate,omitempty"`
	BookingPeriodEndingDate    *string              `json:"bookingPeriodEndingDate,omitempty"`
	BookingStatusFilter        *BookingStatusFilter `json:"bookingStatusFilter,omitempty"`
	EventDate                  *string              `json:"eventDate,omitempty"`
	ExportType                 *BookingExportType   `json:"exportType,omitempty"`
	OfferID                    *int                 `json:"offerId,omitempty"`
	OffererAddressID           *int                 `json:"offererAddressId,omitempty"`
	OffererID                  *int                 `json:"offererId,omitempty"`
	Page                       *int                 `json:"page,omitempty"`
	VenueID                    *int                 `json:"venueId,omitempty"`
}

type ListBookingsResponseModel struct {
	BookingsRecap []BookingRecapResponseModel `json:"bookingsRecap"`
	Page          int                         `json:"page"`
	Pages         int                         `json:"pages"`
	Total         int                         `json:"total"`
}

type CollectiveBookingCollectiveStockResponseModel struct {
	BookingLimitDatetime   string  `json:"bookingLimitDatetime"`
	EventBeginningDatetime string  `json:"eventBeginningDatetime"`
	EventEndDatetime       string  `json:"eventEndDatetime"`
	NumberOfTickets        int     `json:"numberOfTickets"`
	OfferID                int     `json:"offerId"`
	OfferIsActive          bool    `json:"offerIsActive"`
	OfferName              string  `json:"offerName"`
	OfferEAN               *string `json:"offerEan,omitempty"`
}

type CollectiveBookingResponseModel struct {
	BookingAmount float64 `json:"bookingAmount"`
	// Bookingcanceldeadline
	BookingCancellationLimitDate *string                                         `json:"bookingCancellationLimitDate,omitempty"`
	BookingConfirmationDate      *string                                         `json:"bookingConfirmationDate,omitempty"`
	BookingConfirmationLimitDate *string                                         `json:"bookingConfirmationLimitDate,omitempty"`
	BookingDate                  string                                          `json:"bookingDate"`
	BookingID                    string                                          `json:"bookingId"`
	BookingIsDuo                 bool                                            `json:"bookingIsDuo"`
	BookingStatus                CollectiveBookingStatus                         `json:"bookingStatus"`
	BookingStatusHistory         []BookingRecapResponseBookingStatusHistoryModel `json:"bookingStatusHistory"`
	BookingToken                 *string                                         `json:"bookingToken,omitempty"`
	Institution                  EducationalInstitutionResponseModel             `json:"institution"`
	Stock                        CollectiveBookingCollectiveStockResponseModel   `json:"stock"`
}

type ListCollectiveBookingsResponseModel struct {
	BookingsRecap []CollectiveBookingResponseModel `json:"bookingsRecap"`
	Page          int                              `json:"page"`
	Pages         int                              `json:"pages"`
	Total         int                              `json:"total"`
}

type CollectiveBookingByIdResponseModel struct {
	BankAccountStatus      *string                             `json:"bankAccountStatus,omitempty"`
	BeginningDatetime      string                              `json:"beginningDatetime"`
	EducationalInstitution EducationalInstitutionResponseModel `json:"educationalInstitution"`
	EducationalRedactor    EducationalRedactorResponseModel    `json:"educationalRedactor"`
	EndDatetime            string                              `json:"endDatetime"`
	ID                     int                                 `json:"id"`
	IsCancellable          bool                                `json:"isCancellable"`
	NumberOfTickets        int                                 `json:"numberOfTickets"`
	OffererID              int                                 `json:"offererId"`
	Price                  float64                             `json:"price"`
	StartDatetime          string                              `json:"startDatetime"`
	Students               []StudentLevels                     `json:"students"`
	VenueDMSApplicationID  *int                                `json:"venueDMSApplicationId,omitempty"`
	VenueID                int                                 `json:"venueId"`
	VenuePostalCode        *string                             `json:"venuePostalCode,omitempty"`
}
