package pro

import "encoding/json"

type AggregatedRevenueModel struct {
	ExpectedRevenue json.RawMessage `json:"expectedRevenue,omitempty"`
	Revenue         json.RawMessage `json:"revenue"`
}

type BankAccountResponseModel struct {
	DateCreated     string                       `json:"dateCreated"`
	DSApplicationID *int                         `json:"dsApplicationId"`
	ID              int                          `json:"id"`
	IsActive        bool                         `json:"isActive"`
	Label           string                       `json:"label"`
	LinkedVenues    []LinkedVenue                `json:"linkedVenues"`
	ObfuscatedIban  string                       `json:"obfuscatedIban"`
	Status          BankAccountApplicationStatus `json:"status"`
}

type CollectiveRevenue struct {
	Collective float64 `json:"collective"`
}

type FinanceBankAccountListResponseModel []FinanceBankAccountResponseModel

type FinanceBankAccountResponseModel struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type GetCombinedInvoicesQueryModel struct {
	InvoiceReferences []string `json:"invoiceReferences"`
}

type GetOffererBankAccountsResponseModel struct {
	BankAccounts  []BankAccountResponseModel `json:"bankAccounts"`
	ID            int                        `json:"id"`
	ManagedVenues []ManagedVenue             `json:"managedVenues"`
}

type GetOffererStatsResponseModel struct {
	JSONData  OffererStatsDataModel `json:"jsonData"`
	OffererID int                   `json:"offererId"`
	SyncDate  *string               `json:"syncDate,omitempty"`
}

type HasInvoiceQueryModel struct {
	OffererID int `json:"offererId"`
}

type HasInvoiceResponseModel struct {
	HasInvoice bool `json:"hasInvoice"`
}

type IndividualRevenue struct {
	Individual float64 `json:"individual"`
}

type InvoiceListV2QueryModel struct {
	BankAccountID       *int    `json:"bankAccountId,omitempty"`
	OffererID           *int    `json:"offererId,omitempty"`
	PeriodBeginningDate *string `json:"periodBeginningDate,omitempty"`
	PeriodEndingDate    *string `json:"periodEndingDate,omitempty"`
}

type InvoiceListV2ResponseModel []InvoiceResponseV2Model

type InvoiceResponseV2Model struct {
	Amount           float64  `json:"amount"`
	BankAccountLabel *string  `json:"bankAccountLabel"`
	CashflowLabels   []string `json:"cashflowLabels"`
	Date             string   `json:"date"`
	Reference        string   `json:"reference"`
	URL              string   `json:"url"`
}

type LinkVenueToBankAccountBodyModel struct {
	VenuesIDs []int `json:"venues_ids"`
}

type OffererStatsDataModel struct {
	DailyViews           []OffererViewsModel     `json:"dailyViews"`
	TopOffers            []TopOffersResponseData `json:"topOffers"`
	TotalViewsLast30Days int                     `json:"totalViewsLast30Days"`
}

type OffererViewsModel struct {
	EventDate     string `json:"eventDate"`
	NumberOfViews int    `json:"numberOfViews"`
}

type ReimbursementCsvByInvoicesModel struct {
	InvoicesReferences []string `json:"invoicesReferences"`
}

type StatisticsModel struct {
	IncomeByYear map[string]json.RawMessage `json:"incomeByYear"`
}

type StatisticsQueryModel struct {
	VenueIDs []int `json:"venueIds,omitempty"`
}

type TopOffersResponseData struct {
	Image           *OfferImage `json:"image,omitempty"`
	IsHeadlineOffer bool        `json:"isHeadlineOffer"`
	NumberOfViews   int         `json:"numberOfViews"`
	OfferID         int         `json:"offerId"`
	OfferName       string      `json:"offerName"`
}

type TotalRevenue struct {
	Collective float64 `json:"collective"`
	Individual float64 `json:"individual"`
	Total      float64 `json:"total"`
}
