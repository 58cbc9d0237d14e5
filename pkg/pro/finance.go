package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var (
	opGetBankAccounts = &apiclient.Operation{
		ID:       "getBankAccounts",
		Method:   http.MethodGet,
		Path:     "/finance/bank-accounts",
		Tags:     []string{"finance"},
		Response: FinanceBankAccountListResponseModel{},
		Errors:   defaultErrors,
	}
	opGetCombinedInvoices = &apiclient.Operation{
		ID:     "getCombinedInvoices",
		Method: http.MethodGet,
		Path:   "/finance/combined-invoices",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("invoiceReferences", []string(nil)),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetStatistics = &apiclient.Operation{
		ID:     "getStatistics",
		Method: http.MethodGet,
		Path:   "/get-statistics",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.QueryParam("venue_ids", []int(nil)),
		},
		Response: StatisticsModel{},
		Errors:   defaultErrors,
	}
	opGetReimbursementsCsv = &apiclient.Operation{
		ID:     "getReimbursementsCsv",
		Method: http.MethodGet,
		Path:   "/reimbursements/csv",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("offererId", 0),
			apiclient.QueryParam("bankAccountId", 0),
			apiclient.QueryParam("reimbursementPeriodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("reimbursementPeriodEndingDate", openapi_types.Date{}),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opHasInvoice = &apiclient.Operation{
		ID:     "hasInvoice",
		Method: http.MethodGet,
		Path:   "/v2/finance/has-invoice",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("offererId", 0),
		},
		Response: HasInvoiceResponseModel{},
		Errors:   defaultErrors,
	}
	opGetInvoicesV2 = &apiclient.Operation{
		ID:     "getInvoicesV2",
		Method: http.MethodGet,
		Path:   "/v2/finance/invoices",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.QueryParam("periodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("periodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("bankAccountId", 0),
			apiclient.QueryParam("offererId", 0),
		},
		Response: InvoiceListV2ResponseModel{},
		Errors:   defaultErrors,
	}
	opGetReimbursementsCsvV2 = &apiclient.Operation{
		ID:     "getReimbursementsCsvV2",
		Method: http.MethodGet,
		Path:   "/v2/reimbursements/csv",
		Tags:   []string{"finance"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("invoicesReferences", []string(nil)),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
)

// GetBankAccounts builds GET /finance/bank-accounts.
func GetBankAccounts(opts ...apiclient.Option) (*apiclient.Call[FinanceBankAccountListResponseModel], error) {
	return apiclient.Build[FinanceBankAccountListResponseModel](apiclient.NewBuilder(opGetBankAccounts), opts...)
}

// GetCombinedInvoices builds GET /finance/combined-invoices.
func GetCombinedInvoices(invoiceReferences []string, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opGetCombinedInvoices).
		RequiredQuery("invoiceReferences", invoiceReferences)
	return apiclient.Build[[]byte](b, opts...)
}

// GetStatisticsQuery holds the optional query parameters of GetStatistics.
type GetStatisticsQuery struct {
	VenueIDs []int `query:"venue_ids"`
}

// GetStatistics builds GET /get-statistics.
func GetStatistics(params *GetStatisticsQuery, opts ...apiclient.Option) (*apiclient.Call[StatisticsModel], error) {
	if params == nil {
		params = &GetStatisticsQuery{}
	}
	b := apiclient.NewBuilder(opGetStatistics).
		Query("venue_ids", params.VenueIDs)
	return apiclient.Build[StatisticsModel](b, opts...)
}

// GetReimbursementsCsvQuery holds the optional query parameters of GetReimbursementsCsv.
type GetReimbursementsCsvQuery struct {
	BankAccountID                    *int                `query:"bankAccountId"`
	ReimbursementPeriodBeginningDate *openapi_types.Date `query:"reimbursementPeriodBeginningDate"`
	ReimbursementPeriodEndingDate    *openapi_types.Date `query:"reimbursementPeriodEndingDate"`
}

// GetReimbursementsCsv builds GET /reimbursements/csv.
func GetReimbursementsCsv(offererID int, params *GetReimbursementsCsvQuery, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	if params == nil {
		params = &GetReimbursementsCsvQuery{}
	}
	b := apiclient.NewBuilder(opGetReimbursementsCsv).
		RequiredQuery("offererId", offererID).
		Query("bankAccountId", params.BankAccountID).
		Query("reimbursementPeriodBeginningDate", params.ReimbursementPeriodBeginningDate).
		Query("reimbursementPeriodEndingDate", params.ReimbursementPeriodEndingDate)
	return apiclient.Build[[]byte](b, opts...)
}

// HasInvoice builds GET /v2/finance/has-invoice.
func HasInvoice(offererID int, opts ...apiclient.Option) (*apiclient.Call[HasInvoiceResponseModel], error) {
	b := apiclient.NewBuilder(opHasInvoice).
		RequiredQuery("offererId", offererID)
	return apiclient.Build[HasInvoiceResponseModel](b, opts...)
}

// GetInvoicesV2Query holds the optional query parameters of GetInvoicesV2.
type GetInvoicesV2Query struct {
	PeriodBeginningDate *openapi_types.Date `query:"periodBeginningDate"`
	PeriodEndingDate    *openapi_types.Date `query:"periodEndingDate"`
	BankAccountID       *int                `query:"bankAccountId"`
	OffererID           *int                `query:"offererId"`
}

// GetInvoicesV2 builds GET /v2/finance/invoices.
func GetInvoicesV2(params *GetInvoicesV2Query, opts ...apiclient.Option) (*apiclient.Call[InvoiceListV2ResponseModel], error) {
	if params == nil {
		params = &GetInvoicesV2Query{}
	}
	b := apiclient.NewBuilder(opGetInvoicesV2).
		Query("periodBeginningDate", params.PeriodBeginningDate).
		Query("periodEndingDate", params.PeriodEndingDate).
		Query("bankAccountId", params.BankAccountID).
		Query("offererId", params.OffererID)
	return apiclient.Build[InvoiceListV2ResponseModel](b, opts...)
}

// GetReimbursementsCsvV2 builds GET /v2/reimbursements/csv.
func GetReimbursementsCsvV2(invoicesReferences []string, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opGetReimbursementsCsvV2).
		RequiredQuery("invoicesReferences", invoicesReferences)
	return apiclient.Build[[]byte](b, opts...)
}
