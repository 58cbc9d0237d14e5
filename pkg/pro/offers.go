package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var (
	opGetOfferVideoMetadata = &apiclient.Operation{
		ID:     "getOfferVideoMetadata",
		Method: http.MethodGet,
		Path:   "/get-offer-video-data",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("videoUrl", ""),
		},
		Response: VideoData{},
		Errors:   defaultErrors,
	}
	opGetProductByEAN = &apiclient.Operation{
		ID:     "getProductByEan",
		Method: http.MethodGet,
		Path:   "/get_product_by_ean/{ean}/{offerer_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("ean", ""),
			apiclient.PathParam("offerer_id", 0),
		},
		Response: GetProductInformations{},
		Errors:   defaultErrors,
	}
	opListOffers = &apiclient.Operation{
		ID:     "listOffers",
		Method: http.MethodGet,
		Path:   "/offers",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.QueryParam("nameOrIsbn", ""),
			apiclient.QueryParam("offererId", 0),
			apiclient.QueryParam("status", ""),
			apiclient.QueryParam("venueId", 0),
			apiclient.QueryParam("categoryId", ""),
			apiclient.QueryParam("creationMode", ""),
			apiclient.QueryParam("periodBeginningDate", openapi_types.Date{}),
			apiclient.QueryParam("periodEndingDate", openapi_types.Date{}),
			apiclient.QueryParam("collectiveOfferType", CollectiveOfferType("")),
			apiclient.QueryParam("offererAddressId", 0),
		},
		Response: ListOffersResponseModel{},
		Errors:   defaultErrors,
	}
	opPostOffer = &apiclient.Operation{
		ID:       "postOffer",
		Method:   http.MethodPost,
		Path:     "/offers",
		Tags:     []string{"offers"},
		Body:     PostOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchOffersActiveStatus = &apiclient.Operation{
		ID:       "patchOffersActiveStatus",
		Method:   http.MethodPatch,
		Path:     "/offers/active-status",
		Tags:     []string{"offers"},
		Body:     PatchOfferActiveStatusBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPatchAllOffersActiveStatus = &apiclient.Operation{
		ID:       "patchAllOffersActiveStatus",
		Method:   http.MethodPatch,
		Path:     "/offers/all-active-status",
		Tags:     []string{"offers"},
		Body:     PatchAllOffersActiveStatusBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opGetCategories = &apiclient.Operation{
		ID:       "getCategories",
		Method:   http.MethodGet,
		Path:     "/offers/categories",
		Tags:     []string{"offers"},
		Response: CategoriesResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteDraftOffers = &apiclient.Operation{
		ID:       "deleteDraftOffers",
		Method:   http.MethodPost,
		Path:     "/offers/delete-draft",
		Tags:     []string{"offers"},
		Body:     DeleteOfferRequestBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opDeleteHeadlineOffer = &apiclient.Operation{
		ID:       "deleteHeadlineOffer",
		Method:   http.MethodPost,
		Path:     "/offers/delete_headline",
		Tags:     []string{"offers"},
		Body:     HeadlineOfferDeleteBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPostDraftOffer = &apiclient.Operation{
		ID:         "postDraftOffer",
		Method:     http.MethodPost,
		Path:       "/offers/draft",
		Deprecated: true,
		Tags:       []string{"offers"},
		Body:       PostDraftOfferBodyModel{},
		Encoding:   apiclient.EncodingJSON,
		Response:   GetIndividualOfferResponseModel{},
		Errors:     defaultErrors,
	}
	opPatchDraftOffer = &apiclient.Operation{
		ID:     "patchDraftOffer",
		Method: http.MethodPatch,
		Path:   "/offers/draft/{offer_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PatchDraftOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opGetMusicTypes = &apiclient.Operation{
		ID:       "getMusicTypes",
		Method:   http.MethodGet,
		Path:     "/offers/music-types",
		Tags:     []string{"offers"},
		Response: GetMusicTypesResponse{},
		Errors:   defaultErrors,
	}
	opPatchPublishOffer = &apiclient.Operation{
		ID:       "patchPublishOffer",
		Method:   http.MethodPatch,
		Path:     "/offers/publish",
		Tags:     []string{"offers"},
		Body:     PatchOfferPublishBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   notFoundErrors,
	}
	opCreateThumbnail = &apiclient.Operation{
		ID:       "createThumbnail",
		Method:   http.MethodPost,
		Path:     "/offers/thumbnails/",
		Tags:     []string{"offers"},
		Body:     CreateThumbnailBodyModel{},
		Encoding: apiclient.EncodingForm,
		Response: CreateThumbnailResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteThumbnail = &apiclient.Operation{
		ID:     "deleteThumbnail",
		Method: http.MethodDelete,
		Path:   "/offers/thumbnails/{offer_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opUpsertHeadlineOffer = &apiclient.Operation{
		ID:       "upsertHeadlineOffer",
		Method:   http.MethodPost,
		Path:     "/offers/upsert_headline",
		Tags:     []string{"offers"},
		Body:     HeadlineOfferCreationBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: HeadLineOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOffer = &apiclient.Operation{
		ID:     "getOffer",
		Method: http.MethodGet,
		Path:   "/offers/{offer_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: GetIndividualOfferWithAddressResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchOffer = &apiclient.Operation{
		ID:     "patchOffer",
		Method: http.MethodPatch,
		Path:   "/offers/{offer_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PatchOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opPostHighlightRequestOffer = &apiclient.Operation{
		ID:     "postHighlightRequestOffer",
		Method: http.MethodPost,
		Path:   "/offers/{offer_id}/highlight-requests",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     CreateOfferHighlightRequestBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: OfferHighlightResquestsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetOfferOpeningHours = &apiclient.Operation{
		ID:     "getOfferOpeningHours",
		Method: http.MethodGet,
		Path:   "/offers/{offer_id}/opening-hours",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: OfferOpeningHoursSchema{},
		Errors:   defaultErrors,
	}
	opUpsertOfferOpeningHours = &apiclient.Operation{
		ID:          "upsertOfferOpeningHours",
		Method:      http.MethodPatch,
		Path:        "/offers/{offer_id}/opening-hours",
		Description: "Create or update an offer's opening hours (erase existing if any) For each day of the week, there can be at most two pairs of timespans (opening hours start and end). Week days might have null/empty opening hours: in that case, no data will be inserted. This allows a more flexible way to send data. The output data will always contain every week day. If no opening hours has been set, the timespan data will be null. Note: since opening hours should always be erased before any new data is inserted, this route can also be used as a DELETE one.",
		Tags:        []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     OfferOpeningHoursSchema{},
		Encoding: apiclient.EncodingJSON,
		Response: OfferOpeningHoursSchema{},
		Errors:   defaultErrors,
	}
	opPostPriceCategories = &apiclient.Operation{
		ID:     "postPriceCategories",
		Method: http.MethodPost,
		Path:   "/offers/{offer_id}/price_categories",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PriceCategoryBody{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opDeletePriceCategory = &apiclient.Operation{
		ID:     "deletePriceCategory",
		Method: http.MethodDelete,
		Path:   "/offers/{offer_id}/price_categories/{price_category_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
			apiclient.PathParam("price_category_id", 0),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetStocksStats = &apiclient.Operation{
		ID:     "getStocksStats",
		Method: http.MethodGet,
		Path:   "/offers/{offer_id}/stocks-stats",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: StockStatsResponseModel{},
		Errors:   defaultErrors,
	}
	opGetStocks = &apiclient.Operation{
		ID:     "getStocks",
		Method: http.MethodGet,
		Path:   "/offers/{offer_id}/stocks/",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
			apiclient.QueryParam("date", openapi_types.Date{}),
			apiclient.QueryParam("time", ""),
			apiclient.QueryParam("price_category_id", 0),
			apiclient.QueryParam("order_by", StocksOrderedBy("")),
			apiclient.QueryParam("order_by_desc", false),
			apiclient.QueryParam("page", 0),
			apiclient.QueryParam("stocks_limit_per_page", 0),
		},
		Response: GetStocksResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteAllFilteredStocks = &apiclient.Operation{
		ID:     "deleteAllFilteredStocks",
		Method: http.MethodPost,
		Path:   "/offers/{offer_id}/stocks/all-delete",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     DeleteFilteredStockListBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opDeleteStocks = &apiclient.Operation{
		ID:     "deleteStocks",
		Method: http.MethodPost,
		Path:   "/offers/{offer_id}/stocks/delete",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     DeleteStockListBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetActiveVenueOfferByEAN = &apiclient.Operation{
		ID:     "getActiveVenueOfferByEan",
		Method: http.MethodGet,
		Path:   "/offers/{venue_id}/ean/{ean}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("venue_id", 0),
			apiclient.PathParam("ean", ""),
		},
		Response: GetActiveEANOfferResponseModel{},
		Errors:   defaultErrors,
	}
	opCreateThingStock = &apiclient.Operation{
		ID:       "createThingStock",
		Method:   http.MethodPost,
		Path:     "/stocks",
		Tags:     []string{"offers"},
		Body:     ThingStockCreateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: StockIdResponseModel{},
		Errors:   defaultErrors,
	}
	opBulkUpdateEventStocks = &apiclient.Operation{
		ID:       "bulkUpdateEventStocks",
		Method:   http.MethodPatch,
		Path:     "/stocks/bulk",
		Tags:     []string{"offers"},
		Body:     EventStocksBulkUpdateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: StocksResponseModel{},
		Errors:   defaultErrors,
	}
	opBulkCreateEventStocks = &apiclient.Operation{
		ID:       "bulkCreateEventStocks",
		Method:   http.MethodPost,
		Path:     "/stocks/bulk",
		Tags:     []string{"offers"},
		Body:     EventStocksBulkCreateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: StocksResponseModel{},
		Errors:   defaultErrors,
	}
	opDeleteStock = &apiclient.Operation{
		ID:     "deleteStock",
		Method: http.MethodDelete,
		Path:   "/stocks/{stock_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("stock_id", 0),
		},
		Response: StockIdResponseModel{},
		Errors:   defaultErrors,
	}
	opUpdateThingStock = &apiclient.Operation{
		ID:     "updateThingStock",
		Method: http.MethodPatch,
		Path:   "/stocks/{stock_id}",
		Tags:   []string{"offers"},
		Params: []apiclient.Param{
			apiclient.PathParam("stock_id", 0),
		},
		Body:     ThingStockUpdateBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: StockIdResponseModel{},
		Errors:   defaultErrors,
	}
	opCreateOffer = &apiclient.Operation{
		ID:       "createOffer",
		Method:   http.MethodPost,
		Path:     "/v2/offers",
		Tags:     []string{"offers"},
		Body:     PostOfferBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: GetIndividualOfferResponseModel{},
		Errors:   defaultErrors,
	}
)

// GetOfferVideoMetadata builds GET /get-offer-video-data.
func GetOfferVideoMetadata(videoURL string, opts ...apiclient.Option) (*apiclient.Call[VideoData], error) {
	b := apiclient.NewBuilder(opGetOfferVideoMetadata).
		RequiredQuery("videoUrl", videoURL)
	return apiclient.Build[VideoData](b, opts...)
}

// GetProductByEAN builds GET /get_product_by_ean/{ean}/{offerer_id}.
func GetProductByEAN(ean string, offererID int, opts ...apiclient.Option) (*apiclient.Call[GetProductInformations], error) {
	b := apiclient.NewBuilder(opGetProductByEAN).
		Path("ean", ean).
		Path("offerer_id", offererID)
	return apiclient.Build[GetProductInformations](b, opts...)
}

// ListOffersQuery holds the optional query parameters of ListOffers.
type ListOffersQuery struct {
	NameOrISBN          *string              `query:"nameOrIsbn"`
	OffererID           *int                 `query:"offererId"`
	Status              *string              `query:"status"`
	VenueID             *int                 `query:"venueId"`
	CategoryID          *string              `query:"categoryId"`
	CreationMode        *string              `query:"creationMode"`
	PeriodBeginningDate *openapi_types.Date  `query:"periodBeginningDate"`
	PeriodEndingDate    *openapi_types.Date  `query:"periodEndingDate"`
	CollectiveOfferType *CollectiveOfferType `query:"collectiveOfferType"`
	OffererAddressID    *int                 `query:"offererAddressId"`
}

// ListOffers builds GET /offers.
func ListOffers(params *ListOffersQuery, opts ...apiclient.Option) (*apiclient.Call[ListOffersResponseModel], error) {
	if params == nil {
		params = &ListOffersQuery{}
	}
	b := apiclient.NewBuilder(opListOffers).
		Query("nameOrIsbn", params.NameOrISBN).
		Query("offererId", params.OffererID).
		Query("status", params.Status).
		Query("venueId", params.VenueID).
		Query("categoryId", params.CategoryID).
		Query("creationMode", params.CreationMode).
		Query("periodBeginningDate", params.PeriodBeginningDate).
		Query("periodEndingDate", params.PeriodEndingDate).
		Query("collectiveOfferType", params.CollectiveOfferType).
		Query("offererAddressId", params.OffererAddressID)
	return apiclient.Build[ListOffersResponseModel](b, opts...)
}

// PostOffer builds POST /offers.
func PostOffer(body *PostOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPostOffer).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// PatchOffersActiveStatus builds PATCH /offers/active-status.
func PatchOffersActiveStatus(body *PatchOfferActiveStatusBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchOffersActiveStatus).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PatchAllOffersActiveStatus builds PATCH /offers/all-active-status.
func PatchAllOffersActiveStatus(body *PatchAllOffersActiveStatusBodyModel, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opPatchAllOffersActiveStatus).
		JSON(body)
	return apiclient.Build[[]byte](b, opts...)
}

// GetCategories builds GET /offers/categories.
func GetCategories(opts ...apiclient.Option) (*apiclient.Call[CategoriesResponseModel], error) {
	return apiclient.Build[CategoriesResponseModel](apiclient.NewBuilder(opGetCategories), opts...)
}

// DeleteDraftOffers builds POST /offers/delete-draft.
func DeleteDraftOffers(body *DeleteOfferRequestBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteDraftOffers).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// DeleteHeadlineOffer builds POST /offers/delete_headline.
func DeleteHeadlineOffer(body *HeadlineOfferDeleteBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteHeadlineOffer).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PostDraftOffer builds POST /offers/draft.
//
// Deprecated: the backend keeps this route for older clients; use PostOffer.
func PostDraftOffer(body *PostDraftOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPostDraftOffer).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// PatchDraftOffer builds PATCH /offers/draft/{offer_id}.
func PatchDraftOffer(offerID int, body *PatchDraftOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPatchDraftOffer).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// GetMusicTypes builds GET /offers/music-types.
func GetMusicTypes(opts ...apiclient.Option) (*apiclient.Call[GetMusicTypesResponse], error) {
	return apiclient.Build[GetMusicTypesResponse](apiclient.NewBuilder(opGetMusicTypes), opts...)
}

// PatchPublishOffer builds PATCH /offers/publish.
func PatchPublishOffer(body *PatchOfferPublishBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPatchPublishOffer).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// CreateThumbnail builds POST /offers/thumbnails/.
func CreateThumbnail(form *CreateThumbnailBodyModel, opts ...apiclient.Option) (*apiclient.Call[CreateThumbnailResponseModel], error) {
	b := apiclient.NewBuilder(opCreateThumbnail)
	if form != nil {
		b.FormField("credit", form.Credit).
			FormField("croppingRectHeight", form.CroppingRectHeight).
			FormField("croppingRectWidth", form.CroppingRectWidth).
			FormField("croppingRectX", form.CroppingRectX).
			FormField("croppingRectY", form.CroppingRectY).
			FormField("offerId", form.OfferID)
	}
	return apiclient.Build[CreateThumbnailResponseModel](b.Form(), opts...)
}

// DeleteThumbnail builds DELETE /offers/thumbnails/{offer_id}.
func DeleteThumbnail(offerID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteThumbnail).
		Path("offer_id", offerID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// UpsertHeadlineOffer builds POST /offers/upsert_headline.
func UpsertHeadlineOffer(body *HeadlineOfferCreationBodyModel, opts ...apiclient.Option) (*apiclient.Call[HeadLineOfferResponseModel], error) {
	b := apiclient.NewBuilder(opUpsertHeadlineOffer).
		JSON(body)
	return apiclient.Build[HeadLineOfferResponseModel](b, opts...)
}

// GetOffer builds GET /offers/{offer_id}.
func GetOffer(offerID int, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferWithAddressResponseModel], error) {
	b := apiclient.NewBuilder(opGetOffer).
		Path("offer_id", offerID)
	return apiclient.Build[GetIndividualOfferWithAddressResponseModel](b, opts...)
}

// PatchOffer builds PATCH /offers/{offer_id}.
func PatchOffer(offerID int, body *PatchOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPatchOffer).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// PostHighlightRequestOffer builds POST /offers/{offer_id}/highlight-requests.
func PostHighlightRequestOffer(offerID int, body *CreateOfferHighlightRequestBodyModel, opts ...apiclient.Option) (*apiclient.Call[OfferHighlightResquestsResponseModel], error) {
	b := apiclient.NewBuilder(opPostHighlightRequestOffer).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[OfferHighlightResquestsResponseModel](b, opts...)
}

// GetOfferOpeningHours builds GET /offers/{offer_id}/opening-hours.
func GetOfferOpeningHours(offerID int, opts ...apiclient.Option) (*apiclient.Call[OfferOpeningHoursSchema], error) {
	b := apiclient.NewBuilder(opGetOfferOpeningHours).
		Path("offer_id", offerID)
	return apiclient.Build[OfferOpeningHoursSchema](b, opts...)
}

// UpsertOfferOpeningHours builds PATCH /offers/{offer_id}/opening-hours.
func UpsertOfferOpeningHours(offerID int, body *OfferOpeningHoursSchema, opts ...apiclient.Option) (*apiclient.Call[OfferOpeningHoursSchema], error) {
	b := apiclient.NewBuilder(opUpsertOfferOpeningHours).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[OfferOpeningHoursSchema](b, opts...)
}

// PostPriceCategories builds POST /offers/{offer_id}/price_categories.
func PostPriceCategories(offerID int, body *PriceCategoryBody, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opPostPriceCategories).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}

// DeletePriceCategory builds DELETE /offers/{offer_id}/price_categories/{price_category_id}.
func DeletePriceCategory(offerID int, priceCategoryID int, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeletePriceCategory).
		Path("offer_id", offerID).
		Path("price_category_id", priceCategoryID)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetStocksStats builds GET /offers/{offer_id}/stocks-stats.
func GetStocksStats(offerID int, opts ...apiclient.Option) (*apiclient.Call[StockStatsResponseModel], error) {
	b := apiclient.NewBuilder(opGetStocksStats).
		Path("offer_id", offerID)
	return apiclient.Build[StockStatsResponseModel](b, opts...)
}

// GetStocksQuery holds the optional query parameters of GetStocks.
// Unset OrderByDesc defaults to false, Page defaults to 1, StocksLimitPerPage defaults to 20.
type GetStocksQuery struct {
	Date               *openapi_types.Date `query:"date"`
	Time               *string             `query:"time"`
	PriceCategoryID    *int                `query:"price_category_id"`
	OrderBy            *StocksOrderedBy    `query:"order_by"`
	OrderByDesc        *bool               `query:"order_by_desc"`
	Page               *int                `query:"page"`
	StocksLimitPerPage *int                `query:"stocks_limit_per_page"`
}

// GetStocks builds GET /offers/{offer_id}/stocks/.
func GetStocks(offerID int, params *GetStocksQuery, opts ...apiclient.Option) (*apiclient.Call[GetStocksResponseModel], error) {
	if params == nil {
		params = &GetStocksQuery{}
	}
	b := apiclient.NewBuilder(opGetStocks).
		Path("offer_id", offerID).
		Query("date", params.Date).
		Query("time", params.Time).
		Query("price_category_id", params.PriceCategoryID).
		Query("order_by", params.OrderBy).
		Query("order_by_desc", apiclient.Default(params.OrderByDesc, false)).
		Query("page", apiclient.Default(params.Page, 1)).
		Query("stocks_limit_per_page", apiclient.Default(params.StocksLimitPerPage, 20))
	return apiclient.Build[GetStocksResponseModel](b, opts...)
}

// DeleteAllFilteredStocks builds POST /offers/{offer_id}/stocks/all-delete.
func DeleteAllFilteredStocks(offerID int, body *DeleteFilteredStockListBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteAllFilteredStocks).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// DeleteStocks builds POST /offers/{offer_id}/stocks/delete.
func DeleteStocks(offerID int, body *DeleteStockListBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opDeleteStocks).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetActiveVenueOfferByEAN builds GET /offers/{venue_id}/ean/{ean}.
func GetActiveVenueOfferByEAN(venueID int, ean string, opts ...apiclient.Option) (*apiclient.Call[GetActiveEANOfferResponseModel], error) {
	b := apiclient.NewBuilder(opGetActiveVenueOfferByEAN).
		Path("venue_id", venueID).
		Path("ean", ean)
	return apiclient.Build[GetActiveEANOfferResponseModel](b, opts...)
}

// CreateThingStock builds POST /stocks.
func CreateThingStock(body *ThingStockCreateBodyModel, opts ...apiclient.Option) (*apiclient.Call[StockIdResponseModel], error) {
	b := apiclient.NewBuilder(opCreateThingStock).
		JSON(body)
	return apiclient.Build[StockIdResponseModel](b, opts...)
}

// BulkUpdateEventStocks builds PATCH /stocks/bulk.
func BulkUpdateEventStocks(body *EventStocksBulkUpdateBodyModel, opts ...apiclient.Option) (*apiclient.Call[StocksResponseModel], error) {
	b := apiclient.NewBuilder(opBulkUpdateEventStocks).
		JSON(body)
	return apiclient.Build[StocksResponseModel](b, opts...)
}

// BulkCreateEventStocks builds POST /stocks/bulk.
func BulkCreateEventStocks(body *EventStocksBulkCreateBodyModel, opts ...apiclient.Option) (*apiclient.Call[StocksResponseModel], error) {
	b := apiclient.NewBuilder(opBulkCreateEventStocks).
		JSON(body)
	return apiclient.Build[StocksResponseModel](b, opts...)
}

// DeleteStock builds DELETE /stocks/{stock_id}.
func DeleteStock(stockID int, opts ...apiclient.Option) (*apiclient.Call[StockIdResponseModel], error) {
	b := apiclient.NewBuilder(opDeleteStock).
		Path("stock_id", stockID)
	return apiclient.Build[StockIdResponseModel](b, opts...)
}

// UpdateThingStock builds PATCH /stocks/{stock_id}.
func UpdateThingStock(stockID int, body *ThingStockUpdateBodyModel, opts ...apiclient.Option) (*apiclient.Call[StockIdResponseModel], error) {
	b := apiclient.NewBuilder(opUpdateThingStock).
		Path("stock_id", stockID).
		JSON(body)
	return apiclient.Build[StockIdResponseModel](b, opts...)
}

// CreateOffer builds POST /v2/offers.
func CreateOffer(body *PostOfferBodyModel, opts ...apiclient.Option) (*apiclient.Call[GetIndividualOfferResponseModel], error) {
	b := apiclient.NewBuilder(opCreateOffer).
		JSON(body)
	return apiclient.Build[GetIndividualOfferResponseModel](b, opts...)
}
