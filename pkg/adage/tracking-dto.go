package adage

import "encoding/json"

type AdageBaseModel struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	QueryID        *string `json:"queryId,omitempty"`
}

type AdageHeaderLogBody struct {
	HeaderLinkName AdageHeaderLink `json:"header_link_name"`
	IframeFrom     string          `json:"iframeFrom"`
	IsFromNoResult *bool           `json:"isFromNoResult,omitempty"`
	QueryID        *string         `json:"queryId,omitempty"`
}

type CatalogViewBody struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	QueryID        *string `json:"queryId,omitempty"`
	Source         string  `json:"source"`
}

type CollectiveRequestBody struct {
	CollectiveOfferTemplateID int     `json:"collectiveOfferTemplateId"`
	Comment                   string  `json:"comment"`
	IframeFrom                string  `json:"iframeFrom"`
	IsFromNoResult            *bool   `json:"isFromNoResult,omitempty"`
	PhoneNumber               *string `json:"phoneNumber,omitempty"`
	QueryID                   *string `json:"queryId,omitempty"`
	RequestedDate             *string `json:"requestedDate,omitempty"`
	TotalStudents             *int    `json:"totalStudents,omitempty"`
	TotalTeachers             *int    `json:"totalTeachers,omitempty"`
}

type OfferFavoriteBody struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFavorite     bool    `json:"isFavorite"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	OfferID        int     `json:"offerId"`
	QueryID        *string `json:"queryId,omitempty"`
	VueType        *string `json:"vueType,omitempty"`
}

type OfferIdBody struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	OfferID        int     `json:"offerId"`
	QueryID        *string `json:"queryId,omitempty"`
	VueType        *string `json:"vueType,omitempty"`
}

type OfferListSwitch struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	IsMobile       *bool   `json:"isMobile,omitempty"`
	QueryID        *string `json:"queryId,omitempty"`
	Source         string  `json:"source"`
}

type PlaylistBody struct {
	ElementID      *int              `json:"elementId,omitempty"`
	IframeFrom     string            `json:"iframeFrom"`
	Index          *int              `json:"index,omitempty"`
	IsFromNoResult *bool             `json:"isFromNoResult,omitempty"`
	PlaylistID     int               `json:"playlistId"`
	PlaylistType   AdagePlaylistType `json:"playlistType"`
	QueryID        *string           `json:"queryId,omitempty"`
}

type SearchBody struct {
	Filters        []string `json:"filters"`
	IframeFrom     string   `json:"iframeFrom"`
	IsFromNoResult *bool    `json:"isFromNoResult,omitempty"`
	QueryID        *string  `json:"queryId,omitempty"`
	ResultsCount   int      `json:"resultsCount"`
}

type StockIdBody struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	QueryID        *string `json:"queryId,omitempty"`
	StockID        int     `json:"stockId"`
	VueType        *string `json:"vueType,omitempty"`
}

type TrackingAutocompleteSuggestionBody struct {
	IframeFrom      string         `json:"iframeFrom"`
	IsFromNoResult  *bool          `json:"isFromNoResult,omitempty"`
	QueryID         *string        `json:"queryId,omitempty"`
	SuggestionType  SuggestionType `json:"suggestionType"`
	SuggestionValue string         `json:"suggestionValue"`
}

type TrackingCTAShareBody struct {
	IframeFrom     string  `json:"iframeFrom"`
	IsFromNoResult *bool   `json:"isFromNoResult,omitempty"`
	OfferID        int     `json:"offerId"`
	QueryID        *string `json:"queryId,omitempty"`
	Source         string  `json:"source"`
	VueType        *string `json:"vueType,omitempty"`
}

type TrackingFilterBody struct {
	FilterValues   json.RawMessage `json:"filterValues"`
	IframeFrom     string          `json:"iframeFrom"`
	IsFromNoResult *bool           `json:"isFromNoResult,omitempty"`
	QueryID        *string         `json:"queryId,omitempty"`
	ResultNumber   int             `json:"resultNumber"`
}

type TrackingShowMoreBody struct {
	IframeFrom     string         `json:"iframeFrom"`
	IsFromNoResult *bool          `json:"isFromNoResult,omitempty"`
	QueryID        *string        `json:"queryId,omitempty"`
	Source         string         `json:"source"`
	Type           PaginationType `json:"type"`
}
