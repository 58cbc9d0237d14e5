package pro

import "encoding/json"

type CategoriesResponseModel struct {
	Categories    []CategoryResponseModel    `json:"categories"`
	Subcategories []SubcategoryResponseModel `json:"subcategories"`
}

type DateRangeModel struct {
	End   string `json:"end"`
	Start string `json:"start"`
}

type DateRangeOnCreateModel struct {
	End   string `json:"end"`
	Start string `json:"start"`
}

type FeatureResponseModel struct {
	ID       int    `json:"id"`
	IsActive bool   `json:"isActive"`
	Name     string `json:"name"`
}

type HistoryStep struct {
	Datetime *string                        `json:"datetime,omitempty"`
	Status   CollectiveOfferDisplayedStatus `json:"status"`
}

type ListFeatureResponseModel []FeatureResponseModel

type ProAnonymizationEligibilityResponseModel struct {
	HasSuspendedOfferer             bool `json:"hasSuspendedOfferer"`
	IsOnlyPro                       bool `json:"isOnlyPro"`
	IsSoleUserWithOngoingActivities bool `json:"isSoleUserWithOngoingActivities"`
}

// Model of a validation error response.
type ValidationError []ValidationErrorElement

// Model of a validation error response element.
type ValidationErrorElement struct {
	// Error context
	Ctx json.RawMessage `json:"ctx,omitempty"`
	// Missing field name
	Loc []string `json:"loc"`
	// Error message
	Msg string `json:"msg"`
	// Error type
	Type string `json:"type"`
}
