package adage

import "encoding/json"

type AcademiesResponseModel []string

type AuthenticatedResponse struct {
	DepartmentCode        *string                              `json:"departmentCode,omitempty"`
	Email                 *string                              `json:"email,omitempty"`
	FavoritesCount        *int                                 `json:"favoritesCount,omitempty"`
	InstitutionCity       *string                              `json:"institutionCity,omitempty"`
	InstitutionName       *string                              `json:"institutionName,omitempty"`
	InstitutionRuralLevel *InstitutionRuralLevel               `json:"institutionRuralLevel,omitempty"`
	Lat                   *float64                             `json:"lat,omitempty"`
	Lon                   *float64                             `json:"lon,omitempty"`
	OffersCount           *int                                 `json:"offersCount,omitempty"`
	Preferences           *RedactorPreferences                 `json:"preferences,omitempty"`
	Programs              []EducationalInstitutionProgramModel `json:"programs,omitempty"`
	Role                  AdageFrontRoles                      `json:"role"`
	UAI                   *string                              `json:"uai,omitempty"`
}

type FeatureResponseModel struct {
	Description string `json:"description"`
	ID          string `json:"id"`
	IsActive    bool   `json:"isActive"`
	Name        string `json:"name"`
	NameKey     string `json:"nameKey"`
}

type GetRelativeVenuesQueryModel struct {
	GetRelative *bool `json:"getRelative,omitempty"`
}

type GetTemplateIdsModel struct {
	IDs []int `json:"ids"`
}

type ListFeatureResponseModel []FeatureResponseModel

type RedactorPreferences struct {
	BroadcastHelpClosed *bool `json:"broadcast_help_closed,omitempty"`
	FeedbackFormClosed  *bool `json:"feedback_form_closed,omitempty"`
}

// Model of a validation error response.
type ValidationError []ValidationErrorElement

// Model of a validation error response element.
type ValidationErrorElement struct {
	Ctx  json.RawMessage `json:"ctx,omitempty"`
	Loc  []string        `json:"loc"`
	Msg  string          `json:"msg"`
	Type string          `json:"type"`
}
