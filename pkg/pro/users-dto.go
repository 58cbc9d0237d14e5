package pro

import "encoding/json"

type ChangePasswordBodyModel struct {
	NewConfirmationPassword string `json:"newConfirmationPassword"`
	NewPassword             string `json:"newPassword"`
	OldPassword             string `json:"oldPassword"`
}

type ChangeProEmailBody struct {
	Token string `json:"token"`
}

type CheckTokenBodyModel struct {
	Token string `json:"token"`
}

type Consent struct {
	Accepted  []string `json:"accepted"`
	Mandatory []string `json:"mandatory"`
	Refused   []string `json:"refused"`
}

type CookieConsentRequest struct {
	ChoiceDatetime string  `json:"choiceDatetime"`
	Consent        Consent `json:"consent"`
	DeviceID       string  `json:"deviceId"`
	UserID         *int    `json:"userId,omitempty"`
}

type LoginUserBodyModel struct {
	CaptchaToken *string `json:"captchaToken,omitempty"`
	Identifier   string  `json:"identifier"`
	Password     string  `json:"password"`
}

type NewPasswordBodyModel struct {
	NewPassword string `json:"newPassword"`
	Token       string `json:"token"`
}

type ProUserCreationBodyV2Model struct {
	ContactOk   bool    `json:"contactOk"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Token       string  `json:"token"`
}

type ResetPasswordBodyModel struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type SharedCurrentUserResponseModel struct {
	Activity                  *string                    `json:"activity,omitempty"`
	Address                   *string                    `json:"address,omitempty"`
	City                      *string                    `json:"city,omitempty"`
	Civility                  *GenderEnum                `json:"civility,omitempty"`
	DateCreated               string                     `json:"dateCreated"`
	DateOfBirth               *string                    `json:"dateOfBirth,omitempty"`
	DepartementCode           *string                    `json:"departementCode,omitempty"`
	Email                     string                     `json:"email"`
	ExternalIDs               map[string]json.RawMessage `json:"externalIds,omitempty"`
	FirstName                 *string                    `json:"firstName,omitempty"`
	HasSeenProTutorials       *bool                      `json:"hasSeenProTutorials,omitempty"`
	HasUserOfferer            *bool                      `json:"hasUserOfferer,omitempty"`
	ID                        int                        `json:"id"`
	IDPieceNumber             *string                    `json:"idPieceNumber,omitempty"`
	IsEmailValidated          bool                       `json:"isEmailValidated"`
	IsImpersonated            *bool                      `json:"isImpersonated,omitempty"`
	LastConnectionDate        *string                    `json:"lastConnectionDate,omitempty"`
	LastName                  *string                    `json:"lastName,omitempty"`
	NeedsToFillCulturalSurvey *bool                      `json:"needsToFillCulturalSurvey,omitempty"`
	NotificationSubscriptions map[string]json.RawMessage `json:"notificationSubscriptions,omitempty"`
	PhoneNumber               *string                    `json:"phoneNumber,omitempty"`
	PhoneValidationStatus     *PhoneValidationStatusType `json:"phoneValidationStatus,omitempty"`
	PostalCode                *string                    `json:"postalCode,omitempty"`
	Roles                     []UserRole                 `json:"roles"`
}

type SharedLoginUserResponseModel struct {
	Activity                  *string     `json:"activity,omitempty"`
	Address                   *string     `json:"address,omitempty"`
	City                      *string     `json:"city,omitempty"`
	Civility                  *GenderEnum `json:"civility,omitempty"`
	DateCreated               string      `json:"dateCreated"`
	DateOfBirth               *string     `json:"dateOfBirth,omitempty"`
	DepartementCode           *string     `json:"departementCode,omitempty"`
	Email                     string      `json:"email"`
	FirstName                 *string     `json:"firstName,omitempty"`
	HasSeenProTutorials       *bool       `json:"hasSeenProTutorials,omitempty"`
	HasUserOfferer            *bool       `json:"hasUserOfferer,omitempty"`
	ID                        int         `json:"id"`
	IsEmailValidated          bool        `json:"isEmailValidated"`
	LastConnectionDate        *string     `json:"lastConnectionDate,omitempty"`
	LastName                  *string     `json:"lastName,omitempty"`
	NeedsToFillCulturalSurvey *bool       `json:"needsToFillCulturalSurvey,omitempty"`
	PhoneNumber               *string     `json:"phoneNumber,omitempty"`
	PostalCode                *string     `json:"postalCode,omitempty"`
	Roles                     []UserRole  `json:"roles"`
}

type SubmitReviewRequestModel struct {
	Location         string `json:"location"`
	OffererID        int    `json:"offererId"`
	PageTitle        string `json:"pageTitle"`
	UserComment      string `json:"userComment"`
	UserSatisfaction string `json:"userSatisfaction"`
}

type UserEmailValidationResponseModel struct {
	NewEmail *string `json:"newEmail,omitempty"`
}

type UserHasBookingResponse struct {
	HasBookings bool `json:"hasBookings"`
}

type UserIdentityBodyModel struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserIdentityResponseModel struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserPhoneBodyModel struct {
	PhoneNumber string `json:"phoneNumber"`
}

type UserPhoneResponseModel struct {
	PhoneNumber string `json:"phoneNumber"`
}

type UserResetEmailBodyModel struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
