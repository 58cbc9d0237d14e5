package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opPostCheckToken = &apiclient.Operation{
		ID:       "postCheckToken",
		Method:   http.MethodPost,
		Path:     "/users/check-token",
		Tags:     []string{"users"},
		Body:     CheckTokenBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   badRequestErrors,
	}
	opConnectAs = &apiclient.Operation{
		ID:     "connectAs",
		Method: http.MethodGet,
		Path:   "/users/connect-as/{token}",
		Tags:   []string{"users"},
		Params: []apiclient.Param{
			apiclient.PathParam("token", ""),
		},
		Response: apiclient.Raw{},
		Errors:   defaultErrors,
	}
	opCookiesConsent = &apiclient.Operation{
		ID:       "cookiesConsent",
		Method:   http.MethodPost,
		Path:     "/users/cookies",
		Tags:     []string{"users"},
		Body:     CookieConsentRequest{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   badRequestErrors,
	}
	opGetProfile = &apiclient.Operation{
		ID:       "getProfile",
		Method:   http.MethodGet,
		Path:     "/users/current",
		Tags:     []string{"users"},
		Response: SharedCurrentUserResponseModel{},
		Errors:   defaultErrors,
	}
	opPostUserEmail = &apiclient.Operation{
		ID:       "postUserEmail",
		Method:   http.MethodPost,
		Path:     "/users/email",
		Tags:     []string{"users"},
		Body:     UserResetEmailBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opGetUserEmailPendingValidation = &apiclient.Operation{
		ID:       "getUserEmailPendingValidation",
		Method:   http.MethodGet,
		Path:     "/users/email_pending_validation",
		Tags:     []string{"users"},
		Response: UserEmailValidationResponseModel{},
		Errors:   defaultErrors,
	}
	opPatchUserIdentity = &apiclient.Operation{
		ID:       "patchUserIdentity",
		Method:   http.MethodPatch,
		Path:     "/users/identity",
		Tags:     []string{"users"},
		Body:     UserIdentityBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: UserIdentityResponseModel{},
		Errors:   defaultErrors,
	}
	opSubmitUserReview = &apiclient.Operation{
		ID:       "submitUserReview",
		Method:   http.MethodPost,
		Path:     "/users/log-user-review",
		Tags:     []string{"users"},
		Body:     SubmitReviewRequestModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPostNewPassword = &apiclient.Operation{
		ID:       "postNewPassword",
		Method:   http.MethodPost,
		Path:     "/users/new-password",
		Tags:     []string{"users"},
		Body:     NewPasswordBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   badRequestErrors,
	}
	opPostChangePassword = &apiclient.Operation{
		ID:       "postChangePassword",
		Method:   http.MethodPost,
		Path:     "/users/password",
		Tags:     []string{"users"},
		Body:     ChangePasswordBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   badRequestErrors,
	}
	opPatchUserPhone = &apiclient.Operation{
		ID:       "patchUserPhone",
		Method:   http.MethodPatch,
		Path:     "/users/phone",
		Tags:     []string{"users"},
		Body:     UserPhoneBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: UserPhoneResponseModel{},
		Errors:   defaultErrors,
	}
	opResetPassword = &apiclient.Operation{
		ID:       "resetPassword",
		Method:   http.MethodPost,
		Path:     "/users/reset-password",
		Tags:     []string{"users"},
		Body:     ResetPasswordBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPatchProUserRGSSeen = &apiclient.Operation{
		ID:       "patchProUserRgsSeen",
		Method:   http.MethodPatch,
		Path:     "/users/rgs-seen",
		Tags:     []string{"users"},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opSignin = &apiclient.Operation{
		ID:       "signin",
		Method:   http.MethodPost,
		Path:     "/users/signin",
		Tags:     []string{"users"},
		Body:     LoginUserBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: SharedLoginUserResponseModel{},
		Errors:   defaultErrors,
	}
	opSignout = &apiclient.Operation{
		ID:       "signout",
		Method:   http.MethodGet,
		Path:     "/users/signout",
		Tags:     []string{"users"},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opSignupPro = &apiclient.Operation{
		ID:       "signupPro",
		Method:   http.MethodPost,
		Path:     "/users/signup",
		Tags:     []string{"users"},
		Body:     ProUserCreationBodyV2Model{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPatchUserTutoSeen = &apiclient.Operation{
		ID:       "patchUserTutoSeen",
		Method:   http.MethodPatch,
		Path:     "/users/tuto-seen",
		Tags:     []string{"users"},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opPatchValidateEmail = &apiclient.Operation{
		ID:       "patchValidateEmail",
		Method:   http.MethodPatch,
		Path:     "/users/validate_email",
		Tags:     []string{"users"},
		Body:     ChangeProEmailBody{},
		Encoding: apiclient.EncodingJSON,
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
	opValidateUser = &apiclient.Operation{
		ID:     "validateUser",
		Method: http.MethodPatch,
		Path:   "/users/validate_signup/{token}",
		Tags:   []string{"users"},
		Params: []apiclient.Param{
			apiclient.PathParam("token", ""),
		},
		Response: apiclient.NoContent{},
		Errors:   defaultErrors,
	}
)

// PostCheckToken builds POST /users/check-token.
func PostCheckToken(body *CheckTokenBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostCheckToken).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// ConnectAs builds GET /users/connect-as/{token}.
func ConnectAs(token string, opts ...apiclient.Option) (*apiclient.Call[[]byte], error) {
	b := apiclient.NewBuilder(opConnectAs).
		Path("token", token)
	return apiclient.Build[[]byte](b, opts...)
}

// CookiesConsent builds POST /users/cookies.
func CookiesConsent(body *CookieConsentRequest, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opCookiesConsent).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetProfile builds GET /users/current.
func GetProfile(opts ...apiclient.Option) (*apiclient.Call[SharedCurrentUserResponseModel], error) {
	return apiclient.Build[SharedCurrentUserResponseModel](apiclient.NewBuilder(opGetProfile), opts...)
}

// PostUserEmail builds POST /users/email.
func PostUserEmail(body *UserResetEmailBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostUserEmail).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// GetUserEmailPendingValidation builds GET /users/email_pending_validation.
func GetUserEmailPendingValidation(opts ...apiclient.Option) (*apiclient.Call[UserEmailValidationResponseModel], error) {
	return apiclient.Build[UserEmailValidationResponseModel](apiclient.NewBuilder(opGetUserEmailPendingValidation), opts...)
}

// PatchUserIdentity builds PATCH /users/identity.
func PatchUserIdentity(body *UserIdentityBodyModel, opts ...apiclient.Option) (*apiclient.Call[UserIdentityResponseModel], error) {
	b := apiclient.NewBuilder(opPatchUserIdentity).
		JSON(body)
	return apiclient.Build[UserIdentityResponseModel](b, opts...)
}

// SubmitUserReview builds POST /users/log-user-review.
func SubmitUserReview(body *SubmitReviewRequestModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opSubmitUserReview).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PostNewPassword builds POST /users/new-password.
func PostNewPassword(body *NewPasswordBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostNewPassword).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PostChangePassword builds POST /users/password.
func PostChangePassword(body *ChangePasswordBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPostChangePassword).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PatchUserPhone builds PATCH /users/phone.
func PatchUserPhone(body *UserPhoneBodyModel, opts ...apiclient.Option) (*apiclient.Call[UserPhoneResponseModel], error) {
	b := apiclient.NewBuilder(opPatchUserPhone).
		JSON(body)
	return apiclient.Build[UserPhoneResponseModel](b, opts...)
}

// ResetPassword builds POST /users/reset-password.
func ResetPassword(body *ResetPasswordBodyModel, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opResetPassword).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PatchProUserRGSSeen builds PATCH /users/rgs-seen.
func PatchProUserRGSSeen(opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	return apiclient.Build[apiclient.NoContent](apiclient.NewBuilder(opPatchProUserRGSSeen), opts...)
}

// Signin builds POST /users/signin.
func Signin(body *LoginUserBodyModel, opts ...apiclient.Option) (*apiclient.Call[SharedLoginUserResponseModel], error) {
	b := apiclient.NewBuilder(opSignin).
		JSON(body)
	return apiclient.Build[SharedLoginUserResponseModel](b, opts...)
}

// Signout builds GET /users/signout.
func Signout(opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	return apiclient.Build[apiclient.NoContent](apiclient.NewBuilder(opSignout), opts...)
}

// SignupPro builds POST /users/signup.
func SignupPro(body *ProUserCreationBodyV2Model, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opSignupPro).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// PatchUserTutoSeen builds PATCH /users/tuto-seen.
func PatchUserTutoSeen(opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	return apiclient.Build[apiclient.NoContent](apiclient.NewBuilder(opPatchUserTutoSeen), opts...)
}

// PatchValidateEmail builds PATCH /users/validate_email.
func PatchValidateEmail(body *ChangeProEmailBody, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opPatchValidateEmail).
		JSON(body)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}

// ValidateUser builds PATCH /users/validate_signup/{token}.
func ValidateUser(token string, opts ...apiclient.Option) (*apiclient.Call[apiclient.NoContent], error) {
	b := apiclient.NewBuilder(opValidateUser).
		Path("token", token)
	return apiclient.Build[apiclient.NoContent](b, opts...)
}
