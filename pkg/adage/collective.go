package adage

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opBookCollectiveOffer = &apiclient.Operation{
		ID:       "bookCollectiveOffer",
		Method:   http.MethodPost,
		Path:     "/adage-iframe/collective/bookings",
		Tags:     []string{"collective"},
		Secured:  true,
		Body:     BookCollectiveOfferRequest{},
		Encoding: apiclient.EncodingJSON,
		Response: BookCollectiveOfferResponse{},
		Errors:   securedErrors,
	}
	opCreateCollectiveRequest = &apiclient.Operation{
		ID:      "createCollectiveRequest",
		Method:  http.MethodPost,
		Path:    "/adage-iframe/collective/offers-template/{offer_id}/request",
		Tags:    []string{"collective"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Body:     PostCollectiveRequestBodyModel{},
		Encoding: apiclient.EncodingJSON,
		Response: CollectiveRequestResponseModel{},
		Errors:   securedErrors,
	}
	opGetAcademies = &apiclient.Operation{
		ID:       "getAcademies",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/collective/academies",
		Tags:     []string{"collective"},
		Secured:  true,
		Response: AcademiesResponseModel{},
		Errors:   securedErrors,
	}
	opGetCollectiveOffer = &apiclient.Operation{
		ID:      "getCollectiveOffer",
		Method:  http.MethodGet,
		Path:    "/adage-iframe/collective/offers/{offer_id}",
		Tags:    []string{"collective"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: CollectiveOfferResponseModel{},
		Errors:   securedErrors,
	}
	opGetCollectiveOfferTemplate = &apiclient.Operation{
		ID:      "getCollectiveOfferTemplate",
		Method:  http.MethodGet,
		Path:    "/adage-iframe/collective/offers-template/{offer_id}",
		Tags:    []string{"collective"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.PathParam("offer_id", 0),
		},
		Response: CollectiveOfferTemplateResponseModel{},
		Errors:   securedErrors,
	}
	opGetCollectiveOfferTemplates = &apiclient.Operation{
		ID:      "getCollectiveOfferTemplates",
		Method:  http.MethodGet,
		Path:    "/adage-iframe/collective/offers-template/",
		Tags:    []string{"collective"},
		Secured: true,
		Params: []apiclient.Param{
			apiclient.RequiredQueryParam("ids", []int(nil)),
		},
		Response: ListCollectiveOfferTemplateResponseModel{},
		Errors:   securedErrors,
	}
	opGetCollectiveOffersForMyInstitution = &apiclient.Operation{
		ID:       "getCollectiveOffersForMyInstitution",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/collective/offers/my_institution",
		Tags:     []string{"collective"},
		Secured:  true,
		Response: ListCollectiveOffersResponseModel{},
		Errors:   securedErrors,
	}
	opGetEducationalInstitutionWithBudget = &apiclient.Operation{
		ID:       "getEducationalInstitutionWithBudget",
		Method:   http.MethodGet,
		Path:     "/adage-iframe/collective/institution",
		Tags:     []string{"collective"},
		Secured:  true,
		Response: EducationalInstitutionWithBudgetResponseModel{},
		Errors:   securedErrors,
	}
)

// BookCollectiveOffer builds POST /adage-iframe/collective/bookings.
func BookCollectiveOffer(body *BookCollectiveOfferRequest, opts ...apiclient.Option) (*apiclient.Call[BookCollectiveOfferResponse], error) {
	b := apiclient.NewBuilder(opBookCollectiveOffer).
		JSON(body)
	return apiclient.Build[BookCollectiveOfferResponse](b, opts...)
}

// CreateCollectiveRequest builds POST /adage-iframe/collective/offers-template/{offer_id}/request.
func CreateCollectiveRequest(offerID int, body *PostCollectiveRequestBodyModel, opts ...apiclient.Option) (*apiclient.Call[CollectiveRequestResponseModel], error) {
	b := apiclient.NewBuilder(opCreateCollectiveRequest).
		Path("offer_id", offerID).
		JSON(body)
	return apiclient.Build[CollectiveRequestResponseModel](b, opts...)
}

// GetAcademies builds GET /adage-iframe/collective/academies.
func GetAcademies(opts ...apiclient.Option) (*apiclient.Call[AcademiesResponseModel], error) {
	return apiclient.Build[AcademiesResponseModel](apiclient.NewBuilder(opGetAcademies), opts...)
}

// GetCollectiveOffer builds GET /adage-iframe/collective/offers/{offer_id}.
func GetCollectiveOffer(offerID int, opts ...apiclient.Option) (*apiclient.Call[CollectiveOfferResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOffer).
		Path("offer_id", offerID)
	return apiclient.Build[CollectiveOfferResponseModel](b, opts...)
}

// GetCollectiveOfferTemplate builds GET /adage-iframe/collective/offers-template/{offer_id}.
func GetCollectiveOfferTemplate(offerID int, opts ...apiclient.Option) (*apiclient.Call[CollectiveOfferTemplateResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOfferTemplate).
		Path("offer_id", offerID)
	return apiclient.Build[CollectiveOfferTemplateResponseModel](b, opts...)
}

// GetCollectiveOfferTemplates builds GET /adage-iframe/collective/offers-template/.
func GetCollectiveOfferTemplates(ids []int, opts ...apiclient.Option) (*apiclient.Call[ListCollectiveOfferTemplateResponseModel], error) {
	b := apiclient.NewBuilder(opGetCollectiveOfferTemplates).
		RequiredQuery("ids", ids)
	return apiclient.Build[ListCollectiveOfferTemplateResponseModel](b, opts...)
}

// GetCollectiveOffersForMyInstitution builds GET /adage-iframe/collective/offers/my_institution.
func GetCollectiveOffersForMyInstitution(opts ...apiclient.Option) (*apiclient.Call[ListCollectiveOffersResponseModel], error) {
	return apiclient.Build[ListCollectiveOffersResponseModel](apiclient.NewBuilder(opGetCollectiveOffersForMyInstitution), opts...)
}

// GetEducationalInstitutionWithBudget builds GET /adage-iframe/collective/institution.
func GetEducationalInstitutionWithBudget(opts ...apiclient.Option) (*apiclient.Call[EducationalInstitutionWithBudgetResponseModel], error) {
	return apiclient.Build[EducationalInstitutionWithBudgetResponseModel](apiclient.NewBuilder(opGetEducationalInstitutionWithBudget), opts...)
}
