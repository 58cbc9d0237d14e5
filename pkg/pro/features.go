package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"
)

var (
	opListFeatures = &apiclient.Operation{
		ID:       "listFeatures",
		Method:   http.MethodGet,
		Path:     "/features",
		Tags:     []string{"features"},
		Response: ListFeatureResponseModel{},
		Errors:   defaultErrors,
	}
)

// ListFeatures builds GET /features.
func ListFeatures(opts ...apiclient.Option) (*apiclient.Call[ListFeatureResponseModel], error) {
	return apiclient.Build[ListFeatureResponseModel](apiclient.NewBuilder(opListFeatures), opts...)
}
