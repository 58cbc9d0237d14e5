package response

type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Failure details
}

// OperationSummary is the listing view of one documented endpoint
type OperationSummary struct {
	Group      string   `json:"group"`
	ID         string   `json:"id"`
	Method     string   `json:"method"`
	Path       string   `json:"path"`
	Tags       []string `json:"tags,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty"`
	Secured    bool     `json:"secured,omitempty"`
}

// OperationDetail adds parameters and error descriptions to the summary
type OperationDetail struct {
	OperationSummary
	Params   []ParamDetail     `json:"params,omitempty"`
	Encoding string            `json:"encoding,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type ParamDetail struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Required bool   `json:"required"`
}
