package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequired matches every *RequiredError via errors.Is.
var ErrRequired = errors.New("required parameter missing")

// RequiredError is returned by a request builder when a required parameter
// was not supplied. No request is built when it is returned.
type RequiredError struct {
	Field     string
	Operation string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("Required parameter %s was null or undefined when calling %s.", e.Field, e.Operation)
}

func (e *RequiredError) Is(target error) bool {
	return target == ErrRequired
}

// APIError is returned by Do when the server answers with a non-2xx status.
type APIError struct {
	Operation   string
	Method      string
	URL         string
	StatusCode  int
	Body        []byte
	Description string
}

func (e *APIError) Error() string {
	desc := e.Description
	if desc == "" {
		desc = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, desc)
}

// IsStatus reports whether err is an *APIError carrying the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
