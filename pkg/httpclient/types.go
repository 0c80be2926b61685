package httpclient

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ConnectionError is returned when the platform could not be reached or the
// response could not be read
type ConnectionError struct {
	URL string
	Err error
}

// Error returns the error message
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to execute request to %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError is returned when the platform answers with a non-2xx status, or with a
// 2xx envelope whose relatedHTTPCode reports a failure
type APIError struct {
	StatusCode   int
	URL          string
	ErrorMessage string
	ErrorCode    string
	SystemAction string
	UserAction   string
	// Body is the raw response, kept for diagnostics
	Body []byte
}

// Error returns the error message
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP %d for URL %s", e.StatusCode, e.URL)
	if e.ErrorCode != "" {
		fmt.Fprintf(&b, " [%s]", e.ErrorCode)
	}
	if e.ErrorMessage != "" {
		fmt.Fprintf(&b, ": %s", e.ErrorMessage)
	}
	return b.String()
}

// NewAPIError builds an APIError, lifting the exception fields of an Egeria error
// envelope out of body when present
func NewAPIError(statusCode int, url string, body []byte) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		URL:        url,
		Body:       body,
	}
	if !gjson.ValidBytes(body) {
		e.ErrorMessage = strings.TrimSpace(string(body))
		return e
	}
	fields := gjson.GetManyBytes(body,
		"exceptionErrorMessage",
		"exceptionErrorMessageId",
		"exceptionSystemAction",
		"exceptionUserAction",
	)
	e.ErrorMessage = fields[0].String()
	e.ErrorCode = fields[1].String()
	e.SystemAction = fields[2].String()
	e.UserAction = fields[3].String()
	return e
}
