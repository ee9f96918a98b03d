package roadwatchsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned by the API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountLocked      = "account_locked"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx reply decoded from an ErrorResponse body.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("roadwatch: %d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("roadwatch: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// Is matches another *APIError by code, so callers can write
// errors.Is(err, roadwatchsdk.ErrAccountLocked).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidRequest     = &APIError{StatusCode: http.StatusBadRequest, Code: ErrorCodeInvalidRequest}
	ErrNotFound           = &APIError{StatusCode: http.StatusNotFound, Code: ErrorCodeNotFound}
	ErrConflict           = &APIError{StatusCode: http.StatusConflict, Code: ErrorCodeConflict}
	ErrInvalidCredentials = &APIError{StatusCode: http.StatusUnauthorized, Code: ErrorCodeInvalidCredentials}
	ErrAccountLocked      = &APIError{StatusCode: http.StatusForbidden, Code: ErrorCodeAccountLocked}
	ErrInvalidToken       = &APIError{StatusCode: http.StatusUnauthorized, Code: ErrorCodeInvalidToken}
	ErrForbidden          = &APIError{StatusCode: http.StatusForbidden, Code: ErrorCodeForbidden}
	ErrRateLimited        = &APIError{StatusCode: http.StatusTooManyRequests, Code: ErrorCodeRateLimited}
)

// parseErrorResponse builds an *APIError from a failed response body. Bodies
// that are not JSON still produce an error carrying the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: er.Error, Description: er.ErrorDescription}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_")),
		Description: strings.TrimSpace(string(body)),
	}
}

// StatusCode returns the HTTP status of an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
