package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// errorStatus maps a service error to its HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, roadwatchsdk.ErrorCodeInvalidRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, roadwatchsdk.ErrorCodeNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, roadwatchsdk.ErrorCodeConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, roadwatchsdk.ErrorCodeInvalidCredentials
	case errors.Is(err, service.ErrAccountLocked):
		return http.StatusForbidden, roadwatchsdk.ErrorCodeAccountLocked
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrSessionInvalid):
		return http.StatusUnauthorized, roadwatchsdk.ErrorCodeInvalidToken
	default:
		return http.StatusInternalServerError, roadwatchsdk.ErrorCodeServerError
	}
}

// writeError replies with the mapped status. Server errors are logged and
// their text is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("failed to "+action, "error", err)
		httpx.WriteError(w, status, code, "failed to "+action)
		return
	}
	httpx.WriteError(w, status, code, describe(err, code))
}

// describe strips the leading sentinel text so "not_found: report" reads as
// "report".
func describe(err error, code string) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, code+": "); ok {
		return rest
	}
	return msg
}

func badRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, roadwatchsdk.ErrorCodeInvalidRequest, desc)
}

// decode reads a JSON body into dst and answers 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		badRequest(w, err.Error())
		return false
	}
	return true
}
