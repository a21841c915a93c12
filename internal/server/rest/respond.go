package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/logging"
	"github.com/go-chi/chi/v5"
)

const (
	msgAuthMissing  = "Authorization header is missing"
	msgInvalidToken = "Invalid or expired token"
	msgForbidden    = "Forbidden: You do not have permission to access this resource"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// errorStatus maps a service error to its status code and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, detailOr(err, common.ErrorValidation, "Invalid request")
	case errors.Is(err, common.ErrorInvalidReference):
		return http.StatusBadRequest, "Referenced record does not exist"
	case errors.Is(err, common.ErrAuthorizationMissing):
		return http.StatusUnauthorized, msgAuthMissing
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, common.ErrAccountDisabled):
		return http.StatusForbidden, "Account is disabled"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, detailOr(err, common.ErrorNotFound, "Not found")
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict, detailOr(err, common.ErrorConflict, "Record already exists")
	}
	return http.StatusInternalServerError, "Internal server error"
}

func detailOr(err, sentinel error, fallback string) string {
	if d := common.Detail(err, sentinel); d != "" {
		return d
	}
	return fallback
}

// writeError answers with {"error": msg}. Server errors are logged with
// their cause; the client only sees a generic message.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error(r.Context(), "request failed", "request_id", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
}

// decode reads a JSON body into dst.
func decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return badRequest("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("invalid JSON body")
	}
	return nil
}

func pathInt(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid " + name)
	}
	return id, nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, badRequest("invalid " + name)
	}
	return &v, nil
}

func queryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}
