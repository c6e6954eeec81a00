package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/motorcycle-registry/internal/model"
	"github.com/you-humble/motorcycle-registry/platform/logger"
	motorcyclev1 "github.com/you-humble/motorcycle-registry/pkg/api/motorcycle/v1"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
		msg = http.StatusText(http.StatusInternalServerError)
	}

	writeJSON(w, r, status, motorcyclev1.Error{
		Code:    status,
		Message: msg,
	})
}

// statusFromError is the only place a domain error becomes a status code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrMotorcycleNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrMotorcycleConflict):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}

// NotFound and MethodNotAllowed give router level misses the same error body
// as handler failures.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusMethodNotAllowed)
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, r, status, motorcyclev1.Error{
		Code:    status,
		Message: http.StatusText(status),
	})
}
