// Package respond centralizes JSON responses and the mapping from domain
// errors to HTTP statuses and stable error codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finbridge/withdrawal-core/pkg/api"
	"github.com/finbridge/withdrawal-core/pkg/lifecycle"
	"github.com/finbridge/withdrawal-core/pkg/processors"
	"github.com/finbridge/withdrawal-core/pkg/storage"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Error writes a JSON error envelope with an explicit status and code.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, api.Error{Code: code, Message: message})
}

// DomainError maps a domain error to its HTTP status and code and writes it.
// Business-state conflicts are 409: there is no safe automatic retry for
// them, the caller must re-read and decide again.
func DomainError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	Error(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, storage.ErrVersionConflict):
		return http.StatusConflict, "VERSION_CONFLICT"
	case errors.Is(err, storage.ErrConcurrentUpdate):
		return http.StatusConflict, "CONCURRENT_UPDATE"
	case errors.Is(err, lifecycle.ErrTerminalState):
		return http.StatusConflict, "TERMINAL_STATE"
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, storage.ErrWalletExists):
		return http.StatusConflict, "WALLET_EXISTS"
	case errors.Is(err, storage.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"
	case errors.Is(err, processors.ErrMissingRemark):
		return http.StatusBadRequest, "MISSING_REMARK"
	case errors.Is(err, processors.ErrMissingChannelRef):
		return http.StatusBadRequest, "MISSING_CHANNEL_REF"
	case errors.Is(err, processors.ErrMissingFailureReason):
		return http.StatusBadRequest, "MISSING_FAILURE_REASON"
	case errors.Is(err, processors.ErrUnknownAction):
		return http.StatusBadRequest, "UNKNOWN_ACTION"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
