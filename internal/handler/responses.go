package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// AcceptedResponse reports whether a round mutation took effect
type AcceptedResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// respondJSON encodes payload before writing any header, so an encoding
// failure can still answer 500
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondAccepted answers a round mutation. A mutation the engine ignored is
// a conflict with its current phase.
func respondAccepted(w http.ResponseWriter, accepted bool, message string) {
	if !accepted {
		respondJSON(w, http.StatusConflict, AcceptedResponse{Accepted: false})
		return
	}
	respondJSON(w, http.StatusOK, AcceptedResponse{Accepted: true, Message: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInsufficientFundsError = "Not enough balance for that bet"
	ErrMsgInvalidAmountError     = "Stake must be a positive amount"
	ErrMsgUnknownBetOptionError  = "Unknown bet option"
	ErrMsgRoundNotFoundError     = "Round not found"
	ErrMsgNoDrawLogError         = "Round has no draw log and cannot be replayed"
	ErrMsgReplayMismatchError    = "Replay does not match the recorded round"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrUnknownBetOption):
		return http.StatusBadRequest, ErrMsgUnknownBetOptionError
	case errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound, ErrMsgRoundNotFoundError
	case errors.Is(err, domain.ErrNoDrawLog):
		return http.StatusUnprocessableEntity, ErrMsgNoDrawLogError
	case errors.Is(err, domain.ErrReplayMismatch):
		return http.StatusUnprocessableEntity, ErrMsgReplayMismatchError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
