package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// ValidationErrorResponse lists the rejected fields of a request body
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a single JSON object into req and runs the
// struct validator over it. Unknown fields are rejected so a typo in a bet
// label key is not silently ignored.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, action string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(req)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errTrailingData
	}
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "action", action, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgValidationFailed, "action", action, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// ParseRoundFilter reads the limit, since and until query parameters. A
// missing limit is left to the round log defaults.
// If ok is false, the HTTP response has already been written.
func ParseRoundFilter(r *http.Request, w http.ResponseWriter) (roundlog.Filter, bool) {
	var filter roundlog.Filter

	if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > roundlog.MaxListLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return filter, false
		}
		filter.Limit = limit
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{QueryParamSince, &filter.Since},
		{QueryParamUntil, &filter.Until},
	} {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidTimeParam, p.name))
			return filter, false
		}
		*p.dst = &ts
	}

	return filter, true
}
