package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps the error taxonomy onto HTTP statuses. Business refusals
// are ordinary outcomes (4xx); store failures are reported distinctly so the
// client can offer a retry; invariant violations are logged loudly.
func respondError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var iv *domain.InvariantViolation

	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: ve.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrIllegalTransition):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrSubmissionInFlight):
		respondJSON(w, http.StatusTooManyRequests, errorBody{Error: err.Error()})
	case errors.Is(err, service.ErrTelegramNotConfigured):
		respondJSON(w, http.StatusPreconditionFailed, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredential), errors.Is(err, service.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case domain.IsStore(err):
		logger.Error("Store failure", "error", err)
		respondJSON(w, http.StatusBadGateway, errorBody{Error: "store unavailable, retry"})
	case errors.As(err, &iv):
		logger.Error("Invariant violation", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: iv.Error()})
	default:
		logger.Error("Unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.ValidationError{Field: "body", Reason: "malformed JSON payload"}
	}
	return nil
}
