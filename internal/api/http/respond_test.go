package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/service"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", &domain.ValidationError{Field: "amount", Reason: "negative"}, http.StatusBadRequest},
		{"InsufficientBalance", domain.ErrInsufficientBalance, http.StatusConflict},
		{"IllegalTransition", domain.ErrIllegalTransition, http.StatusConflict},
		{"SubmissionInFlight", domain.ErrSubmissionInFlight, http.StatusTooManyRequests},
		{"TelegramNotConfigured", service.ErrTelegramNotConfigured, http.StatusPreconditionFailed},
		{"InvalidCredential", domain.ErrInvalidCredential, http.StatusUnauthorized},
		{"InvalidToken", service.ErrInvalidToken, http.StatusUnauthorized},
		{"NotFound", domain.ErrNotFound, http.StatusNotFound},
		{"Store", &domain.StoreError{Op: "list entries", Err: errors.New("conn refused")}, http.StatusBadGateway},
		{"Invariant", &domain.InvariantViolation{EntryID: "e1", Detail: "unknown method"}, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
