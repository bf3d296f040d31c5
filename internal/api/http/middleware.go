package http

import (
	"context"
	"net/http"
	"strings"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// Middleware authenticates requests and enforces the per-module access gate.
type Middleware struct {
	authSvc service.AuthService
}

func NewMiddleware(authSvc service.AuthService) *Middleware {
	return &Middleware{authSvc: authSvc}
}

// RequireUser validates the bearer token and attaches the user snapshot to
// the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, service.ErrInvalidToken)
			return
		}
		user, err := m.authSvc.VerifyToken(token)
		if err != nil {
			respondError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireModule gates a handler behind one app module. Admins pass every
// gate; everyone else needs the module on their allowed list.
func (m *Middleware) RequireModule(module domain.Module, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			respondError(w, service.ErrInvalidToken)
			return
		}
		if !user.CanAccess(module) {
			respondJSON(w, http.StatusForbidden, errorBody{Error: "module not allowed for this user"})
			return
		}
		next(w, r)
	}
}

// UserFromContext returns the authenticated user, nil when absent.
func UserFromContext(ctx context.Context) *domain.AppUser {
	user, _ := ctx.Value(userContextKey).(*domain.AppUser)
	return user
}
