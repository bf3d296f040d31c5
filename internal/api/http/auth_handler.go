package http

import (
	"net/http"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/service"
)

// AuthHandler serves login, logout and session restore.
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

// userView is the user as clients see it. The PIN never leaves the server.
type userView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Role           domain.Role     `json:"role"`
	AllowedModules []domain.Module `json:"allowed_modules"`
}

func viewOf(u *domain.AppUser) userView {
	return userView{
		ID:             u.ID,
		Name:           u.Name,
		Role:           u.Role,
		AllowedModules: u.AllowedModules,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	user, token, err := h.authSvc.Login(r.Context(), req.PIN)
	if err != nil {
		respondError(w, err)
		return
	}
	logger.Info("User logged in", "user", user.Name)
	respondJSON(w, http.StatusOK, loginResponse{User: viewOf(user), Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authSvc.Logout(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Session returns the durable session slot so a restarted client can resume
// without prompting for the PIN again.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := h.authSvc.CurrentSession()
	if sess == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"user":      viewOf(&sess.User),
		"issued_at": sess.IssuedAt,
	})
}
