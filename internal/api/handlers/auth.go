package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/domain"
	"github.com/harsha/nutrition-dashboard/internal/identity"
	"github.com/harsha/nutrition-dashboard/internal/service"
	"github.com/harsha/nutrition-dashboard/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	identities  *identity.Cache
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, identities *identity.Cache, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		identities:  identities,
		cfg:         cfg,
	}
}

type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds service.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, service.AuthResult{Success: false, Message: "Invalid request body"})
		return
	}

	result, err := h.authService.Register(r.Context(), creds)
	if err != nil {
		slog.ErrorContext(r.Context(), "registration failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, service.AuthResult{Success: false, Message: "Internal server error"})
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds service.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, service.AuthResult{Success: false, Message: "Invalid request body"})
		return
	}

	result, err := h.authService.Login(r.Context(), creds)
	if err != nil {
		slog.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, service.AuthResult{Success: false, Message: "Internal server error"})
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusUnauthorized, result)
		return
	}

	session.Issue(w, result.User.ID, h.cfg.IsProduction())
	h.identities.LoggedIn(result.User)
	writeJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if value, ok := session.Value(r); ok {
		if id, ok := session.UserID(value); ok {
			h.identities.LoggedOut(id)
		}
	}

	session.Revoke(w, h.cfg.IsProduction())
	writeJSON(w, http.StatusOK, userResponse{Success: true, Message: "Logged out successfully"})
}

// CurrentUser resolves the session cookie to the stored user. An absent or
// empty cookie is not authenticated; a value that matches no row is not
// found. The identity cache answers repeat lookups between logins.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	value, ok := session.Value(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, userResponse{Success: false, Message: "Not authenticated"})
		return
	}

	id, ok := session.UserID(value)
	if !ok {
		writeJSON(w, http.StatusNotFound, userResponse{Success: false, Message: "User not found"})
		return
	}

	switch state, user := h.identities.Lookup(id); state {
	case identity.StateAuthenticated:
		writeJSON(w, http.StatusOK, userResponse{Success: true, User: user})
		return
	case identity.StateAnonymous:
		writeJSON(w, http.StatusNotFound, userResponse{Success: false, Message: "User not found"})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.identities.ResolveFailed(id)
			writeJSON(w, http.StatusNotFound, userResponse{Success: false, Message: "User not found"})
			return
		}
		slog.ErrorContext(r.Context(), "user lookup failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, userResponse{Success: false, Message: "Internal server error"})
		return
	}

	h.identities.Resolved(user)
	writeJSON(w, http.StatusOK, userResponse{Success: true, User: user})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
