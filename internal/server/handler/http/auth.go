package http

import (
	"context"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/middleware"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// AuthService defines the authentication operations required by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Me(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context, p models.ListParams) (models.Page[models.User], error)
}

// AuthHandler serves login, the current user and the user directory.
type AuthHandler struct {
	Responder
	AuthService AuthService
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.AuthService.Me(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, u)
}

// ListUsers handles GET /api/users.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.AuthService.ListUsers(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, page)
}
