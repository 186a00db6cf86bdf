package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"blogapi/internal/api/httpx"
	"blogapi/internal/apperr"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/services"
)

type AuthHandler struct {
	users        *services.UserService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(users *services.UserService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{users: users, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

type sessionResp struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	u, token, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	h.setCookie(w, token)
	httpx.WriteJSON(w, http.StatusCreated, sessionResp{User: u, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	u, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	h.setCookie(w, token)
	httpx.WriteJSON(w, http.StatusOK, sessionResp{User: u, Token: token})
}

// Me returns the principal the session resolver already loaded.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.Principal(r.Context())
	if !ok {
		httpx.WriteErr(w, apperr.Unauthenticated("not authorized"))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]models.User{"user": p})
}

// Logout only clears the client's cookie; the token itself stays valid
// until expiry (stateless tokens, no revocation list).
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(h.cookieTTL),
	})
}
