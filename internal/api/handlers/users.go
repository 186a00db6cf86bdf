package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/api/httpx"
	"blogapi/internal/apperr"
	"blogapi/internal/middleware"
	"blogapi/internal/services"

	"github.com/go-chi/chi/v5"
)

type UsersHandler struct {
	users *services.UserService
}

func NewUsersHandler(users *services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	var req services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	u, err := h.users.UpdateProfile(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	if err := h.users.DeleteAccount(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
