package handlers

import (
	"net/http"

	"blogapi/internal/api/httpx"
	"blogapi/internal/middleware"
	"blogapi/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminHandler is the dashboard surface. Routes are mounted behind the
// session resolver plus RequireAdmin, so the policy's admin override always
// authorizes the mutations here.
type AdminHandler struct {
	users *services.UserService
	posts *services.PostService
}

func NewAdminHandler(users *services.UserService, posts *services.PostService) *AdminHandler {
	return &AdminHandler{users: users, posts: posts}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	res, err := h.posts.List(r.Context(), "", 1, 50)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res.Items)
}

// DeleteUser cascades to the user's posts, comments and likes.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	if err := h.users.DeleteAccount(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "user and posts deleted"})
}

func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	if err := h.posts.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}
