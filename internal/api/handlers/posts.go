package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogapi/internal/api/httpx"
	"blogapi/internal/apperr"
	"blogapi/internal/middleware"
	"blogapi/internal/services"

	"github.com/go-chi/chi/v5"
)

type PostsHandler struct {
	posts *services.PostService
}

func NewPostsHandler(posts *services.PostService) *PostsHandler {
	return &PostsHandler{posts: posts}
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	res, err := h.posts.List(r.Context(), q.Get("q"), page, limit)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.posts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	p, err := h.posts.Create(r.Context(), principal, req.Title, req.Content, req.Image)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	var req services.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	p, err := h.posts.Update(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	if err := h.posts.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *PostsHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	p, err := h.posts.ToggleLike(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostsHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteErr(w, apperr.Validation("invalid request body"))
		return
	}
	p, err := h.posts.AddComment(r.Context(), principal, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PostsHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.Principal(r.Context())
	p, err := h.posts.DeleteComment(r.Context(), principal,
		chi.URLParam(r, "id"), chi.URLParam(r, "commentID"))
	if err != nil {
		httpx.WriteErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}
