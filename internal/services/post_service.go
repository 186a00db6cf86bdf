package services

import (
	"context"
	"strings"

	"blogapi/internal/apperr"
	"blogapi/internal/auth"
	"blogapi/internal/metrics"
	"blogapi/internal/models"
	repo "blogapi/internal/repository"
)

type PostService struct {
	posts    repo.Posts
	comments repo.Comments
}

func NewPostService(posts repo.Posts, comments repo.Comments) *PostService {
	return &PostService{posts: posts, comments: comments}
}

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type PostPage struct {
	Items      []models.Post `json:"items"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

func (s *PostService) List(ctx context.Context, query string, page, limit int) (PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	items, total, err := s.posts.List(ctx, strings.TrimSpace(query), limit, (page-1)*limit)
	if err != nil {
		return PostPage{}, err
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return PostPage{Items: items, Page: page, Limit: limit, Total: total, TotalPages: pages}, nil
}

func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, principal models.User, title, content, image string) (models.Post, error) {
	var rules []string
	if title = strings.TrimSpace(title); title == "" {
		rules = append(rules, "title is required")
	}
	if content = strings.TrimSpace(content); content == "" {
		rules = append(rules, "content is required")
	}
	if len(rules) > 0 {
		return models.Post{}, apperr.Validation(rules...)
	}
	p, err := s.posts.Create(ctx, title, content, image, principal.ID)
	if err != nil {
		return models.Post{}, err
	}
	metrics.PostMutations.WithLabelValues("create").Inc()
	return p, nil
}

type PostUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

// Update applies a partial edit. Existence is checked before ownership so a
// missing post is a 404 for everyone, never a 403.
func (s *PostService) Update(ctx context.Context, principal models.User, id string, in PostUpdate) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if !auth.CanMutate(principal, p) {
		return models.Post{}, apperr.Forbidden()
	}
	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t != "" {
			p.Title = t
		} else {
			return models.Post{}, apperr.Validation("title is required")
		}
	}
	if in.Content != nil {
		if c := strings.TrimSpace(*in.Content); c != "" {
			p.Content = c
		} else {
			return models.Post{}, apperr.Validation("content is required")
		}
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return models.Post{}, err
	}
	metrics.PostMutations.WithLabelValues("update").Inc()
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, principal models.User, id string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(principal, p) {
		return apperr.Forbidden()
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	metrics.PostMutations.WithLabelValues("delete").Inc()
	return nil
}

// ToggleLike flips the principal's membership in the post's liker set and
// returns the refreshed post.
func (s *PostService) ToggleLike(ctx context.Context, principal models.User, id string) (models.Post, error) {
	if _, err := s.posts.GetByID(ctx, id); err != nil {
		return models.Post{}, err
	}
	if _, err := s.posts.ToggleLike(ctx, id, principal.ID); err != nil {
		return models.Post{}, err
	}
	metrics.PostMutations.WithLabelValues("like").Inc()
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) AddComment(ctx context.Context, principal models.User, postID, text string) (models.Post, error) {
	if text = strings.TrimSpace(text); text == "" {
		return models.Post{}, apperr.Validation("comment text is required")
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return models.Post{}, err
	}
	if _, err := s.comments.Create(ctx, postID, principal.ID, text); err != nil {
		return models.Post{}, err
	}
	metrics.PostMutations.WithLabelValues("comment").Inc()
	return s.posts.GetByID(ctx, postID)
}

// DeleteComment: post missing is a 404, comment missing (or belonging to a
// different post) is a 404, and only then does ownership apply. Comment
// authors and admins may delete; the post's author may not.
func (s *PostService) DeleteComment(ctx context.Context, principal models.User, postID, commentID string) (models.Post, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return models.Post{}, err
	}
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return models.Post{}, err
	}
	if c.PostID != postID {
		return models.Post{}, apperr.NotFound("comment")
	}
	if !auth.CanMutate(principal, c) {
		return models.Post{}, apperr.Forbidden()
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return models.Post{}, err
	}
	metrics.PostMutations.WithLabelValues("uncomment").Inc()
	return s.posts.GetByID(ctx, postID)
}
