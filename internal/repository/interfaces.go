package repository

import (
	"context"

	"blogapi/internal/models"
)

// Implementations translate store-level failures into the apperr taxonomy:
// missing rows become apperr.NotFound, unique-constraint conflicts become
// apperr.Duplicate. Services stay store-agnostic.

type Users interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) error
}

type Posts interface {
	Create(ctx context.Context, title, content, image, authorID string) (models.Post, error)
	// GetByID returns the full projection: author, likers, ordered comments.
	GetByID(ctx context.Context, id string) (models.Post, error)
	List(ctx context.Context, query string, limit, offset int) ([]models.Post, int, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id string) error
	// ToggleLike atomically adds or removes userID from the post's liker set
	// and reports the resulting membership. Concurrent toggles never lose
	// updates; the set never holds duplicates.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, err error)
}

type Comments interface {
	Create(ctx context.Context, postID, authorID, text string) (models.Comment, error)
	GetByID(ctx context.Context, id string) (models.Comment, error)
	Delete(ctx context.Context, id string) error
}
