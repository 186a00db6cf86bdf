package postgres

import (
	"context"
	"errors"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentsRepo struct{ pool *pgxpool.Pool }

func (r *commentsRepo) Create(ctx context.Context, postID, authorID, text string) (models.Comment, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO comments(id, post_id, author_id, text) VALUES($1,$2,$3,$4)`,
		id, postID, authorID, text,
	)
	if err != nil {
		return models.Comment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *commentsRepo) GetByID(ctx context.Context, id string) (models.Comment, error) {
	var c models.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT id, post_id, author_id, text, created_at FROM comments WHERE id=$1`, id,
	).Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Text, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Comment{}, apperr.NotFound("comment")
	}
	return c, err
}

func (r *commentsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}
	return nil
}
