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

type postsRepo struct{ pool *pgxpool.Pool }

func (r *postsRepo) Create(ctx context.Context, title, content, image, authorID string) (models.Post, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO posts(id, title, content, image, author_id) VALUES($1,$2,$3,$4,$5)`,
		id, title, content, image, authorID,
	)
	if err != nil {
		return models.Post{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *postsRepo) GetByID(ctx context.Context, id string) (models.Post, error) {
	var p models.Post
	var author models.UserSummary
	err := r.pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.content, p.image, p.author_id, p.created_at, p.updated_at,
		        u.id, u.name, u.email
		 FROM posts p JOIN users u ON u.id = p.author_id
		 WHERE p.id=$1`, id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&author.ID, &author.Name, &author.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, apperr.NotFound("post")
	}
	if err != nil {
		return models.Post{}, err
	}
	p.Author = &author

	if p.Likes, err = r.likers(ctx, id); err != nil {
		return models.Post{}, err
	}
	p.LikeCount = len(p.Likes)

	if p.Comments, err = r.comments(ctx, id); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

func (r *postsRepo) likers(ctx context.Context, postID string) ([]models.UserSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.name, u.email
		 FROM post_likes pl JOIN users u ON u.id = pl.user_id
		 WHERE pl.post_id=$1 ORDER BY u.name`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.UserSummary
	for rows.Next() {
		var s models.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *postsRepo) comments(ctx context.Context, postID string) ([]models.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.post_id, c.author_id, c.text, c.created_at, u.id, u.name, u.email
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.post_id=$1 ORDER BY c.created_at`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		var author models.UserSummary
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Text, &c.CreatedAt,
			&author.ID, &author.Name, &author.Email); err != nil {
			return nil, err
		}
		c.Author = &author
		out = append(out, c)
	}
	return out, rows.Err()
}

// List returns newest-first summaries (author and like count, no comment
// bodies) plus the total match count for pagination.
func (r *postsRepo) List(ctx context.Context, query string, limit, offset int) ([]models.Post, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, p.content, p.image, p.author_id, p.created_at, p.updated_at,
		        u.id, u.name, u.email,
		        (SELECT count(*) FROM post_likes pl WHERE pl.post_id = p.id)
		 FROM posts p JOIN users u ON u.id = p.author_id
		 WHERE $1 = '' OR p.title ILIKE '%'||$1||'%' OR p.content ILIKE '%'||$1||'%'
		 ORDER BY p.created_at DESC
		 LIMIT $2 OFFSET $3`, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		var author models.UserSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
			&author.ID, &author.Name, &author.Email, &p.LikeCount); err != nil {
			return nil, 0, err
		}
		p.Author = &author
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = r.pool.QueryRow(ctx,
		`SELECT count(*) FROM posts
		 WHERE $1 = '' OR title ILIKE '%'||$1||'%' OR content ILIKE '%'||$1||'%'`, query,
	).Scan(&total)
	return out, total, err
}

func (r *postsRepo) Update(ctx context.Context, p models.Post) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET title=$2, content=$3, image=$4, updated_at=now() WHERE id=$1`,
		p.ID, p.Title, p.Content, p.Image,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

func (r *postsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

// ToggleLike is two single-row statements, never a read-modify-write of the
// whole liker set, so concurrent toggles on the same post cannot clobber
// each other. The (post_id, user_id) primary key gives the set semantics.
func (r *postsRepo) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO post_likes(post_id, user_id) VALUES($1,$2) ON CONFLICT DO NOTHING`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	_, err = r.pool.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id=$1 AND user_id=$2`, postID, userID)
	return false, err
}
