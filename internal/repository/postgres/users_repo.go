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

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id, name, email, password_hash, avatar_url, role, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AvatarURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, name, email, hash, role string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, name, email, password_hash, role) VALUES($1,$2,$3,$4,$5)`,
		id, name, email, hash, role,
	)
	if isUniqueViolation(err) {
		return models.User{}, apperr.Duplicate("email already registered")
	}
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, apperr.NotFound("user")
	}
	return u, err
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, apperr.NotFound("user")
	}
	return u, err
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name=$2, avatar_url=$3, role=$4, updated_at=now() WHERE id=$1`,
		u.ID, u.Name, u.AvatarURL, u.Role,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// Delete removes the account; authored posts, comments and likes go with it
// through the schema's ON DELETE CASCADE constraints.
func (r *usersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
