package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/akarpov/microblog/internal/models"
	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
	"github.com/akarpov/microblog/internal/post/usecase"
)

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts a post linked to the user with the given uuid. An unknown
// user uuid makes the INSERT ... SELECT insert nothing, reported as a
// user-not-found error.
func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Post, error) {
	const createCmd = `
	INSERT INTO posts (uuid, title, body, user_id)
	SELECT $1, $2, $3, id FROM users WHERE uuid = $4
	RETURNING id, uuid, title, body, user_id, created_at;`

	row := r.db.QueryRowxContext(ctx, createCmd, uuid.New().String(), params.Title, params.Body, params.UserUUID)

	var post models.Post
	if err := row.StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, pkgErrors.ErrUserNotFound
		}
		r.logger.Error(err.Error())
		return models.Post{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return post, nil
}

// ListWithUsers returns every post ordered by creation time descending, each
// with its owning user's full record embedded.
func (r *SqlxRepository) ListWithUsers(ctx context.Context) ([]models.Post, error) {
	const listCmd = `
	SELECT p.id, p.uuid, p.title, p.body, p.user_id, p.created_at,
	       u.id AS "user.id", u.uuid AS "user.uuid", u.name AS "user.name",
	       u.email AS "user.email", u.role AS "user.role",
	       u.created_at AS "user.created_at", u.updated_at AS "user.updated_at"
	FROM posts p
	JOIN users u ON u.id = p.user_id
	ORDER BY p.created_at DESC;`

	posts := make([]models.Post, 0)
	if err := r.db.SelectContext(ctx, &posts, listCmd); err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return posts, nil
}
