package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/akarpov/microblog/internal/models"
	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
	"github.com/akarpov/microblog/internal/user/usecase"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (uuid, name, email, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, uuid, name, email, role, created_at, updated_at;`

	row := r.db.QueryRowxContext(ctx, createCmd, uuid.New().String(), params.Name, params.Email, params.Role)

	var user models.User
	if err := row.StructScan(&user); err != nil {
		r.logger.Error(err.Error())
		if isUniqueViolation(err) {
			return models.User{}, pkgErrors.ErrEmailAlreadyExists
		}
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByUUID(ctx context.Context, userUUID string) (models.User, error) {
	const getCmd = `
	SELECT id, uuid, name, email, role, created_at, updated_at
	FROM users
	WHERE uuid = $1;`

	var user models.User
	err := r.db.GetContext(ctx, &user, getCmd, userUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const getCmd = `
	SELECT id, uuid, name, email, role, created_at, updated_at
	FROM users
	WHERE email = $1;`

	var user models.User
	err := r.db.GetContext(ctx, &user, getCmd, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

// ListWithPosts returns every user ordered by creation time descending,
// each with their posts attached, also newest first.
func (r *SqlxRepository) ListWithPosts(ctx context.Context) ([]models.User, error) {
	const listCmd = `
	SELECT id, uuid, name, email, role, created_at, updated_at
	FROM users
	ORDER BY created_at DESC;`

	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, listCmd); err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if len(users) == 0 {
		return users, nil
	}

	const postsCmd = `
	SELECT id, uuid, title, body, user_id, created_at
	FROM posts
	ORDER BY created_at DESC;`

	posts := make([]models.Post, 0)
	if err := r.db.SelectContext(ctx, &posts, postsCmd); err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	byID := make(map[int]int, len(users))
	for i := range users {
		byID[users[i].ID] = i
	}
	for _, post := range posts {
		if i, ok := byID[post.UserID]; ok {
			users[i].Posts = append(users[i].Posts, post)
		}
	}

	return users, nil
}

func (r *SqlxRepository) Update(ctx context.Context, userUUID string, params usecase.UpdateParams) (models.User, error) {
	const updateCmd = `
	UPDATE users
	SET name = $1, email = $2, role = $3, updated_at = now()
	WHERE uuid = $4
	RETURNING id, uuid, name, email, role, created_at, updated_at;`

	row := r.db.QueryRowxContext(ctx, updateCmd, params.Name, params.Email, params.Role, userUUID)

	var user models.User
	if err := row.StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, pkgErrors.ErrUserNotFound
		}
		r.logger.Error(err.Error())
		if isUniqueViolation(err) {
			return models.User{}, pkgErrors.ErrEmailAlreadyExists
		}
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) Delete(ctx context.Context, userUUID string) error {
	const deleteCmd = `
	DELETE FROM users
	WHERE uuid = $1;`

	result, err := r.db.ExecContext(ctx, deleteCmd, userUUID)
	if err != nil {
		r.logger.Error(err.Error())
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if deleted == 0 {
		return pkgErrors.ErrUserNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
