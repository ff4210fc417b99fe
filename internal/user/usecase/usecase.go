package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/akarpov/microblog/internal/models"
	pkgCache "github.com/akarpov/microblog/internal/pkg/cache"
	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
)

const listResource = "users"

type UseCase struct {
	repo   Repository
	cache  pkgCache.Cache
	lists  *pkgCache.ListPolicy[models.User]
	logger *slog.Logger
}

func New(repo Repository, cache pkgCache.Cache, freshness time.Duration, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		cache:  cache,
		lists:  pkgCache.NewListPolicy[models.User](cache, listResource, freshness, logger),
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create rejects an email already taken by another user. The pre-check is
// best effort: two concurrent creates can both pass it, the unique
// constraint on users.email is the second line of defense.
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.User, error) {
	_, err := u.repo.GetByEmail(ctx, params.Email)
	if err == nil {
		return models.User{}, pkgErrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		return models.User{}, err
	}

	return u.repo.Create(ctx, params)
}

// List serves the full user list, preferring a cache entry younger than the
// freshness window. The second result reports whether the cache was used.
func (u *UseCase) List(ctx context.Context) ([]models.User, bool, error) {
	if users, ok := u.lists.Fresh(ctx); ok {
		u.logger.Debug("used cache", slog.String("resource", listResource))
		return users, true, nil
	}

	u.logger.Debug("using db", slog.String("resource", listResource))
	users, err := u.repo.ListWithPosts(ctx)
	if err != nil {
		return nil, false, err
	}

	u.lists.Store(ctx, users)

	return users, false, nil
}

// Find looks a user up by uuid, cache first. Entries are written without a
// TTL under the user's own uuid and are never invalidated, so a hit may be
// arbitrarily stale.
func (u *UseCase) Find(ctx context.Context, uuid string) (models.User, bool, error) {
	if blob, err := u.cache.Get(ctx, uuid); err == nil {
		var user models.User
		if err = json.Unmarshal([]byte(blob), &user); err == nil {
			u.logger.Debug("used cache", slog.String("uuid", uuid))
			return user, true, nil
		}
	}

	u.logger.Debug("using db", slog.String("uuid", uuid))
	user, err := u.repo.GetByUUID(ctx, uuid)
	if err != nil {
		return models.User{}, false, err
	}

	if blob, err := json.Marshal(user); err == nil {
		_ = u.cache.Set(ctx, user.UUID, string(blob))
	}

	return user, false, nil
}

// Update leaves every cache entry for this user as is; reads stay stale
// until the freshness window rolls over.
func (u *UseCase) Update(ctx context.Context, uuid string, params UpdateParams) (models.User, error) {
	if _, err := u.repo.GetByUUID(ctx, uuid); err != nil {
		return models.User{}, err
	}

	return u.repo.Update(ctx, uuid, params)
}

func (u *UseCase) Delete(ctx context.Context, uuid string) error {
	return u.repo.Delete(ctx, uuid)
}
