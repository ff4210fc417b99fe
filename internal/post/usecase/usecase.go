package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/akarpov/microblog/internal/models"
	pkgCache "github.com/akarpov/microblog/internal/pkg/cache"
)

const listResource = "posts"

type UseCase struct {
	repo   Repository
	lists  *pkgCache.ListPolicy[models.Post]
	logger *slog.Logger
}

func New(repo Repository, cache pkgCache.Cache, freshness time.Duration, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		lists:  pkgCache.NewListPolicy[models.Post](cache, listResource, freshness, logger),
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.Post, error) {
	return u.repo.Create(ctx, params)
}

// List serves every post with its owning user embedded, preferring a cache
// entry younger than the freshness window. The second result reports
// whether the cache was used.
func (u *UseCase) List(ctx context.Context) ([]models.Post, bool, error) {
	if posts, ok := u.lists.Fresh(ctx); ok {
		u.logger.Debug("used cache", slog.String("resource", listResource))
		return posts, true, nil
	}

	u.logger.Debug("using db", slog.String("resource", listResource))
	posts, err := u.repo.ListWithUsers(ctx)
	if err != nil {
		return nil, false, err
	}

	u.lists.Store(ctx, posts)

	return posts, false, nil
}
