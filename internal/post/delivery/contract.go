package delivery

import (
	"context"

	"github.com/akarpov/microblog/internal/models"
	"github.com/akarpov/microblog/internal/pkg/app"
	"github.com/akarpov/microblog/internal/post/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.Post, error)
	List(ctx context.Context) ([]models.Post, bool, error)
}
