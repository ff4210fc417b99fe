package delivery

import (
	"context"

	"github.com/akarpov/microblog/internal/models"
	"github.com/akarpov/microblog/internal/pkg/app"
	"github.com/akarpov/microblog/internal/user/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.User, error)
	List(ctx context.Context) ([]models.User, bool, error)
	Find(ctx context.Context, uuid string) (models.User, bool, error)
	Update(ctx context.Context, uuid string, params usecase.UpdateParams) (models.User, error)
	Delete(ctx context.Context, uuid string) error
}
