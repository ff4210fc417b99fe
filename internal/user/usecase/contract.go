package usecase

import (
	"context"

	"github.com/akarpov/microblog/internal/models"
)

type CreateParams struct {
	Name  string
	Email string
	Role  models.Role
}

type UpdateParams struct {
	Name  string
	Email string
	Role  models.Role
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByUUID(ctx context.Context, uuid string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListWithPosts(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, uuid string, params UpdateParams) (models.User, error)
	Delete(ctx context.Context, uuid string) error
}
