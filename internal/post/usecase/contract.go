package usecase

import (
	"context"

	"github.com/akarpov/microblog/internal/models"
)

type CreateParams struct {
	Title    string
	Body     string
	UserUUID string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Post, error)
	ListWithUsers(ctx context.Context) ([]models.Post, error)
}
