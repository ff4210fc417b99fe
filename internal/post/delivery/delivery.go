package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
	"github.com/akarpov/microblog/internal/pkg/validation"
	"github.com/akarpov/microblog/internal/post/usecase"
)

var postRules = []validation.Rule{
	validation.Field("title",
		validation.NotEmpty("title can't be empty"),
	),
	validation.Field("body",
		validation.NotEmpty("post body can't be empty"),
	),
}

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.Post("/posts", d.create)
	router.Get("/posts", d.list)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto PostDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, pkgErrors.Validation(map[string]string{"body": "invalid request body"}))
	}

	if failures := validation.Validate(dto.payload(), postRules); failures != nil {
		return respondError(ctx, pkgErrors.Validation(failures))
	}

	post, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		Title:    dto.Title,
		Body:     dto.Body,
		UserUUID: dto.UserUUID,
	})
	if err != nil {
		d.logger.Error(err.Error())
		return respondCreateError(ctx, err)
	}

	return respondData(ctx, post)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	posts, fromCache, err := d.useCase.List(ctx.Context())
	if err != nil {
		d.logger.Error(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": genericErrorMessage})
	}

	ctx.Set("X-Cache", cacheHeader(fromCache))
	return respondData(ctx, posts)
}
