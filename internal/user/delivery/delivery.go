package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/akarpov/microblog/internal/models"
	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
	"github.com/akarpov/microblog/internal/pkg/validation"
	"github.com/akarpov/microblog/internal/user/usecase"
)

var userRules = []validation.Rule{
	validation.Field("email",
		validation.NotEmpty("email can't be empty"),
		validation.Email("Must be a valid email"),
	),
	validation.Field("name",
		validation.NotEmpty("name can't be empty"),
	),
	validation.Field("role",
		validation.OneOf(
			"Invalid Role, must be one of ['USER', 'ADMIN', 'SUPERUSER', undefined]",
			string(models.RoleUser), string(models.RoleAdmin), string(models.RoleSuperuser),
		),
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
	router.Post("/users", d.create)
	router.Get("/users", d.list)
	router.Get("/users/:uuid", d.find)
	router.Put("/users/:uuid", d.update)
	router.Delete("/users/:uuid", d.delete)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto UserDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, pkgErrors.Validation(map[string]string{"body": "invalid request body"}))
	}

	if failures := validation.Validate(dto.payload(), userRules); failures != nil {
		return respondError(ctx, pkgErrors.Validation(failures))
	}

	user, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		Name:  dto.Name,
		Email: dto.Email,
		Role:  models.Role(dto.Role),
	})
	if err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, err)
	}

	return respondData(ctx, user)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	users, fromCache, err := d.useCase.List(ctx.Context())
	if err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, err)
	}

	ctx.Set("X-Cache", cacheHeader(fromCache))
	return respondData(ctx, users)
}

// find reports every failure as 404 with a generic body, matching the
// API contract existing clients rely on.
func (d *Delivery) find(ctx *fiber.Ctx) error {
	user, fromCache, err := d.useCase.Find(ctx.Context(), ctx.Params("uuid"))
	if err != nil {
		d.logger.Error(err.Error())
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": genericErrorMessage})
	}

	ctx.Set("X-Cache", cacheHeader(fromCache))
	return respondData(ctx, user)
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	var dto UserDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, pkgErrors.Validation(map[string]string{"body": "invalid request body"}))
	}

	if failures := validation.Validate(dto.payload(), userRules); failures != nil {
		return respondError(ctx, pkgErrors.Validation(failures))
	}

	user, err := d.useCase.Update(ctx.Context(), ctx.Params("uuid"), usecase.UpdateParams{
		Name:  dto.Name,
		Email: dto.Email,
		Role:  models.Role(dto.Role),
	})
	if err != nil {
		d.logger.Error(err.Error())
		return respondError(ctx, err)
	}

	return respondData(ctx, user)
}

// delete reports every failure, a missing user included, as 500 with a
// generic body, matching the API contract existing clients rely on.
func (d *Delivery) delete(ctx *fiber.Ctx) error {
	if err := d.useCase.Delete(ctx.Context(), ctx.Params("uuid")); err != nil {
		d.logger.Error(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": genericErrorMessage})
	}

	return respondMessage(ctx, "User deleted")
}
