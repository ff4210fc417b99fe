package delivery

import (
	"github.com/gofiber/fiber/v2"

	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
)

const genericErrorMessage = "Something went wrong"

func respondData(ctx *fiber.Ctx, data any) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func respondError(ctx *fiber.Ctx, err error) error {
	switch pkgErrors.KindOf(err) {
	case pkgErrors.KindValidation, pkgErrors.KindConflict:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": pkgErrors.FieldsOf(err)})
	case pkgErrors.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": pkgErrors.FieldsOf(err)})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": genericErrorMessage})
	}
}

// respondCreateError reports any post creation failure, an unknown user key
// included, as 500 with the structured cause when one is known.
func respondCreateError(ctx *fiber.Ctx, err error) error {
	body := fiber.Map{"success": false}
	if fields := pkgErrors.FieldsOf(err); fields != nil {
		body["error"] = fields
	} else {
		body["error"] = genericErrorMessage
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(body)
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
