package delivery

import (
	"github.com/gofiber/fiber/v2"

	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
)

const genericErrorMessage = "Something went wrong"

func respondData(ctx *fiber.Ctx, data any) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func respondMessage(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message})
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

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
