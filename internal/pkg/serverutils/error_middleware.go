// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts taxonomy errors bubbling out of handlers
// into the canonical error envelope. Anything unclassified is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			body := ErrorBody{Ok: false, Error: appErr.Kind, Reason: appErr.Reason, Field: appErr.Field}
			return ctx.Status(apperror.HTTPStatus(appErr.Kind)).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse("INTERNAL", fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("INTERNAL", "internal server error"))
	}
}
