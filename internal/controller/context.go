package controller

import (
	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId extracts the authenticated user from the JWT middleware
// locals.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperror.New(apperror.KindForbidden, "missing authenticated user")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindForbidden, "invalid authenticated user id")
	}
	return userId, nil
}

// pathId parses a uuid path parameter.
func pathId(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(name, "must be a valid uuid")
	}
	return id, nil
}
