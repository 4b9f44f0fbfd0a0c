// FILE: internal/controller/commission_controller.go
package controller

import (
	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/serverutils"
	"affiliate-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommissionController interface {
	RegisterRoutes(r fiber.Router)
}

// commissionController is the synchronous intake path for order completions.
// The order service calls it directly when it is not publishing to the queue;
// both paths converge on the same service and share idempotency by order id.
type commissionController struct {
	service service.ICommissionService
}

func NewCommissionController(service service.ICommissionService) ICommissionController {
	return &commissionController{service: service}
}

func (c *commissionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/commissions", serverutils.JwtMiddleware)
	h.Post("/record", c.Record)
}

func (c *commissionController) Record(ctx *fiber.Ctx) error {
	var req dto.RecordCommissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RecordCommission(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Commission recorded", res))
}
