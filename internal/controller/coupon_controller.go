// FILE: internal/controller/coupon_controller.go
package controller

import (
	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/serverutils"
	"affiliate-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICouponController interface {
	RegisterRoutes(r fiber.Router)
}

// couponController serves the checkout flow. Preview is read-only and safe to
// call on every cart change; Redeem consumes the coupon and is called once per
// finalized order.
type couponController struct {
	service service.ICouponService
}

func NewCouponController(service service.ICouponService) ICouponController {
	return &couponController{service: service}
}

func (c *couponController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/coupons", serverutils.JwtMiddleware)
	h.Post("/preview", c.Preview)
	h.Post("/redeem", c.Redeem)
}

func (c *couponController) Preview(ctx *fiber.Ctx) error {
	var req dto.RedeemCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Preview(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon preview", res))
}

func (c *couponController) Redeem(ctx *fiber.Ctx) error {
	var req dto.RedeemCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Redeem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon redeemed", res))
}
