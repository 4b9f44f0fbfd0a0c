// FILE: internal/controller/affiliate_controller.go
package controller

import (
	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/serverutils"
	"affiliate-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAffiliateController interface {
	RegisterRoutes(r fiber.Router)
}

// affiliateController is the affiliate self-service surface. Every route is
// scoped to the authenticated user; admins use the /admin surface instead.
type affiliateController struct {
	affiliateService service.IAffiliateService
	couponService    service.ICouponService
	withdrawService  service.IWithdrawService
}

func NewAffiliateController(
	affiliateService service.IAffiliateService,
	couponService service.ICouponService,
	withdrawService service.IWithdrawService,
) IAffiliateController {
	return &affiliateController{
		affiliateService: affiliateService,
		couponService:    couponService,
		withdrawService:  withdrawService,
	}
}

func (c *affiliateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/affiliate", serverutils.JwtMiddleware)
	h.Post("/register", c.Register)
	h.Delete("/register", c.Cancel)
	h.Get("/me", c.GetView)
	h.Put("/payment-method", c.UpdatePaymentMethod)
	h.Get("/commissions", c.ListCommissions)
	h.Get("/withdrawals", c.ListWithdrawals)
	h.Post("/withdrawals", c.RequestWithdraw)
	h.Post("/coupons", c.CreateCoupon)
	h.Get("/coupons", c.ListCoupons)
}

func (c *affiliateController) Register(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.RegisterAffiliateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.affiliateService.Register(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Affiliate application submitted", res))
}

func (c *affiliateController) Cancel(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.affiliateService.Cancel(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate application cancelled", struct{}{}))
}

func (c *affiliateController) GetView(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.affiliateService.GetView(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate view", res))
}

func (c *affiliateController) UpdatePaymentMethod(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdatePaymentMethodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.affiliateService.UpdatePaymentMethod(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment method updated", res))
}

func (c *affiliateController) ListCommissions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}

	res, err := c.affiliateService.ListCommissions(ctx.Context(), userId, page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Commissions", res))
}

func (c *affiliateController) ListWithdrawals(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}

	res, err := c.affiliateService.ListWithdrawals(ctx.Context(), userId, page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdrawals", res))
}

func (c *affiliateController) RequestWithdraw(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateWithdrawRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.withdrawService.CreateRequest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Withdraw request submitted", res))
}

func (c *affiliateController) CreateCoupon(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.couponService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Coupon submitted for review", res))
}

func (c *affiliateController) ListCoupons(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}

	res, err := c.couponService.ListMine(ctx.Context(), userId, page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupons", res))
}
