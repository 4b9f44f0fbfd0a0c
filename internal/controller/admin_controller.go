// FILE: internal/controller/admin_controller.go
package controller

import (
	"strconv"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/serverutils"
	"affiliate-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminOnly)

	h.Get("/dashboard", c.GetDashboard)
	h.Get("/logs", c.GetLogs)

	h.Get("/affiliates", c.GetAffiliates)
	h.Get("/affiliates/:id", c.GetAffiliateDetail)
	h.Post("/affiliates/:id/approve", c.ApproveAffiliate)
	h.Post("/affiliates/:id/reject", c.RejectAffiliate)
	h.Post("/affiliates/:id/suspend", c.SuspendAffiliate)
	h.Post("/affiliates/:id/reactivate", c.ReactivateAffiliate)

	h.Get("/coupons", c.GetCoupons)
	h.Post("/coupons", c.CreateHouseCoupon)
	h.Post("/coupons/:id/approve", c.ApproveCoupon)
	h.Post("/coupons/:id/reject", c.RejectCoupon)
	h.Put("/coupons/:id/active", c.SetCouponActive)

	h.Get("/commissions", c.GetCommissions)
	h.Post("/commissions/:id/approve", c.ApproveCommission)
	h.Post("/commissions/:id/cancel", c.CancelCommission)

	h.Get("/withdrawals", c.GetWithdrawals)
	h.Post("/withdrawals/:id/approve", c.ApproveWithdraw)
	h.Post("/withdrawals/:id/reject", c.RejectWithdraw)
	h.Post("/withdrawals/:id/paid", c.MarkWithdrawPaid)

	h.Get("/settings", c.GetSettings)
	h.Put("/settings", c.UpdateSettings)
}

// =========================================================================
// DASHBOARD & LOGS
// =========================================================================

func (c *adminController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	level := ctx.Query("level", "")

	res, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

// =========================================================================
// AFFILIATE MANAGEMENT
// =========================================================================

func (c *adminController) GetAffiliates(ctx *fiber.Ctx) error {
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}
	res, err := c.service.GetAffiliates(ctx.Context(), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliates", res))
}

func (c *adminController) GetAffiliateDetail(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.GetAffiliateDetail(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate detail", res))
}

func (c *adminController) ApproveAffiliate(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ApproveAffiliate(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate approved", res))
}

func (c *adminController) RejectAffiliate(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.RejectAffiliateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.RejectAffiliate(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate rejected", res))
}

func (c *adminController) SuspendAffiliate(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.SuspendAffiliate(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate suspended", res))
}

func (c *adminController) ReactivateAffiliate(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ReactivateAffiliate(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate reactivated", res))
}

// =========================================================================
// COUPON REVIEW
// =========================================================================

func (c *adminController) GetCoupons(ctx *fiber.Ctx) error {
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}
	res, err := c.service.GetCoupons(ctx.Context(), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupons", res))
}

func (c *adminController) CreateHouseCoupon(ctx *fiber.Ctx) error {
	var req dto.CreateCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateHouseCoupon(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Coupon created", res))
}

func (c *adminController) ApproveCoupon(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ApproveCoupon(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon approved", res))
}

func (c *adminController) RejectCoupon(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.RejectCoupon(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon rejected", res))
}

func (c *adminController) SetCouponActive(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SetCouponActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	res, err := c.service.SetCouponActive(ctx.Context(), id, req.Active)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon updated", res))
}

// =========================================================================
// LEDGER REVIEW
// =========================================================================

func (c *adminController) GetCommissions(ctx *fiber.Ctx) error {
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}
	var affiliateId *uuid.UUID
	if raw := ctx.Query("affiliate_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperror.Validation("affiliate_id", "must be a valid uuid")
		}
		affiliateId = &id
	}
	res, err := c.service.GetCommissions(ctx.Context(), page, affiliateId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Commissions", res))
}

func (c *adminController) ApproveCommission(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ApproveCommission(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Commission approved", res))
}

func (c *adminController) CancelCommission(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.CancelCommission(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Commission cancelled", res))
}

// =========================================================================
// WITHDRAW PROCESSING
// =========================================================================

func (c *adminController) GetWithdrawals(ctx *fiber.Ctx) error {
	var page dto.PageRequest
	if err := ctx.QueryParser(&page); err != nil {
		return err
	}
	res, err := c.service.GetWithdrawals(ctx.Context(), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdrawals", res))
}

func (c *adminController) ApproveWithdraw(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ApproveWithdraw(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdraw approved", res))
}

func (c *adminController) RejectWithdraw(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.RejectWithdrawRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.RejectWithdraw(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdraw rejected", res))
}

func (c *adminController) MarkWithdrawPaid(ctx *fiber.Ctx) error {
	id, err := pathId(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.MarkWithdrawPaid(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Withdraw marked as paid", res))
}

// =========================================================================
// PROGRAM SETTINGS
// =========================================================================

func (c *adminController) GetSettings(ctx *fiber.Ctx) error {
	res, err := c.service.GetSettings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Program settings", res))
}

func (c *adminController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateProgramSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.UpdateSettings(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Program settings updated", res))
}
