// FILE: internal/service/presenter.go
package service

import (
	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
)

// Entity to response conversions shared across services and the admin layer.

func paymentFromRequest(p dto.PaymentDetailsRequest) entity.PaymentDetails {
	return entity.PaymentDetails{
		Method:        entity.PaymentMethod(p.Method),
		AccountName:   p.AccountName,
		AccountNumber: p.AccountNumber,
		BankName:      p.BankName,
		BranchName:    p.BranchName,
		RoutingNumber: p.RoutingNumber,
		Provider:      p.Provider,
	}
}

func paymentToRequest(p entity.PaymentDetails) dto.PaymentDetailsRequest {
	return dto.PaymentDetailsRequest{
		Method:        string(p.Method),
		AccountName:   p.AccountName,
		AccountNumber: p.AccountNumber,
		BankName:      p.BankName,
		BranchName:    p.BranchName,
		RoutingNumber: p.RoutingNumber,
		Provider:      p.Provider,
	}
}

func toAffiliateResponse(a *entity.Affiliate) *dto.AffiliateResponse {
	return &dto.AffiliateResponse{
		Id:           a.Id,
		UserId:       a.UserId,
		Status:       string(a.Status),
		ReferralCode: a.ReferralCode,
		Payment:      paymentToRequest(a.Payment),
		RejectReason: a.RejectReason,
		CreatedAt:    a.CreatedAt,
	}
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		Id:             c.Id,
		AffiliateId:    c.AffiliateId,
		Code:           c.Code,
		Type:           string(c.Type),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinPurchase:    c.MinPurchase,
		UsageLimit:     c.UsageLimit,
		ExpiryDate:     c.ExpiryDate,
		OneTimeUse:     c.OneTimeUse,
		ApprovalStatus: string(c.ApprovalStatus),
		IsActive:       c.IsActive,
		UsedCount:      c.UsedCount,
		CreatedAt:      c.CreatedAt,
	}
}

func toCommissionResponse(e *entity.CommissionEntry) *dto.CommissionResponse {
	return &dto.CommissionResponse{
		Id:             e.Id,
		AffiliateId:    e.AffiliateId,
		OrderId:        e.OrderId,
		ReferredUserId: e.ReferredUserId,
		OrderAmount:    e.OrderAmount,
		CommissionRate: e.CommissionRate,
		Amount:         e.Amount,
		Status:         string(e.Status),
		PaidAt:         e.PaidAt,
		CreatedAt:      e.CreatedAt,
	}
}

func toWithdrawResponse(w *entity.WithdrawRequest) *dto.WithdrawResponse {
	return &dto.WithdrawResponse{
		Id:           w.Id,
		AffiliateId:  w.AffiliateId,
		Amount:       w.Amount,
		Payment:      paymentToRequest(w.Payment),
		Status:       string(w.Status),
		RejectReason: w.RejectReason,
		ProcessedAt:  w.ProcessedAt,
		PaidAt:       w.PaidAt,
		CreatedAt:    w.CreatedAt,
	}
}

func toBalancesResponse(b entity.Balances, totalReferrals int) *dto.BalancesResponse {
	return &dto.BalancesResponse{
		TotalCommission:   b.TotalCommission,
		PendingCommission: b.PendingCommission,
		ApprovedAvailable: b.ApprovedAvailable,
		PaidCommission:    b.PaidCommission,
		TotalReferrals:    totalReferrals,
	}
}
