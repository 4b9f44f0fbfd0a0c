package mapper

import (
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/model"
)

type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToEntity(c *model.Coupon) *entity.Coupon {
	if c == nil {
		return nil
	}
	return &entity.Coupon{
		Id:             c.Id,
		AffiliateId:    c.AffiliateId,
		Code:           c.Code,
		Type:           entity.CouponType(c.Type),
		Value:          c.Value,
		MaxDiscount:    c.MaxDiscount,
		MinPurchase:    c.MinPurchase,
		UsageLimit:     c.UsageLimit,
		ExpiryDate:     c.ExpiryDate,
		OneTimeUse:     c.OneTimeUse,
		ApprovalStatus: entity.CouponApprovalStatus(c.ApprovalStatus),
		IsActive:       c.IsActive,
		UsedCount:      c.UsedCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *CouponMapper) ToModel(c *entity.Coupon) *model.Coupon {
	if c == nil {
		return nil
	}
	return &model.Coupon{
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
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *CouponMapper) RedemptionToEntity(r *model.CouponRedemption) *entity.CouponRedemption {
	if r == nil {
		return nil
	}
	return &entity.CouponRedemption{
		Id:          r.Id,
		CouponId:    r.CouponId,
		UserId:      r.UserId,
		OrderAmount: r.OrderAmount,
		Discount:    r.Discount,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CouponMapper) RedemptionToModel(r *entity.CouponRedemption) *model.CouponRedemption {
	if r == nil {
		return nil
	}
	return &model.CouponRedemption{
		Id:          r.Id,
		CouponId:    r.CouponId,
		UserId:      r.UserId,
		OrderAmount: r.OrderAmount,
		Discount:    r.Discount,
		CreatedAt:   r.CreatedAt,
	}
}
