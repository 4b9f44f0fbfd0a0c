package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Code        string     `json:"code" validate:"required,min=3,max=40,alphanum"`
	Type        string     `json:"type" validate:"required,oneof=percentage fixed"`
	Value       float64    `json:"value" validate:"required,gt=0"`
	MaxDiscount *float64   `json:"max_discount" validate:"omitempty,gte=0"`
	MinPurchase float64    `json:"min_purchase" validate:"gte=0"`
	UsageLimit  *int       `json:"usage_limit" validate:"omitempty,gte=1"`
	ExpiryDate  *time.Time `json:"expiry_date" validate:"omitempty,gt"`
	OneTimeUse  bool       `json:"one_time_use"`
}

type CouponResponse struct {
	Id             uuid.UUID  `json:"id"`
	AffiliateId    *uuid.UUID `json:"affiliate_id,omitempty"`
	Code           string     `json:"code"`
	Type           string     `json:"type"`
	Value          float64    `json:"value"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	MinPurchase    float64    `json:"min_purchase"`
	UsageLimit     *int       `json:"usage_limit,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	OneTimeUse     bool       `json:"one_time_use"`
	ApprovalStatus string     `json:"approval_status"`
	IsActive       bool       `json:"is_active"`
	UsedCount      int        `json:"used_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

type SetCouponActiveRequest struct {
	Active bool `json:"active"`
}

// RedeemCouponRequest comes from the pricing/cart service before an order is
// finalized.
type RedeemCouponRequest struct {
	Code        string    `json:"code" validate:"required"`
	OrderAmount float64   `json:"order_amount" validate:"required,gt=0"`
	UserId      uuid.UUID `json:"user_id" validate:"required"`
}

type RedeemCouponResponse struct {
	Usable   bool    `json:"usable"`
	Discount float64 `json:"discount"`
	Code     string  `json:"code"`
}
