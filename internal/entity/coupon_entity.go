// FILE: internal/entity/coupon_entity.go
package entity

import (
	"math"
	"strings"
	"time"

	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

type CouponApprovalStatus string

const (
	CouponApprovalPending  CouponApprovalStatus = "pending"
	CouponApprovalApproved CouponApprovalStatus = "approved"
	CouponApprovalRejected CouponApprovalStatus = "rejected"
)

type Coupon struct {
	Id uuid.UUID
	// AffiliateId is nil for admin-authored coupons, which bypass the
	// approval pipeline and are created pre-approved.
	AffiliateId *uuid.UUID
	Code        string
	Type        CouponType
	Value       float64
	MaxDiscount *float64
	MinPurchase float64
	UsageLimit  *int
	ExpiryDate  *time.Time
	OneTimeUse  bool

	ApprovalStatus CouponApprovalStatus
	IsActive       bool
	UsedCount      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CouponRedemption is one consumption of a coupon by a user.
type CouponRedemption struct {
	Id          uuid.UUID
	CouponId    uuid.UUID
	UserId      uuid.UUID
	OrderAmount float64
	Discount    float64
	CreatedAt   time.Time
}

// ValidateCouponTerms checks the discount rules shared by affiliate
// submissions and admin-authored coupons. A cap only makes sense on
// percentage discounts; a fixed coupon carrying one is rejected rather than
// silently ignored. An expiry date, when set, must still be in the future at
// creation time so an already-dead coupon never enters the review queue.
func ValidateCouponTerms(t CouponType, value float64, maxDiscount *float64, expiry *time.Time, now time.Time) error {
	switch t {
	case CouponTypePercentage:
		if value <= 0 || value > 100 {
			return apperror.Validation("value", "percentage value must be between 0 and 100")
		}
	case CouponTypeFixed:
		if value <= 0 {
			return apperror.Validation("value", "fixed discount must be positive")
		}
		if maxDiscount != nil {
			return apperror.Validation("max_discount", "max_discount only applies to percentage coupons")
		}
	default:
		return apperror.Validation("type", "unknown coupon type")
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return apperror.Validation("max_discount", "max_discount cannot be negative")
	}
	if expiry != nil && !expiry.After(now) {
		return apperror.Validation("expiry_date", "expiry_date must be in the future")
	}
	return nil
}

// NormalizeCouponCode canonicalizes codes for storage and lookup.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExpired evaluates expiry lazily; there is no sweeping job.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && !c.ExpiryDate.After(now)
}

func (c *Coupon) UsageExhausted() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}

// Usable is the coupon-local part of effective usability. The owning
// affiliate's status must be re-verified at redemption time by the caller;
// it is deliberately not a field on the coupon.
func (c *Coupon) Usable(now time.Time) bool {
	return c.CheckRedeemable(now) == nil
}

// CheckRedeemable explains why a coupon cannot be used right now, or returns
// nil. An exhausted usage limit is an exhausted lifecycle state rather than a
// bad request, so it carries the transition kind.
func (c *Coupon) CheckRedeemable(now time.Time) error {
	switch {
	case c.ApprovalStatus != CouponApprovalApproved:
		return apperror.New(apperror.KindValidation, "coupon is not approved")
	case !c.IsActive:
		return apperror.New(apperror.KindValidation, "coupon is inactive")
	case c.IsExpired(now):
		return apperror.New(apperror.KindValidation, "coupon has expired")
	case c.UsageExhausted():
		return apperror.New(apperror.KindInvalidTransition, "coupon usage limit reached")
	}
	return nil
}

// DiscountFor computes the discount to apply for an order amount, honoring
// MaxDiscount for percentage coupons and never exceeding the order amount.
func (c *Coupon) DiscountFor(orderAmount float64) float64 {
	var discount float64
	switch c.Type {
	case CouponTypePercentage:
		discount = RoundMoney(orderAmount * c.Value / 100)
		if c.MaxDiscount != nil && discount > *c.MaxDiscount {
			discount = *c.MaxDiscount
		}
	case CouponTypeFixed:
		discount = c.Value
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}

// RoundMoney rounds to 2 decimal places, half away from zero.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
