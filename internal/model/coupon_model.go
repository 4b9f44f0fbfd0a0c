package model

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AffiliateId *uuid.UUID `gorm:"type:uuid;index"`
	Code        string     `gorm:"type:varchar(40);not null;uniqueIndex"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Value       float64    `gorm:"type:decimal(12,2);not null"`
	MaxDiscount *float64   `gorm:"type:decimal(12,2)"`
	MinPurchase float64    `gorm:"type:decimal(12,2);default:0"`
	UsageLimit  *int
	ExpiryDate  *time.Time
	OneTimeUse  bool `gorm:"default:false"`

	ApprovalStatus string `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsActive       bool   `gorm:"default:false"`
	UsedCount      int    `gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// CouponRedemption records one consumption. The composite index backs the
// per-user redemption count check in the redeem transaction; it is
// deliberately non-unique so multi-use coupons can be redeemed repeatedly by
// the same user.
type CouponRedemption struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CouponId    uuid.UUID `gorm:"type:uuid;not null;index:idx_redemptions_coupon_user,priority:1"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index:idx_redemptions_coupon_user,priority:2"`
	OrderAmount float64   `gorm:"type:decimal(12,2);not null"`
	Discount    float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CouponRedemption) TableName() string {
	return "coupon_redemptions"
}
