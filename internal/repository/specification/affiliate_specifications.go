package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserID filters records owned by a user.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByAffiliateID filters ledger rows belonging to one affiliate.
type ByAffiliateID struct {
	AffiliateID uuid.UUID
}

func (s ByAffiliateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("affiliate_id = ?", s.AffiliateID)
}

// ByStatus filters by a status column value.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStatuses filters by a set of status values.
type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// ByReferralCode looks an affiliate up by its referral code.
type ByReferralCode struct {
	Code string
}

func (s ByReferralCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("referral_code = ?", s.Code)
}

// ByCouponCode matches the canonicalized coupon code.
type ByCouponCode struct {
	Code string
}

func (s ByCouponCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
