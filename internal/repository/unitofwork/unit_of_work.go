package unitofwork

import (
	"context"

	"affiliate-hub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AffiliateRepository() contract.AffiliateRepository
	CouponRepository() contract.CouponRepository
	CouponRedemptionRepository() contract.CouponRedemptionRepository
	CommissionRepository() contract.CommissionRepository
	WithdrawRepository() contract.WithdrawRepository
	SettingRepository() contract.SettingRepository
}
