package unitofwork

import (
	"context"
	"fmt"

	"affiliate-hub-be/internal/repository/contract"
	"affiliate-hub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AffiliateRepository() contract.AffiliateRepository {
	return implementation.NewAffiliateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CouponRepository() contract.CouponRepository {
	return implementation.NewCouponRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CouponRedemptionRepository() contract.CouponRedemptionRepository {
	return implementation.NewCouponRedemptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CommissionRepository() contract.CommissionRepository {
	return implementation.NewCommissionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WithdrawRepository() contract.WithdrawRepository {
	return implementation.NewWithdrawRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SettingRepository() contract.SettingRepository {
	return implementation.NewSettingRepository(u.getDB())
}
