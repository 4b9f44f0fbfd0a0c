package implementation

import (
	"context"
	"errors"
	"time"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/mapper"
	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/repository/contract"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouponMapper
}

func NewCouponRepository(db *gorm.DB) contract.CouponRepository {
	return &CouponRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouponMapper(),
	}
}

func (r *CouponRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CouponRepositoryImpl) Create(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) Update(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) UpdateApprovalIf(ctx context.Context, id uuid.UUID, from, to entity.CouponApprovalStatus, isActive bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Coupon{}).
		Where("id = ? AND approval_status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"approval_status": string(to),
			"is_active":       isActive,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *CouponRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	var m model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CouponRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	var models []*model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Coupon, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CouponRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Coupon{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type CouponRedemptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouponMapper
}

func NewCouponRedemptionRepository(db *gorm.DB) contract.CouponRedemptionRepository {
	return &CouponRedemptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouponMapper(),
	}
}

func (r *CouponRedemptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CouponRedemptionRepositoryImpl) Create(ctx context.Context, redemption *entity.CouponRedemption) error {
	m := r.mapper.RedemptionToModel(redemption)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*redemption = *r.mapper.RedemptionToEntity(m)
	return nil
}

func (r *CouponRedemptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CouponRedemption, error) {
	var models []*model.CouponRedemption
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CouponRedemption, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RedemptionToEntity(m)
	}
	return entities, nil
}

func (r *CouponRedemptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CouponRedemption{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
