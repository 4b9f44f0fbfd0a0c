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

type AffiliateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AffiliateMapper
}

func NewAffiliateRepository(db *gorm.DB) contract.AffiliateRepository {
	return &AffiliateRepositoryImpl{
		db:     db,
		mapper: mapper.NewAffiliateMapper(),
	}
}

func (r *AffiliateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AffiliateRepositoryImpl) Create(ctx context.Context, affiliate *entity.Affiliate) error {
	m := r.mapper.ToModel(affiliate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*affiliate = *r.mapper.ToEntity(m)
	return nil
}

func (r *AffiliateRepositoryImpl) Update(ctx context.Context, affiliate *entity.Affiliate) error {
	m := r.mapper.ToModel(affiliate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*affiliate = *r.mapper.ToEntity(m)
	return nil
}

func (r *AffiliateRepositoryImpl) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.AffiliateStatus, rejectReason *string) (int64, error) {
	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if rejectReason != nil {
		updates["reject_reason"] = *rejectReason
	}
	res := r.db.WithContext(ctx).
		Model(&model.Affiliate{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *AffiliateRepositoryImpl) UpdateAggregates(ctx context.Context, id uuid.UUID, totalReferrals int, total, pending, paid float64) error {
	return r.db.WithContext(ctx).
		Model(&model.Affiliate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_referrals":    totalReferrals,
			"total_commission":   total,
			"pending_commission": pending,
			"paid_commission":    paid,
			"updated_at":         time.Now(),
		}).Error
}

func (r *AffiliateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Affiliate{}, id).Error
}

func (r *AffiliateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Affiliate, error) {
	var m model.Affiliate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AffiliateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Affiliate, error) {
	var models []*model.Affiliate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Affiliate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AffiliateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Affiliate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
