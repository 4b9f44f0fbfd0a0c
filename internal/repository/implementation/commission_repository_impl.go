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

type CommissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommissionMapper
}

func NewCommissionRepository(db *gorm.DB) contract.CommissionRepository {
	return &CommissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommissionMapper(),
	}
}

func (r *CommissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommissionRepositoryImpl) Create(ctx context.Context, entry *entity.CommissionEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommissionRepositoryImpl) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.CommissionStatus, withdrawId *uuid.UUID) (int64, error) {
	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if to == entity.CommissionStatusPaid {
		now := time.Now()
		updates["paid_at"] = now
		updates["withdraw_id"] = withdrawId
	}
	res := r.db.WithContext(ctx).
		Model(&model.CommissionEntry{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *CommissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommissionEntry, error) {
	var m model.CommissionEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommissionEntry, error) {
	var models []*model.CommissionEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CommissionEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CommissionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CommissionEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CommissionRepositoryImpl) SumAmount(ctx context.Context, affiliateId uuid.UUID, statuses []entity.CommissionStatus) (float64, error) {
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.CommissionEntry{}).
		Where("affiliate_id = ? AND status IN ?", affiliateId, strs).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *CommissionRepositoryImpl) StatusBreakdown(ctx context.Context) ([]entity.StatusTotal, error) {
	var rows []entity.StatusTotal
	err := r.db.WithContext(ctx).
		Model(&model.CommissionEntry{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
