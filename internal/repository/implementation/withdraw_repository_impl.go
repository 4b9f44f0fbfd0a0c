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

type WithdrawRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WithdrawMapper
}

func NewWithdrawRepository(db *gorm.DB) contract.WithdrawRepository {
	return &WithdrawRepositoryImpl{
		db:     db,
		mapper: mapper.NewWithdrawMapper(),
	}
}

func (r *WithdrawRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WithdrawRepositoryImpl) Create(ctx context.Context, request *entity.WithdrawRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *WithdrawRepositoryImpl) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.WithdrawStatus, rejectReason *string) (int64, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": now,
	}
	switch to {
	case entity.WithdrawStatusApproved, entity.WithdrawStatusRejected:
		updates["processed_at"] = now
	case entity.WithdrawStatusPaid:
		updates["paid_at"] = now
	}
	if rejectReason != nil {
		updates["reject_reason"] = *rejectReason
	}
	res := r.db.WithContext(ctx).
		Model(&model.WithdrawRequest{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *WithdrawRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WithdrawRequest, error) {
	var m model.WithdrawRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WithdrawRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawRequest, error) {
	var models []*model.WithdrawRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WithdrawRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *WithdrawRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WithdrawRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WithdrawRepositoryImpl) SumAmount(ctx context.Context, affiliateId uuid.UUID, statuses []entity.WithdrawStatus) (float64, error) {
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.WithdrawRequest{}).
		Where("affiliate_id = ? AND status IN ?", affiliateId, strs).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *WithdrawRepositoryImpl) StatusBreakdown(ctx context.Context) ([]entity.StatusTotal, error) {
	var rows []entity.StatusTotal
	err := r.db.WithContext(ctx).
		Model(&model.WithdrawRequest{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
