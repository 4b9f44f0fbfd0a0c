package implementation

import (
	"context"
	"time"

	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/repository"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Notification, error) {
	var models []*model.Notification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = false", userId).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) error {
	now := time.Now()
	query := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ?", userId)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	return query.Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
}
