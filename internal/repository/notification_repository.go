package repository

import (
	"context"

	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

// NotificationRepository persists notification history rows.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Notification, error)
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) error
}
