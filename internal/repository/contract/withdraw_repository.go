package contract

import (
	"context"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WithdrawRepository interface {
	Create(ctx context.Context, request *entity.WithdrawRequest) error
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.WithdrawStatus, rejectReason *string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WithdrawRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, affiliateId uuid.UUID, statuses []entity.WithdrawStatus) (float64, error)
	StatusBreakdown(ctx context.Context) ([]entity.StatusTotal, error)
}
