package contract

import (
	"context"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CommissionRepository interface {
	Create(ctx context.Context, entry *entity.CommissionEntry) error
	// UpdateStatusIf is the compare-and-set transition. withdrawId is set when
	// the move to paid is a withdraw settlement side effect.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.CommissionStatus, withdrawId *uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommissionEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommissionEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, affiliateId uuid.UUID, statuses []entity.CommissionStatus) (float64, error)
	StatusBreakdown(ctx context.Context) ([]entity.StatusTotal, error)
}
