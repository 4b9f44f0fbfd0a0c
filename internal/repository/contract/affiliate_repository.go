package contract

import (
	"context"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AffiliateRepository interface {
	Create(ctx context.Context, affiliate *entity.Affiliate) error
	Update(ctx context.Context, affiliate *entity.Affiliate) error
	// UpdateStatusIf is a compare-and-set: the row moves from -> to only if it
	// still holds from. Returns the number of rows affected (0 or 1).
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.AffiliateStatus, rejectReason *string) (int64, error)
	UpdateAggregates(ctx context.Context, id uuid.UUID, totalReferrals int, total, pending, paid float64) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Affiliate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Affiliate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
