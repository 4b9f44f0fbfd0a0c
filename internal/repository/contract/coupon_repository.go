package contract

import (
	"context"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	// UpdateApprovalIf moves approvalStatus from -> to and sets is_active in
	// the same statement. Returns rows affected.
	UpdateApprovalIf(ctx context.Context, id uuid.UUID, from, to entity.CouponApprovalStatus, isActive bool) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CouponRedemptionRepository interface {
	Create(ctx context.Context, redemption *entity.CouponRedemption) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CouponRedemption, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
