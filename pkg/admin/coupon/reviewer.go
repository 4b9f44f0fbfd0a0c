package coupon

import (
	"context"
	"time"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	adminEvents "affiliate-hub-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Reviewer handles the coupon approval pipeline. Affiliate-submitted coupons
// enter as pending and only start matching orders once approved here;
// admin-authored coupons skip the queue entirely.
type Reviewer struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewReviewer creates a new coupon reviewer
func NewReviewer(logger logger.ILogger, publisher adminEvents.Publisher) *Reviewer {
	return &Reviewer{
		logger:    logger,
		publisher: publisher,
	}
}

// GetAll retrieves paginated coupons with optional approval status filter.
func (r *Reviewer) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, page dto.PageRequest) ([]*entity.Coupon, int64, error) {
	page.Normalize()

	var filter []specification.Specification
	if page.Status != "" {
		filter = append(filter, specification.Filter("approval_status", page.Status))
	}

	specs := append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)

	coupons, err := uow.CouponRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.CouponRepository().Count(ctx, filter...)
	if err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *Reviewer) review(ctx context.Context, uow unitofwork.UnitOfWork, couponId uuid.UUID, to entity.CouponApprovalStatus, activate bool) (*entity.Coupon, error) {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: couponId})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.New(apperror.KindNotFound, "coupon not found")
	}
	if coupon.ApprovalStatus != entity.CouponApprovalPending {
		return nil, apperror.Newf(apperror.KindInvalidTransition, "coupon already %s", coupon.ApprovalStatus)
	}

	rows, err := uow.CouponRepository().UpdateApprovalIf(ctx, couponId, entity.CouponApprovalPending, to, activate)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.New(apperror.KindConcurrentModification, "coupon reviewed concurrently, retry")
	}

	coupon.ApprovalStatus = to
	coupon.IsActive = activate
	return coupon, nil
}

// Approve activates a pending coupon.
func (r *Reviewer) Approve(ctx context.Context, uow unitofwork.UnitOfWork, couponId uuid.UUID) (*entity.Coupon, error) {
	coupon, err := r.review(ctx, uow, couponId, entity.CouponApprovalApproved, true)
	if err != nil {
		return nil, err
	}

	r.logger.Info("ADMIN", "Approved coupon", map[string]interface{}{
		"couponId": couponId.String(),
		"code":     coupon.Code,
	})
	r.publisher.PublishCouponApproved(ctx, coupon.Id, coupon.AffiliateId, coupon.Code)

	return coupon, nil
}

// Reject closes a pending coupon submission.
func (r *Reviewer) Reject(ctx context.Context, uow unitofwork.UnitOfWork, couponId uuid.UUID) (*entity.Coupon, error) {
	coupon, err := r.review(ctx, uow, couponId, entity.CouponApprovalRejected, false)
	if err != nil {
		return nil, err
	}

	r.logger.Info("ADMIN", "Rejected coupon", map[string]interface{}{
		"couponId": couponId.String(),
		"code":     coupon.Code,
	})
	r.publisher.PublishCouponRejected(ctx, coupon.Id, coupon.AffiliateId, coupon.Code)

	return coupon, nil
}

// Create authors a house coupon. It has no owning affiliate and goes live
// immediately.
func (r *Reviewer) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateCouponRequest) (*entity.Coupon, error) {
	if err := entity.ValidateCouponTerms(entity.CouponType(req.Type), req.Value, req.MaxDiscount, req.ExpiryDate, time.Now()); err != nil {
		return nil, err
	}

	code := entity.NormalizeCouponCode(req.Code)
	existing, err := uow.CouponRepository().FindOne(ctx, specification.ByCouponCode{Code: code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Newf(apperror.KindValidation, "coupon code %s already exists", code)
	}

	now := time.Now()
	coupon := &entity.Coupon{
		Id:             uuid.New(),
		AffiliateId:    nil,
		Code:           code,
		Type:           entity.CouponType(req.Type),
		Value:          req.Value,
		MaxDiscount:    req.MaxDiscount,
		MinPurchase:    req.MinPurchase,
		UsageLimit:     req.UsageLimit,
		ExpiryDate:     req.ExpiryDate,
		OneTimeUse:     req.OneTimeUse,
		ApprovalStatus: entity.CouponApprovalApproved,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.CouponRepository().Create(ctx, coupon); err != nil {
		return nil, err
	}

	r.logger.Info("ADMIN", "Created house coupon", map[string]interface{}{
		"couponId": coupon.Id.String(),
		"code":     coupon.Code,
	})

	return coupon, nil
}

// SetActive toggles an approved coupon without touching its approval status.
func (r *Reviewer) SetActive(ctx context.Context, uow unitofwork.UnitOfWork, couponId uuid.UUID, active bool) (*entity.Coupon, error) {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: couponId})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.New(apperror.KindNotFound, "coupon not found")
	}
	if coupon.ApprovalStatus != entity.CouponApprovalApproved {
		return nil, apperror.Newf(apperror.KindInvalidTransition, "coupon is %s, only approved coupons can be toggled", coupon.ApprovalStatus)
	}

	coupon.IsActive = active
	if err := uow.CouponRepository().Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}
