// FILE: internal/service/coupon_service.go
package service

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

type ICouponService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.CouponResponse], error)
	Preview(ctx context.Context, req *dto.RedeemCouponRequest) (*dto.RedeemCouponResponse, error)
	Redeem(ctx context.Context, req *dto.RedeemCouponRequest) (*dto.RedeemCouponResponse, error)
}

type couponService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	publisher  adminEvents.Publisher
}

func NewCouponService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, publisher adminEvents.Publisher) ICouponService {
	return &couponService{
		uowFactory: uowFactory,
		logger:     logger,
		publisher:  publisher,
	}
}

// Create submits an affiliate coupon for review. Only active affiliates can
// submit; the coupon enters the queue pending and inactive.
func (s *couponService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, apperror.New(apperror.KindNotFound, "no affiliate registration found")
	}
	if affiliate.Status != entity.AffiliateStatusActive {
		return nil, apperror.Newf(apperror.KindForbidden, "only active affiliates can submit coupons, account is %s", affiliate.Status)
	}

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
		AffiliateId:    &affiliate.Id,
		Code:           code,
		Type:           entity.CouponType(req.Type),
		Value:          req.Value,
		MaxDiscount:    req.MaxDiscount,
		MinPurchase:    req.MinPurchase,
		UsageLimit:     req.UsageLimit,
		ExpiryDate:     req.ExpiryDate,
		OneTimeUse:     req.OneTimeUse,
		ApprovalStatus: entity.CouponApprovalPending,
		IsActive:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.CouponRepository().Create(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info("COUPON", "Coupon submitted for review", map[string]interface{}{
		"couponId":    coupon.Id.String(),
		"affiliateId": affiliate.Id.String(),
		"code":        code,
	})
	s.publisher.PublishCouponSubmitted(ctx, coupon.Id, affiliate.Id, code)

	return toCouponResponse(coupon), nil
}

func (s *couponService) ListMine(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.CouponResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, apperror.New(apperror.KindNotFound, "no affiliate registration found")
	}

	page.Normalize()
	filter := []specification.Specification{specification.ByAffiliateID{AffiliateID: affiliate.Id}}
	if page.Status != "" {
		filter = append(filter, specification.Filter("approval_status", page.Status))
	}

	coupons, err := uow.CouponRepository().FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, err
	}
	total, err := uow.CouponRepository().Count(ctx, filter...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CouponResponse, len(coupons))
	for i, c := range coupons {
		items[i] = toCouponResponse(c)
	}
	return &dto.PagedResponse[*dto.CouponResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

// evaluate runs the effective usability checks and computes the discount. It
// does not consume anything; Redeem layers the consumption on top.
func (s *couponService) evaluate(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.RedeemCouponRequest, lock bool) (*entity.Coupon, float64, error) {
	specs := []specification.Specification{specification.ByCouponCode{Code: entity.NormalizeCouponCode(req.Code)}}
	if lock {
		specs = append(specs, specification.LockForUpdate{})
	}

	coupon, err := uow.CouponRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	if coupon == nil {
		return nil, 0, apperror.New(apperror.KindNotFound, "coupon not found")
	}

	if err := coupon.CheckRedeemable(time.Now()); err != nil {
		return nil, 0, err
	}

	// Affiliate coupons die with their owner's status. This is checked live,
	// not denormalized onto the coupon, so suspension is instant.
	if coupon.AffiliateId != nil {
		owner, err := uow.AffiliateRepository().FindOne(ctx, specification.ByID{ID: *coupon.AffiliateId})
		if err != nil {
			return nil, 0, err
		}
		if owner == nil || owner.Status != entity.AffiliateStatusActive {
			return nil, 0, apperror.New(apperror.KindForbidden, "coupon is not available")
		}
	}

	if req.OrderAmount < coupon.MinPurchase {
		return nil, 0, apperror.Newf(apperror.KindValidation, "order amount below minimum purchase of %.2f", coupon.MinPurchase)
	}

	if coupon.OneTimeUse {
		used, err := uow.CouponRedemptionRepository().Count(ctx,
			specification.Filter("coupon_id", coupon.Id),
			specification.Filter("user_id", req.UserId),
		)
		if err != nil {
			return nil, 0, err
		}
		if used > 0 {
			return nil, 0, apperror.New(apperror.KindValidation, "coupon already used by this user")
		}
	}

	return coupon, coupon.DiscountFor(req.OrderAmount), nil
}

// Preview answers "what would this coupon do for this cart" without spending
// a use.
func (s *couponService) Preview(ctx context.Context, req *dto.RedeemCouponRequest) (*dto.RedeemCouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	coupon, discount, err := s.evaluate(ctx, uow, req, false)
	if err != nil {
		return nil, err
	}
	return &dto.RedeemCouponResponse{Usable: true, Discount: discount, Code: coupon.Code}, nil
}

// Redeem consumes one use. The coupon row is locked for the duration of the
// transaction so the usage counter and the one-time-use check cannot race.
func (s *couponService) Redeem(ctx context.Context, req *dto.RedeemCouponRequest) (*dto.RedeemCouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	coupon, discount, err := s.evaluate(ctx, uow, req, true)
	if err != nil {
		return nil, err
	}

	redemption := &entity.CouponRedemption{
		Id:          uuid.New(),
		CouponId:    coupon.Id,
		UserId:      req.UserId,
		OrderAmount: req.OrderAmount,
		Discount:    discount,
		CreatedAt:   time.Now(),
	}
	if err := uow.CouponRedemptionRepository().Create(ctx, redemption); err != nil {
		return nil, err
	}

	coupon.UsedCount++
	coupon.UpdatedAt = time.Now()
	if err := uow.CouponRepository().Update(ctx, coupon); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("COUPON", "Coupon redeemed", map[string]interface{}{
		"couponId": coupon.Id.String(),
		"userId":   req.UserId.String(),
		"discount": discount,
	})

	return &dto.RedeemCouponResponse{Usable: true, Discount: discount, Code: coupon.Code}, nil
}
