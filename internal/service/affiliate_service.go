// FILE: internal/service/affiliate_service.go
package service

import (
	"context"
	"errors"
	"time"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	adminEvents "affiliate-hub-be/pkg/admin/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IAffiliateService interface {
	Register(ctx context.Context, userId uuid.UUID, req *dto.RegisterAffiliateRequest) (*dto.AffiliateResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID) error
	GetView(ctx context.Context, userId uuid.UUID) (*dto.AffiliateViewResponse, error)
	UpdatePaymentMethod(ctx context.Context, userId uuid.UUID, req *dto.UpdatePaymentMethodRequest) (*dto.AffiliateResponse, error)
	ListCommissions(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.CommissionResponse], error)
	ListWithdrawals(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.WithdrawResponse], error)
}

type affiliateService struct {
	uowFactory   unitofwork.RepositoryFactory
	logger       logger.ILogger
	publisher    adminEvents.Publisher
	generateCode func() string
}

func NewAffiliateService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	publisher adminEvents.Publisher,
	generateCode func() string,
) IAffiliateService {
	return &affiliateService{
		uowFactory:   uowFactory,
		logger:       logger,
		publisher:    publisher,
		generateCode: generateCode,
	}
}

// openStatuses are the affiliate states that block a new application.
// Rejected rows stay behind as history and do not block re-applying.
var openStatuses = []string{
	string(entity.AffiliateStatusPending),
	string(entity.AffiliateStatusActive),
	string(entity.AffiliateStatusSuspended),
}

// findCurrent returns the user's live affiliate record, skipping rejected
// history rows.
func findCurrent(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Affiliate, error) {
	return uow.AffiliateRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByStatuses{Statuses: openStatuses},
	)
}

func (s *affiliateService) Register(ctx context.Context, userId uuid.UUID, req *dto.RegisterAffiliateRequest) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Newf(apperror.KindDuplicateRegistration, "affiliate registration already exists with status %s", existing.Status)
	}

	// The code space is large, but collide-and-retry keeps registration
	// correct even when it isn't.
	var code string
	for attempt := 0; attempt < 5; attempt++ {
		candidate := s.generateCode()
		taken, err := uow.AffiliateRepository().FindOne(ctx, specification.ByReferralCode{Code: candidate})
		if err != nil {
			return nil, err
		}
		if taken == nil {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, apperror.New(apperror.KindConcurrentModification, "could not allocate a referral code, retry")
	}

	now := time.Now()
	affiliate := &entity.Affiliate{
		Id:           uuid.New(),
		UserId:       userId,
		Status:       entity.AffiliateStatusPending,
		ReferralCode: code,
		Payment:      paymentFromRequest(req.Payment),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.AffiliateRepository().Create(ctx, affiliate); err != nil {
		// Two racing registrations both pass the pre-check above; the
		// partial unique index on open registrations catches the loser here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.KindDuplicateRegistration, "affiliate registration already exists")
		}
		return nil, err
	}

	s.logger.Info("AFFILIATE", "New affiliate registration", map[string]interface{}{
		"affiliateId": affiliate.Id.String(),
		"userId":      userId.String(),
	})
	s.publisher.PublishAffiliateRegistered(ctx, affiliate.Id, userId, code)

	return toAffiliateResponse(affiliate), nil
}

// Cancel withdraws a pending application. Only the applicant can cancel, and
// only while the application has not been decided.
func (s *affiliateService) Cancel(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return apperror.New(apperror.KindNotFound, "no affiliate registration found")
	}
	if affiliate.Status != entity.AffiliateStatusPending {
		return apperror.Newf(apperror.KindInvalidTransition, "cannot cancel a %s affiliate account", affiliate.Status)
	}

	if err := uow.AffiliateRepository().Delete(ctx, affiliate.Id); err != nil {
		return err
	}

	s.logger.Info("AFFILIATE", "Cancelled affiliate application", map[string]interface{}{
		"affiliateId": affiliate.Id.String(),
		"userId":      userId.String(),
	})
	return nil
}

// GetView is the self-service projection. Balances are always folded fresh
// from the ledger; the denormalized aggregates on the affiliate row are for
// admin listings only.
func (s *affiliateService) GetView(ctx context.Context, userId uuid.UUID) (*dto.AffiliateViewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return &dto.AffiliateViewResponse{IsAffiliate: false}, nil
	}

	entries, err := uow.CommissionRepository().FindAll(ctx, specification.ByAffiliateID{AffiliateID: affiliate.Id})
	if err != nil {
		return nil, err
	}
	withdrawals, err := uow.WithdrawRepository().FindAll(ctx, specification.ByAffiliateID{AffiliateID: affiliate.Id})
	if err != nil {
		return nil, err
	}

	balances := entity.FoldBalances(entries, withdrawals)

	return &dto.AffiliateViewResponse{
		IsAffiliate: true,
		Affiliate:   toAffiliateResponse(affiliate),
		Balances:    toBalancesResponse(balances, affiliate.TotalReferrals),
	}, nil
}

// UpdatePaymentMethod replaces the payout destination. In-flight withdraw
// requests keep the snapshot taken when they were created.
func (s *affiliateService) UpdatePaymentMethod(ctx context.Context, userId uuid.UUID, req *dto.UpdatePaymentMethodRequest) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := findCurrent(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, apperror.New(apperror.KindNotFound, "no affiliate registration found")
	}

	affiliate.Payment = paymentFromRequest(req.Payment)
	affiliate.UpdatedAt = time.Now()
	if err := uow.AffiliateRepository().Update(ctx, affiliate); err != nil {
		return nil, err
	}

	return toAffiliateResponse(affiliate), nil
}

func (s *affiliateService) ListCommissions(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.CommissionResponse], error) {
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
		filter = append(filter, specification.ByStatus{Status: page.Status})
	}

	entries, err := uow.CommissionRepository().FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, err
	}
	total, err := uow.CommissionRepository().Count(ctx, filter...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommissionResponse, len(entries))
	for i, e := range entries {
		items[i] = toCommissionResponse(e)
	}
	return &dto.PagedResponse[*dto.CommissionResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (s *affiliateService) ListWithdrawals(ctx context.Context, userId uuid.UUID, page dto.PageRequest) (*dto.PagedResponse[*dto.WithdrawResponse], error) {
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
		filter = append(filter, specification.ByStatus{Status: page.Status})
	}

	requests, err := uow.WithdrawRepository().FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, err
	}
	total, err := uow.WithdrawRepository().Count(ctx, filter...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.WithdrawResponse, len(requests))
	for i, w := range requests {
		items[i] = toWithdrawResponse(w)
	}
	return &dto.PagedResponse[*dto.WithdrawResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}
