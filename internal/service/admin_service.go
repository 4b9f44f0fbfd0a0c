package service

import (
	"context"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	"affiliate-hub-be/pkg/admin/affiliate"
	"affiliate-hub-be/pkg/admin/coupon"
	"affiliate-hub-be/pkg/admin/dashboard"
	"affiliate-hub-be/pkg/admin/ledger"
	"affiliate-hub-be/pkg/admin/withdraw"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.AffiliateDashboardStats, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error)

	// Affiliate Management
	GetAffiliates(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.AffiliateListResponse], error)
	GetAffiliateDetail(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error)
	ApproveAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error)
	RejectAffiliate(ctx context.Context, affiliateId uuid.UUID, req dto.RejectAffiliateRequest) (*dto.AffiliateResponse, error)
	SuspendAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error)
	ReactivateAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error)

	// Coupon Review
	GetCoupons(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.CouponResponse], error)
	ApproveCoupon(ctx context.Context, couponId uuid.UUID) (*dto.CouponResponse, error)
	RejectCoupon(ctx context.Context, couponId uuid.UUID) (*dto.CouponResponse, error)
	CreateHouseCoupon(ctx context.Context, req dto.CreateCouponRequest) (*dto.CouponResponse, error)
	SetCouponActive(ctx context.Context, couponId uuid.UUID, active bool) (*dto.CouponResponse, error)

	// Ledger Review
	GetCommissions(ctx context.Context, page dto.PageRequest, affiliateId *uuid.UUID) (*dto.PagedResponse[*dto.CommissionResponse], error)
	ApproveCommission(ctx context.Context, entryId uuid.UUID) (*dto.CommissionResponse, error)
	CancelCommission(ctx context.Context, entryId uuid.UUID) (*dto.CommissionResponse, error)

	// Withdraw Processing
	GetWithdrawals(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.WithdrawResponse], error)
	ApproveWithdraw(ctx context.Context, withdrawId uuid.UUID) (*dto.WithdrawResponse, error)
	RejectWithdraw(ctx context.Context, withdrawId uuid.UUID, req dto.RejectWithdrawRequest) (*dto.WithdrawResponse, error)
	MarkWithdrawPaid(ctx context.Context, withdrawId uuid.UUID) (*dto.WithdrawResponse, error)

	// Program Settings
	GetSettings(ctx context.Context) (*dto.ProgramSettingsResponse, error)
	UpdateSettings(ctx context.Context, req dto.UpdateProgramSettingsRequest) (*dto.ProgramSettingsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	// Domain Components
	affiliateManager    *affiliate.Manager
	couponReviewer      *coupon.Reviewer
	ledgerReviewer      *ledger.Reviewer
	withdrawProcessor   *withdraw.Processor
	dashboardAggregator *dashboard.Aggregator
	settings            ISettingsService
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	affiliateManager *affiliate.Manager,
	couponReviewer *coupon.Reviewer,
	ledgerReviewer *ledger.Reviewer,
	withdrawProcessor *withdraw.Processor,
	dashboardAggregator *dashboard.Aggregator,
	settings ISettingsService,
) IAdminService {
	return &adminService{
		uowFactory:          uowFactory,
		logger:              logger,
		affiliateManager:    affiliateManager,
		couponReviewer:      couponReviewer,
		ledgerReviewer:      ledgerReviewer,
		withdrawProcessor:   withdrawProcessor,
		dashboardAggregator: dashboardAggregator,
		settings:            settings,
	}
}

// ============================================================================
// Dashboard & Logs
// ============================================================================

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.AffiliateDashboardStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow)
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return s.dashboardAggregator.GetLogs(level, limit, (page-1)*limit)
}

// ============================================================================
// Affiliate Management
// ============================================================================

func (s *adminService) GetAffiliates(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.AffiliateListResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliates, total, err := s.affiliateManager.FindAll(ctx, uow, page)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AffiliateListResponse, len(affiliates))
	for i, a := range affiliates {
		item := &dto.AffiliateListResponse{
			Id:              a.Id,
			UserId:          a.UserId,
			Status:          string(a.Status),
			ReferralCode:    a.ReferralCode,
			TotalReferrals:  a.TotalReferrals,
			TotalCommission: a.TotalCommission,
			CreatedAt:       a.CreatedAt,
		}
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: a.UserId}); err == nil && user != nil {
			item.UserEmail = user.Email
			item.UserFullName = user.FullName
		}
		items[i] = item
	}

	page.Normalize()
	return &dto.PagedResponse[*dto.AffiliateListResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (s *adminService) GetAffiliateDetail(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	aff, err := s.affiliateManager.FindOne(ctx, uow, affiliateId)
	if err != nil {
		return nil, err
	}
	if aff == nil {
		return nil, apperror.New(apperror.KindNotFound, "affiliate not found")
	}
	return toAffiliateResponse(aff), nil
}

func (s *adminService) ApproveAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	aff, err := s.affiliateManager.Approve(ctx, uow, affiliateId)
	if err != nil {
		return nil, err
	}
	return toAffiliateResponse(aff), nil
}

func (s *adminService) RejectAffiliate(ctx context.Context, affiliateId uuid.UUID, req dto.RejectAffiliateRequest) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	aff, err := s.affiliateManager.Reject(ctx, uow, affiliateId, req)
	if err != nil {
		return nil, err
	}
	return toAffiliateResponse(aff), nil
}

func (s *adminService) SuspendAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	aff, err := s.affiliateManager.Suspend(ctx, uow, affiliateId)
	if err != nil {
		return nil, err
	}
	return toAffiliateResponse(aff), nil
}

func (s *adminService) ReactivateAffiliate(ctx context.Context, affiliateId uuid.UUID) (*dto.AffiliateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	aff, err := s.affiliateManager.Reactivate(ctx, uow, affiliateId)
	if err != nil {
		return nil, err
	}
	return toAffiliateResponse(aff), nil
}

// ============================================================================
// Coupon Review
// ============================================================================

func (s *adminService) GetCoupons(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.CouponResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	coupons, total, err := s.couponReviewer.GetAll(ctx, uow, page)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CouponResponse, len(coupons))
	for i, c := range coupons {
		items[i] = toCouponResponse(c)
	}

	page.Normalize()
	return &dto.PagedResponse[*dto.CouponResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (s *adminService) ApproveCoupon(ctx context.Context, couponId uuid.UUID) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := s.couponReviewer.Approve(ctx, uow, couponId)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

func (s *adminService) RejectCoupon(ctx context.Context, couponId uuid.UUID) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := s.couponReviewer.Reject(ctx, uow, couponId)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

func (s *adminService) CreateHouseCoupon(ctx context.Context, req dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := s.couponReviewer.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

func (s *adminService) SetCouponActive(ctx context.Context, couponId uuid.UUID, active bool) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := s.couponReviewer.SetActive(ctx, uow, couponId, active)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

// ============================================================================
// Ledger Review
// ============================================================================

func (s *adminService) GetCommissions(ctx context.Context, page dto.PageRequest, affiliateId *uuid.UUID) (*dto.PagedResponse[*dto.CommissionResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, total, err := s.ledgerReviewer.GetAll(ctx, uow, page, affiliateId)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommissionResponse, len(entries))
	for i, e := range entries {
		items[i] = toCommissionResponse(e)
	}

	page.Normalize()
	return &dto.PagedResponse[*dto.CommissionResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (s *adminService) ApproveCommission(ctx context.Context, entryId uuid.UUID) (*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	e, err := s.ledgerReviewer.Approve(ctx, uow, entryId)
	if err != nil {
		return nil, err
	}
	return toCommissionResponse(e), nil
}

func (s *adminService) CancelCommission(ctx context.Context, entryId uuid.UUID) (*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	e, err := s.ledgerReviewer.Cancel(ctx, uow, entryId)
	if err != nil {
		return nil, err
	}
	return toCommissionResponse(e), nil
}

// ============================================================================
// Withdraw Processing
// ============================================================================

func (s *adminService) GetWithdrawals(ctx context.Context, page dto.PageRequest) (*dto.PagedResponse[*dto.WithdrawResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, total, err := s.withdrawProcessor.GetAll(ctx, uow, page)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.WithdrawResponse, len(requests))
	for i, w := range requests {
		items[i] = toWithdrawResponse(w)
	}

	page.Normalize()
	return &dto.PagedResponse[*dto.WithdrawResponse]{Items: items, Page: page.Page, Limit: page.Limit, Total: total}, nil
}

func (s *adminService) ApproveWithdraw(ctx context.Context, withdrawId uuid.UUID) (*dto.WithdrawResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	w, err := s.withdrawProcessor.Approve(ctx, uow, withdrawId)
	if err != nil {
		return nil, err
	}
	return toWithdrawResponse(w), nil
}

func (s *adminService) RejectWithdraw(ctx context.Context, withdrawId uuid.UUID, req dto.RejectWithdrawRequest) (*dto.WithdrawResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	w, err := s.withdrawProcessor.Reject(ctx, uow, withdrawId, req)
	if err != nil {
		return nil, err
	}
	return toWithdrawResponse(w), nil
}

func (s *adminService) MarkWithdrawPaid(ctx context.Context, withdrawId uuid.UUID) (*dto.WithdrawResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	w, err := s.withdrawProcessor.MarkPaid(ctx, uow, withdrawId)
	if err != nil {
		return nil, err
	}
	return toWithdrawResponse(w), nil
}

// ============================================================================
// Program Settings
// ============================================================================

func (s *adminService) GetSettings(ctx context.Context) (*dto.ProgramSettingsResponse, error) {
	return s.settings.Get(ctx)
}

func (s *adminService) UpdateSettings(ctx context.Context, req dto.UpdateProgramSettingsRequest) (*dto.ProgramSettingsResponse, error) {
	s.logger.Info("ADMIN", "Updated program settings", map[string]interface{}{
		"commissionRate":  req.CommissionRate,
		"minimumWithdraw": req.MinimumWithdraw,
	})
	return s.settings.Update(ctx, &req)
}
