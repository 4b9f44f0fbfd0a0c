// FILE: internal/service/withdraw_service.go
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

type IWithdrawService interface {
	CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateWithdrawRequest) (*dto.WithdrawResponse, error)
}

type withdrawService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	publisher  adminEvents.Publisher
	settings   ISettingsService
}

func NewWithdrawService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	publisher adminEvents.Publisher,
	settings ISettingsService,
) IWithdrawService {
	return &withdrawService{
		uowFactory: uowFactory,
		logger:     logger,
		publisher:  publisher,
		settings:   settings,
	}
}

// CreateRequest opens a withdraw request against the available balance. The
// whole check-then-insert runs under the affiliate row lock: two concurrent
// requests for the same affiliate serialize, and the second one sees the
// first as an open request reducing what is left.
func (s *withdrawService) CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateWithdrawRequest) (*dto.WithdrawResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount < settings.MinimumWithdraw {
		return nil, apperror.Newf(apperror.KindBelowMinimum, "withdraw amount %.2f is below the minimum of %.2f", req.Amount, settings.MinimumWithdraw)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	affiliate, err := uow.AffiliateRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByStatuses{Statuses: openStatuses},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, apperror.New(apperror.KindNotFound, "no affiliate registration found")
	}
	if affiliate.Status != entity.AffiliateStatusActive {
		return nil, apperror.Newf(apperror.KindForbidden, "account is %s, only active affiliates can withdraw", affiliate.Status)
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
	if req.Amount > balances.ApprovedAvailable {
		return nil, apperror.Newf(apperror.KindInsufficientBalance, "requested %.2f but only %.2f is available", req.Amount, balances.ApprovedAvailable)
	}

	// Snapshot the payout destination now; later profile edits must not
	// redirect an in-flight transfer.
	payment := affiliate.Payment
	if req.Payment != nil {
		payment = paymentFromRequest(*req.Payment)
	}

	now := time.Now()
	request := &entity.WithdrawRequest{
		Id:          uuid.New(),
		AffiliateId: affiliate.Id,
		Amount:      entity.RoundMoney(req.Amount),
		Payment:     payment,
		Status:      entity.WithdrawStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.WithdrawRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("WITHDRAW", "Withdraw request created", map[string]interface{}{
		"withdrawId":  request.Id.String(),
		"affiliateId": affiliate.Id.String(),
		"amount":      request.Amount,
	})
	s.publisher.PublishWithdrawRequested(ctx, request.Id, affiliate.Id, request.Amount)

	return toWithdrawResponse(request), nil
}
