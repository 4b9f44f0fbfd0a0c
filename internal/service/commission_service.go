// FILE: internal/service/commission_service.go
package service

import (
	"context"
	"errors"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	adminEvents "affiliate-hub-be/pkg/admin/events"
	pkgLedger "affiliate-hub-be/pkg/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ICommissionService interface {
	RecordCommission(ctx context.Context, req *dto.RecordCommissionRequest) (*dto.CommissionResponse, error)
}

type commissionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	publisher  adminEvents.Publisher
	settings   ISettingsService
}

func NewCommissionService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	publisher adminEvents.Publisher,
	settings ISettingsService,
) ICommissionService {
	return &commissionService{
		uowFactory: uowFactory,
		logger:     logger,
		publisher:  publisher,
		settings:   settings,
	}
}

// RecordCommission appends one pending ledger entry for a completed order.
// The order id is unique in the ledger, so replays of the same order are
// detected by the database and answered with the existing entry; callers can
// retry the call freely.
func (s *commissionService) RecordCommission(ctx context.Context, req *dto.RecordCommissionRequest) (*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affiliate, err := uow.AffiliateRepository().FindOne(ctx, specification.ByReferralCode{Code: req.ReferralCode})
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, apperror.New(apperror.KindNotFound, "unknown referral code")
	}
	if affiliate.Status != entity.AffiliateStatusActive {
		return nil, apperror.Newf(apperror.KindForbidden, "affiliate is %s, commissions only accrue for active affiliates", affiliate.Status)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	// The rate is snapshotted onto the entry; later settings changes never
	// touch amounts already in the ledger.
	rate := settings.CommissionRate
	amount := entity.RoundMoney(req.OrderAmount * rate / 100)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.AffiliateRepository().FindOne(ctx,
		specification.ByID{ID: affiliate.Id}, specification.LockForUpdate{}); err != nil {
		return nil, err
	}

	entry := &entity.CommissionEntry{
		Id:             uuid.New(),
		AffiliateId:    affiliate.Id,
		OrderId:        req.OrderId,
		ReferredUserId: req.ReferredUserId,
		OrderAmount:    req.OrderAmount,
		CommissionRate: rate,
		Amount:         amount,
		Status:         entity.CommissionStatusPending,
	}

	if err := uow.CommissionRepository().Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			uow.Rollback()
			return s.existingEntry(ctx, req.OrderId)
		}
		return nil, err
	}

	if err := pkgLedger.Recompute(ctx, uow, affiliate.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("LEDGER", "Commission recorded", map[string]interface{}{
		"entryId":     entry.Id.String(),
		"affiliateId": affiliate.Id.String(),
		"orderId":     req.OrderId,
		"amount":      amount,
	})
	s.publisher.PublishCommissionRecorded(ctx, entry.Id, affiliate.Id, req.OrderId, amount)

	return toCommissionResponse(entry), nil
}

// existingEntry resolves a replayed order to its original ledger entry.
func (s *commissionService) existingEntry(ctx context.Context, orderId string) (*dto.CommissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry, err := uow.CommissionRepository().FindOne(ctx, specification.Filter("order_id", orderId))
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.New(apperror.KindDuplicateOrder, "order already recorded but entry not found")
	}

	s.logger.Warn("LEDGER", "Duplicate order ignored", map[string]interface{}{
		"orderId": orderId,
		"entryId": entry.Id.String(),
	})
	return toCommissionResponse(entry), nil
}
