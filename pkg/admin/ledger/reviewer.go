package ledger

import (
	"context"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	adminEvents "affiliate-hub-be/pkg/admin/events"
	pkgLedger "affiliate-hub-be/pkg/ledger"

	"github.com/google/uuid"
)

// Reviewer moves pending commission entries to approved or cancelled. Both
// moves recompute the affiliate's aggregates in the same transaction.
type Reviewer struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewReviewer creates a new ledger reviewer
func NewReviewer(logger logger.ILogger, publisher adminEvents.Publisher) *Reviewer {
	return &Reviewer{
		logger:    logger,
		publisher: publisher,
	}
}

// GetAll retrieves paginated ledger entries, optionally filtered by status
// and affiliate.
func (r *Reviewer) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, page dto.PageRequest, affiliateId *uuid.UUID) ([]*entity.CommissionEntry, int64, error) {
	page.Normalize()

	var filter []specification.Specification
	if page.Status != "" {
		filter = append(filter, specification.ByStatus{Status: page.Status})
	}
	if affiliateId != nil {
		filter = append(filter, specification.ByAffiliateID{AffiliateID: *affiliateId})
	}

	specs := append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)

	entries, err := uow.CommissionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.CommissionRepository().Count(ctx, filter...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *Reviewer) settle(ctx context.Context, uow unitofwork.UnitOfWork, entryId uuid.UUID, to entity.CommissionStatus) (*entity.CommissionEntry, error) {
	entry, err := uow.CommissionRepository().FindOne(ctx, specification.ByID{ID: entryId})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.New(apperror.KindNotFound, "ledger entry not found")
	}
	if !entry.Status.CanTransitionTo(to) {
		return nil, apperror.Newf(apperror.KindInvalidTransition, "entry is %s, cannot move to %s", entry.Status, to)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Lock the affiliate row so the aggregate recompute serializes against
	// concurrent ledger writes for the same affiliate.
	if _, err := uow.AffiliateRepository().FindOne(ctx,
		specification.ByID{ID: entry.AffiliateId}, specification.LockForUpdate{}); err != nil {
		return nil, err
	}

	rows, err := uow.CommissionRepository().UpdateStatusIf(ctx, entryId, entry.Status, to, nil)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.New(apperror.KindConcurrentModification, "ledger entry reviewed concurrently, retry")
	}

	if err := pkgLedger.Recompute(ctx, uow, entry.AffiliateId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	entry.Status = to
	return entry, nil
}

// Approve releases a pending entry into the withdrawable balance.
func (r *Reviewer) Approve(ctx context.Context, uow unitofwork.UnitOfWork, entryId uuid.UUID) (*entity.CommissionEntry, error) {
	entry, err := r.settle(ctx, uow, entryId, entity.CommissionStatusApproved)
	if err != nil {
		return nil, err
	}

	r.logger.Info("ADMIN", "Approved commission entry", map[string]interface{}{
		"entryId":     entryId.String(),
		"affiliateId": entry.AffiliateId.String(),
		"amount":      entry.Amount,
	})

	return entry, nil
}

// Cancel voids a pending entry, typically after an order refund or fraud
// review. The entry stays in the ledger for audit.
func (r *Reviewer) Cancel(ctx context.Context, uow unitofwork.UnitOfWork, entryId uuid.UUID) (*entity.CommissionEntry, error) {
	entry, err := r.settle(ctx, uow, entryId, entity.CommissionStatusCancelled)
	if err != nil {
		return nil, err
	}

	r.logger.Info("ADMIN", "Cancelled commission entry", map[string]interface{}{
		"entryId":     entryId.String(),
		"affiliateId": entry.AffiliateId.String(),
		"amount":      entry.Amount,
	})

	return entry, nil
}
