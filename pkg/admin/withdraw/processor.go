package withdraw

import (
	"context"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/pkg/mailer"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	adminEvents "affiliate-hub-be/pkg/admin/events"
	pkgLedger "affiliate-hub-be/pkg/ledger"

	"github.com/google/uuid"
)

// Processor handles the withdraw request workflow. Approval and rejection are
// plain guarded transitions; marking paid is the heavy one, it settles the
// ledger FIFO inside the same transaction.
type Processor struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
	mailer    mailer.IEmailService
}

// NewProcessor creates a new withdraw processor
func NewProcessor(logger logger.ILogger, publisher adminEvents.Publisher, mail mailer.IEmailService) *Processor {
	return &Processor{
		logger:    logger,
		publisher: publisher,
		mailer:    mail,
	}
}

// GetAll retrieves paginated withdraw requests with optional status filter.
func (p *Processor) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, page dto.PageRequest) ([]*entity.WithdrawRequest, int64, error) {
	page.Normalize()

	var filter []specification.Specification
	if page.Status != "" {
		filter = append(filter, specification.ByStatus{Status: page.Status})
	}

	specs := append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)

	requests, err := uow.WithdrawRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.WithdrawRepository().Count(ctx, filter...)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (p *Processor) find(ctx context.Context, uow unitofwork.UnitOfWork, withdrawId uuid.UUID, expect entity.WithdrawStatus) (*entity.WithdrawRequest, error) {
	request, err := uow.WithdrawRepository().FindOne(ctx, specification.ByID{ID: withdrawId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.New(apperror.KindNotFound, "withdraw request not found")
	}
	if request.Status != expect {
		return nil, apperror.Newf(apperror.KindInvalidTransition, "withdraw request is %s, expected %s", request.Status, expect)
	}
	return request, nil
}

// Approve acknowledges a pending request. The amount was already reserved
// against the available balance when the request was created, so this is a
// bookkeeping step before the actual transfer.
func (p *Processor) Approve(ctx context.Context, uow unitofwork.UnitOfWork, withdrawId uuid.UUID) (*entity.WithdrawRequest, error) {
	request, err := p.find(ctx, uow, withdrawId, entity.WithdrawStatusPending)
	if err != nil {
		return nil, err
	}

	rows, err := uow.WithdrawRepository().UpdateStatusIf(ctx, withdrawId,
		entity.WithdrawStatusPending, entity.WithdrawStatusApproved, nil)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.New(apperror.KindConcurrentModification, "withdraw request processed concurrently, retry")
	}

	request.Status = entity.WithdrawStatusApproved

	p.logger.Info("ADMIN", "Approved withdraw request", map[string]interface{}{
		"withdrawId":  withdrawId.String(),
		"affiliateId": request.AffiliateId.String(),
		"amount":      request.Amount,
	})
	p.publisher.PublishWithdrawApproved(ctx, request.Id, request.AffiliateId, request.Amount)

	return request, nil
}

// Reject closes a pending request. Nothing to release: the available balance
// is always derived fresh from the ledger and open requests, so the rejected
// amount reappears on the next read.
func (p *Processor) Reject(ctx context.Context, uow unitofwork.UnitOfWork, withdrawId uuid.UUID, req dto.RejectWithdrawRequest) (*entity.WithdrawRequest, error) {
	request, err := p.find(ctx, uow, withdrawId, entity.WithdrawStatusPending)
	if err != nil {
		return nil, err
	}

	rows, err := uow.WithdrawRepository().UpdateStatusIf(ctx, withdrawId,
		entity.WithdrawStatusPending, entity.WithdrawStatusRejected, &req.Reason)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.New(apperror.KindConcurrentModification, "withdraw request processed concurrently, retry")
	}

	request.Status = entity.WithdrawStatusRejected
	request.RejectReason = &req.Reason

	p.logger.Info("ADMIN", "Rejected withdraw request", map[string]interface{}{
		"withdrawId":  withdrawId.String(),
		"affiliateId": request.AffiliateId.String(),
		"reason":      req.Reason,
	})
	p.publisher.PublishWithdrawRejected(ctx, request.Id, request.AffiliateId, req.Reason)

	return request, nil
}

// MarkPaid records that the transfer went out and settles the ledger:
// approved entries are consumed oldest-first until the withdrawn amount is
// covered, then the affiliate's aggregates are recomputed. Everything happens
// under the affiliate row lock in one transaction.
func (p *Processor) MarkPaid(ctx context.Context, uow unitofwork.UnitOfWork, withdrawId uuid.UUID) (*entity.WithdrawRequest, error) {
	request, err := p.find(ctx, uow, withdrawId, entity.WithdrawStatusApproved)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.AffiliateRepository().FindOne(ctx,
		specification.ByID{ID: request.AffiliateId}, specification.LockForUpdate{}); err != nil {
		return nil, err
	}

	rows, err := uow.WithdrawRepository().UpdateStatusIf(ctx, withdrawId,
		entity.WithdrawStatusApproved, entity.WithdrawStatusPaid, nil)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.New(apperror.KindConcurrentModification, "withdraw request processed concurrently, retry")
	}

	if err := pkgLedger.ExecuteSettlement(ctx, uow, request.AffiliateId, withdrawId, request.Amount); err != nil {
		return nil, err
	}
	if err := pkgLedger.Recompute(ctx, uow, request.AffiliateId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	request.Status = entity.WithdrawStatusPaid

	p.logger.Info("ADMIN", "Paid withdraw request", map[string]interface{}{
		"withdrawId":  withdrawId.String(),
		"affiliateId": request.AffiliateId.String(),
		"amount":      request.Amount,
	})

	if aff, err := uow.AffiliateRepository().FindOne(ctx, specification.ByID{ID: request.AffiliateId}); err == nil && aff != nil {
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: aff.UserId}); err == nil && user != nil {
			go p.mailer.SendWithdrawPaid(user.Email, request.Amount)
		}
	}
	p.publisher.PublishWithdrawPaid(ctx, request.Id, request.AffiliateId, request.Amount)

	return request, nil
}
