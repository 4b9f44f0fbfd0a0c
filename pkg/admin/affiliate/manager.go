package affiliate

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

	"github.com/google/uuid"
)

// Manager drives the affiliate account state machine from the admin side.
// Every transition is a compare-and-set on the stored status, so two admins
// racing on the same application cannot both win.
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
	mailer    mailer.IEmailService
}

// NewManager creates a new affiliate manager
func NewManager(logger logger.ILogger, publisher adminEvents.Publisher, mail mailer.IEmailService) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
		mailer:    mail,
	}
}

// transition performs the guarded status move and normalizes the failure into
// the error taxonomy.
func (m *Manager) transition(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, from, to entity.AffiliateStatus, rejectReason *string) (*entity.Affiliate, error) {
	aff, err := uow.AffiliateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if aff == nil {
		return nil, apperror.New(apperror.KindNotFound, "affiliate not found")
	}
	if aff.Status != from {
		return nil, apperror.Newf(apperror.KindInvalidTransition, "affiliate is %s, expected %s", aff.Status, from)
	}

	rows, err := uow.AffiliateRepository().UpdateStatusIf(ctx, id, from, to, rejectReason)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Somebody moved the row between our read and the update.
		return nil, apperror.New(apperror.KindConcurrentModification, "affiliate status changed concurrently, retry")
	}

	aff.Status = to
	aff.RejectReason = rejectReason
	return aff, nil
}

// Approve activates a pending application and mails the referral code.
func (m *Manager) Approve(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID) (*entity.Affiliate, error) {
	aff, err := m.transition(ctx, uow, affiliateId, entity.AffiliateStatusPending, entity.AffiliateStatusActive, nil)
	if err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Approved affiliate", map[string]interface{}{
		"affiliateId":  affiliateId.String(),
		"referralCode": aff.ReferralCode,
	})

	if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: aff.UserId}); err == nil && user != nil {
		go m.mailer.SendAffiliateApproved(user.Email, aff.ReferralCode)
	}
	m.publisher.PublishAffiliateApproved(ctx, aff.Id, aff.UserId, aff.ReferralCode)

	return aff, nil
}

// Reject closes a pending application. Rejected is terminal; the user may
// register again, which creates a fresh application.
func (m *Manager) Reject(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID, req dto.RejectAffiliateRequest) (*entity.Affiliate, error) {
	aff, err := m.transition(ctx, uow, affiliateId, entity.AffiliateStatusPending, entity.AffiliateStatusRejected, &req.Reason)
	if err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Rejected affiliate", map[string]interface{}{
		"affiliateId": affiliateId.String(),
		"reason":      req.Reason,
	})

	if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: aff.UserId}); err == nil && user != nil {
		go m.mailer.SendAffiliateRejected(user.Email, req.Reason)
	}
	m.publisher.PublishAffiliateRejected(ctx, aff.Id, aff.UserId, req.Reason)

	return aff, nil
}

// Suspend freezes an active affiliate. Their coupons stop being redeemable
// immediately because redemption re-checks the owner's status; the ledger and
// pending withdrawals are left untouched.
func (m *Manager) Suspend(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID) (*entity.Affiliate, error) {
	aff, err := m.transition(ctx, uow, affiliateId, entity.AffiliateStatusActive, entity.AffiliateStatusSuspended, nil)
	if err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Suspended affiliate", map[string]interface{}{
		"affiliateId": affiliateId.String(),
	})
	m.publisher.PublishAffiliateSuspended(ctx, aff.Id, aff.UserId)

	return aff, nil
}

// Reactivate lifts a suspension.
func (m *Manager) Reactivate(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID) (*entity.Affiliate, error) {
	aff, err := m.transition(ctx, uow, affiliateId, entity.AffiliateStatusSuspended, entity.AffiliateStatusActive, nil)
	if err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Reactivated affiliate", map[string]interface{}{
		"affiliateId": affiliateId.String(),
	})
	m.publisher.PublishAffiliateReactivated(ctx, aff.Id, aff.UserId)

	return aff, nil
}

// FindAll retrieves affiliates with pagination and optional status filter.
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, page dto.PageRequest) ([]*entity.Affiliate, int64, error) {
	page.Normalize()

	var specs []specification.Specification
	var countSpecs []specification.Specification
	if page.Status != "" {
		specs = append(specs, specification.ByStatus{Status: page.Status})
		countSpecs = append(countSpecs, specification.ByStatus{Status: page.Status})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)

	affiliates, err := uow.AffiliateRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.AffiliateRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, 0, err
	}
	return affiliates, total, nil
}

// FindOne retrieves a single affiliate by ID.
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID) (*entity.Affiliate, error) {
	return uow.AffiliateRepository().FindOne(ctx, specification.ByID{ID: affiliateId})
}
