package events

import (
	"context"
	"time"

	"affiliate-hub-be/internal/pkg/logger"
	pkgEvents "affiliate-hub-be/pkg/events"
	pktNats "affiliate-hub-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for the affiliate lifecycle. All
// methods are fire-and-forget: a broker outage never fails the operation
// that emitted the event.
type Publisher interface {
	PublishAffiliateRegistered(ctx context.Context, affiliateId, userId uuid.UUID, referralCode string)
	PublishAffiliateApproved(ctx context.Context, affiliateId, userId uuid.UUID, referralCode string)
	PublishAffiliateRejected(ctx context.Context, affiliateId, userId uuid.UUID, reason string)
	PublishAffiliateSuspended(ctx context.Context, affiliateId, userId uuid.UUID)
	PublishAffiliateReactivated(ctx context.Context, affiliateId, userId uuid.UUID)
	PublishCouponSubmitted(ctx context.Context, couponId, affiliateId uuid.UUID, code string)
	PublishCouponApproved(ctx context.Context, couponId uuid.UUID, affiliateId *uuid.UUID, code string)
	PublishCouponRejected(ctx context.Context, couponId uuid.UUID, affiliateId *uuid.UUID, code string)
	PublishCommissionRecorded(ctx context.Context, entryId, affiliateId uuid.UUID, orderId string, amount float64)
	PublishWithdrawRequested(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64)
	PublishWithdrawApproved(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64)
	PublishWithdrawRejected(ctx context.Context, withdrawId, affiliateId uuid.UUID, reason string)
	PublishWithdrawPaid(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishAffiliateRegistered(ctx context.Context, affiliateId, userId uuid.UUID, referralCode string) {
	p.emit(ctx, "AFFILIATE_REGISTERED", map[string]interface{}{
		"affiliate_id":  affiliateId,
		"user_id":       userId,
		"referral_code": referralCode,
		"entity_type":   "affiliate",
		"entity_id":     affiliateId.String(),
	})
}

func (p *NatsPublisher) PublishAffiliateApproved(ctx context.Context, affiliateId, userId uuid.UUID, referralCode string) {
	p.emit(ctx, "AFFILIATE_APPROVED", map[string]interface{}{
		"affiliate_id":  affiliateId,
		"user_id":       userId,
		"referral_code": referralCode,
		"entity_type":   "affiliate",
		"entity_id":     affiliateId.String(),
	})
}

func (p *NatsPublisher) PublishAffiliateRejected(ctx context.Context, affiliateId, userId uuid.UUID, reason string) {
	p.emit(ctx, "AFFILIATE_REJECTED", map[string]interface{}{
		"affiliate_id": affiliateId,
		"user_id":      userId,
		"reason":       reason,
		"entity_type":  "affiliate",
		"entity_id":    affiliateId.String(),
	})
}

func (p *NatsPublisher) PublishAffiliateSuspended(ctx context.Context, affiliateId, userId uuid.UUID) {
	p.emit(ctx, "AFFILIATE_SUSPENDED", map[string]interface{}{
		"affiliate_id": affiliateId,
		"user_id":      userId,
		"entity_type":  "affiliate",
		"entity_id":    affiliateId.String(),
	})
}

func (p *NatsPublisher) PublishAffiliateReactivated(ctx context.Context, affiliateId, userId uuid.UUID) {
	p.emit(ctx, "AFFILIATE_REACTIVATED", map[string]interface{}{
		"affiliate_id": affiliateId,
		"user_id":      userId,
		"entity_type":  "affiliate",
		"entity_id":    affiliateId.String(),
	})
}

func (p *NatsPublisher) PublishCouponSubmitted(ctx context.Context, couponId, affiliateId uuid.UUID, code string) {
	p.emit(ctx, "COUPON_SUBMITTED", map[string]interface{}{
		"coupon_id":    couponId,
		"affiliate_id": affiliateId,
		"code":         code,
		"entity_type":  "coupon",
		"entity_id":    couponId.String(),
	})
}

func (p *NatsPublisher) PublishCouponApproved(ctx context.Context, couponId uuid.UUID, affiliateId *uuid.UUID, code string) {
	p.emit(ctx, "COUPON_APPROVED", map[string]interface{}{
		"coupon_id":    couponId,
		"affiliate_id": affiliateId,
		"code":         code,
		"entity_type":  "coupon",
		"entity_id":    couponId.String(),
	})
}

func (p *NatsPublisher) PublishCouponRejected(ctx context.Context, couponId uuid.UUID, affiliateId *uuid.UUID, code string) {
	p.emit(ctx, "COUPON_REJECTED", map[string]interface{}{
		"coupon_id":    couponId,
		"affiliate_id": affiliateId,
		"code":         code,
		"entity_type":  "coupon",
		"entity_id":    couponId.String(),
	})
}

func (p *NatsPublisher) PublishCommissionRecorded(ctx context.Context, entryId, affiliateId uuid.UUID, orderId string, amount float64) {
	p.emit(ctx, "COMMISSION_RECORDED", map[string]interface{}{
		"entry_id":     entryId,
		"affiliate_id": affiliateId,
		"order_id":     orderId,
		"amount":       amount,
		"entity_type":  "commission",
		"entity_id":    entryId.String(),
	})
}

func (p *NatsPublisher) PublishWithdrawRequested(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64) {
	p.emit(ctx, "WITHDRAW_REQUESTED", map[string]interface{}{
		"withdraw_id":  withdrawId,
		"affiliate_id": affiliateId,
		"amount":       amount,
		"entity_type":  "withdraw",
		"entity_id":    withdrawId.String(),
	})
}

func (p *NatsPublisher) PublishWithdrawApproved(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64) {
	p.emit(ctx, "WITHDRAW_APPROVED", map[string]interface{}{
		"withdraw_id":  withdrawId,
		"affiliate_id": affiliateId,
		"amount":       amount,
		"entity_type":  "withdraw",
		"entity_id":    withdrawId.String(),
	})
}

func (p *NatsPublisher) PublishWithdrawRejected(ctx context.Context, withdrawId, affiliateId uuid.UUID, reason string) {
	p.emit(ctx, "WITHDRAW_REJECTED", map[string]interface{}{
		"withdraw_id":  withdrawId,
		"affiliate_id": affiliateId,
		"reason":       reason,
		"entity_type":  "withdraw",
		"entity_id":    withdrawId.String(),
	})
}

func (p *NatsPublisher) PublishWithdrawPaid(ctx context.Context, withdrawId, affiliateId uuid.UUID, amount float64) {
	p.emit(ctx, "WITHDRAW_PAID", map[string]interface{}{
		"withdraw_id":  withdrawId,
		"affiliate_id": affiliateId,
		"amount":       amount,
		"entity_type":  "withdraw",
		"entity_id":    withdrawId.String(),
	})
}
