package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
	"affiliate-hub-be/pkg/events"
	pktNats "affiliate-hub-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// notificationRule routes one event type to an inbox. Audience "admin" fans
// out to every admin account, "self" resolves the affected user from the
// payload. Message placeholders pull values from the event payload.
type notificationRule struct {
	Title    string
	Audience string
	Message  string
}

var notificationRules = map[string]notificationRule{
	"AFFILIATE_REGISTERED":  {Title: "New affiliate application", Audience: "admin", Message: "A new affiliate application is waiting for review."},
	"AFFILIATE_APPROVED":    {Title: "Affiliate account approved", Audience: "self", Message: "Your affiliate account is active. Your referral code is {referral_code}."},
	"AFFILIATE_REJECTED":    {Title: "Affiliate application rejected", Audience: "self", Message: "Your affiliate application was not approved: {reason}"},
	"AFFILIATE_SUSPENDED":   {Title: "Affiliate account suspended", Audience: "self", Message: "Your affiliate account has been suspended. Your coupons are paused."},
	"AFFILIATE_REACTIVATED": {Title: "Affiliate account reactivated", Audience: "self", Message: "Your affiliate account is active again."},
	"COUPON_SUBMITTED":      {Title: "Coupon pending review", Audience: "admin", Message: "Coupon {code} is waiting for review."},
	"COUPON_APPROVED":       {Title: "Coupon approved", Audience: "self", Message: "Your coupon {code} was approved and is now live."},
	"COUPON_REJECTED":       {Title: "Coupon rejected", Audience: "self", Message: "Your coupon {code} was not approved."},
	"COMMISSION_RECORDED":   {Title: "Commission earned", Audience: "self", Message: "You earned {amount} commission on order {order_id}."},
	"WITHDRAW_REQUESTED":    {Title: "New withdraw request", Audience: "admin", Message: "A withdraw request of {amount} is waiting for review."},
	"WITHDRAW_APPROVED":     {Title: "Withdrawal approved", Audience: "self", Message: "Your withdrawal of {amount} was approved and will be transferred shortly."},
	"WITHDRAW_REJECTED":     {Title: "Withdrawal rejected", Audience: "self", Message: "Your withdrawal was rejected: {reason}"},
	"WITHDRAW_PAID":         {Title: "Withdrawal paid", Audience: "self", Message: "Your withdrawal of {amount} has been transferred."},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NOTIFICATION", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NOTIFICATION", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	rule, ok := notificationRules[typeCode]
	if !ok {
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, rule, event)
	if err != nil {
		s.logger.Error("NOTIFICATION", "Error resolving recipients for "+typeCode, map[string]interface{}{"error": err})
		return err // the bus redelivers
	}
	if len(recipients) == 0 {
		s.logger.Warn("NOTIFICATION", "No recipients for "+typeCode, nil)
		return nil
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, typeCode, rule, event)

		if err := s.repo.Create(ctx, &notif); err != nil {
			s.logger.Error("NOTIFICATION", "Error saving notification", map[string]interface{}{
				"userId": userID.String(),
				"error":  err.Error(),
			})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, rule notificationRule, event events.Event) ([]uuid.UUID, error) {
	payload := event.Payload()

	switch rule.Audience {
	case "self":
		if uidStr, ok := payload["user_id"].(string); ok {
			if uid, err := uuid.Parse(uidStr); err == nil {
				return []uuid.UUID{uid}, nil
			}
		}
		// Ledger and withdraw events carry the affiliate, not the user.
		if aidStr, ok := payload["affiliate_id"].(string); ok {
			aid, err := uuid.Parse(aidStr)
			if err != nil {
				return nil, nil
			}
			uow := s.uowFactory.NewUnitOfWork(ctx)
			affiliate, err := uow.AffiliateRepository().FindOne(ctx, specification.ByID{ID: aid})
			if err != nil {
				return nil, err
			}
			if affiliate != nil {
				return []uuid.UUID{affiliate.UserId}, nil
			}
		}
		return nil, nil

	case "admin":
		uow := s.uowFactory.NewUnitOfWork(ctx)
		admins, err := uow.UserRepository().FindAll(ctx, specification.Filter("role", string(entity.UserRoleAdmin)))
		if err != nil {
			return nil, err
		}
		ids := make([]uuid.UUID, len(admins))
		for i, u := range admins {
			ids[i] = u.Id
		}
		return ids, nil
	}

	return nil, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, rule notificationRule, event events.Event) model.Notification {
	payload := event.Payload()

	msg := rule.Message
	for k, v := range payload {
		msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprintf("%v", v))
	}

	entityType, _ := payload["entity_type"].(string)
	var entityID *uuid.UUID
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		Id:         uuid.New(),
		UserId:     userID,
		TypeCode:   typeCode,
		Title:      rule.Title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityId:   entityID,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
}

// GetNotifications fetches the newest notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	if limit < 1 {
		limit = 20
	}
	return s.repo.FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks the given notifications as read. An empty list marks
// everything.
func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, ids)
}
