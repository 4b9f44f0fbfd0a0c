package service

import (
	"testing"
	"time"

	"affiliate-hub-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRulesCoverPublishedEvents(t *testing.T) {
	// Every event type the publisher emits must have a routing rule, or the
	// worker silently drops it.
	published := []string{
		"AFFILIATE_REGISTERED", "AFFILIATE_APPROVED", "AFFILIATE_REJECTED",
		"AFFILIATE_SUSPENDED", "AFFILIATE_REACTIVATED",
		"COUPON_SUBMITTED", "COUPON_APPROVED", "COUPON_REJECTED",
		"COMMISSION_RECORDED",
		"WITHDRAW_REQUESTED", "WITHDRAW_APPROVED", "WITHDRAW_REJECTED", "WITHDRAW_PAID",
	}
	for _, eventType := range published {
		rule, ok := notificationRules[eventType]
		assert.True(t, ok, "missing rule for %s", eventType)
		assert.NotEmpty(t, rule.Title)
		assert.Contains(t, []string{"admin", "self"}, rule.Audience)
	}
}

func TestBuildNotification(t *testing.T) {
	s := &NotificationService{}
	userID := uuid.New()
	entityID := uuid.New()

	evt := events.BaseEvent{
		Type: "COUPON_APPROVED",
		Data: map[string]interface{}{
			"code":        "SUMMER20",
			"entity_type": "coupon",
			"entity_id":   entityID.String(),
		},
		OccurredAt: time.Now(),
	}

	n := s.buildNotification(userID, evt.Type, notificationRules[evt.Type], evt)

	assert.Equal(t, userID, n.UserId)
	assert.Equal(t, "COUPON_APPROVED", n.TypeCode)
	assert.Equal(t, "Your coupon SUMMER20 was approved and is now live.", n.Message)
	assert.Equal(t, "coupon", n.EntityType)
	if assert.NotNil(t, n.EntityId) {
		assert.Equal(t, entityID, *n.EntityId)
	}
	assert.False(t, n.IsRead)
	assert.NotEmpty(t, n.Metadata)
}

func TestBuildNotificationLeavesUnknownPlaceholders(t *testing.T) {
	s := &NotificationService{}

	evt := events.BaseEvent{
		Type:       "WITHDRAW_REJECTED",
		Data:       map[string]interface{}{},
		OccurredAt: time.Now(),
	}

	n := s.buildNotification(uuid.New(), evt.Type, notificationRules[evt.Type], evt)

	// No reason in the payload; the placeholder stays rather than panicking.
	assert.Contains(t, n.Message, "{reason}")
}
