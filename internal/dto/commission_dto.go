package dto

import (
	"time"

	"github.com/google/uuid"
)

// OrderCompletedMessage is the payload on the order-completed topic.
type OrderCompletedMessage struct {
	OrderId        string    `json:"order_id"`
	ReferralCode   string    `json:"referral_code"`
	ReferredUserId uuid.UUID `json:"referred_user_id"`
	OrderAmount    float64   `json:"order_amount"`
}

// RecordCommissionRequest is the direct endpoint the order service calls when
// it is not wired through the queue.
type RecordCommissionRequest struct {
	OrderId        string    `json:"order_id" validate:"required"`
	ReferralCode   string    `json:"referral_code" validate:"required"`
	ReferredUserId uuid.UUID `json:"referred_user_id" validate:"required"`
	OrderAmount    float64   `json:"order_amount" validate:"required,gt=0"`
}

type CommissionResponse struct {
	Id             uuid.UUID  `json:"id"`
	AffiliateId    uuid.UUID  `json:"affiliate_id"`
	OrderId        string     `json:"order_id"`
	ReferredUserId uuid.UUID  `json:"referred_user_id"`
	OrderAmount    float64    `json:"order_amount"`
	CommissionRate float64    `json:"commission_rate"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
