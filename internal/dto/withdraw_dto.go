package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWithdrawRequest struct {
	Amount  float64                `json:"amount" validate:"required,gt=0"`
	Payment *PaymentDetailsRequest `json:"payment"` // defaults to the affiliate's current method
}

type RejectWithdrawRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type WithdrawResponse struct {
	Id           uuid.UUID             `json:"id"`
	AffiliateId  uuid.UUID             `json:"affiliate_id"`
	Amount       float64               `json:"amount"`
	Payment      PaymentDetailsRequest `json:"payment"`
	Status       string                `json:"status"`
	RejectReason *string               `json:"reject_reason,omitempty"`
	ProcessedAt  *time.Time            `json:"processed_at,omitempty"`
	PaidAt       *time.Time            `json:"paid_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}
