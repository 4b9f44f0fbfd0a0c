// FILE: internal/entity/withdraw_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawStatus string

const (
	WithdrawStatusPending  WithdrawStatus = "pending"
	WithdrawStatusApproved WithdrawStatus = "approved"
	WithdrawStatusPaid     WithdrawStatus = "paid"
	WithdrawStatusRejected WithdrawStatus = "rejected"
)

type WithdrawRequest struct {
	Id          uuid.UUID
	AffiliateId uuid.UUID
	Amount      float64
	// Payment is snapshotted at request time; later changes to the
	// affiliate's payment method do not touch in-flight requests.
	Payment      PaymentDetails
	Status       WithdrawStatus
	RejectReason *string
	ProcessedAt  *time.Time
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s WithdrawStatus) CanTransitionTo(next WithdrawStatus) bool {
	switch s {
	case WithdrawStatusPending:
		return next == WithdrawStatusApproved || next == WithdrawStatusRejected
	case WithdrawStatusApproved:
		return next == WithdrawStatusPaid
	default:
		// paid and rejected are terminal
		return false
	}
}
