// FILE: internal/entity/affiliate_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type AffiliateStatus string

const (
	AffiliateStatusPending   AffiliateStatus = "pending"
	AffiliateStatusActive    AffiliateStatus = "active"
	AffiliateStatusSuspended AffiliateStatus = "suspended"
	AffiliateStatusRejected  AffiliateStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodBank          PaymentMethod = "bank"
	PaymentMethodMobileBanking PaymentMethod = "mobile_banking"
)

// PaymentDetails is the payment destination variant. Bank fields apply when
// Method is "bank", Provider applies when Method is "mobile_banking".
type PaymentDetails struct {
	Method        PaymentMethod `json:"method"`
	AccountName   string        `json:"account_name"`
	AccountNumber string        `json:"account_number"`
	BankName      string        `json:"bank_name,omitempty"`
	BranchName    string        `json:"branch_name,omitempty"`
	RoutingNumber string        `json:"routing_number,omitempty"`
	Provider      string        `json:"provider,omitempty"`
}

type Affiliate struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Status       AffiliateStatus
	ReferralCode string
	Payment      PaymentDetails
	RejectReason *string

	// Denormalized display aggregates. Recomputed transactionally whenever a
	// ledger entry changes status, never incremented on their own.
	TotalReferrals    int
	TotalCommission   float64
	PendingCommission float64
	PaidCommission    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo enforces the account state machine:
//
//	pending   -> active | rejected
//	active    -> suspended
//	suspended -> active
//
// rejected is a dead end; cancel (delete) is only allowed from pending and is
// handled separately because it is not a status change.
func (s AffiliateStatus) CanTransitionTo(next AffiliateStatus) bool {
	switch s {
	case AffiliateStatusPending:
		return next == AffiliateStatusActive || next == AffiliateStatusRejected
	case AffiliateStatusActive:
		return next == AffiliateStatusSuspended
	case AffiliateStatusSuspended:
		return next == AffiliateStatusActive
	default:
		return false
	}
}
