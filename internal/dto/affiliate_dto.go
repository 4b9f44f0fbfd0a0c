package dto

import (
	"time"

	"github.com/google/uuid"
)

type PaymentDetailsRequest struct {
	Method        string `json:"method" validate:"required,oneof=bank mobile_banking"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name" validate:"required_if=Method bank"`
	BranchName    string `json:"branch_name" validate:"required_if=Method bank"`
	RoutingNumber string `json:"routing_number"`
	Provider      string `json:"provider" validate:"required_if=Method mobile_banking"`
}

type RegisterAffiliateRequest struct {
	Payment PaymentDetailsRequest `json:"payment" validate:"required"`
}

type RejectAffiliateRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type UpdatePaymentMethodRequest struct {
	Payment PaymentDetailsRequest `json:"payment" validate:"required"`
}

type AffiliateResponse struct {
	Id           uuid.UUID             `json:"id"`
	UserId       uuid.UUID             `json:"user_id"`
	Status       string                `json:"status"`
	ReferralCode string                `json:"referral_code"`
	Payment      PaymentDetailsRequest `json:"payment"`
	RejectReason *string               `json:"reject_reason,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// AffiliateViewResponse is the single source-of-truth self view. Frontends
// re-fetch it after every mutating call instead of mirroring flags.
type AffiliateViewResponse struct {
	IsAffiliate  bool             `json:"is_affiliate"`
	Affiliate    *AffiliateResponse `json:"affiliate,omitempty"`
	Balances     *BalancesResponse  `json:"balances,omitempty"`
}

type BalancesResponse struct {
	TotalCommission   float64 `json:"total_commission"`
	PendingCommission float64 `json:"pending_commission"`
	ApprovedAvailable float64 `json:"approved_available"`
	PaidCommission    float64 `json:"paid_commission"`
	TotalReferrals    int     `json:"total_referrals"`
}

type AffiliateListResponse struct {
	Id             uuid.UUID `json:"id"`
	UserId         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	UserFullName   string    `json:"user_full_name"`
	Status         string    `json:"status"`
	ReferralCode   string    `json:"referral_code"`
	TotalReferrals int       `json:"total_referrals"`
	TotalCommission float64  `json:"total_commission"`
	CreatedAt      time.Time `json:"created_at"`
}
