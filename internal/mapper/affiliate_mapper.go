package mapper

import (
	"encoding/json"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/model"

	"gorm.io/datatypes"
)

type AffiliateMapper struct{}

func NewAffiliateMapper() *AffiliateMapper {
	return &AffiliateMapper{}
}

func (m *AffiliateMapper) ToEntity(a *model.Affiliate) *entity.Affiliate {
	if a == nil {
		return nil
	}
	var payment entity.PaymentDetails
	// Payment is written by ToModel, so it always holds valid JSON.
	_ = json.Unmarshal(a.Payment, &payment)
	return &entity.Affiliate{
		Id:                a.Id,
		UserId:            a.UserId,
		Status:            entity.AffiliateStatus(a.Status),
		ReferralCode:      a.ReferralCode,
		Payment:           payment,
		RejectReason:      a.RejectReason,
		TotalReferrals:    a.TotalReferrals,
		TotalCommission:   a.TotalCommission,
		PendingCommission: a.PendingCommission,
		PaidCommission:    a.PaidCommission,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (m *AffiliateMapper) ToModel(a *entity.Affiliate) *model.Affiliate {
	if a == nil {
		return nil
	}
	payment, _ := json.Marshal(a.Payment)
	return &model.Affiliate{
		Id:                a.Id,
		UserId:            a.UserId,
		Status:            string(a.Status),
		ReferralCode:      a.ReferralCode,
		Payment:           datatypes.JSON(payment),
		RejectReason:      a.RejectReason,
		TotalReferrals:    a.TotalReferrals,
		TotalCommission:   a.TotalCommission,
		PendingCommission: a.PendingCommission,
		PaidCommission:    a.PaidCommission,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
