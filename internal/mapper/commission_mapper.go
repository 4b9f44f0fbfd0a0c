package mapper

import (
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/model"
)

type CommissionMapper struct{}

func NewCommissionMapper() *CommissionMapper {
	return &CommissionMapper{}
}

func (m *CommissionMapper) ToEntity(e *model.CommissionEntry) *entity.CommissionEntry {
	if e == nil {
		return nil
	}
	return &entity.CommissionEntry{
		Id:              e.Id,
		AffiliateId:     e.AffiliateId,
		OrderId:         e.OrderId,
		ReferredUserId:  e.ReferredUserId,
		OrderAmount:     e.OrderAmount,
		CommissionRate:  e.CommissionRate,
		Amount:          e.Amount,
		Status:          entity.CommissionStatus(e.Status),
		CorrectsEntryId: e.CorrectsEntryId,
		WithdrawId:      e.WithdrawId,
		PaidAt:          e.PaidAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *CommissionMapper) ToModel(e *entity.CommissionEntry) *model.CommissionEntry {
	if e == nil {
		return nil
	}
	return &model.CommissionEntry{
		Id:              e.Id,
		AffiliateId:     e.AffiliateId,
		OrderId:         e.OrderId,
		ReferredUserId:  e.ReferredUserId,
		OrderAmount:     e.OrderAmount,
		CommissionRate:  e.CommissionRate,
		Amount:          e.Amount,
		Status:          string(e.Status),
		CorrectsEntryId: e.CorrectsEntryId,
		WithdrawId:      e.WithdrawId,
		PaidAt:          e.PaidAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
