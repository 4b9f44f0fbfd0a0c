package mapper

import (
	"encoding/json"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/model"

	"gorm.io/datatypes"
)

type WithdrawMapper struct{}

func NewWithdrawMapper() *WithdrawMapper {
	return &WithdrawMapper{}
}

func (m *WithdrawMapper) ToEntity(w *model.WithdrawRequest) *entity.WithdrawRequest {
	if w == nil {
		return nil
	}
	var payment entity.PaymentDetails
	_ = json.Unmarshal(w.Payment, &payment)
	return &entity.WithdrawRequest{
		Id:           w.Id,
		AffiliateId:  w.AffiliateId,
		Amount:       w.Amount,
		Payment:      payment,
		Status:       entity.WithdrawStatus(w.Status),
		RejectReason: w.RejectReason,
		ProcessedAt:  w.ProcessedAt,
		PaidAt:       w.PaidAt,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func (m *WithdrawMapper) ToModel(w *entity.WithdrawRequest) *model.WithdrawRequest {
	if w == nil {
		return nil
	}
	payment, _ := json.Marshal(w.Payment)
	return &model.WithdrawRequest{
		Id:           w.Id,
		AffiliateId:  w.AffiliateId,
		Amount:       w.Amount,
		Payment:      datatypes.JSON(payment),
		Status:       string(w.Status),
		RejectReason: w.RejectReason,
		ProcessedAt:  w.ProcessedAt,
		PaidAt:       w.PaidAt,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
