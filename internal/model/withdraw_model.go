package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WithdrawRequest struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AffiliateId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Amount       float64        `gorm:"type:decimal(12,2);not null"`
	Payment      datatypes.JSON `gorm:"type:jsonb;not null"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectReason *string        `gorm:"type:text"`
	ProcessedAt  *time.Time
	PaidAt       *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (WithdrawRequest) TableName() string {
	return "withdraw_requests"
}
