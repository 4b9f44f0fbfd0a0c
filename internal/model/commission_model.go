package model

import (
	"time"

	"github.com/google/uuid"
)

// CommissionEntry rows are append-only. The unique index on order_id is the
// idempotency guard for order-completion retries.
type CommissionEntry struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AffiliateId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderId         string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	ReferredUserId  uuid.UUID  `gorm:"type:uuid;not null"`
	OrderAmount     float64    `gorm:"type:decimal(12,2);not null"`
	CommissionRate  float64    `gorm:"type:decimal(6,4);not null"`
	Amount          float64    `gorm:"type:decimal(12,2);not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CorrectsEntryId *uuid.UUID `gorm:"type:uuid"`
	WithdrawId      *uuid.UUID `gorm:"type:uuid;index"`
	PaidAt          *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (CommissionEntry) TableName() string {
	return "commission_entries"
}
