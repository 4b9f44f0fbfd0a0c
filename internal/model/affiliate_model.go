package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Affiliate struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// A partial unique index over open statuses (created by cmd/migrate,
	// gorm index tags cannot express the WHERE clause) limits each user to
	// one live registration; rejected rows stay behind as history.
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReferralCode string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	Payment      datatypes.JSON `gorm:"type:jsonb;not null"`
	RejectReason *string        `gorm:"type:text"`

	TotalReferrals    int     `gorm:"default:0"`
	TotalCommission   float64 `gorm:"type:decimal(12,2);default:0"`
	PendingCommission float64 `gorm:"type:decimal(12,2);default:0"`
	PaidCommission    float64 `gorm:"type:decimal(12,2);default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Affiliate) TableName() string {
	return "affiliates"
}
