package model

import "time"

// ProgramSetting is a single-row table holding the affiliate program knobs.
// Commission rate is read from here at order time, never cached on entries.
type ProgramSetting struct {
	Id              int     `gorm:"primaryKey"`
	CommissionRate  float64 `gorm:"type:decimal(6,4);not null"`
	MinimumWithdraw float64 `gorm:"type:decimal(12,2);not null"`
	UpdatedAt       time.Time
}

func (ProgramSetting) TableName() string {
	return "affiliate_program_settings"
}
