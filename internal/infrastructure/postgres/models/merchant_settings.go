package models

import "time"

type MerchantSettingsModel struct {
	MerchantID           string `gorm:"primaryKey"`
	AutoApproveThreshold float64
	AutoApproveEnabled   bool
	AutoBlockThreshold   float64
	AutoBlockEnabled     bool
	UpdatedAt            time.Time
}
