package models

import "time"

type MonitoringConfigModel struct {
	MerchantID            string `gorm:"primaryKey"`
	PreferredCheckMinutes int
	TimezoneOffsetMinutes int
	LastRunLocalDayKey    string
	UpdatedAt             time.Time
}
