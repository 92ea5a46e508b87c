package models

import (
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type PostAuthOrderModel struct {
	OrderID       string                  `gorm:"primaryKey;type:uuid"`
	MerchantID    string                  `gorm:"index:idx_postauth_merchant_status"`
	Amount        float64
	Status        domain.MonitoringStatus `gorm:"index:idx_postauth_merchant_status"`
	CreatedAt     time.Time
	LastCheckedAt time.Time
	ClearedAt     *time.Time
}
