package models

import (
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type OrderModel struct {
	ID              string             `gorm:"primaryKey;type:uuid"`
	MerchantID      string             `gorm:"index:idx_merchant_status;uniqueIndex:idx_platform_order"`
	Platform        string             `gorm:"uniqueIndex:idx_platform_order"`
	MerchantOrderID string             `gorm:"uniqueIndex:idx_platform_order"`
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Amount          float64
	IPAddress       string
	Status          domain.OrderStatus `gorm:"index:idx_merchant_status;index:idx_status"`
	FailureReason   string

	TypingSpeedMs     int64
	FormFillTimeMs    int64
	FieldInteractions int64
	CopyPasteCount    int64
	AutoFillDetected  bool

	Assessment *RiskAssessmentModel `gorm:"foreignKey:OrderID;references:ID"`

	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
}
