package models

import (
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type RiskAssessmentModel struct {
	ID          string `gorm:"primaryKey"`
	OrderID     string `gorm:"type:uuid;not null;index"`
	MerchantID  string `gorm:"index"`
	Layer1Score float64
	Layer2Score *float64
	FusedScore  float64
	RiskLevel   domain.RiskLevel
	Decision    domain.Decision
	AssessedAt  time.Time
}
