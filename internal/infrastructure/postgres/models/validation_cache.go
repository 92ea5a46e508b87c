package models

import (
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type ValidationCacheModel struct {
	SubjectKey string             `gorm:"primaryKey"`
	Kind       domain.SubjectKind
	Score      float64
	FlagsJSON  string             `gorm:"type:jsonb"`
	FetchedAt  time.Time
}
