package domain

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionHold    Decision = "HOLD"
	DecisionBlock   Decision = "BLOCK"
)

type RiskAssessment struct {
	ID          string
	OrderID     string
	MerchantID  string
	Layer1Score float64
	Layer2Score *float64
	FusedScore  float64
	RiskLevel   RiskLevel
	Decision    Decision
	AssessedAt  time.Time
}

// RiskLevelFromScore maps a fused score onto the fixed level bands:
// LOW <40, MEDIUM [40,70), HIGH [70,90), CRITICAL >=90.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score >= 90:
		return RiskCritical
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}
