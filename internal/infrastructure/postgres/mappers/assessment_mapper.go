package mappers

import (
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
)

func ToDomainAssessment(model *models.RiskAssessmentModel) *domain.RiskAssessment {
	return &domain.RiskAssessment{
		ID:          model.ID,
		OrderID:     model.OrderID,
		MerchantID:  model.MerchantID,
		Layer1Score: model.Layer1Score,
		Layer2Score: model.Layer2Score,
		FusedScore:  model.FusedScore,
		RiskLevel:   model.RiskLevel,
		Decision:    model.Decision,
		AssessedAt:  model.AssessedAt,
	}
}

func ToGORMAssessment(assessment *domain.RiskAssessment) *models.RiskAssessmentModel {
	return &models.RiskAssessmentModel{
		ID:          assessment.ID,
		OrderID:     assessment.OrderID,
		MerchantID:  assessment.MerchantID,
		Layer1Score: assessment.Layer1Score,
		Layer2Score: assessment.Layer2Score,
		FusedScore:  assessment.FusedScore,
		RiskLevel:   assessment.RiskLevel,
		Decision:    assessment.Decision,
		AssessedAt:  assessment.AssessedAt,
	}
}
