package mappers

import (
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.IncomingOrder {
	order := &domain.IncomingOrder{
		ID:              model.ID,
		MerchantID:      model.MerchantID,
		Platform:        model.Platform,
		MerchantOrderID: model.MerchantOrderID,
		CustomerEmail:   model.CustomerEmail,
		CustomerPhone:   model.CustomerPhone,
		ShippingAddress: model.ShippingAddress,
		Amount:          model.Amount,
		IPAddress:       model.IPAddress,
		Status:          model.Status,
		FailureReason:   model.FailureReason,
		Signals: domain.BehavioralSignals{
			TypingSpeedMs:     model.TypingSpeedMs,
			FormFillTimeMs:    model.FormFillTimeMs,
			FieldInteractions: model.FieldInteractions,
			CopyPasteCount:    model.CopyPasteCount,
			AutoFillDetected:  model.AutoFillDetected,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Assessment != nil {
		order.Assessment = ToDomainAssessment(model.Assessment)
	}
	return order
}

func ToGORMOrder(order *domain.IncomingOrder) *models.OrderModel {
	return &models.OrderModel{
		ID:                order.ID,
		MerchantID:        order.MerchantID,
		Platform:          order.Platform,
		MerchantOrderID:   order.MerchantOrderID,
		CustomerEmail:     order.CustomerEmail,
		CustomerPhone:     order.CustomerPhone,
		ShippingAddress:   order.ShippingAddress,
		Amount:            order.Amount,
		IPAddress:         order.IPAddress,
		Status:            order.Status,
		FailureReason:     order.FailureReason,
		TypingSpeedMs:     order.Signals.TypingSpeedMs,
		FormFillTimeMs:    order.Signals.FormFillTimeMs,
		FieldInteractions: order.Signals.FieldInteractions,
		CopyPasteCount:    order.Signals.CopyPasteCount,
		AutoFillDetected:  order.Signals.AutoFillDetected,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
