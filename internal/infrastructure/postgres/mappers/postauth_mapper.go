package mappers

import (
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
)

func ToDomainPostAuthOrder(model *models.PostAuthOrderModel) *domain.PostAuthOrder {
	return &domain.PostAuthOrder{
		OrderID:       model.OrderID,
		MerchantID:    model.MerchantID,
		Amount:        model.Amount,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		LastCheckedAt: model.LastCheckedAt,
		ClearedAt:     model.ClearedAt,
	}
}

func ToGORMPostAuthOrder(order *domain.PostAuthOrder) *models.PostAuthOrderModel {
	return &models.PostAuthOrderModel{
		OrderID:       order.OrderID,
		MerchantID:    order.MerchantID,
		Amount:        order.Amount,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		LastCheckedAt: order.LastCheckedAt,
		ClearedAt:     order.ClearedAt,
	}
}
