package repository

import (
	"errors"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/mappers"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPostAuthRepository struct {
	DB *gorm.DB
}

func NewDefaultPostAuthRepository(db *gorm.DB) *DefaultPostAuthRepository {
	return &DefaultPostAuthRepository{DB: db}
}

func (r *DefaultPostAuthRepository) Create(order *domain.PostAuthOrder) error {
	return r.DB.Create(mappers.ToGORMPostAuthOrder(order)).Error
}

func (r *DefaultPostAuthRepository) GetByOrderID(orderID string) (*domain.PostAuthOrder, error) {
	var model models.PostAuthOrderModel
	if err := r.DB.First(&model, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPostAuthOrder(&model), nil
}

func (r *DefaultPostAuthRepository) FindUnderMonitoring(merchantID string) ([]*domain.PostAuthOrder, error) {
	var orderModels []models.PostAuthOrderModel
	err := r.DB.
		Where("merchant_id = ? AND status = ?", merchantID, domain.StatusUnderMonitoring).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.PostAuthOrder, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainPostAuthOrder(&orderModel)
	}
	return orders, nil
}

func (r *DefaultPostAuthRepository) MarkChecked(orderID string, checkedAt time.Time) error {
	return r.DB.Model(&models.PostAuthOrderModel{}).
		Where("order_id = ?", orderID).
		Update("last_checked_at", checkedAt).Error
}

// MarkCleared is guarded on UNDER_MONITORING so the transition happens
// exactly once; re-running a sweep over a cleared order is a no-op.
func (r *DefaultPostAuthRepository) MarkCleared(orderID string, clearedAt time.Time) error {
	return r.DB.Model(&models.PostAuthOrderModel{}).
		Where("order_id = ? AND status = ?", orderID, domain.StatusUnderMonitoring).
		Updates(map[string]interface{}{
			"status":          domain.StatusCleared,
			"cleared_at":      clearedAt,
			"last_checked_at": clearedAt,
		}).Error
}
