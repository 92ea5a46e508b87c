package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/mappers"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.IncomingOrder) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		// unique index on (merchant_id, platform, merchant_order_id)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.IncomingOrder, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Assessment").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByPlatformOrderID(merchantID, platform, merchantOrderID string) (*domain.IncomingOrder, error) {
	var order models.OrderModel
	err := r.DB.Preload("Assessment").
		First(&order, "merchant_id = ? AND platform = ? AND merchant_order_id = ?",
			merchantID, platform, merchantOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// ClaimPendingOrders picks up to limit PENDING orders and flips each one to
// PROCESSING with a status-guarded update. The guard makes the claim
// exclusive: a row already flipped by a concurrent worker reports zero
// affected rows and is dropped from the claimed set.
func (r *DefaultOrderRepository) ClaimPendingOrders(limit int) ([]*domain.IncomingOrder, error) {
	var claimed []*domain.IncomingOrder

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var candidates []models.OrderModel
		if err := tx.
			Where("status = ?", domain.StatusPending).
			Order("created_at ASC").
			Limit(limit).
			Find(&candidates).Error; err != nil {
			return fmt.Errorf("failed to find pending orders: %w", err)
		}

		now := time.Now()
		for i := range candidates {
			result := tx.Model(&models.OrderModel{}).
				Where("id = ? AND status = ?", candidates[i].ID, domain.StatusPending).
				Updates(map[string]interface{}{
					"status":     domain.StatusProcessing,
					"updated_at": now,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to claim order %s: %w", candidates[i].ID, result.Error)
			}
			if result.RowsAffected == 0 {
				continue
			}
			candidates[i].Status = domain.StatusProcessing
			claimed = append(claimed, mappers.ToDomainOrder(&candidates[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

func (r *DefaultOrderRepository) MarkScanned(orderID string, assessment *domain.RiskAssessment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", orderID, domain.StatusProcessing).
			Updates(map[string]interface{}{
				"status":         domain.StatusScanned,
				"failure_reason": "",
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("order %s is not PROCESSING: %w", orderID, domain.ErrOrderNotFound)
		}

		return tx.Create(mappers.ToGORMAssessment(assessment)).Error
	})
}

func (r *DefaultOrderRepository) MarkFailed(orderID string, reason string) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         domain.StatusFailed,
			"failure_reason": reason,
			"updated_at":     time.Now(),
		}).Error
}

// ReopenFailed moves a FAILED order back to PENDING so the next batch picks
// it up. Guarded on status, so re-enqueueing twice is harmless.
func (r *DefaultOrderRepository) ReopenFailed(orderID string) error {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusFailed).
		Updates(map[string]interface{}{
			"status":         domain.StatusPending,
			"failure_reason": "",
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFailedOrder
	}
	return nil
}

func (r *DefaultOrderRepository) CountRecentByCustomer(merchantID, customerEmail, customerPhone string, windowHours int) (int64, error) {
	var count int64
	since := time.Now().Add(-time.Duration(windowHours) * time.Hour)

	query := r.DB.Model(&models.OrderModel{}).
		Where("merchant_id = ?", merchantID).
		Where("created_at >= ?", since)

	switch {
	case customerEmail != "" && customerPhone != "":
		query = query.Where("customer_email = ? OR customer_phone = ?", customerEmail, customerPhone)
	case customerEmail != "":
		query = query.Where("customer_email = ?", customerEmail)
	case customerPhone != "":
		query = query.Where("customer_phone = ?", customerPhone)
	default:
		return 0, nil
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recent orders: %w", err)
	}
	return count, nil
}

func (r *DefaultOrderRepository) GetOrders(merchantID string, filters domain.OrderFilters, page, limit int) ([]*domain.IncomingOrder, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	query := r.DB.Model(&models.OrderModel{}).
		Preload("Assessment").
		Where("merchant_id = ?", merchantID)

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.MerchantOrderID != "" {
		query = query.Where("merchant_order_id = ?", filters.MerchantOrderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.IncomingOrder, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}
