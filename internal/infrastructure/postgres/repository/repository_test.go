package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "risk.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.OrderModel{},
		&models.RiskAssessmentModel{},
		&models.PostAuthOrderModel{},
		&models.MonitoringConfigModel{},
		&models.MerchantSettingsModel{},
		&models.ValidationCacheModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertOrder(t *testing.T, repo *DefaultOrderRepository, id, merchantID, merchantOrderID string) *domain.IncomingOrder {
	t.Helper()
	now := time.Now().UTC()
	order := &domain.IncomingOrder{
		ID:              id,
		MerchantID:      merchantID,
		Platform:        "shopify",
		MerchantOrderID: merchantOrderID,
		CustomerEmail:   "buyer@example.com",
		Amount:          49.90,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := repo.CreateOrder(order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
