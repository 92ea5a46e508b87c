package postgres

import (
	"log"

	"github.com/veyra-labs/veyra-risk-service/internal/config"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RiskConfig) *gorm.DB {
	dsn := cfg.RiskDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.OrderModel{},
		&models.RiskAssessmentModel{},
		&models.PostAuthOrderModel{},
		&models.MonitoringConfigModel{},
		&models.MerchantSettingsModel{},
		&models.ValidationCacheModel{},
	)

	return db
}
