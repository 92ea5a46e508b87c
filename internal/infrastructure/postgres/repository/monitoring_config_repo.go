package repository

import (
	"errors"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/mappers"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMonitoringConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultMonitoringConfigRepository(db *gorm.DB) *DefaultMonitoringConfigRepository {
	return &DefaultMonitoringConfigRepository{DB: db}
}

func (r *DefaultMonitoringConfigRepository) GetByMerchantID(merchantID string) (*domain.MerchantMonitoringConfig, error) {
	var model models.MonitoringConfigModel
	if err := r.DB.First(&model, "merchant_id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMonitoringConfig(&model), nil
}

func (r *DefaultMonitoringConfigRepository) ListAll() ([]*domain.MerchantMonitoringConfig, error) {
	var configModels []models.MonitoringConfigModel
	if err := r.DB.Find(&configModels).Error; err != nil {
		return nil, err
	}

	configs := make([]*domain.MerchantMonitoringConfig, len(configModels))
	for i, configModel := range configModels {
		configs[i] = mappers.ToDomainMonitoringConfig(&configModel)
	}
	return configs, nil
}

func (r *DefaultMonitoringConfigRepository) Upsert(config *domain.MerchantMonitoringConfig) error {
	model := mappers.ToGORMMonitoringConfig(config)
	model.UpdatedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"preferred_check_minutes", "timezone_offset_minutes", "updated_at",
		}),
	}).Create(model).Error
}

// SetLastRunDayKey is a compare-and-set on the day-key marker: it only
// writes when the stored key differs, so duplicate ticks inside the same
// bucket collapse to a single run.
func (r *DefaultMonitoringConfigRepository) SetLastRunDayKey(merchantID, dayKey string) (bool, error) {
	result := r.DB.Model(&models.MonitoringConfigModel{}).
		Where("merchant_id = ? AND last_run_local_day_key <> ?", merchantID, dayKey).
		Updates(map[string]interface{}{
			"last_run_local_day_key": dayKey,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
