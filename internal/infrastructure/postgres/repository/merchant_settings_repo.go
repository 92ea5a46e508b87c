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

type DefaultMerchantSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantSettingsRepository(db *gorm.DB) *DefaultMerchantSettingsRepository {
	return &DefaultMerchantSettingsRepository{DB: db}
}

// GetByMerchantID falls back to platform defaults for merchants that never
// changed their thresholds.
func (r *DefaultMerchantSettingsRepository) GetByMerchantID(merchantID string) (*domain.MerchantSettings, error) {
	var model models.MerchantSettingsModel
	if err := r.DB.First(&model, "merchant_id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultMerchantSettings(merchantID), nil
		}
		return nil, err
	}
	return mappers.ToDomainMerchantSettings(&model), nil
}

func (r *DefaultMerchantSettingsRepository) Upsert(settings *domain.MerchantSettings) error {
	model := mappers.ToGORMMerchantSettings(settings)
	model.UpdatedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "merchant_id"}},
		UpdateAll: true,
	}).Create(model).Error
}
