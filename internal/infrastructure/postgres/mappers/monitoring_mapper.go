package mappers

import (
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
)

func ToDomainMonitoringConfig(model *models.MonitoringConfigModel) *domain.MerchantMonitoringConfig {
	return &domain.MerchantMonitoringConfig{
		MerchantID:            model.MerchantID,
		PreferredCheckMinutes: model.PreferredCheckMinutes,
		TimezoneOffsetMinutes: model.TimezoneOffsetMinutes,
		LastRunLocalDayKey:    model.LastRunLocalDayKey,
	}
}

func ToGORMMonitoringConfig(config *domain.MerchantMonitoringConfig) *models.MonitoringConfigModel {
	return &models.MonitoringConfigModel{
		MerchantID:            config.MerchantID,
		PreferredCheckMinutes: config.PreferredCheckMinutes,
		TimezoneOffsetMinutes: config.TimezoneOffsetMinutes,
		LastRunLocalDayKey:    config.LastRunLocalDayKey,
	}
}

func ToDomainMerchantSettings(model *models.MerchantSettingsModel) *domain.MerchantSettings {
	return &domain.MerchantSettings{
		MerchantID:           model.MerchantID,
		AutoApproveThreshold: model.AutoApproveThreshold,
		AutoApproveEnabled:   model.AutoApproveEnabled,
		AutoBlockThreshold:   model.AutoBlockThreshold,
		AutoBlockEnabled:     model.AutoBlockEnabled,
	}
}

func ToGORMMerchantSettings(settings *domain.MerchantSettings) *models.MerchantSettingsModel {
	return &models.MerchantSettingsModel{
		MerchantID:           settings.MerchantID,
		AutoApproveThreshold: settings.AutoApproveThreshold,
		AutoApproveEnabled:   settings.AutoApproveEnabled,
		AutoBlockThreshold:   settings.AutoBlockThreshold,
		AutoBlockEnabled:     settings.AutoBlockEnabled,
	}
}
