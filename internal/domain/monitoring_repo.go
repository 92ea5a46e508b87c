package domain

type MonitoringConfigRepository interface {
	GetByMerchantID(merchantID string) (*MerchantMonitoringConfig, error)
	ListAll() ([]*MerchantMonitoringConfig, error)
	Upsert(config *MerchantMonitoringConfig) error

	// SetLastRunDayKey persists the idempotency marker. It must be written
	// after the sweep commits so a crash causes a re-run, never a skipped
	// day. Returns false when the stored marker already equals dayKey.
	SetLastRunDayKey(merchantID, dayKey string) (bool, error)
}

type MerchantSettingsRepository interface {
	GetByMerchantID(merchantID string) (*MerchantSettings, error)
	Upsert(settings *MerchantSettings) error
}
