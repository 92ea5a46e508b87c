package domain

// MerchantSettings carries the per-merchant decision thresholds loaded by
// the processor before each assessment.
type MerchantSettings struct {
	MerchantID           string
	AutoApproveThreshold float64
	AutoApproveEnabled   bool
	AutoBlockThreshold   float64
	AutoBlockEnabled     bool
}

func DefaultMerchantSettings(merchantID string) *MerchantSettings {
	return &MerchantSettings{
		MerchantID:           merchantID,
		AutoApproveThreshold: 30,
		AutoApproveEnabled:   true,
		AutoBlockThreshold:   90,
		AutoBlockEnabled:     true,
	}
}
