package domain

import "time"

type MonitoringStatus string

const (
	StatusUnderMonitoring MonitoringStatus = "UNDER_MONITORING"
	StatusCleared         MonitoringStatus = "CLEARED"
)

// MonitoringWindowDays models the card-network dispute window. It is a
// platform constant, not per-merchant, so audit queries stay comparable
// across merchants.
const MonitoringWindowDays = 120

type PostAuthOrder struct {
	OrderID       string
	MerchantID    string
	Amount        float64
	Status        MonitoringStatus
	CreatedAt     time.Time
	LastCheckedAt time.Time
	ClearedAt     *time.Time
}

func (o *PostAuthOrder) DaysInMonitoring(now time.Time) int {
	return int(now.Sub(o.CreatedAt).Hours() / 24)
}
