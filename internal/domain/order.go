package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusScanned    OrderStatus = "SCANNED"
	StatusFailed     OrderStatus = "FAILED"
)

type IncomingOrder struct {
	ID              string
	MerchantID      string
	Platform        string
	MerchantOrderID string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Amount          float64
	IPAddress       string
	Status          OrderStatus
	FailureReason   string
	Assessment      *RiskAssessment
	Signals         BehavioralSignals
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BehavioralSignals are captured client-side by the session tracker and
// submitted alongside the order at scan time.
type BehavioralSignals struct {
	TypingSpeedMs     int64
	FormFillTimeMs    int64
	FieldInteractions int64
	CopyPasteCount    int64
	AutoFillDetected  bool
}
