package publisher

// HighRiskEvent is emitted when an assessment lands HIGH or CRITICAL so the
// notification collaborator can alert the merchant. Delivery/formatting is
// out of scope here.
type HighRiskEvent struct {
	AssessmentID  string  `json:"assessment_id"`
	OrderID       string  `json:"order_id"`
	MerchantID    string  `json:"merchant_id"`
	OrderAmount   float64 `json:"order_amount"`
	FusedScore    float64 `json:"fused_score"`
	RiskLevel     string  `json:"risk_level"`
	CustomerEmail string  `json:"customer_email"`
}

// ScanCompletedEvent is published for every order that completes the
// pipeline, success or not.
type ScanCompletedEvent struct {
	OrderID    string  `json:"order_id"`
	MerchantID string  `json:"merchant_id"`
	Status     string  `json:"status"`
	FusedScore float64 `json:"fused_score,omitempty"`
	Decision   string  `json:"decision,omitempty"`
	Error      string  `json:"error,omitempty"`
}
