package request

type BehavioralSignalsPayload struct {
	TypingSpeedMs     int64 `json:"typingSpeedMs"`
	FormFillTimeMs    int64 `json:"formFillTimeMs"`
	FieldInteractions int64 `json:"fieldInteractions"`
	CopyPasteCount    int64 `json:"copyPasteCount"`
	AutoFillDetected  bool  `json:"autoFillDetected"`
}

type EnqueueOrderRequest struct {
	MerchantID      string                    `json:"merchant_id" binding:"required"`
	Platform        string                    `json:"platform" binding:"required"`
	OrderID         string                    `json:"order_id" binding:"required"`
	CustomerEmail   string                    `json:"customer_email"`
	CustomerPhone   string                    `json:"customer_phone"`
	ShippingAddress string                    `json:"shipping_address"`
	Amount          float64                   `json:"amount" binding:"required"`
	IPAddress       string                    `json:"ip_address"`
	Signals         *BehavioralSignalsPayload `json:"behavioral_signals"`
}
