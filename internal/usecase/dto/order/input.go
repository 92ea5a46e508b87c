package orderdto

import "github.com/veyra-labs/veyra-risk-service/internal/domain"

type EnqueueOrderInput struct {
	MerchantID      string
	Platform        string
	MerchantOrderID string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Amount          float64
	IPAddress       string
	Signals         domain.BehavioralSignals
}
