package response

import (
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type AssessmentResponse struct {
	ID          string   `json:"id"`
	Layer1Score float64  `json:"layer1_score"`
	Layer2Score *float64 `json:"layer2_score,omitempty"`
	FusedScore  float64  `json:"fused_score"`
	RiskLevel   string   `json:"risk_level"`
	Decision    string   `json:"decision"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	MerchantID    string              `json:"merchant_id"`
	Platform      string              `json:"platform"`
	OrderID       string              `json:"order_id"`
	Amount        float64             `json:"amount"`
	Status        string              `json:"status"`
	FailureReason string              `json:"failure_reason,omitempty"`
	Assessment    *AssessmentResponse `json:"assessment,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type EnqueueOrderResponse struct {
	Order     OrderResponse `json:"order"`
	Duplicate bool          `json:"duplicate"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

func FromDomainOrder(order *domain.IncomingOrder) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		MerchantID:    order.MerchantID,
		Platform:      order.Platform,
		OrderID:       order.MerchantOrderID,
		Amount:        order.Amount,
		Status:        string(order.Status),
		FailureReason: order.FailureReason,
		CreatedAt:     order.CreatedAt,
	}
	if order.Assessment != nil {
		resp.Assessment = &AssessmentResponse{
			ID:          order.Assessment.ID,
			Layer1Score: order.Assessment.Layer1Score,
			Layer2Score: order.Assessment.Layer2Score,
			FusedScore:  order.Assessment.FusedScore,
			RiskLevel:   string(order.Assessment.RiskLevel),
			Decision:    string(order.Assessment.Decision),
		}
	}
	return resp
}
