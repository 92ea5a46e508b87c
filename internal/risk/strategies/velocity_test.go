package strategies

import (
	"context"
	"testing"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

type countingOrderRepo struct {
	domain.OrderRepository
	count int64
}

func (r *countingOrderRepo) CountRecentByCustomer(merchantID, customerEmail, customerPhone string, windowHours int) (int64, error) {
	return r.count, nil
}

func TestVelocityStrategyTiers(t *testing.T) {
	cases := []struct {
		count int64
		want  float64
	}{
		{1, 5},
		{2, 5},
		{3, 45},
		{5, 70},
		{9, 70},
		{10, 95},
	}

	for _, tc := range cases {
		strategy := NewVelocityStrategy(&countingOrderRepo{count: tc.count})
		signal, err := strategy.Evaluate(context.Background(), &domain.IncomingOrder{
			MerchantID:    "merchant-1",
			CustomerEmail: "buyer@example.com",
		})
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if signal.Score != tc.want {
			t.Fatalf("count %d: expected score %v, got %v", tc.count, tc.want, signal.Score)
		}
	}
}

func TestVelocityStrategyNoIdentity(t *testing.T) {
	strategy := NewVelocityStrategy(&countingOrderRepo{count: 50})
	signal, err := strategy.Evaluate(context.Background(), &domain.IncomingOrder{MerchantID: "merchant-1"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if signal.Score != 30 {
		t.Fatalf("expected score 30 without identity, got %v", signal.Score)
	}
}
