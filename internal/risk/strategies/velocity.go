package strategies

import (
	"context"
	"fmt"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

const velocityWindowHours = 24

// VelocityStrategy scores order frequency per customer identity inside a
// rolling window. Fraud rings hit the same merchant with many small orders
// in quick succession.
type VelocityStrategy struct {
	orderRepo domain.OrderRepository
}

func NewVelocityStrategy(orderRepo domain.OrderRepository) *VelocityStrategy {
	return &VelocityStrategy{orderRepo: orderRepo}
}

func (s *VelocityStrategy) Name() string {
	return "velocity"
}

func (s *VelocityStrategy) GetDescription() string {
	return "Orders per customer identity within a 24h window"
}

func (s *VelocityStrategy) Evaluate(ctx context.Context, order *domain.IncomingOrder) (*Signal, error) {
	signal := &Signal{Name: s.Name(), Weight: 0.35}

	if order.CustomerEmail == "" && order.CustomerPhone == "" {
		// no identity to correlate on; mildly suspicious in itself
		signal.Score = 30
		signal.Reasons = append(signal.Reasons, "no customer identity provided")
		return signal, nil
	}

	count, err := s.orderRepo.CountRecentByCustomer(
		order.MerchantID, order.CustomerEmail, order.CustomerPhone, velocityWindowHours)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent orders: %w", err)
	}

	// count includes the order under assessment
	switch {
	case count >= 10:
		signal.Score = 95
	case count >= 5:
		signal.Score = 70
	case count >= 3:
		signal.Score = 45
	default:
		signal.Score = 5
	}

	if count >= 3 {
		signal.Reasons = append(signal.Reasons,
			fmt.Sprintf("%d orders from same identity in %dh", count, velocityWindowHours))
	}

	return signal, nil
}
