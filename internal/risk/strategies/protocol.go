package strategies

import (
	"context"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

// HeuristicStrategy is one Layer-1 check. Strategies are local and free:
// they never call external services.
type HeuristicStrategy interface {
	Name() string
	Evaluate(ctx context.Context, order *domain.IncomingOrder) (*Signal, error)
	GetDescription() string
}

// Signal is the scored outcome of one heuristic. Score is in [0,100];
// Weight determines the signal's share of the Layer-1 score.
type Signal struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Weight  float64  `json:"weight"`
	Reasons []string `json:"reasons,omitempty"`
}
