package strategies

import (
	"context"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

// BehaviorStrategy scores the client-side session signals captured at
// checkout. Bots fill forms orders of magnitude faster than humans and
// paste instead of typing.
type BehaviorStrategy struct{}

func NewBehaviorStrategy() *BehaviorStrategy {
	return &BehaviorStrategy{}
}

func (s *BehaviorStrategy) Name() string {
	return "checkout_behavior"
}

func (s *BehaviorStrategy) GetDescription() string {
	return "Time-to-checkout and interaction signals from the session tracker"
}

func (s *BehaviorStrategy) Evaluate(ctx context.Context, order *domain.IncomingOrder) (*Signal, error) {
	signal := &Signal{Name: s.Name(), Weight: 0.3}
	signals := order.Signals

	if signals == (domain.BehavioralSignals{}) {
		// tracker blocked or not installed; neutral, not incriminating
		signal.Score = 20
		signal.Reasons = append(signal.Reasons, "no behavioral signals captured")
		return signal, nil
	}

	var score float64

	if signals.FormFillTimeMs > 0 && signals.FormFillTimeMs < 3000 {
		score += 40
		signal.Reasons = append(signal.Reasons, "checkout form filled in under 3s")
	}
	if signals.FieldInteractions > 0 && signals.FieldInteractions < 5 {
		score += 20
		signal.Reasons = append(signal.Reasons, "almost no field interactions")
	}
	if signals.CopyPasteCount >= 4 {
		score += 25
		signal.Reasons = append(signal.Reasons, "heavy copy-paste into form fields")
	}
	if signals.TypingSpeedMs > 0 && signals.TypingSpeedMs < 15 {
		score += 25
		signal.Reasons = append(signal.Reasons, "inhuman typing cadence")
	}
	if signals.AutoFillDetected {
		// legitimate users autofill too; small nudge only
		score += 5
	}

	if score > 100 {
		score = 100
	}
	signal.Score = score
	return signal, nil
}
