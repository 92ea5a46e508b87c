package risk

import "github.com/veyra-labs/veyra-risk-service/internal/domain"

// FusionConfig holds the score bands driving Layer-2 triggering and fusion.
type FusionConfig struct {
	AmbiguousLow       float64
	AmbiguousHigh      float64
	HighValueThreshold float64
}

func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		AmbiguousLow:       35,
		AmbiguousHigh:      65,
		HighValueThreshold: 1000,
	}
}

// Ambiguous reports whether a score falls inside the low-confidence band.
func (c FusionConfig) Ambiguous(score float64) bool {
	return score >= c.AmbiguousLow && score <= c.AmbiguousHigh
}

// NeedsLayer2 is the Stage-2 trigger: an ambiguous Layer-1 score or an
// order amount above the high-value threshold.
func (c FusionConfig) NeedsLayer2(layer1Score, amount float64) bool {
	return c.Ambiguous(layer1Score) || amount > c.HighValueThreshold
}

// Fuse merges both layers into one score. A confident Layer-2 result
// (outside its own ambiguous band) wins outright; when both layers are
// ambiguous the blend tilts toward the external data (0.4/0.6). Without
// Layer 2 the Layer-1 score stands.
func Fuse(layer1Score float64, layer2Score *float64, cfg FusionConfig) float64 {
	if layer2Score == nil {
		return clampScore(layer1Score)
	}
	if !cfg.Ambiguous(*layer2Score) {
		return clampScore(*layer2Score)
	}
	return clampScore(0.4*layer1Score + 0.6**layer2Score)
}

// Decide applies the merchant's thresholds to the fused score.
func Decide(fusedScore float64, settings *domain.MerchantSettings) domain.Decision {
	if settings.AutoBlockEnabled && fusedScore >= settings.AutoBlockThreshold {
		return domain.DecisionBlock
	}
	if settings.AutoApproveEnabled && fusedScore <= settings.AutoApproveThreshold {
		return domain.DecisionApprove
	}
	return domain.DecisionHold
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
