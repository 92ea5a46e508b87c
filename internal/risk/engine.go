package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/jaevor/go-nanoid"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	"github.com/veyra-labs/veyra-risk-service/internal/risk/strategies"
)

// discrepancyThreshold flags assessments where the two layers disagree
// hard enough to feed Layer-1 recalibration.
const discrepancyThreshold = 25

// Engine runs the two-layer fusion pipeline. Layer 1 is the registered
// heuristic strategies; Layer 2 is the external validation provider behind
// the persistent freshness-bounded cache.
type Engine struct {
	strategies      map[string]strategies.HeuristicStrategy
	cacheRepo       domain.ValidationCacheRepository
	provider        domain.ValidationProvider
	cfg             FusionConfig
	providerTimeout time.Duration
	logger          *slog.Logger
	metrics         *metrics.RiskMetrics
}

func NewEngine(
	cacheRepo domain.ValidationCacheRepository,
	provider domain.ValidationProvider,
	cfg FusionConfig,
	providerTimeout time.Duration,
	logger *slog.Logger,
	riskMetrics *metrics.RiskMetrics,
) *Engine {
	return &Engine{
		strategies:      make(map[string]strategies.HeuristicStrategy),
		cacheRepo:       cacheRepo,
		provider:        provider,
		cfg:             cfg,
		providerTimeout: providerTimeout,
		logger:          logger,
		metrics:         riskMetrics,
	}
}

// RegisterStrategy adds a Layer-1 heuristic to the registry.
func (e *Engine) RegisterStrategy(strategy strategies.HeuristicStrategy) {
	e.strategies[strategy.Name()] = strategy
	e.logger.Info("Registered heuristic strategy", "name", strategy.Name())
}

// Assess computes the full RiskAssessment for one order. Provider failures
// never fail the assessment; they degrade it to Layer-1-only scoring.
func (e *Engine) Assess(ctx context.Context, order *domain.IncomingOrder, settings *domain.MerchantSettings) (*domain.RiskAssessment, error) {
	layer1Score, err := e.computeLayer1(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to compute layer1 score: %w", err)
	}

	var layer2Score *float64
	if e.cfg.NeedsLayer2(layer1Score, order.Amount) {
		layer2Score = e.computeLayer2(ctx, order)
	}

	fusedScore := Fuse(layer1Score, layer2Score, e.cfg)

	if layer2Score != nil {
		diff := layer1Score - *layer2Score
		if diff < 0 {
			diff = -diff
		}
		if diff > discrepancyThreshold {
			e.logger.Warn("Layer discrepancy detected",
				"order_id", order.ID,
				"merchant_id", order.MerchantID,
				"layer1_score", layer1Score,
				"layer2_score", *layer2Score)
			e.metrics.RecordDiscrepancy(order.MerchantID)
		}
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("failed to init assessment id generator: %w", err)
	}

	return &domain.RiskAssessment{
		ID:          idGenerator(),
		OrderID:     order.ID,
		MerchantID:  order.MerchantID,
		Layer1Score: layer1Score,
		Layer2Score: layer2Score,
		FusedScore:  fusedScore,
		RiskLevel:   domain.RiskLevelFromScore(fusedScore),
		Decision:    Decide(fusedScore, settings),
		AssessedAt:  time.Now().UTC(),
	}, nil
}

// computeLayer1 runs every registered strategy and folds the signals into
// one weighted score. A single failing strategy is skipped, not fatal.
func (e *Engine) computeLayer1(ctx context.Context, order *domain.IncomingOrder) (float64, error) {
	var weightedSum, totalWeight float64
	evaluated := 0

	for _, strategy := range e.strategies {
		signal, err := strategy.Evaluate(ctx, order)
		if err != nil {
			e.logger.Error("Strategy evaluation failed",
				"strategy", strategy.Name(), "order_id", order.ID, "error", err)
			continue
		}
		weightedSum += signal.Score * signal.Weight
		totalWeight += signal.Weight
		evaluated++
	}

	if evaluated == 0 {
		return 0, fmt.Errorf("no heuristic strategy produced a signal")
	}
	return clampScore(weightedSum / totalWeight), nil
}

type subject struct {
	kind domain.SubjectKind
	key  string
}

// computeLayer2 resolves each subject through the cache, refreshing stale
// or missing entries against the provider. Returns nil when not a single
// subject could be resolved.
func (e *Engine) computeLayer2(ctx context.Context, order *domain.IncomingOrder) *float64 {
	subjects := collectSubjects(order)
	if len(subjects) == 0 {
		return nil
	}

	var sum float64
	resolved := 0

	for _, s := range subjects {
		score, ok := e.resolveSubject(ctx, s)
		if !ok {
			continue
		}
		sum += score
		resolved++
	}

	if resolved == 0 {
		return nil
	}
	avg := sum / float64(resolved)
	return &avg
}

func (e *Engine) resolveSubject(ctx context.Context, s subject) (float64, bool) {
	now := time.Now().UTC()

	entry, err := e.cacheRepo.Get(s.key)
	if err != nil {
		e.logger.Error("Validation cache read failed", "subject", s.key, "error", err)
	}
	if entry != nil {
		if !entry.Stale(now) {
			e.metrics.RecordCacheLookup("hit")
			return entry.Score, true
		}
		e.metrics.RecordCacheLookup("stale")
	} else {
		e.metrics.RecordCacheLookup("miss")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.providerTimeout)
	defer cancel()

	result, err := e.provider.Lookup(lookupCtx, s.kind, s.key)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			e.metrics.RecordProviderTimeout(string(s.kind))
		}
		e.metrics.RecordProviderCall(string(s.kind), "error")
		e.logger.Warn("External validation lookup failed",
			"kind", s.kind, "subject", s.key, "error", err)
		return 0, false
	}
	e.metrics.RecordProviderCall(string(s.kind), "ok")

	if err := e.cacheRepo.Upsert(&domain.ValidationCacheEntry{
		SubjectKey: s.key,
		Kind:       s.kind,
		Score:      result.Score,
		FlagsJSON:  marshalFlags(result.Flags),
		FetchedAt:  now,
	}); err != nil {
		e.logger.Error("Validation cache write failed", "subject", s.key, "error", err)
	}

	return result.Score, true
}

func collectSubjects(order *domain.IncomingOrder) []subject {
	var subjects []subject
	if order.CustomerEmail != "" {
		subjects = append(subjects, subject{
			kind: domain.SubjectEmail,
			key:  "email:" + strings.ToLower(strings.TrimSpace(order.CustomerEmail)),
		})
	}
	if order.CustomerPhone != "" {
		subjects = append(subjects, subject{
			kind: domain.SubjectPhone,
			key:  "phone:" + normalizePhone(order.CustomerPhone),
		})
	}
	if order.IPAddress != "" {
		subjects = append(subjects, subject{
			kind: domain.SubjectIP,
			key:  "ip:" + order.IPAddress,
		})
	}
	return subjects
}

func marshalFlags(flags []string) string {
	if len(flags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(flags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
