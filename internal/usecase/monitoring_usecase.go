package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SweepResult reports one monitoring pass over a merchant's post-auth
// orders.
type SweepResult struct {
	Scanned         int
	StillMonitoring int
	ClearedNow      int
}

type MonitoringUsecase interface {
	Sweep(ctx context.Context, merchantID string, nowUtc time.Time) (*SweepResult, error)
	RunNow(ctx context.Context, merchantID string, nowUtc time.Time) (*SweepResult, error)
}

type DefaultMonitoringUsecase struct {
	PostAuthRepo domain.PostAuthRepository
	ConfigRepo   domain.MonitoringConfigRepository
	Logger       *slog.Logger
	Metrics      *metrics.RiskMetrics
}

func NewDefaultMonitoringUsecase(
	postAuthRepo domain.PostAuthRepository,
	configRepo domain.MonitoringConfigRepository,
	logger *slog.Logger,
	riskMetrics *metrics.RiskMetrics,
) *DefaultMonitoringUsecase {
	return &DefaultMonitoringUsecase{
		PostAuthRepo: postAuthRepo,
		ConfigRepo:   configRepo,
		Logger:       logger,
		Metrics:      riskMetrics,
	}
}

// Sweep ages every UNDER_MONITORING order owned by the merchant: orders
// past the dispute window clear, the rest get a heartbeat timestamp so
// dashboards can show freshness. Re-running over CLEARED orders is a no-op.
func (uc *DefaultMonitoringUsecase) Sweep(ctx context.Context, merchantID string, nowUtc time.Time) (*SweepResult, error) {
	orders, err := uc.PostAuthRepo.FindUnderMonitoring(merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load monitored orders: %w", err)
	}

	result := &SweepResult{Scanned: len(orders)}
	for _, order := range orders {
		if order.DaysInMonitoring(nowUtc) >= domain.MonitoringWindowDays {
			if err := uc.PostAuthRepo.MarkCleared(order.OrderID, nowUtc); err != nil {
				return nil, fmt.Errorf("failed to clear order %s: %w", order.OrderID, err)
			}
			result.ClearedNow++
			continue
		}
		if err := uc.PostAuthRepo.MarkChecked(order.OrderID, nowUtc); err != nil {
			return nil, fmt.Errorf("failed to heartbeat order %s: %w", order.OrderID, err)
		}
		result.StillMonitoring++
	}

	uc.Logger.Info("Monitoring sweep completed",
		"merchant_id", merchantID,
		"scanned", result.Scanned,
		"cleared", result.ClearedNow)

	return result, nil
}

// RunNow is the manual trigger for one authenticated merchant. It bypasses
// the scheduler's bucket check but writes the same day-key marker, so a
// manual run and the next automatic tick on the same local day do not
// double-run.
func (uc *DefaultMonitoringUsecase) RunNow(ctx context.Context, merchantID string, nowUtc time.Time) (*SweepResult, error) {
	config, err := uc.ConfigRepo.GetByMerchantID(merchantID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			return nil, status.Errorf(codes.NotFound, "no monitoring config for merchant %s", merchantID)
		}
		return nil, err
	}

	result, err := uc.Sweep(ctx, merchantID, nowUtc)
	if err != nil {
		return nil, err
	}

	// marker write happens after the sweep commits; a duplicate manual run
	// on the same day sweeps again (explicit operator intent) but the CAS
	// keeps the marker stable
	if _, err := uc.ConfigRepo.SetLastRunDayKey(merchantID, config.LocalDayKey(nowUtc)); err != nil {
		return nil, fmt.Errorf("failed to persist day-key marker: %w", err)
	}

	uc.Metrics.RecordSweep(merchantID, "manual", result.ClearedNow)
	return result, nil
}
