package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	"github.com/veyra-labs/veyra-risk-service/internal/usecase"
)

// TickReport aggregates one scheduler pass for observability.
type TickReport struct {
	MerchantsChecked int
	MerchantsDue     int
	MerchantsRun     int
	OrdersScanned    int
	OrdersCleared    int
	Failures         int
}

// Scheduler triggers each merchant's daily monitoring sweep at the
// merchant's preferred local time. Tick is a pure function of wall-clock
// time and the persisted config: no hidden state beyond the store.
type Scheduler struct {
	configRepo   domain.MonitoringConfigRepository
	monitoringUC usecase.MonitoringUsecase
	interval     time.Duration
	logger       *slog.Logger
	metrics      *metrics.RiskMetrics
}

func NewScheduler(
	configRepo domain.MonitoringConfigRepository,
	monitoringUC usecase.MonitoringUsecase,
	interval time.Duration,
	logger *slog.Logger,
	riskMetrics *metrics.RiskMetrics,
) *Scheduler {
	return &Scheduler{
		configRepo:   configRepo,
		monitoringUC: monitoringUC,
		interval:     interval,
		logger:       logger,
		metrics:      riskMetrics,
	}
}

// Start runs the tick loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting monitoring scheduler", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping monitoring scheduler")
			return
		case <-ticker.C:
			start := time.Now()
			report, err := s.Tick(ctx, time.Now().UTC())
			if err != nil {
				s.logger.Error("Scheduler tick failed", "error", err)
				continue
			}
			s.metrics.RecordTick(time.Since(start).Seconds(), report.Failures)
			s.logger.Info("Scheduler tick completed",
				"merchants_due", report.MerchantsDue,
				"merchants_run", report.MerchantsRun,
				"orders_scanned", report.OrdersScanned,
				"orders_cleared", report.OrdersCleared,
				"failures", report.Failures)
		}
	}
}

// Tick sweeps every merchant whose preferred local check time falls into
// the current 15-minute bucket and who has not already run on their local
// calendar day. A single merchant's failure never aborts the tick.
func (s *Scheduler) Tick(ctx context.Context, nowUtc time.Time) (*TickReport, error) {
	configs, err := s.configRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list monitoring configs: %w", err)
	}

	report := &TickReport{MerchantsChecked: len(configs)}
	for _, config := range configs {
		if !config.Due(nowUtc) {
			continue
		}
		report.MerchantsDue++

		dayKey := config.LocalDayKey(nowUtc)
		if config.LastRunLocalDayKey == dayKey {
			// already ran on this local day; duplicate tick in bucket
			continue
		}

		if err := s.runMerchant(ctx, config, dayKey, nowUtc, report); err != nil {
			report.Failures++
			s.logger.Error("Merchant sweep failed",
				"merchant_id", config.MerchantID, "error", err)
		}
	}

	return report, nil
}

func (s *Scheduler) runMerchant(ctx context.Context, config *domain.MerchantMonitoringConfig, dayKey string, nowUtc time.Time, report *TickReport) error {
	result, err := s.monitoringUC.Sweep(ctx, config.MerchantID, nowUtc)
	if err != nil {
		return err
	}

	// marker write happens-after the sweep commits: a crash in between
	// causes a safe re-run on the next tick, never a skipped day
	updated, err := s.configRepo.SetLastRunDayKey(config.MerchantID, dayKey)
	if err != nil {
		return fmt.Errorf("failed to persist day-key marker: %w", err)
	}
	if !updated {
		// a concurrent tick or manual run won the marker race; its sweep
		// already counted
		return nil
	}

	report.MerchantsRun++
	report.OrdersScanned += result.Scanned
	report.OrdersCleared += result.ClearedNow
	s.metrics.RecordSweep(config.MerchantID, "scheduled", result.ClearedNow)

	return nil
}
