package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	publisher "github.com/veyra-labs/veyra-risk-service/internal/infrastructure/kafka"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/metrics"
	"github.com/veyra-labs/veyra-risk-service/internal/risk"
)

type ProcessorUsecase interface {
	ProcessBatch(ctx context.Context, maxBatch int) (*BatchReport, error)
}

// BatchReport aggregates one drain pass over the intake queue.
type BatchReport struct {
	Claimed int
	Scanned int
	Failed  int
}

type RiskEventPublisher interface {
	PublishHighRisk(event publisher.HighRiskEvent) error
	PublishScanCompleted(event publisher.ScanCompletedEvent) error
}

type DefaultProcessorUsecase struct {
	OrderRepo    domain.OrderRepository
	PostAuthRepo domain.PostAuthRepository
	SettingsRepo domain.MerchantSettingsRepository
	Engine       *risk.Engine
	Publisher    RiskEventPublisher
	Logger       *slog.Logger
	Metrics      *metrics.RiskMetrics
}

func NewDefaultProcessorUsecase(
	orderRepo domain.OrderRepository,
	postAuthRepo domain.PostAuthRepository,
	settingsRepo domain.MerchantSettingsRepository,
	engine *risk.Engine,
	eventPublisher RiskEventPublisher,
	logger *slog.Logger,
	riskMetrics *metrics.RiskMetrics,
) *DefaultProcessorUsecase {
	return &DefaultProcessorUsecase{
		OrderRepo:    orderRepo,
		PostAuthRepo: postAuthRepo,
		SettingsRepo: settingsRepo,
		Engine:       engine,
		Publisher:    eventPublisher,
		Logger:       logger,
		Metrics:      riskMetrics,
	}
}

// ProcessBatch drains up to maxBatch PENDING orders through the fusion
// pipeline. Per-order failures are isolated: the order is marked FAILED
// with its reason and the batch continues.
func (uc *DefaultProcessorUsecase) ProcessBatch(ctx context.Context, maxBatch int) (*BatchReport, error) {
	orders, err := uc.OrderRepo.ClaimPendingOrders(maxBatch)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{Claimed: len(orders)}
	for _, order := range orders {
		if err := uc.processOrder(ctx, order); err != nil {
			report.Failed++
			continue
		}
		report.Scanned++
	}
	return report, nil
}

func (uc *DefaultProcessorUsecase) processOrder(ctx context.Context, order *domain.IncomingOrder) error {
	start := time.Now()

	settings, err := uc.SettingsRepo.GetByMerchantID(order.MerchantID)
	if err != nil {
		uc.failOrder(order, "failed to load merchant settings: "+err.Error())
		return err
	}

	assessment, err := uc.Engine.Assess(ctx, order, settings)
	if err != nil {
		uc.failOrder(order, err.Error())
		return err
	}

	if err := uc.OrderRepo.MarkScanned(order.ID, assessment); err != nil {
		uc.Logger.Error("Failed to persist scan result",
			"order_id", order.ID, "error", err)
		uc.failOrder(order, "failed to persist scan result: "+err.Error())
		return err
	}

	uc.Metrics.RecordScanned(order.MerchantID, string(assessment.RiskLevel),
		string(assessment.Decision), assessment.Layer2Score != nil, time.Since(start).Seconds())

	// only approved orders enter the long-horizon monitoring window
	if assessment.Decision == domain.DecisionApprove {
		now := time.Now().UTC()
		if err := uc.PostAuthRepo.Create(&domain.PostAuthOrder{
			OrderID:       order.ID,
			MerchantID:    order.MerchantID,
			Amount:        order.Amount,
			Status:        domain.StatusUnderMonitoring,
			CreatedAt:     now,
			LastCheckedAt: now,
		}); err != nil {
			// the scan itself succeeded; log and move on
			uc.Logger.Error("Failed to enter post-auth monitoring",
				"order_id", order.ID, "error", err)
		}
	}

	uc.publishEvents(order, assessment)
	return nil
}

func (uc *DefaultProcessorUsecase) failOrder(order *domain.IncomingOrder, reason string) {
	if err := uc.OrderRepo.MarkFailed(order.ID, reason); err != nil {
		uc.Logger.Error("Failed to mark order FAILED", "order_id", order.ID, "error", err)
	}
	uc.Metrics.RecordFailed(order.MerchantID)

	if uc.Publisher != nil {
		go func(event publisher.ScanCompletedEvent) {
			if err := uc.Publisher.PublishScanCompleted(event); err != nil {
				slog.Error("failed to publish ScanCompletedEvent", "error", err.Error())
			}
		}(publisher.ScanCompletedEvent{
			OrderID:    order.ID,
			MerchantID: order.MerchantID,
			Status:     string(domain.StatusFailed),
			Error:      reason,
		})
	}
}

func (uc *DefaultProcessorUsecase) publishEvents(order *domain.IncomingOrder, assessment *domain.RiskAssessment) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.ScanCompletedEvent) {
		if err := uc.Publisher.PublishScanCompleted(event); err != nil {
			slog.Error("failed to publish ScanCompletedEvent", "error", err.Error())
		}
	}(publisher.ScanCompletedEvent{
		OrderID:    order.ID,
		MerchantID: order.MerchantID,
		Status:     string(domain.StatusScanned),
		FusedScore: assessment.FusedScore,
		Decision:   string(assessment.Decision),
	})

	if assessment.RiskLevel == domain.RiskHigh || assessment.RiskLevel == domain.RiskCritical {
		uc.Metrics.RecordHighRisk(order.MerchantID)
		go func(event publisher.HighRiskEvent) {
			if err := uc.Publisher.PublishHighRisk(event); err != nil {
				slog.Error("failed to publish HighRiskEvent", "error", err.Error())
			}
		}(publisher.HighRiskEvent{
			AssessmentID:  assessment.ID,
			OrderID:       order.ID,
			MerchantID:    order.MerchantID,
			OrderAmount:   order.Amount,
			FusedScore:    assessment.FusedScore,
			RiskLevel:     string(assessment.RiskLevel),
			CustomerEmail: order.CustomerEmail,
		})
	}
}
