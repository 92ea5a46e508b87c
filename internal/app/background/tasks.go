package background

import (
	"context"
	"log"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/scheduler"
	"github.com/veyra-labs/veyra-risk-service/internal/usecase"
)

type BackgroundTasks struct {
	ProcessorUsecase usecase.ProcessorUsecase
	Scheduler        *scheduler.Scheduler
	BatchSize        int
	DrainInterval    time.Duration
}

func NewBackgroundTasks(
	processorUC usecase.ProcessorUsecase,
	monitoringScheduler *scheduler.Scheduler,
	batchSize int,
	drainInterval time.Duration,
) *BackgroundTasks {
	return &BackgroundTasks{
		ProcessorUsecase: processorUC,
		Scheduler:        monitoringScheduler,
		BatchSize:        batchSize,
		DrainInterval:    drainInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startQueueDrain(ctx)
	go bt.Scheduler.Start(ctx)
}

func (bt *BackgroundTasks) startQueueDrain(ctx context.Context) {
	ticker := time.NewTicker(bt.DrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := bt.ProcessorUsecase.ProcessBatch(ctx, bt.BatchSize)
			if err != nil {
				log.Printf("Queue drain error: %v\n", err)
				continue
			}
			if report.Claimed > 0 {
				log.Printf("Queue drain: claimed=%d scanned=%d failed=%d",
					report.Claimed, report.Scanned, report.Failed)
			}
		}
	}
}
