package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"github.com/veyra-labs/veyra-risk-service/internal/risk/strategies"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "risk.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.OrderModel{},
		&models.RiskAssessmentModel{},
		&models.PostAuthOrderModel{},
		&models.MonitoringConfigModel{},
		&models.MerchantSettingsModel{},
		&models.ValidationCacheModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedStrategy struct {
	score float64
}

func (s *fixedStrategy) Name() string           { return "fixed" }
func (s *fixedStrategy) GetDescription() string { return "fixed-score stub" }
func (s *fixedStrategy) Evaluate(ctx context.Context, order *domain.IncomingOrder) (*strategies.Signal, error) {
	return &strategies.Signal{Name: "fixed", Score: s.score, Weight: 1}, nil
}

type staticProvider struct {
	score float64
}

func (p *staticProvider) Lookup(ctx context.Context, kind domain.SubjectKind, subjectKey string) (*domain.ValidationResult, error) {
	return &domain.ValidationResult{SubjectKey: subjectKey, Kind: kind, Score: p.score}, nil
}
