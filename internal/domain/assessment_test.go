package domain

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestRiskLevelFromScoreBands(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{39.9, RiskLow},
		{40, RiskMedium},
		{69.9, RiskMedium},
		{70, RiskHigh},
		{89.9, RiskHigh},
		{90, RiskCritical},
		{100, RiskCritical},
	}

	for _, tc := range cases {
		if got := RiskLevelFromScore(tc.score); got != tc.want {
			t.Fatalf("RiskLevelFromScore(%v): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestDaysInMonitoring(t *testing.T) {
	created := mustParse(t, "2025-05-04T02:00:00Z")
	order := &PostAuthOrder{CreatedAt: created}

	if got := order.DaysInMonitoring(mustParse(t, "2025-08-31T02:00:00Z")); got != 119 {
		t.Fatalf("expected 119 days, got %d", got)
	}
	if got := order.DaysInMonitoring(mustParse(t, "2025-09-01T02:00:00Z")); got != 120 {
		t.Fatalf("expected 120 days, got %d", got)
	}
}
