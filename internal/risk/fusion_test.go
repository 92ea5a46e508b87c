package risk

import (
	"testing"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

func TestNeedsLayer2AmbiguousBand(t *testing.T) {
	cfg := DefaultFusionConfig()

	cases := []struct {
		layer1 float64
		amount float64
		want   bool
	}{
		{34.9, 100, false},
		{35, 100, true},
		{50, 100, true},
		{65, 100, true},
		{65.1, 100, false},
		{10, 1000, false},
		{10, 1000.01, true},
		{90, 5000, true},
	}

	for _, tc := range cases {
		if got := cfg.NeedsLayer2(tc.layer1, tc.amount); got != tc.want {
			t.Fatalf("NeedsLayer2(%v, %v): expected %v, got %v", tc.layer1, tc.amount, tc.want, got)
		}
	}
}

func TestFuseWithoutLayer2KeepsLayer1(t *testing.T) {
	if got := Fuse(42, nil, DefaultFusionConfig()); got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestFuseConfidentLayer2Wins(t *testing.T) {
	cfg := DefaultFusionConfig()

	high := 80.0
	if got := Fuse(40, &high, cfg); got != 80 {
		t.Fatalf("expected confident layer2 to win, got %v", got)
	}

	low := 10.0
	if got := Fuse(60, &low, cfg); got != 10 {
		t.Fatalf("expected confident layer2 to win, got %v", got)
	}
}

func TestFuseBlendsAmbiguousLayers(t *testing.T) {
	layer2 := 60.0
	got := Fuse(50, &layer2, DefaultFusionConfig())
	want := 0.4*50 + 0.6*60
	if got != want {
		t.Fatalf("expected blend %v, got %v", want, got)
	}
}

func TestDecideThresholds(t *testing.T) {
	settings := domain.DefaultMerchantSettings("merchant-1")

	cases := []struct {
		fused float64
		want  domain.Decision
	}{
		{0, domain.DecisionApprove},
		{30, domain.DecisionApprove},
		{30.1, domain.DecisionHold},
		{89.9, domain.DecisionHold},
		{90, domain.DecisionBlock},
		{100, domain.DecisionBlock},
	}

	for _, tc := range cases {
		if got := Decide(tc.fused, settings); got != tc.want {
			t.Fatalf("Decide(%v): expected %s, got %s", tc.fused, tc.want, got)
		}
	}
}

func TestDecideRespectsDisabledAutomation(t *testing.T) {
	settings := &domain.MerchantSettings{
		MerchantID:           "merchant-1",
		AutoApproveThreshold: 30,
		AutoBlockThreshold:   90,
	}

	if got := Decide(5, settings); got != domain.DecisionHold {
		t.Fatalf("expected HOLD with auto-approve disabled, got %s", got)
	}
	if got := Decide(95, settings); got != domain.DecisionHold {
		t.Fatalf("expected HOLD with auto-block disabled, got %s", got)
	}
}
