package strategies

import (
	"context"
	"testing"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

func TestPatternStrategyCleanOrder(t *testing.T) {
	signal, err := NewPatternStrategy().Evaluate(context.Background(), &domain.IncomingOrder{
		CustomerEmail:   "jane.doe@example.com",
		CustomerPhone:   "+1 555 010 2233",
		ShippingAddress: "12 Baker Street, London",
		IPAddress:       "203.0.113.7",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if signal.Score != 0 {
		t.Fatalf("expected score 0 for clean order, got %v (%v)", signal.Score, signal.Reasons)
	}
}

func TestPatternStrategyDisposableEmail(t *testing.T) {
	signal, err := NewPatternStrategy().Evaluate(context.Background(), &domain.IncomingOrder{
		CustomerEmail:   "someone@mailinator.com",
		ShippingAddress: "12 Baker Street, London",
		IPAddress:       "203.0.113.7",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if signal.Score != 35 {
		t.Fatalf("expected score 35, got %v", signal.Score)
	}
}

func TestPatternStrategyDigitHeavyEmail(t *testing.T) {
	hit, reason := checkEmail("x9428173@example.com")
	if !hit {
		t.Fatalf("expected digit-heavy local part to flag")
	}
	if reason != "digit-heavy email local part" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestPatternStrategyPhoneChecks(t *testing.T) {
	if hit, _ := checkPhone("12345"); !hit {
		t.Fatalf("expected short phone to flag")
	}
	if hit, _ := checkPhone("+7 777 777 7777"); !hit {
		t.Fatalf("expected repeated-digit phone to flag")
	}
	if hit, _ := checkPhone("+1 555 010 2233"); hit {
		t.Fatalf("expected valid phone to pass")
	}
}

func TestPatternStrategyAddressChecks(t *testing.T) {
	if hit, _ := checkAddress("PO Box 991"); !hit {
		t.Fatalf("expected PO box address to flag")
	}
	if hit, _ := checkAddress("nowhere"); !hit {
		t.Fatalf("expected one-word address to flag")
	}
	if hit, _ := checkAddress("12 Baker Street, London"); hit {
		t.Fatalf("expected plausible address to pass")
	}
}

func TestPatternStrategyWorstCaseIsCapped(t *testing.T) {
	signal, err := NewPatternStrategy().Evaluate(context.Background(), &domain.IncomingOrder{})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// missing email + missing address + missing IP
	if signal.Score != 70 {
		t.Fatalf("expected score 70, got %v", signal.Score)
	}
	if signal.Score > 100 {
		t.Fatalf("score must be capped at 100")
	}
}
