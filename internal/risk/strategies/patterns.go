package strategies

import (
	"context"
	"strings"
	"unicode"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

var disposableEmailDomains = map[string]bool{
	"mailinator.com":    true,
	"guerrillamail.com": true,
	"10minutemail.com":  true,
	"tempmail.com":      true,
	"throwawaymail.com": true,
	"yopmail.com":       true,
}

// PatternStrategy runs static shape checks over the customer's email,
// phone and shipping address.
type PatternStrategy struct{}

func NewPatternStrategy() *PatternStrategy {
	return &PatternStrategy{}
}

func (s *PatternStrategy) Name() string {
	return "identity_patterns"
}

func (s *PatternStrategy) GetDescription() string {
	return "Static email/phone/address shape checks"
}

func (s *PatternStrategy) Evaluate(ctx context.Context, order *domain.IncomingOrder) (*Signal, error) {
	signal := &Signal{Name: s.Name(), Weight: 0.35}

	var score float64

	if hit, reason := checkEmail(order.CustomerEmail); hit {
		score += 35
		signal.Reasons = append(signal.Reasons, reason)
	}
	if hit, reason := checkPhone(order.CustomerPhone); hit {
		score += 30
		signal.Reasons = append(signal.Reasons, reason)
	}
	if hit, reason := checkAddress(order.ShippingAddress); hit {
		score += 25
		signal.Reasons = append(signal.Reasons, reason)
	}
	if order.IPAddress == "" {
		score += 10
		signal.Reasons = append(signal.Reasons, "no client IP captured")
	}

	if score > 100 {
		score = 100
	}
	signal.Score = score
	return signal, nil
}

func checkEmail(email string) (bool, string) {
	if email == "" {
		return true, "missing customer email"
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return true, "malformed email"
	}
	domainPart := strings.ToLower(email[at+1:])
	if disposableEmailDomains[domainPart] {
		return true, "disposable email domain"
	}

	local := email[:at]
	digits := 0
	for _, r := range local {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if len(local) >= 8 && digits*2 > len(local) {
		return true, "digit-heavy email local part"
	}
	return false, ""
}

func checkPhone(phone string) (bool, string) {
	if phone == "" {
		return false, ""
	}
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) < 7 {
		return true, "phone number too short"
	}

	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return true, "repeated-digit phone number"
	}
	return false, ""
}

func checkAddress(address string) (bool, string) {
	if address == "" {
		return true, "missing shipping address"
	}
	lower := strings.ToLower(address)
	if strings.Contains(lower, "po box") || strings.Contains(lower, "p.o. box") {
		return true, "PO box shipping address"
	}
	if len(strings.Fields(address)) < 2 {
		return true, "implausibly short shipping address"
	}
	return false, ""
}
