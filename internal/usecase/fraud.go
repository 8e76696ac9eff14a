package usecase

import (
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

const (
	FraudReasonRoundLargeAmount = "round_large_amount"
	FraudReasonVerySmallAmount  = "very_small_amount"
	FraudReasonTooQuick         = "too_quick"
	FraudReasonMultipleAttempts = "multiple_attempts"
)

// FraudRules are business heuristics that send a payment to manual review.
// They are not a security control.
type FraudRules struct {
	RoundAmountUnit  int64
	RoundAmountFloor int64
	SmallAmountFloor int64
	MinVerifyDelay   time.Duration
	AttemptWindow    time.Duration
	MaxAttempts      int
}

func DefaultFraudRules() FraudRules {
	return FraudRules{
		RoundAmountUnit:  100000,
		RoundAmountFloor: 500000,
		SmallAmountFloor: 10000,
		MinVerifyDelay:   30 * time.Second,
		AttemptWindow:    time.Hour,
		MaxAttempts:      3,
	}
}

// Evaluate runs every rule against p and returns the reasons that fired, in
// rule order. history is every payment known for p's phone, p included.
func (r FraudRules) Evaluate(p entities.Payment, history []entities.Payment, now time.Time) []string {
	var reasons []string

	if r.RoundAmountUnit > 0 && p.Amount%r.RoundAmountUnit == 0 && p.Amount > r.RoundAmountFloor {
		reasons = append(reasons, FraudReasonRoundLargeAmount)
	}
	if p.Amount < r.SmallAmountFloor {
		reasons = append(reasons, FraudReasonVerySmallAmount)
	}
	if now.Sub(p.CreatedAt) < r.MinVerifyDelay {
		reasons = append(reasons, FraudReasonTooQuick)
	}
	if r.recentAttempts(p.Phone, history, now) > r.MaxAttempts {
		reasons = append(reasons, FraudReasonMultipleAttempts)
	}

	return reasons
}

func (r FraudRules) recentAttempts(phone string, history []entities.Payment, now time.Time) int {
	since := now.Add(-r.AttemptWindow)
	n := 0
	for _, h := range history {
		if h.Phone != phone {
			continue
		}
		if h.CreatedAt.Before(since) || h.CreatedAt.After(now) {
			continue
		}
		n++
	}
	return n
}
