package payments

import (
	"context"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

type RetryConfig struct {
	AttemptTimeout time.Duration
	MaxRetries     int
	Backoff        time.Duration
}

// RetryingGateway bounds every provider call with a timeout and retries
// errors with linear backoff. Answers (including pending) are never retried.
type RetryingGateway struct {
	next interfaces.IPaymentGateway
	cfg  RetryConfig
}

var _ interfaces.IPaymentGateway = (*RetryingGateway)(nil)

func NewRetryingGateway(next interfaces.IPaymentGateway, cfg RetryConfig) *RetryingGateway {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 5 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = 0
	}
	return &RetryingGateway{next: next, cfg: cfg}
}

func (g *RetryingGateway) CheckStatus(ctx context.Context, reference string) (entities.GatewayStatus, error) {
	var lastErr error
	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * g.cfg.Backoff
			select {
			case <-ctx.Done():
				return entities.GatewayStatusPending, ctx.Err()
			case <-time.After(wait):
			}
		}

		status, err := g.try(ctx, reference)
		if err == nil {
			return status, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return entities.GatewayStatusPending, ctx.Err()
		}
		log.WithError(err).WithFields(log.Fields{
			"reference": reference,
			"attempt":   attempt + 1,
		}).Warn("[payment][gateway] check attempt failed")
	}
	return entities.GatewayStatusPending, lastErr
}

func (g *RetryingGateway) try(ctx context.Context, reference string) (entities.GatewayStatus, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
	defer cancel()
	return g.next.CheckStatus(attemptCtx, reference)
}
