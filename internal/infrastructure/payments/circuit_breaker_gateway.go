package payments

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrCircuitOpen = errors.New("payment gateway circuit open")

type CircuitBreakerConfig struct {
	FailureThreshold int
	OpenTimeout      time.Duration
}

// CircuitBreakerGateway stops calling a provider that keeps failing. After
// FailureThreshold consecutive errors it rejects calls for OpenTimeout, then
// lets a single probe through.
type CircuitBreakerGateway struct {
	next interfaces.IPaymentGateway
	cfg  CircuitBreakerConfig
	now  func() time.Time

	mu           sync.Mutex
	state        int
	failures     int
	openedAt     time.Time
	halfInFlight bool
}

const (
	cbClosed = iota
	cbOpen
	cbHalfOpen
)

var _ interfaces.IPaymentGateway = (*CircuitBreakerGateway)(nil)

func NewCircuitBreakerGateway(next interfaces.IPaymentGateway, cfg CircuitBreakerConfig) *CircuitBreakerGateway {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreakerGateway{next: next, cfg: cfg, now: time.Now, state: cbClosed}
}

func (g *CircuitBreakerGateway) CheckStatus(ctx context.Context, reference string) (entities.GatewayStatus, error) {
	if err := g.beforeCall(); err != nil {
		return entities.GatewayStatusPending, err
	}
	status, err := g.next.CheckStatus(ctx, reference)
	g.afterCall(err)
	return status, err
}

func (g *CircuitBreakerGateway) beforeCall() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case cbClosed:
		return nil
	case cbOpen:
		if g.now().Sub(g.openedAt) < g.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		g.state = cbHalfOpen
		g.halfInFlight = false
		fallthrough
	case cbHalfOpen:
		if g.halfInFlight {
			return ErrCircuitOpen
		}
		g.halfInFlight = true
		return nil
	}
	return ErrCircuitOpen
}

func (g *CircuitBreakerGateway) afterCall(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == cbHalfOpen {
		g.halfInFlight = false
	}
	// A cancelled caller says nothing about provider health.
	if errors.Is(err, context.Canceled) {
		return
	}

	if err == nil {
		g.state = cbClosed
		g.failures = 0
		return
	}

	switch g.state {
	case cbClosed:
		g.failures++
		if g.failures >= g.cfg.FailureThreshold {
			g.trip()
		}
	case cbHalfOpen:
		g.trip()
	}
}

func (g *CircuitBreakerGateway) trip() {
	g.state = cbOpen
	g.openedAt = g.now()
	g.failures = 0
	log.WithField("open_for", g.cfg.OpenTimeout).Warn("[payment][gateway] circuit opened")
}
