package payments

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const DefaultSimulatedSuccessRate = 0.7

// SimulatedGateway stands in for a provider that is not integrated yet: a
// reference is reported paid with probability rate, pending otherwise.
type SimulatedGateway struct {
	rate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

// NewSimulatedGateway uses src for randomness; a nil src seeds from the
// clock. rate is clamped to [0, 1].
func NewSimulatedGateway(rate float64, src rand.Source) *SimulatedGateway {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	switch {
	case rate < 0:
		rate = 0
	case rate > 1:
		rate = 1
	}
	return &SimulatedGateway{rate: rate, rnd: rand.New(src)}
}

func (g *SimulatedGateway) CheckStatus(ctx context.Context, reference string) (entities.GatewayStatus, error) {
	if err := ctx.Err(); err != nil {
		return entities.GatewayStatusPending, err
	}

	g.mu.Lock()
	roll := g.rnd.Float64()
	g.mu.Unlock()

	status := entities.GatewayStatusPending
	if roll < g.rate {
		status = entities.GatewayStatusVerified
	}
	log.WithFields(log.Fields{"reference": reference, "status": status}).Debug("[payment][gateway] simulated check")
	return status, nil
}
