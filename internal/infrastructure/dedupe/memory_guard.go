package dedupe

import (
	"context"
	"sync"
	"time"

	"github.com/hepsystems/hepeco/internal/usecase/interfaces"
)

// sweepEvery bounds how many claims run between purges of expired keys.
const sweepEvery = 256

// MemoryGuard claims keys in process memory. It only protects a single
// instance; run RedisGuard when more than one API replica is deployed.
type MemoryGuard struct {
	mu     sync.Mutex
	claims map[string]time.Time
	calls  int
	now    func() time.Time
}

var _ interfaces.IDuplicateGuard = (*MemoryGuard)(nil)

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{claims: make(map[string]time.Time), now: time.Now}
}

func (g *MemoryGuard) Claim(_ context.Context, key string, window time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.calls++
	if g.calls%sweepEvery == 0 {
		for k, exp := range g.claims {
			if !now.Before(exp) {
				delete(g.claims, k)
			}
		}
	}

	if exp, ok := g.claims[key]; ok && now.Before(exp) {
		return false, nil
	}
	g.claims[key] = now.Add(window)
	return true, nil
}
