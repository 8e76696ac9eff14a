package repository

import (
	"context"
	"sync"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"
)

// PaymentMemoryRepository keeps payments in process memory. Data is lost on
// restart; it backs local runs and tests.
type PaymentMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{items: make(map[string]entities.Payment)}
}

func (r *PaymentMemoryRepository) Get(_ context.Context, reference string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePayment(r.items[reference]), nil
}

func (r *PaymentMemoryRepository) Put(_ context.Context, p entities.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.Reference] = clonePayment(p)
	return nil
}

func (r *PaymentMemoryRepository) ListByPhone(_ context.Context, phone string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Payment, 0)
	for _, p := range r.items {
		if p.Phone == phone {
			out = append(out, clonePayment(p))
		}
	}
	return out, nil
}

func (r *PaymentMemoryRepository) List(_ context.Context) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Payment, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, clonePayment(p))
	}
	return out, nil
}

// clonePayment detaches the pointer and slice fields so callers cannot
// mutate stored state.
func clonePayment(p entities.Payment) entities.Payment {
	if p.VerifiedAt != nil {
		t := *p.VerifiedAt
		p.VerifiedAt = &t
	}
	if p.FraudReasons != nil {
		p.FraudReasons = append([]string(nil), p.FraudReasons...)
	}
	return p
}
