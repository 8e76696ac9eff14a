package repository

import (
	"context"
	"sync"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"
)

type QuoteMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.QuoteLead
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.QuoteLead) (entities.QuoteLead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, q)
	return q, nil
}

func (r *QuoteMemoryRepository) List(_ context.Context) ([]entities.QuoteLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.QuoteLead{}, r.items...), nil
}
