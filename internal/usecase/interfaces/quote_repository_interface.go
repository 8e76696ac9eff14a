package interfaces

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

// IQuoteRepository abstracts storage of quote leads.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteLead) (entities.QuoteLead, error)
	List(ctx context.Context) ([]entities.QuoteLead, error)
}
