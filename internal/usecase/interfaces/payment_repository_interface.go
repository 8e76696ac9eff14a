package interfaces

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

// IPaymentRepository abstracts storage of Payment records.
//
// Get returns a zero Payment (empty Reference) and a nil error when the
// reference is unknown. Put is an upsert keyed by reference.
type IPaymentRepository interface {
	Get(ctx context.Context, reference string) (entities.Payment, error)
	Put(ctx context.Context, p entities.Payment) error
	ListByPhone(ctx context.Context, phone string) ([]entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
}
