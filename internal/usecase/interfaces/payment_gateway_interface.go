package interfaces

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

// IPaymentGateway abstracts the provider that confirms a payment reference
// has been paid (a mobile-money API, a bank feed, or a simulation).
type IPaymentGateway interface {
	CheckStatus(ctx context.Context, reference string) (entities.GatewayStatus, error)
}
