package payments

import (
	"context"
	"errors"
	"strings"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentSearcher is the part of payment.Client the gateway needs.
type paymentSearcher interface {
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

// MercadoPagoGateway looks a reference up as the external_reference of
// Mercado Pago payments.
type MercadoPagoGateway struct {
	client paymentSearcher
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CheckStatus(ctx context.Context, reference string) (entities.GatewayStatus, error) {
	if g == nil || g.client == nil {
		return entities.GatewayStatusPending, ErrMercadoPagoGatewayNotConfigured
	}
	logger := log.WithField("reference", reference)

	resp, err := g.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": reference},
		Limit:   10,
	})
	if err != nil {
		logger.WithError(err).Warn("[payment][gateway] sdk search failed")
		return entities.GatewayStatusPending, err
	}
	if resp == nil || len(resp.Results) == 0 {
		logger.Info("[payment][gateway] no provider payment yet")
		return entities.GatewayStatusPending, nil
	}

	status := entities.GatewayStatusPending
	for _, r := range resp.Results {
		switch mapMercadoPagoStatus(r.Status) {
		case entities.GatewayStatusVerified:
			logger.WithField("provider_payment_id", r.ID).Info("[payment][gateway] provider payment approved")
			return entities.GatewayStatusVerified, nil
		case entities.GatewayStatusFailed:
			status = entities.GatewayStatusFailed
		}
	}
	logger.WithField("status", status).Info("[payment][gateway] search done")
	return status, nil
}

// mapMercadoPagoStatus folds Mercado Pago payment statuses into the three
// gateway outcomes. Unknown statuses count as pending.
func mapMercadoPagoStatus(s string) entities.GatewayStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.GatewayStatusVerified
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.GatewayStatusFailed
	default:
		return entities.GatewayStatusPending
	}
}
