package routes

import (
	"context"
	"fmt"

	"github.com/hepsystems/hepeco/internal/adapter/persistence/repository"
	"github.com/hepsystems/hepeco/internal/config"
	"github.com/hepsystems/hepeco/internal/infrastructure/database"
	"github.com/hepsystems/hepeco/internal/infrastructure/dedupe"
	"github.com/hepsystems/hepeco/internal/infrastructure/payments"
	"github.com/hepsystems/hepeco/internal/usecase"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	GatewaySimulated   = "simulated"
	GatewayMercadoPago = "mercadopago"
)

// BuildDependencies opens the configured storage, duplicate guard and
// gateway. The returned cleanup closes whatever connections were opened.
func BuildDependencies(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	paymentRepo, quoteRepo, closeStorage, err := buildStorage(ctx, cfg)
	if err != nil {
		return Dependencies{}, cleanup, err
	}
	closers = append(closers, closeStorage)

	guard, closeGuard, err := buildGuard(cfg)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}
	closers = append(closers, closeGuard)

	gateway, gatewayName, err := buildGateway(cfg)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	return Dependencies{
		Payments:      usecase.NewPaymentUseCase(paymentRepo, gateway, guard, cfg.Payment),
		Quotes:        usecase.NewQuoteUseCase(quoteRepo),
		StorageName:   cfg.StorageBackend,
		GatewayName:   gatewayName,
		AdminToken:    cfg.AdminAPIToken,
		WebhookSecret: cfg.WebhookSecret,
	}, cleanup, nil
}

func buildStorage(ctx context.Context, cfg config.Config) (interfaces.IPaymentRepository, interfaces.IQuoteRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageMemory, "":
		return repository.NewPaymentMemoryRepository(), repository.NewQuoteMemoryRepository(), func() {}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.WithFields(log.Fields{"payments_table": cfg.PaymentsTable, "quotes_table": cfg.QuotesTable}).
			Info("[routes][wiring] using dynamodb storage")
		return repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable), func() {}, nil

	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("[routes][wiring] using postgres storage")
		return repository.NewPaymentPostgresRepository(pool), repository.NewQuotePostgresRepository(pool), pool.Close, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
}

func buildGuard(cfg config.Config) (interfaces.IDuplicateGuard, func(), error) {
	switch cfg.DuplicateGuard {
	case config.GuardMemory, "":
		return dedupe.NewMemoryGuard(), func() {}, nil
	case config.GuardRedis:
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return dedupe.NewRedisGuard(client), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown DUPLICATE_GUARD %q", cfg.DuplicateGuard)
}

// buildGateway picks the provider and wraps it so a slow or failing provider
// degrades verification to "not yet received".
func buildGateway(cfg config.Config) (interfaces.IPaymentGateway, string, error) {
	var (
		provider interfaces.IPaymentGateway
		name     string
	)
	if cfg.UseSimulatedGateway() {
		log.WithField("success_rate", cfg.SimulatedSuccessRate).Warn("[routes][wiring] using simulated payment gateway")
		provider, name = payments.NewSimulatedGateway(cfg.SimulatedSuccessRate, nil), GatewaySimulated
	} else {
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, "", err
		}
		provider, name = mp, GatewayMercadoPago
	}

	retrying := payments.NewRetryingGateway(provider, payments.RetryConfig{
		AttemptTimeout: cfg.GatewayTimeout,
		MaxRetries:     cfg.GatewayMaxRetries,
		Backoff:        cfg.GatewayBackoff,
	})
	return payments.NewCircuitBreakerGateway(retrying, payments.CircuitBreakerConfig{
		FailureThreshold: cfg.BreakerThreshold,
		OpenTimeout:      cfg.BreakerCooldown,
	}), name, nil
}
