package repository

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuotePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(pool *pgxpool.Pool) *QuotePostgresRepository {
	return &QuotePostgresRepository{pool: pool}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.QuoteLead) (entities.QuoteLead, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quote_leads (id, name, email, phone, service, timeline_days, budget,
			message, status, base_price, surcharge, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		q.ID, q.Name, q.Email, q.Phone, string(q.Service), q.TimelineDays, q.Budget,
		q.Message, string(q.Status), q.Estimate.BasePrice, q.Estimate.Surcharge, q.Estimate.Total, q.CreatedAt,
	)
	if err != nil {
		return entities.QuoteLead{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) List(ctx context.Context) ([]entities.QuoteLead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, service, timeline_days, budget,
			message, status, base_price, surcharge, total, created_at
		FROM quote_leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]entities.QuoteLead, 0)
	for rows.Next() {
		var (
			q       entities.QuoteLead
			service string
			status  string
		)
		if err := rows.Scan(
			&q.ID, &q.Name, &q.Email, &q.Phone, &service, &q.TimelineDays, &q.Budget,
			&q.Message, &status, &q.Estimate.BasePrice, &q.Estimate.Surcharge, &q.Estimate.Total, &q.CreatedAt,
		); err != nil {
			return nil, err
		}
		q.Service = entities.ServiceType(service)
		q.Status = entities.QuoteLeadStatus(status)
		q.Estimate.Service = q.Service
		q.Estimate.TimelineDays = q.TimelineDays
		q.CreatedAt = q.CreatedAt.UTC()
		leads = append(leads, q)
	}
	return leads, rows.Err()
}
