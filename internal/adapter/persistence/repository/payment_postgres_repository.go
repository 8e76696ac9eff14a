package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `reference, amount, phone, method, status, session_id,
	created_at, expires_at, verified_at, fraud_reasons, transaction_id, verify_attempts`

// PaymentPostgresRepository persists payments in the payments table created
// by database.EnsureSchema.
type PaymentPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPaymentRepository = (*PaymentPostgresRepository)(nil)

func NewPaymentPostgresRepository(pool *pgxpool.Pool) *PaymentPostgresRepository {
	return &PaymentPostgresRepository{pool: pool}
}

func (r *PaymentPostgresRepository) Get(ctx context.Context, reference string) (entities.Payment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE reference = $1`, reference)
	p, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Payment{}, nil
	}
	return p, err
}

func (r *PaymentPostgresRepository) Put(ctx context.Context, p entities.Payment) error {
	reasons := p.FraudReasons
	if reasons == nil {
		reasons = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (reference) DO UPDATE SET
			status          = EXCLUDED.status,
			verified_at     = EXCLUDED.verified_at,
			fraud_reasons   = EXCLUDED.fraud_reasons,
			transaction_id  = EXCLUDED.transaction_id,
			verify_attempts = EXCLUDED.verify_attempts,
			expires_at      = EXCLUDED.expires_at
	`,
		p.Reference, p.Amount, p.Phone, string(p.Method), string(p.Status), p.SessionID,
		p.CreatedAt, p.ExpiresAt, p.VerifiedAt, reasons, p.TransactionID, p.VerifyAttempts,
	)
	return err
}

func (r *PaymentPostgresRepository) ListByPhone(ctx context.Context, phone string) ([]entities.Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE phone = $1`, phone)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *PaymentPostgresRepository) List(ctx context.Context) ([]entities.Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]entities.Payment, error) {
	defer rows.Close()

	out := make([]entities.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (entities.Payment, error) {
	var (
		p          entities.Payment
		method     string
		status     string
		verifiedAt *time.Time
	)
	err := row.Scan(
		&p.Reference,
		&p.Amount,
		&p.Phone,
		&method,
		&status,
		&p.SessionID,
		&p.CreatedAt,
		&p.ExpiresAt,
		&verifiedAt,
		&p.FraudReasons,
		&p.TransactionID,
		&p.VerifyAttempts,
	)
	if err != nil {
		return entities.Payment{}, err
	}

	p.Method = entities.PaymentMethod(method)
	p.Status = entities.PaymentStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.ExpiresAt = p.ExpiresAt.UTC()
	if verifiedAt != nil {
		v := verifiedAt.UTC()
		p.VerifiedAt = &v
	}
	if len(p.FraudReasons) == 0 {
		p.FraudReasons = nil
	}
	return p, nil
}
