package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

// Create persists a new pending payment intent
func (r *PostgresPaymentRepository) Create(ctx context.Context, intent *domain.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents
			(id, tenant_id, customer_id, provider_ref, amount_cents, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		intent.ID,
		intent.TenantID,
		nullStringOrValue(intent.CustomerID),
		intent.ProviderRef,
		intent.AmountCents,
		intent.Currency,
		intent.Status,
		intent.CreatedAt,
		intent.UpdatedAt,
	)
	return err
}

// GetByProviderRef retrieves an intent by provider reference
func (r *PostgresPaymentRepository) GetByProviderRef(ctx context.Context, providerRef string) (*domain.PaymentIntent, error) {
	query := `
		SELECT id, tenant_id, COALESCE(customer_id, ''), provider_ref,
		       amount_cents, currency, status, created_at, updated_at
		FROM payment_intents
		WHERE provider_ref = $1
	`
	intent := &domain.PaymentIntent{}
	err := r.pool.QueryRow(ctx, query, providerRef).Scan(
		&intent.ID,
		&intent.TenantID,
		&intent.CustomerID,
		&intent.ProviderRef,
		&intent.AmountCents,
		&intent.Currency,
		&intent.Status,
		&intent.CreatedAt,
		&intent.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return intent, nil
}

// UpdateStatusByProviderRef sets the status of matching intents
func (r *PostgresPaymentRepository) UpdateStatusByProviderRef(ctx context.Context, providerRef string, status domain.PaymentStatus) (int64, error) {
	query := `
		UPDATE payment_intents
		SET status = $2, updated_at = $3
		WHERE provider_ref = $1
	`
	result, err := r.pool.Exec(ctx, query, providerRef, status, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
