package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository
func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

const customerColumns = `id, tenant_id, name, COALESCE(email, ''), COALESCE(phone, ''),
	created_at, updated_at, deleted_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := row.Scan(
		&customer.ID,
		&customer.TenantID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Create persists a new customer
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, tenant_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.TenantID,
		customer.Name,
		nullStringOrValue(customer.Email),
		nullStringOrValue(customer.Phone),
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	return err
}

// GetByID retrieves a customer within the tenant
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// List retrieves customers, newest first
func (r *PostgresCustomerRepository) List(ctx context.Context, tenantID string, includeDeleted bool) ([]*domain.Customer, error) {
	whereClause := "WHERE tenant_id = $1"
	if !includeDeleted {
		whereClause += " AND deleted_at IS NULL"
	}

	query := fmt.Sprintf(`
		SELECT `+customerColumns+`
		FROM customers
		%s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// SoftDelete marks a customer deleted
func (r *PostgresCustomerRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE customers
		SET deleted_at = $3
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, tenantID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer not found or already deleted")
	}
	return nil
}
