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

// PostgresRequestRepository implements RequestRepository using PostgreSQL
type PostgresRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRequestRepository creates a new PostgresRequestRepository
func NewPostgresRequestRepository(pool *pgxpool.Pool) *PostgresRequestRepository {
	return &PostgresRequestRepository{pool: pool}
}

const requestColumns = `id, tenant_id, COALESCE(customer_id, ''), COALESCE(artist_id, ''),
	name, COALESCE(email, ''), COALESCE(phone, ''), description,
	COALESCE(placement, ''), COALESCE(size, ''), COALESCE(budget, ''),
	status, last_contacted_at, created_at, updated_at, deleted_at`

func scanRequest(row pgx.Row) (*domain.AppointmentRequest, error) {
	req := &domain.AppointmentRequest{}
	err := row.Scan(
		&req.ID,
		&req.TenantID,
		&req.CustomerID,
		&req.ArtistID,
		&req.Name,
		&req.Email,
		&req.Phone,
		&req.Description,
		&req.Placement,
		&req.Size,
		&req.Budget,
		&req.Status,
		&req.LastContactedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Create persists a new intake record
func (r *PostgresRequestRepository) Create(ctx context.Context, req *domain.AppointmentRequest) error {
	query := `
		INSERT INTO appointment_requests
			(id, tenant_id, customer_id, artist_id, name, email, phone, description,
			 placement, size, budget, status, last_contacted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.TenantID,
		nullStringOrValue(req.CustomerID),
		nullStringOrValue(req.ArtistID),
		req.Name,
		nullStringOrValue(req.Email),
		nullStringOrValue(req.Phone),
		req.Description,
		nullStringOrValue(req.Placement),
		nullStringOrValue(req.Size),
		nullStringOrValue(req.Budget),
		req.Status,
		req.LastContactedAt,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

// GetByID retrieves a request within the tenant
func (r *PostgresRequestRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.AppointmentRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM appointment_requests
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

// List retrieves requests matching the filter, newest first
func (r *PostgresRequestRepository) List(ctx context.Context, tenantID string, filter RequestListFilter) ([]*domain.AppointmentRequest, error) {
	whereClause := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIndex := 2

	if !filter.IncludeDeleted {
		whereClause += " AND deleted_at IS NULL"
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.ArtistID != "" {
		whereClause += fmt.Sprintf(" AND artist_id = $%d", argIndex)
		args = append(args, filter.ArtistID)
		argIndex++
	}
	if filter.CustomerID != "" {
		whereClause += fmt.Sprintf(" AND customer_id = $%d", argIndex)
		args = append(args, filter.CustomerID)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT `+requestColumns+`
		FROM appointment_requests
		%s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.AppointmentRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Update persists status and contact timestamps
func (r *PostgresRequestRepository) Update(ctx context.Context, req *domain.AppointmentRequest) error {
	query := `
		UPDATE appointment_requests
		SET status = $3, last_contacted_at = $4, artist_id = $5, updated_at = $6
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	req.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		req.ID,
		req.TenantID,
		req.Status,
		req.LastContactedAt,
		nullStringOrValue(req.ArtistID),
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("request not found or already deleted")
	}
	return nil
}

// BulkUpdateStatus applies a status to every matching id within the tenant
func (r *PostgresRequestRepository) BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.RequestStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `
		UPDATE appointment_requests
		SET status = $3, updated_at = $4
		WHERE id = ANY($1) AND tenant_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, ids, tenantID, status, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// SoftDelete marks a request deleted
func (r *PostgresRequestRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE appointment_requests
		SET deleted_at = $3
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, tenantID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("request not found or already deleted")
	}
	return nil
}

// nullStringOrValue returns nil for empty strings, otherwise the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
