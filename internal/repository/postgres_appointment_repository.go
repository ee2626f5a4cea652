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

// PostgresAppointmentRepository implements AppointmentRepository using PostgreSQL
type PostgresAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAppointmentRepository creates a new PostgresAppointmentRepository
func NewPostgresAppointmentRepository(pool *pgxpool.Pool) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{pool: pool}
}

const appointmentColumns = `id, tenant_id, COALESCE(customer_id, ''), artist_id,
	title, start_time, created_at, updated_at, deleted_at`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	appt := &domain.Appointment{}
	err := row.Scan(
		&appt.ID,
		&appt.TenantID,
		&appt.CustomerID,
		&appt.ArtistID,
		&appt.Title,
		&appt.StartTime,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&appt.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// Create persists a new appointment
func (r *PostgresAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	query := `
		INSERT INTO appointments
			(id, tenant_id, customer_id, artist_id, title, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		appt.ID,
		appt.TenantID,
		nullStringOrValue(appt.CustomerID),
		appt.ArtistID,
		appt.Title,
		appt.StartTime,
		appt.CreatedAt,
		appt.UpdatedAt,
	)
	return err
}

// GetByID retrieves an appointment within the tenant
func (r *PostgresAppointmentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	appt, err := scanAppointment(r.pool.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return appt, nil
}

// List retrieves appointments matching the filter, start_time descending
func (r *PostgresAppointmentRepository) List(ctx context.Context, tenantID string, filter AppointmentListFilter) ([]*domain.Appointment, error) {
	whereClause := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIndex := 2

	if !filter.IncludeDeleted {
		whereClause += " AND deleted_at IS NULL"
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
		SELECT `+appointmentColumns+`
		FROM appointments
		%s
		ORDER BY start_time DESC
	`, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}
	return appointments, rows.Err()
}

// SoftDelete marks an appointment deleted
func (r *PostgresAppointmentRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE appointments
		SET deleted_at = $3
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, tenantID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found or already deleted")
	}
	return nil
}

// PostgresAvailabilityRepository implements AvailabilityRepository using PostgreSQL
type PostgresAvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAvailabilityRepository creates a new PostgresAvailabilityRepository
func NewPostgresAvailabilityRepository(pool *pgxpool.Pool) *PostgresAvailabilityRepository {
	return &PostgresAvailabilityRepository{pool: pool}
}

// Create persists a new availability block
func (r *PostgresAvailabilityRepository) Create(ctx context.Context, block *domain.AvailabilityBlock) error {
	query := `
		INSERT INTO availability_blocks
			(id, tenant_id, artist_id, start_time, end_time, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		block.ID,
		block.TenantID,
		block.ArtistID,
		block.StartTime,
		block.EndTime,
		nullStringOrValue(block.Reason),
		block.CreatedAt,
	)
	return err
}

// GetByID retrieves a block within the tenant
func (r *PostgresAvailabilityRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.AvailabilityBlock, error) {
	query := `
		SELECT id, tenant_id, artist_id, start_time, end_time, COALESCE(reason, ''), created_at, deleted_at
		FROM availability_blocks
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	block := &domain.AvailabilityBlock{}
	err := r.pool.QueryRow(ctx, query, id, tenantID).Scan(
		&block.ID,
		&block.TenantID,
		&block.ArtistID,
		&block.StartTime,
		&block.EndTime,
		&block.Reason,
		&block.CreatedAt,
		&block.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return block, nil
}

// SoftDelete marks a block deleted
func (r *PostgresAvailabilityRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE availability_blocks
		SET deleted_at = $3
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, tenantID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("availability block not found or already deleted")
	}
	return nil
}
