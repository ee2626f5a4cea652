package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// PostgresFileRepository implements FileRepository using PostgreSQL
type PostgresFileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFileRepository creates a new PostgresFileRepository
func NewPostgresFileRepository(pool *pgxpool.Pool) *PostgresFileRepository {
	return &PostgresFileRepository{pool: pool}
}

// Create persists a new file record
func (r *PostgresFileRepository) Create(ctx context.Context, file *domain.File) error {
	query := `
		INSERT INTO files
			(id, tenant_id, association, owner_id, name, content_type, url, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		file.ID,
		file.TenantID,
		file.Association,
		file.OwnerID,
		file.Name,
		nullStringOrValue(file.ContentType),
		file.URL,
		file.SizeBytes,
		file.CreatedAt,
	)
	return err
}

// List retrieves files matching the filter, newest first
func (r *PostgresFileRepository) List(ctx context.Context, tenantID string, filter FileListFilter) ([]*domain.File, error) {
	whereClause := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}

	if !filter.IncludeDeleted {
		whereClause += " AND deleted_at IS NULL"
	}
	if filter.Association != nil {
		whereClause += " AND association = $2"
		args = append(args, *filter.Association)
	}

	query := fmt.Sprintf(`
		SELECT id, tenant_id, association, owner_id, name, COALESCE(content_type, ''),
		       url, size_bytes, created_at, deleted_at
		FROM files
		%s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]*domain.File, 0)
	for rows.Next() {
		file := &domain.File{}
		err := rows.Scan(
			&file.ID,
			&file.TenantID,
			&file.Association,
			&file.OwnerID,
			&file.Name,
			&file.ContentType,
			&file.URL,
			&file.SizeBytes,
			&file.CreatedAt,
			&file.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}
