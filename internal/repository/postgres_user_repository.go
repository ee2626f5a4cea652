package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, tenant_id, name, email, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.TenantID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user within the tenant
func (r *PostgresUserRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`
	user, err := scanUser(r.pool.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email within the tenant
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1) AND tenant_id = $2 AND deleted_at IS NULL
	`
	user, err := scanUser(r.pool.QueryRow(ctx, query, email, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// List retrieves users, optionally filtered by role name (case-insensitive)
func (r *PostgresUserRepository) List(ctx context.Context, tenantID, roleName string) ([]*domain.User, error) {
	var (
		query string
		args  []interface{}
	)

	if roleName == "" {
		query = `
			SELECT ` + userColumns + `
			FROM users
			WHERE tenant_id = $1 AND deleted_at IS NULL
			ORDER BY created_at DESC
		`
		args = []interface{}{tenantID}
	} else {
		query = `
			SELECT u.id, u.tenant_id, u.name, u.email, u.created_at, u.updated_at, u.deleted_at
			FROM users u
			JOIN user_roles ur ON ur.user_id = u.id
			JOIN roles r ON r.id = ur.role_id
			WHERE u.tenant_id = $1 AND LOWER(r.name) = LOWER($2) AND u.deleted_at IS NULL
			ORDER BY u.created_at DESC
		`
		args = []interface{}{tenantID, roleName}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// RolesOf returns the role names assigned to a user within the tenant
func (r *PostgresUserRepository) RolesOf(ctx context.Context, tenantID, userID string) ([]string, error) {
	query := `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1 AND r.tenant_id = $2
	`
	rows, err := r.pool.Query(ctx, query, userID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// PostgresCredentialRepository implements CredentialRepository using PostgreSQL
type PostgresCredentialRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialRepository creates a new PostgresCredentialRepository
func NewPostgresCredentialRepository(pool *pgxpool.Pool) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{pool: pool}
}

// Create persists a new passkey credential
func (r *PostgresCredentialRepository) Create(ctx context.Context, cred *domain.PasskeyCredential) error {
	query := `
		INSERT INTO passkey_credentials (id, user_id, tenant_id, credential, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		cred.ID,
		cred.UserID,
		cred.TenantID,
		cred.Credential,
		cred.CreatedAt,
	)
	return err
}

// ListByUser retrieves all credentials registered by a user
func (r *PostgresCredentialRepository) ListByUser(ctx context.Context, tenantID, userID string) ([]*domain.PasskeyCredential, error) {
	query := `
		SELECT id, user_id, tenant_id, credential, created_at
		FROM passkey_credentials
		WHERE user_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	creds := make([]*domain.PasskeyCredential, 0)
	for rows.Next() {
		cred := &domain.PasskeyCredential{}
		if err := rows.Scan(&cred.ID, &cred.UserID, &cred.TenantID, &cred.Credential, &cred.CreatedAt); err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	return creds, rows.Err()
}
