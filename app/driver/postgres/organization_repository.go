package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// OrganizationRepository implements port.OrganizationRepositoryPort for PostgreSQL
type OrganizationRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewOrganizationRepository creates a new PostgreSQL organization repository
func NewOrganizationRepository(db Querier, logger *slog.Logger) port.OrganizationRepositoryPort {
	return &OrganizationRepository{
		db:     db,
		logger: logger.With("component", "organization_repository"),
	}
}

// GetByID returns the organization record for an ID
func (r *OrganizationRepository) GetByID(ctx context.Context, orgID uuid.UUID) (*domain.Organization, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at, deleted_at
		FROM organizations
		WHERE id = $1 AND deleted_at IS NULL`

	org := &domain.Organization{}
	err := r.db.QueryRow(ctx, query, orgID).Scan(
		&org.ID,
		&org.Name,
		&org.Description,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
		&org.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		r.logger.Error("failed to get organization", "organization_id", orgID, "error", err)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// List returns organizations with pagination
func (r *OrganizationRepository) List(ctx context.Context, limit, offset int) ([]*domain.Organization, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at, deleted_at
		FROM organizations
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list organizations", "error", err)
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		org := &domain.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.Status, &org.CreatedAt, &org.UpdatedAt, &org.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizations: %w", err)
	}

	return orgs, nil
}
