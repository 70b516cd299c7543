package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// AuthzRepository implements port.AuthzRepositoryPort over the
// can_access_organization database function.
type AuthzRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewAuthzRepository creates a new PostgreSQL authorization repository
func NewAuthzRepository(db Querier, logger *slog.Logger) port.AuthzRepositoryPort {
	return &AuthzRepository{
		db:     db,
		logger: logger.With("component", "authz_repository"),
	}
}

// CanAccessOrganization asks the database whether a user may access data
// scoped to the target organization.
func (r *AuthzRepository) CanAccessOrganization(ctx context.Context, userID, targetOrgID uuid.UUID) (bool, error) {
	query := `SELECT can_access_organization($1, $2)`

	var allowed bool
	if err := r.db.QueryRow(ctx, query, userID, targetOrgID).Scan(&allowed); err != nil {
		r.logger.Error("can_access_organization call failed",
			"user_id", userID,
			"target_org_id", targetOrgID,
			"error", err)
		return false, domain.NewBackendError(domain.ErrorKindTransport,
			fmt.Sprintf("authorization query for organization %s failed", targetOrgID), err)
	}

	return allowed, nil
}
