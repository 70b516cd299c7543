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

// RoleRepository implements port.RoleRepositoryPort for PostgreSQL
type RoleRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewRoleRepository creates a new PostgreSQL role repository
func NewRoleRepository(db Querier, logger *slog.Logger) port.RoleRepositoryPort {
	return &RoleRepository{
		db:     db,
		logger: logger.With("component", "role_repository"),
	}
}

// FetchUserData issues the combined roles-plus-profile fetch for one user
func (r *RoleRepository) FetchUserData(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, *domain.UserProfile, error) {
	assignments, err := r.ListAssignments(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := r.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return assignments, profile, nil
}

// ListAssignments returns all role assignments for a user
func (r *RoleRepository) ListAssignments(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error) {
	query := `
		SELECT user_id, role, assigned_at, assigned_by
		FROM role_assignments
		WHERE user_id = $1
		ORDER BY assigned_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query role assignments", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to query role assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.RoleAssignment
	for rows.Next() {
		var a domain.RoleAssignment
		if err := rows.Scan(&a.UserID, &a.Role, &a.AssignedAt, &a.AssignedBy); err != nil {
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role assignments: %w", err)
	}

	return assignments, nil
}

// GetProfile returns the profile record for a user
func (r *RoleRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
		SELECT id, email, first_name, last_name, job_title, avatar_url,
		       organization_id, organization_type, created_at, updated_at
		FROM user_profiles
		WHERE id = $1`

	profile := &domain.UserProfile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&profile.JobTitle,
		&profile.AvatarURL,
		&profile.OrganizationID,
		&profile.OrganizationType,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}
