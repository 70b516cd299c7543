package port

//go:generate mockgen -source=role_port.go -destination=../mocks/mock_role_port.go

import (
	"context"

	"portal-service/app/domain"
	"github.com/google/uuid"
)

// RoleUsecase defines the role resolver business logic interface.
// Snapshots are held per principal: one caller's load or refresh never
// changes what the resolver answers for another caller.
type RoleUsecase interface {
	// Ensure returns the held snapshot for the user, fetching it first
	// when none is held yet. A nil snapshot with a non-nil error means no
	// usable data exists for the user.
	Ensure(ctx context.Context, userID uuid.UUID) (*domain.UserSnapshot, error)

	// Refresh re-fetches the user's snapshot unconditionally. On failure
	// the previously held snapshot is retained, marked with RefreshError,
	// and returned alongside the error.
	Refresh(ctx context.Context, userID uuid.UUID) (*domain.UserSnapshot, error)

	// Snapshot returns the held snapshot without fetching
	Snapshot(userID uuid.UUID) (*domain.UserSnapshot, bool)

	// Lifecycle
	Reset(userID uuid.UUID)
	ResetAll()

	// Subscribe registers a callback fired when a user's snapshot changes
	Subscribe(fn func(userID uuid.UUID))
}

// RoleRepositoryPort defines role and profile data access
type RoleRepositoryPort interface {
	// FetchUserData issues the combined roles-plus-profile fetch
	FetchUserData(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, *domain.UserProfile, error)
	ListAssignments(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}
