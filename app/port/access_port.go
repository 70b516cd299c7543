package port

//go:generate mockgen -source=access_port.go -destination=../mocks/mock_access_port.go

import (
	"context"

	"github.com/google/uuid"
)

// AccessUsecase defines the organization access checker interface.
// Every check is bound to the caller: the decision and its cache entry
// belong to the given user ID alone. CheckOrganizationAccess never
// returns an error for a denial; a remote failure resolves to false
// after logging.
type AccessUsecase interface {
	CheckOrganizationAccess(ctx context.Context, userID, targetOrgID uuid.UUID) bool
	ValidateDataAccess(ctx context.Context, userID uuid.UUID, dataOrgID *uuid.UUID) bool
	ClearPermissionCache()
	InvalidateUser(userID uuid.UUID)
}

// AuthzRepositoryPort defines the remote authorization procedure surface
type AuthzRepositoryPort interface {
	CanAccessOrganization(ctx context.Context, userID, targetOrgID uuid.UUID) (bool, error)
}
