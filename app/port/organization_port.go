package port

//go:generate mockgen -source=organization_port.go -destination=../mocks/mock_organization_port.go

import (
	"context"

	"portal-service/app/domain"
	"github.com/google/uuid"
)

// OrganizationUsecase defines the organization resolver business logic
// interface. Membership is derived per principal from that user's role
// snapshot; organization records themselves are shared and cached.
type OrganizationUsecase interface {
	// MembershipFor resolves the user's organization standing. A failed
	// organization record lookup degrades to a view without the record;
	// an error means the user's snapshot itself is unavailable.
	MembershipFor(ctx context.Context, userID uuid.UUID) (*domain.MembershipView, error)

	OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error)
}

// OrganizationRepositoryPort defines organization data access
type OrganizationRepositoryPort interface {
	GetByID(ctx context.Context, orgID uuid.UUID) (*domain.Organization, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Organization, error)
}
