package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// OrganizationUseCase implements the organization resolver. Membership is
// derived per principal from that user's role snapshot; organization
// records themselves are shared across users and cached by ID. A snapshot
// that is not loadable reads as "not yet determined" rather than "no
// organization" so a resolver failure never produces a false negative.
type OrganizationUseCase struct {
	repo       port.OrganizationRepositoryPort
	roles      port.RoleUsecase
	guestOrgID uuid.UUID
	logger     *slog.Logger

	mu   sync.RWMutex
	orgs map[uuid.UUID]*domain.Organization
}

// NewOrganizationUseCase creates a new OrganizationUseCase instance
func NewOrganizationUseCase(repo port.OrganizationRepositoryPort, roles port.RoleUsecase, guestOrgID uuid.UUID, logger *slog.Logger) *OrganizationUseCase {
	return &OrganizationUseCase{
		repo:       repo,
		roles:      roles,
		guestOrgID: guestOrgID,
		logger:     logger.With("component", "organization_usecase"),
		orgs:       make(map[uuid.UUID]*domain.Organization),
	}
}

// MembershipFor resolves the user's organization standing from their role
// snapshot. A failed organization record lookup degrades to a view without
// the record; the membership classification still holds.
func (uc *OrganizationUseCase) MembershipFor(ctx context.Context, userID uuid.UUID) (*domain.MembershipView, error) {
	snapshot, err := uc.roles.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}

	orgID := snapshot.OwnOrganizationID()
	view := &domain.MembershipView{
		OrganizationID:    orgID,
		Membership:        domain.ClassifyMembership(orgID, uc.guestOrgID),
		CrossOrganization: snapshot.IsAdmin(),
	}

	if orgID == nil {
		return view, nil
	}

	org, err := uc.organization(ctx, *orgID)
	if err != nil {
		uc.logger.Warn("organization record unavailable", "organization_id", orgID, "user_id", userID, "error", err)
		return view, nil
	}
	view.Organization = org

	return view, nil
}

// OrganizationName resolves the display name for an organization ID
func (uc *OrganizationUseCase) OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error) {
	org, err := uc.organization(ctx, orgID)
	if err != nil {
		return "", err
	}
	return org.Name, nil
}

func (uc *OrganizationUseCase) organization(ctx context.Context, orgID uuid.UUID) (*domain.Organization, error) {
	uc.mu.RLock()
	org, held := uc.orgs[orgID]
	uc.mu.RUnlock()
	if held {
		return org, nil
	}

	org, err := uc.repo.GetByID(ctx, orgID)
	if err != nil {
		uc.logger.Error("organization fetch failed", "organization_id", orgID, "error", err)
		return nil, err
	}

	uc.mu.Lock()
	uc.orgs[orgID] = org
	uc.mu.Unlock()

	uc.logger.Info("organization loaded", "organization_id", org.ID, "name", org.Name)
	return org, nil
}
