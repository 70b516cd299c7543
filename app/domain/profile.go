package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// OrganizationType tags a profile with the kind of organization it belongs to
type OrganizationType string

const (
	OrganizationTypeCustomer OrganizationType = "customer"
	OrganizationTypePartner  OrganizationType = "partner"
	OrganizationTypeInternal OrganizationType = "internal"
	OrganizationTypeGuest    OrganizationType = "guest"
)

// UserProfile represents account metadata for a portal user.
// OrganizationID is nil for users not yet assigned to any organization;
// that state is distinct from membership in the guest organization.
type UserProfile struct {
	ID               uuid.UUID        `json:"id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	JobTitle         string           `json:"job_title,omitempty"`
	AvatarURL        string           `json:"avatar_url,omitempty"`
	OrganizationID   *uuid.UUID       `json:"organization_id,omitempty"`
	OrganizationType OrganizationType `json:"organization_type,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewUserProfile creates a profile with validation
func NewUserProfile(id uuid.UUID, email string) (*UserProfile, error) {
	if id == (uuid.UUID{}) {
		return nil, fmt.Errorf("profile ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	now := time.Now()

	return &UserProfile{
		ID:        id,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FullName returns the display name for the profile
func (p *UserProfile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	default:
		return p.Email
	}
}

// AssignOrganization sets the profile's organization reference
func (p *UserProfile) AssignOrganization(orgID uuid.UUID, orgType OrganizationType) {
	p.OrganizationID = &orgID
	p.OrganizationType = orgType
	p.UpdatedAt = time.Now()
}

// UserSnapshot is the combined result of one roles-plus-profile fetch for
// one principal. The resolver holds the last successfully loaded snapshot
// per user and keeps serving it when a refresh fails; RefreshError carries
// the message from the most recent failed refresh and clears on success.
type UserSnapshot struct {
	Roles        RoleSet      `json:"roles"`
	Profile      *UserProfile `json:"profile"`
	LoadedAt     time.Time    `json:"loaded_at"`
	RefreshError string       `json:"refresh_error,omitempty"`
}

// IsAdmin returns true if the snapshot's role set contains admin
func (s *UserSnapshot) IsAdmin() bool {
	return s.Roles.IsAdmin()
}

// HasRole returns true if the snapshot's role set contains the role
func (s *UserSnapshot) HasRole(role Role) bool {
	return s.Roles.Has(role)
}

// HasAnyRole returns true if the snapshot's role set contains any of the
// given roles
func (s *UserSnapshot) HasAnyRole(roles []Role) bool {
	return s.Roles.HasAny(roles)
}

// Stale reports whether the snapshot outlived a failed refresh
func (s *UserSnapshot) Stale() bool {
	return s.RefreshError != ""
}

// OwnOrganizationID returns the profile's organization reference, nil when
// the profile is missing or unassigned
func (s *UserSnapshot) OwnOrganizationID() *uuid.UUID {
	if s.Profile == nil {
		return nil
	}
	return s.Profile.OrganizationID
}
