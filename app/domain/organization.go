package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrganizationStatus represents the status of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
	OrganizationStatusDeleted   OrganizationStatus = "deleted"
)

// Organization represents a tenant boundary in the portal.
// Every profile's organization reference points to at most one Organization.
type Organization struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Status      OrganizationStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   *time.Time         `json:"deleted_at,omitempty"`
}

// NewOrganization creates a new organization with validation
func NewOrganization(name string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if len(name) > 200 {
		return nil, fmt.Errorf("name must be 200 characters or less")
	}

	now := time.Now()

	return &Organization{
		ID:        uuid.New(),
		Name:      name,
		Status:    OrganizationStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Suspend suspends the organization
func (o *Organization) Suspend() {
	o.Status = OrganizationStatusSuspended
	o.UpdatedAt = time.Now()
}

// Activate activates the organization
func (o *Organization) Activate() {
	o.Status = OrganizationStatusActive
	o.UpdatedAt = time.Now()
}

// SoftDelete marks the organization as deleted
func (o *Organization) SoftDelete() {
	now := time.Now()
	o.DeletedAt = &now
	o.Status = OrganizationStatusDeleted
	o.UpdatedAt = now
}

// IsActive returns true if the organization is active
func (o *Organization) IsActive() bool {
	return o.Status == OrganizationStatusActive
}

// IsDeleted returns true if the organization is soft deleted
func (o *Organization) IsDeleted() bool {
	return o.DeletedAt != nil || o.Status == OrganizationStatusDeleted
}

// OrganizationMembership classifies a user's relationship to organizations.
// Exactly one of the three states holds for any profile:
//   - Member: organization reference set, not the guest organization
//   - Guest: organization reference equals the reserved guest organization
//   - Unassigned: no organization reference at all
type OrganizationMembership int

const (
	MembershipUnassigned OrganizationMembership = iota
	MembershipGuest
	MembershipMember
)

// ClassifyMembership determines the membership state for a profile's
// organization reference against the injected guest organization ID.
func ClassifyMembership(orgID *uuid.UUID, guestOrgID uuid.UUID) OrganizationMembership {
	if orgID == nil {
		return MembershipUnassigned
	}
	if *orgID == guestOrgID {
		return MembershipGuest
	}
	return MembershipMember
}

// MembershipView is one principal's resolved organization standing.
// Organization is nil when the user is unassigned or the lookup failed;
// the membership flags are still meaningful in that case.
type MembershipView struct {
	OrganizationID    *uuid.UUID    `json:"organization_id,omitempty"`
	Organization      *Organization `json:"organization,omitempty"`
	Membership        OrganizationMembership
	CrossOrganization bool `json:"cross_organization"`
}

// HasOrganization returns true for full members of a real organization
func (v *MembershipView) HasOrganization() bool {
	return v.Membership == MembershipMember
}

// IsGuest returns true for members of the reserved guest organization
func (v *MembershipView) IsGuest() bool {
	return v.Membership == MembershipGuest
}
