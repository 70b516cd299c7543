package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role represents one capability tier a user can hold
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSupport Role = "support"
	RoleClient  Role = "client"
)

// validRoles is the closed set of role names accepted by the system
var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleSupport: true,
	RoleClient:  true,
}

// IsValid returns true if the role is one of the enumerated set
func (r Role) IsValid() bool {
	return validRoles[r]
}

// RoleAssignment represents a grant of one role to a user
type RoleAssignment struct {
	UserID     uuid.UUID  `json:"user_id"`
	Role       Role       `json:"role"`
	AssignedAt time.Time  `json:"assigned_at"`
	AssignedBy *uuid.UUID `json:"assigned_by,omitempty"`
}

// NewRoleAssignment creates a role assignment with validation
func NewRoleAssignment(userID uuid.UUID, role Role, assignedBy *uuid.UUID) (*RoleAssignment, error) {
	if userID == (uuid.UUID{}) {
		return nil, fmt.Errorf("user ID is required")
	}

	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &RoleAssignment{
		UserID:     userID,
		Role:       role,
		AssignedAt: time.Now(),
		AssignedBy: assignedBy,
	}, nil
}

// RoleSet is the set of roles resolved for one user.
// An empty set means no roles loaded yet, or the user has none.
type RoleSet map[Role]struct{}

// NewRoleSet builds a role set from assignments, dropping duplicates
// and any role outside the enumerated set.
func NewRoleSet(assignments []RoleAssignment) RoleSet {
	set := make(RoleSet, len(assignments))
	for _, a := range assignments {
		if a.Role.IsValid() {
			set[a.Role] = struct{}{}
		}
	}
	return set
}

// Has returns true if the set contains the given role
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// HasAny returns true if the set contains at least one of the given roles
func (s RoleSet) HasAny(roles []Role) bool {
	for _, role := range roles {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// HasAll returns true if the set contains every one of the given roles.
// An empty slice is vacuously satisfied.
func (s RoleSet) HasAll(roles []Role) bool {
	for _, role := range roles {
		if !s.Has(role) {
			return false
		}
	}
	return true
}

// IsAdmin returns true if the set contains the admin role
func (s RoleSet) IsAdmin() bool {
	return s.Has(RoleAdmin)
}

// Names returns the roles as strings, for logging
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for role := range s {
		names = append(names, string(role))
	}
	return names
}
