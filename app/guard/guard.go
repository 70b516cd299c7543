// Package guard implements the declarative access guard state machine shared
// by the portal's authorization surfaces. Every guard resolves to one of
// four states: Loading, Authorized, Unauthorized, or Errored. Errored offers
// a retry transition back to Loading; denial is a normal Unauthorized
// outcome and never an error.
package guard

import (
	"context"

	"github.com/google/uuid"

	"portal-service/app/domain"
)

// State is the resolved state of a guard evaluation
type State string

const (
	StateLoading      State = "loading"
	StateAuthorized   State = "authorized"
	StateUnauthorized State = "unauthorized"
	StateErrored      State = "errored"
)

// Reason explains a non-authorized decision
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonOffline        Reason = "offline"
	ReasonSignInRequired Reason = "sign_in_required"
	ReasonMissingRole    Reason = "missing_role"
	ReasonOrgDenied      Reason = "organization_denied"
	ReasonLoadFailed     Reason = "load_failed"
	ReasonCheckFailed    Reason = "check_failed"
)

// Decision is the outcome of one guard evaluation
type Decision struct {
	State  State
	Reason Reason
	// Retryable is set on Errored decisions where an explicit retry can
	// transition the guard back to Loading.
	Retryable bool
}

func authorized() Decision {
	return Decision{State: StateAuthorized}
}

func unauthorized(reason Reason) Decision {
	return Decision{State: StateUnauthorized, Reason: reason}
}

func loading() Decision {
	return Decision{State: StateLoading}
}

func errored(reason Reason) Decision {
	return Decision{State: StateErrored, Reason: reason, Retryable: true}
}

// SessionView is the session provider state a guard evaluates against
type SessionView struct {
	Loading       bool
	Authenticated bool
	Online        bool
}

// Auth evaluates the authentication guard. The offline notice takes
// precedence over the unauthorized state so a signed-out user on a dead
// connection is told about the connection, not the missing session.
func Auth(view SessionView, requireAuth bool) Decision {
	if view.Loading {
		return loading()
	}
	if !view.Online {
		return unauthorized(ReasonOffline)
	}
	if requireAuth && !view.Authenticated {
		return unauthorized(ReasonSignInRequired)
	}
	return authorized()
}

// RoleView is the role resolver state a guard evaluates against.
// Known reports whether a usable role snapshot exists for the caller; Err
// carries the resolver's failure message. A snapshot that outlived a failed
// refresh arrives with Known true and Err set, and is still evaluated.
type RoleView struct {
	Loading bool
	Known   bool
	Err     string
	Roles   domain.RoleSet
}

// Roles evaluates the role guard. With requireAll false (the default) the
// guard authorizes when at least one allowed role is held; with requireAll
// true, only when every allowed role is held. Only a caller with no usable
// snapshot gets a retryable Errored decision; a stale snapshot keeps
// answering until a refresh succeeds.
func Roles(view RoleView, allowedRoles []domain.Role, requireAll bool) Decision {
	if view.Loading {
		return loading()
	}
	if !view.Known {
		return errored(ReasonLoadFailed)
	}

	ok := view.Roles.HasAny(allowedRoles)
	if requireAll {
		ok = view.Roles.HasAll(allowedRoles)
	}

	if !ok {
		return unauthorized(ReasonMissingRole)
	}
	return authorized()
}

// Admin is sugar for Roles with the admin role and requireAll false
func Admin(view RoleView) Decision {
	return Roles(view, []domain.Role{domain.RoleAdmin}, false)
}

// OrgChecker resolves whether the caller may access the target organization
type OrgChecker func(ctx context.Context, targetOrgID uuid.UUID) (bool, error)

// Security evaluates the organization-scope guard. A nil requiredOrgID means
// no organization constraint was requested and the guard authorizes
// immediately. Otherwise the decision defers to the checker; a checker error
// produces a retryable Errored decision.
func Security(ctx context.Context, requiredOrgID *uuid.UUID, check OrgChecker) Decision {
	if requiredOrgID == nil {
		return authorized()
	}

	ok, err := check(ctx, *requiredOrgID)
	if err != nil {
		return errored(ReasonCheckFailed)
	}
	if !ok {
		return unauthorized(ReasonOrgDenied)
	}
	return authorized()
}
