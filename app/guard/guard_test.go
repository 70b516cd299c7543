package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"portal-service/app/domain"
)

func roleSet(roles ...domain.Role) domain.RoleSet {
	assignments := make([]domain.RoleAssignment, 0, len(roles))
	for _, r := range roles {
		assignments = append(assignments, domain.RoleAssignment{Role: r})
	}
	return domain.NewRoleSet(assignments)
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		view        SessionView
		requireAuth bool
		wantState   State
		wantReason  Reason
	}{
		{
			name:      "loading while session check pending",
			view:      SessionView{Loading: true, Online: true},
			wantState: StateLoading,
		},
		{
			name:        "offline notice precedes sign-in prompt",
			view:        SessionView{Online: false, Authenticated: false},
			requireAuth: true,
			wantState:   StateUnauthorized,
			wantReason:  ReasonOffline,
		},
		{
			name:        "signed out with auth required",
			view:        SessionView{Online: true, Authenticated: false},
			requireAuth: true,
			wantState:   StateUnauthorized,
			wantReason:  ReasonSignInRequired,
		},
		{
			name:        "signed out without auth required",
			view:        SessionView{Online: true, Authenticated: false},
			requireAuth: false,
			wantState:   StateAuthorized,
		},
		{
			name:        "signed in",
			view:        SessionView{Online: true, Authenticated: true},
			requireAuth: true,
			wantState:   StateAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Auth(tt.view, tt.requireAuth)
			assert.Equal(t, tt.wantState, decision.State)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestRoles(t *testing.T) {
	tests := []struct {
		name       string
		view       RoleView
		allowed    []domain.Role
		requireAll bool
		wantState  State
	}{
		{
			name:      "loading while resolver pending",
			view:      RoleView{Loading: true},
			allowed:   []domain.Role{domain.RoleAdmin},
			wantState: StateLoading,
		},
		{
			name:      "no usable snapshot is retryable",
			view:      RoleView{Err: "failed to load user data"},
			allowed:   []domain.Role{domain.RoleAdmin},
			wantState: StateErrored,
		},
		{
			name:      "stale snapshot still authorizes",
			view:      RoleView{Known: true, Err: "failed to load user data", Roles: roleSet(domain.RoleAdmin)},
			allowed:   []domain.Role{domain.RoleAdmin},
			wantState: StateAuthorized,
		},
		{
			name:      "stale snapshot still denies on missing role",
			view:      RoleView{Known: true, Err: "failed to load user data", Roles: roleSet(domain.RoleSupport)},
			allowed:   []domain.Role{domain.RoleAdmin},
			wantState: StateUnauthorized,
		},
		{
			name:      "no overlap denies",
			view:      RoleView{Known: true, Roles: roleSet(domain.RoleSupport)},
			allowed:   []domain.Role{domain.RoleAdmin, domain.RoleManager},
			wantState: StateUnauthorized,
		},
		{
			name:      "single overlap authorizes with any-of",
			view:      RoleView{Known: true, Roles: roleSet(domain.RoleManager)},
			allowed:   []domain.Role{domain.RoleAdmin, domain.RoleManager},
			wantState: StateAuthorized,
		},
		{
			name:       "partial overlap denies with all-of",
			view:       RoleView{Known: true, Roles: roleSet(domain.RoleManager)},
			allowed:    []domain.Role{domain.RoleAdmin, domain.RoleManager},
			requireAll: true,
			wantState:  StateUnauthorized,
		},
		{
			name:       "full subset authorizes with all-of",
			view:       RoleView{Known: true, Roles: roleSet(domain.RoleAdmin, domain.RoleManager)},
			allowed:    []domain.Role{domain.RoleAdmin, domain.RoleManager},
			requireAll: true,
			wantState:  StateAuthorized,
		},
		{
			name:      "empty role set denies",
			view:      RoleView{Known: true, Roles: domain.RoleSet{}},
			allowed:   []domain.Role{domain.RoleClient},
			wantState: StateUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Roles(tt.view, tt.allowed, tt.requireAll)
			assert.Equal(t, tt.wantState, decision.State)
			if decision.State == StateErrored {
				assert.True(t, decision.Retryable)
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	assert.Equal(t, StateAuthorized, Admin(RoleView{Known: true, Roles: roleSet(domain.RoleAdmin)}).State)
	assert.Equal(t, StateUnauthorized, Admin(RoleView{Known: true, Roles: roleSet(domain.RoleManager)}).State)
}

func TestSecurity(t *testing.T) {
	orgID := uuid.New()

	t.Run("no org constraint authorizes immediately", func(t *testing.T) {
		called := false
		decision := Security(context.Background(), nil, func(ctx context.Context, id uuid.UUID) (bool, error) {
			called = true
			return false, nil
		})
		assert.Equal(t, StateAuthorized, decision.State)
		assert.False(t, called)
	})

	t.Run("checker grant authorizes", func(t *testing.T) {
		decision := Security(context.Background(), &orgID, func(ctx context.Context, id uuid.UUID) (bool, error) {
			assert.Equal(t, orgID, id)
			return true, nil
		})
		assert.Equal(t, StateAuthorized, decision.State)
	})

	t.Run("checker denial is unauthorized, not an error", func(t *testing.T) {
		decision := Security(context.Background(), &orgID, func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		})
		assert.Equal(t, StateUnauthorized, decision.State)
		assert.Equal(t, ReasonOrgDenied, decision.Reason)
	})

	t.Run("checker failure is retryable errored", func(t *testing.T) {
		decision := Security(context.Background(), &orgID, func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, errors.New("authorization query failed")
		})
		assert.Equal(t, StateErrored, decision.State)
		assert.True(t, decision.Retryable)
	})
}
