package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// roleLoadErrorMessage is the user-facing message set when the combined
// roles-plus-profile fetch fails.
const roleLoadErrorMessage = "failed to load user data"

// RoleUseCase implements the role resolver. It holds one snapshot per
// principal: a caller's load, refresh, or failure never changes what the
// resolver answers for any other caller. A failed refresh retains that
// user's previous snapshot, marked with RefreshError, so guards can keep
// serving stale data until a refresh succeeds.
type RoleUseCase struct {
	repo   port.RoleRepositoryPort
	logger *slog.Logger

	mu          sync.RWMutex
	snapshots   map[uuid.UUID]*domain.UserSnapshot
	subscribers []func(uuid.UUID)
}

// NewRoleUseCase creates a new RoleUseCase instance
func NewRoleUseCase(repo port.RoleRepositoryPort, logger *slog.Logger) *RoleUseCase {
	return &RoleUseCase{
		repo:      repo,
		logger:    logger.With("component", "role_usecase"),
		snapshots: make(map[uuid.UUID]*domain.UserSnapshot),
	}
}

// Ensure returns the held snapshot for the user, fetching it first when
// none is held yet. A fetch failure with no prior snapshot returns the
// error; the next Ensure retries.
func (uc *RoleUseCase) Ensure(ctx context.Context, userID uuid.UUID) (*domain.UserSnapshot, error) {
	uc.mu.RLock()
	snapshot, held := uc.snapshots[userID]
	uc.mu.RUnlock()

	if held {
		return snapshot, nil
	}

	return uc.fetch(ctx, userID)
}

// Refresh re-fetches the user's snapshot unconditionally. On failure the
// previously held snapshot is retained, marked stale, and returned
// alongside the error.
func (uc *RoleUseCase) Refresh(ctx context.Context, userID uuid.UUID) (*domain.UserSnapshot, error) {
	snapshot, err := uc.fetch(ctx, userID)
	if err == nil {
		return snapshot, nil
	}

	uc.mu.Lock()
	previous, held := uc.snapshots[userID]
	if !held {
		uc.mu.Unlock()
		return nil, err
	}
	// Stale-but-available: the retained snapshot keeps answering until a
	// refresh succeeds.
	retained := *previous
	retained.RefreshError = roleLoadErrorMessage
	uc.snapshots[userID] = &retained
	uc.mu.Unlock()

	uc.notify(userID)
	return &retained, err
}

// Snapshot returns the held snapshot without fetching
func (uc *RoleUseCase) Snapshot(userID uuid.UUID) (*domain.UserSnapshot, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot, held := uc.snapshots[userID]
	return snapshot, held
}

// Reset drops the held snapshot for one user, used on sign-out
func (uc *RoleUseCase) Reset(userID uuid.UUID) {
	uc.mu.Lock()
	_, held := uc.snapshots[userID]
	delete(uc.snapshots, userID)
	uc.mu.Unlock()

	if held {
		uc.notify(userID)
	}
}

// ResetAll drops every held snapshot
func (uc *RoleUseCase) ResetAll() {
	uc.mu.Lock()
	dropped := make([]uuid.UUID, 0, len(uc.snapshots))
	for userID := range uc.snapshots {
		dropped = append(dropped, userID)
	}
	uc.snapshots = make(map[uuid.UUID]*domain.UserSnapshot)
	uc.mu.Unlock()

	for _, userID := range dropped {
		uc.notify(userID)
	}
}

// Subscribe registers a callback fired when a user's snapshot changes
func (uc *RoleUseCase) Subscribe(fn func(userID uuid.UUID)) {
	uc.mu.Lock()
	uc.subscribers = append(uc.subscribers, fn)
	uc.mu.Unlock()
}

func (uc *RoleUseCase) fetch(ctx context.Context, userID uuid.UUID) (*domain.UserSnapshot, error) {
	assignments, profile, err := uc.repo.FetchUserData(ctx, userID)
	if err != nil {
		uc.logger.Error("user data fetch failed", "user_id", userID, "error", err)
		return nil, err
	}

	roles := domain.NewRoleSet(assignments)

	snapshot := &domain.UserSnapshot{
		Roles:    roles,
		Profile:  profile,
		LoadedAt: time.Now(),
	}

	uc.mu.Lock()
	uc.snapshots[userID] = snapshot
	uc.mu.Unlock()

	uc.logger.Info("user data loaded", "user_id", userID, "roles", roles.Names())
	uc.notify(userID)
	return snapshot, nil
}

func (uc *RoleUseCase) notify(userID uuid.UUID) {
	uc.mu.RLock()
	subscribers := make([]func(uuid.UUID), len(uc.subscribers))
	copy(subscribers, uc.subscribers)
	uc.mu.RUnlock()

	for _, fn := range subscribers {
		fn(userID)
	}
}
