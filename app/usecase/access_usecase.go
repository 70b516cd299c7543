package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"portal-service/app/port"
	"portal-service/app/utils/metrics"
)

// AccessUseCase implements the organization access checker. Every check is
// bound to the caller's identity: the decision derives from that user's own
// role snapshot and the cache is keyed by (user, target organization), so
// one caller's grant is never served to another. Concurrent misses for the
// same pair may both call the remote procedure; both resolve to the same
// cached value afterward.
type AccessUseCase struct {
	authz  port.AuthzRepositoryPort
	roles  port.RoleUsecase
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]bool

	// identities tracks the own-organization reference each user's cache
	// entries were built under so the subscription can tell a real org
	// change from an unrelated snapshot refresh.
	identities map[uuid.UUID]string
}

// NewAccessUseCase creates the checker and subscribes it to role snapshot
// changes for automatic per-user cache invalidation.
func NewAccessUseCase(authz port.AuthzRepositoryPort, roles port.RoleUsecase, logger *slog.Logger) *AccessUseCase {
	uc := &AccessUseCase{
		authz:      authz,
		roles:      roles,
		logger:     logger.With("component", "access_usecase"),
		cache:      make(map[string]bool),
		identities: make(map[uuid.UUID]string),
	}

	roles.Subscribe(uc.onUserDataChanged)

	return uc
}

// CheckOrganizationAccess decides whether the given user may access data
// scoped to the target organization. Administrators are granted without a
// remote call. Grants and denials are both cached per (user, target); a
// remote failure resolves to false, is logged, and is not cached.
func (uc *AccessUseCase) CheckOrganizationAccess(ctx context.Context, userID, targetOrgID uuid.UUID) bool {
	key := cacheKey(userID, targetOrgID)

	uc.mu.Lock()
	granted, hit := uc.cache[key]
	uc.mu.Unlock()

	if hit {
		metrics.AccessCacheHits.Inc()
		return granted
	}

	snapshot, err := uc.roles.Ensure(ctx, userID)
	if err != nil {
		metrics.AccessCheckFailures.Inc()
		uc.logger.Error("access check aborted, user data unavailable", "user_id", userID, "target_org_id", targetOrgID, "error", err)
		return false
	}

	if snapshot.IsAdmin() {
		uc.store(key, true)
		return true
	}

	granted, err = uc.authz.CanAccessOrganization(ctx, userID, targetOrgID)
	if err != nil {
		metrics.AccessCheckFailures.Inc()
		uc.logger.Error("organization access check failed", "user_id", userID, "target_org_id", targetOrgID, "error", err)
		return false
	}

	uc.store(key, granted)
	return granted
}

// ValidateDataAccess is the synchronous companion: nil means public data and
// is always accessible; otherwise access requires cross-organization scope
// or an exact match with the caller's own organization.
func (uc *AccessUseCase) ValidateDataAccess(ctx context.Context, userID uuid.UUID, dataOrgID *uuid.UUID) bool {
	if dataOrgID == nil {
		return true
	}

	snapshot, err := uc.roles.Ensure(ctx, userID)
	if err != nil {
		uc.logger.Error("data access check aborted, user data unavailable", "user_id", userID, "error", err)
		return false
	}

	if snapshot.IsAdmin() {
		return true
	}

	ownOrgID := snapshot.OwnOrganizationID()
	return ownOrgID != nil && *ownOrgID == *dataOrgID
}

// ClearPermissionCache drops all memoized results for all users
func (uc *AccessUseCase) ClearPermissionCache() {
	uc.mu.Lock()
	uc.cache = make(map[string]bool)
	uc.identities = make(map[uuid.UUID]string)
	uc.mu.Unlock()

	uc.logger.Debug("permission cache cleared")
}

// InvalidateUser drops the memoized results for one user, used on sign-out
func (uc *AccessUseCase) InvalidateUser(userID uuid.UUID) {
	uc.mu.Lock()
	uc.dropUserLocked(userID)
	delete(uc.identities, userID)
	uc.mu.Unlock()

	uc.logger.Debug("permission cache invalidated", "user_id", userID)
}

func (uc *AccessUseCase) store(key string, granted bool) {
	uc.mu.Lock()
	uc.cache[key] = granted
	uc.mu.Unlock()
}

// onUserDataChanged invalidates one user's cache entries when that user's
// own organization reference changes.
func (uc *AccessUseCase) onUserDataChanged(userID uuid.UUID) {
	identity := uc.identityKey(userID)

	uc.mu.Lock()
	changed := identity != uc.identities[userID]
	if changed {
		uc.identities[userID] = identity
		uc.dropUserLocked(userID)
	}
	uc.mu.Unlock()

	if changed {
		uc.logger.Debug("permission cache invalidated", "user_id", userID, "identity", identity)
	}
}

func (uc *AccessUseCase) dropUserLocked(userID uuid.UUID) {
	prefix := userID.String() + "/"
	for key := range uc.cache {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(uc.cache, key)
		}
	}
}

func (uc *AccessUseCase) identityKey(userID uuid.UUID) string {
	snapshot, held := uc.roles.Snapshot(userID)
	if !held {
		return ""
	}
	key := userID.String()
	if orgID := snapshot.OwnOrganizationID(); orgID != nil {
		key += "@" + orgID.String()
	}
	return key
}

func cacheKey(userID, targetOrgID uuid.UUID) string {
	return userID.String() + "/" + targetOrgID.String()
}
