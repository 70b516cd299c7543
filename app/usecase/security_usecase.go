package usecase

import (
	"context"
	"log/slog"
	"time"

	"portal-service/app/domain"
	"portal-service/app/port"
	"portal-service/app/utils/metrics"
)

// securityEventTimeout bounds the fire-and-forget event write
const securityEventTimeout = 5 * time.Second

// SecurityUseCase implements the account lockout monitor over the remote
// lockout procedures. The remote store is the sole source of truth; this
// layer maps snapshots to display states and never mutates lockout state
// locally.
type SecurityUseCase struct {
	repo   port.SecurityRepositoryPort
	logger *slog.Logger
}

// NewSecurityUseCase creates a new SecurityUseCase instance
func NewSecurityUseCase(repo port.SecurityRepositoryPort, logger *slog.Logger) *SecurityUseCase {
	return &SecurityUseCase{
		repo:   repo,
		logger: logger.With("component", "security_usecase"),
	}
}

// CheckAccountSecurity queries the lockout snapshot for an email address.
// A transport failure returns nil: the caller must treat that as "status
// unknown", never "status clear". A locked administrator account is logged
// informationally and does not block.
func (uc *SecurityUseCase) CheckAccountSecurity(ctx context.Context, email string) *domain.LockoutStatus {
	status, err := uc.repo.CheckFailedLoginAttempts(ctx, email)
	if err != nil {
		metrics.LockoutCheckFailures.Inc()
		uc.logger.Error("lockout check failed", "email", email, "error", err)
		return nil
	}

	switch domain.StateFor(status) {
	case domain.LockoutStateLockedBlocking:
		uc.logger.Warn("account locked",
			"email", email,
			"failed_attempts", status.FailedAttempts,
			"message", status.Message)
	case domain.LockoutStateLockedExempt:
		uc.logger.Info("admin account exceeded lockout threshold, exempt from lockout",
			"email", email,
			"failed_attempts", status.FailedAttempts)
	}

	return status
}

// LogSecurityEvent records an auth event fire-and-forget. The write runs
// detached from the caller's lifecycle and its failure is only logged;
// event logging must never block or fail the auth flow it instruments.
func (uc *SecurityUseCase) LogSecurityEvent(ctx context.Context, event domain.SecurityEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), securityEventTimeout)
		defer cancel()

		if err := uc.repo.LogSecurityEvent(writeCtx, event); err != nil {
			uc.logger.Warn("security event write failed",
				"email", event.Email,
				"action", event.Action,
				"error", err)
		}
	}()
}

// GetUserLockoutStatus is the administrative lookup for any account's
// lockout snapshot.
func (uc *SecurityUseCase) GetUserLockoutStatus(ctx context.Context, email string) (*domain.LockoutStatus, error) {
	status, err := uc.repo.GetUserLockoutStatus(ctx, email)
	if err != nil {
		uc.logger.Error("lockout status lookup failed", "email", email, "error", err)
		return nil, err
	}
	return status, nil
}

// UnlockUserAccount clears recent failed attempts for an account. Callers
// re-query the lockout status afterwards; nothing is mutated locally.
func (uc *SecurityUseCase) UnlockUserAccount(ctx context.Context, email string) (*domain.UnlockResult, error) {
	result, err := uc.repo.UnlockUserAccount(ctx, email)
	if err != nil {
		uc.logger.Error("account unlock failed", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Info("account unlock completed",
		"email", email,
		"success", result.Success,
		"message", result.Message)
	return result, nil
}
