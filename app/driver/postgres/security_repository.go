package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// SecurityRepository implements port.SecurityRepositoryPort over the
// lockout and audit procedures. All lockout policy (attempt threshold,
// window, lock duration) is enforced inside the database functions; this
// layer only marshals arguments and results.
type SecurityRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewSecurityRepository creates a new PostgreSQL security repository
func NewSecurityRepository(db Querier, logger *slog.Logger) port.SecurityRepositoryPort {
	return &SecurityRepository{
		db:     db,
		logger: logger.With("component", "security_repository"),
	}
}

// CheckFailedLoginAttempts runs the pre-sign-in lockout check for an email
func (r *SecurityRepository) CheckFailedLoginAttempts(ctx context.Context, email string) (*domain.LockoutStatus, error) {
	query := `
		SELECT is_locked, failed_attempts, remaining_attempts,
		       lockout_until, remaining_minutes, message, is_admin
		FROM check_failed_login_attempts($1)`

	status := &domain.LockoutStatus{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&status.IsLocked,
		&status.FailedAttempts,
		&status.RemainingAttempts,
		&status.LockoutUntil,
		&status.RemainingMinutes,
		&status.Message,
		&status.IsAdmin,
	)
	if err != nil {
		r.logger.Error("check_failed_login_attempts call failed", "error", err)
		return nil, domain.NewBackendError(domain.ErrorKindTransport,
			"failed-login check failed", err)
	}

	return status, nil
}

// GetUserLockoutStatus returns the current lockout snapshot for an email
func (r *SecurityRepository) GetUserLockoutStatus(ctx context.Context, email string) (*domain.LockoutStatus, error) {
	query := `
		SELECT is_locked, failed_attempts, remaining_attempts,
		       lockout_until, remaining_minutes, message, is_admin
		FROM get_user_lockout_status($1)`

	status := &domain.LockoutStatus{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&status.IsLocked,
		&status.FailedAttempts,
		&status.RemainingAttempts,
		&status.LockoutUntil,
		&status.RemainingMinutes,
		&status.Message,
		&status.IsAdmin,
	)
	if err != nil {
		r.logger.Error("get_user_lockout_status call failed", "error", err)
		return nil, domain.NewBackendError(domain.ErrorKindTransport,
			"lockout status query failed", err)
	}

	return status, nil
}

// UnlockUserAccount clears the failed-attempt history for an email
func (r *SecurityRepository) UnlockUserAccount(ctx context.Context, email string) (*domain.UnlockResult, error) {
	query := `SELECT success, message, cleared_attempts FROM unlock_user_account($1)`

	result := &domain.UnlockResult{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&result.Success,
		&result.Message,
		&result.ClearedAttempts,
	)
	if err != nil {
		r.logger.Error("unlock_user_account call failed", "error", err)
		return nil, domain.NewBackendError(domain.ErrorKindTransport,
			"account unlock failed", err)
	}

	return result, nil
}

// LogSecurityEvent records one auth event through the log procedure
func (r *SecurityRepository) LogSecurityEvent(ctx context.Context, event domain.SecurityEvent) error {
	query := `SELECT log_security_event($1, $2, $3, $4, $5, $6)`

	var contextJSON []byte
	if event.Context != nil {
		var err error
		contextJSON, err = json.Marshal(event.Context)
		if err != nil {
			return fmt.Errorf("failed to encode event context: %w", err)
		}
	}

	_, err := r.db.Exec(ctx, query,
		event.Email,
		event.Action,
		event.Success,
		nullableString(event.UserAgent),
		nullableString(event.ErrorMessage),
		contextJSON,
	)
	if err != nil {
		r.logger.Error("log_security_event call failed", "action", event.Action, "error", err)
		return domain.NewBackendError(domain.ErrorKindTransport,
			"security event logging failed", err)
	}

	return nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
