package postgres

import (
	"context"
	"testing"
	"time"

	"portal-service/app/domain"
	"portal-service/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test security repository with mocked database
func createTestSecurityRepository(t *testing.T) (*SecurityRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewSecurityRepository(mockDB, testLogger).(*SecurityRepository)

	return repo, mockDB
}

func lockoutColumns() []string {
	return []string{
		"is_locked", "failed_attempts", "remaining_attempts",
		"lockout_until", "remaining_minutes", "message", "is_admin",
	}
}

func intPtr(n int) *int { return &n }

func TestSecurityRepository_CheckFailedLoginAttempts(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupDB        func(pgxmock.PgxPoolIface, string)
		wantErr        bool
		validateStatus func(*testing.T, *domain.LockoutStatus)
	}{
		{
			name:  "account not locked",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_failed_login_attempts").
					WithArgs(email).
					WillReturnRows(
						pgxmock.NewRows(lockoutColumns()).
							AddRow(false, 3, intPtr(12), nil, nil, "Account is not locked", false),
					)
			},
			validateStatus: func(t *testing.T, status *domain.LockoutStatus) {
				assert.False(t, status.IsLocked)
				assert.Equal(t, 3, status.FailedAttempts)
				require.NotNil(t, status.RemainingAttempts)
				assert.Equal(t, 12, *status.RemainingAttempts)
				assert.False(t, status.Blocking())
			},
		},
		{
			name:  "account locked",
			email: "locked@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				until := time.Now().Add(25 * time.Minute)
				mockDB.ExpectQuery("SELECT(.+)FROM check_failed_login_attempts").
					WithArgs(email).
					WillReturnRows(
						pgxmock.NewRows(lockoutColumns()).
							AddRow(true, 15, intPtr(0), &until, intPtr(25), "Account temporarily locked", false),
					)
			},
			validateStatus: func(t *testing.T, status *domain.LockoutStatus) {
				assert.True(t, status.IsLocked)
				assert.True(t, status.Blocking())
				require.NotNil(t, status.RemainingMinutes)
				assert.Equal(t, 25, *status.RemainingMinutes)
			},
		},
		{
			name:  "locked administrator is exempt",
			email: "admin@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				until := time.Now().Add(10 * time.Minute)
				mockDB.ExpectQuery("SELECT(.+)FROM check_failed_login_attempts").
					WithArgs(email).
					WillReturnRows(
						pgxmock.NewRows(lockoutColumns()).
							AddRow(true, 20, intPtr(0), &until, intPtr(10), "Account temporarily locked", true),
					)
			},
			validateStatus: func(t *testing.T, status *domain.LockoutStatus) {
				assert.True(t, status.IsLocked)
				assert.True(t, status.IsAdmin)
				assert.False(t, status.Blocking())
			},
		},
		{
			name:  "database error",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				mockDB.ExpectQuery("SELECT(.+)FROM check_failed_login_attempts").
					WithArgs(email).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestSecurityRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.email)

			status, err := repo.CheckFailedLoginAttempts(context.Background(), tt.email)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, domain.ErrorKindTransport, domain.KindOf(err))
				assert.Nil(t, status)
			} else {
				require.NoError(t, err)
				tt.validateStatus(t, status)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestSecurityRepository_UnlockUserAccount(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupDB        func(pgxmock.PgxPoolIface, string)
		wantErr        bool
		validateResult func(*testing.T, *domain.UnlockResult)
	}{
		{
			name:  "successful unlock",
			email: "locked@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				mockDB.ExpectQuery("SELECT(.+)FROM unlock_user_account").
					WithArgs(email).
					WillReturnRows(
						pgxmock.NewRows([]string{"success", "message", "cleared_attempts"}).
							AddRow(true, "Account unlocked", intPtr(15)),
					)
			},
			validateResult: func(t *testing.T, result *domain.UnlockResult) {
				assert.True(t, result.Success)
				require.NotNil(t, result.ClearedAttempts)
				assert.Equal(t, 15, *result.ClearedAttempts)
			},
		},
		{
			name:  "nothing to unlock",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				mockDB.ExpectQuery("SELECT(.+)FROM unlock_user_account").
					WithArgs(email).
					WillReturnRows(
						pgxmock.NewRows([]string{"success", "message", "cleared_attempts"}).
							AddRow(false, "No failed attempts found", nil),
					)
			},
			validateResult: func(t *testing.T, result *domain.UnlockResult) {
				assert.False(t, result.Success)
				assert.Nil(t, result.ClearedAttempts)
			},
		},
		{
			name:  "database error",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface, email string) {
				mockDB.ExpectQuery("SELECT(.+)FROM unlock_user_account").
					WithArgs(email).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestSecurityRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.email)

			result, err := repo.UnlockUserAccount(context.Background(), tt.email)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				tt.validateResult(t, result)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestSecurityRepository_LogSecurityEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.SecurityEvent
		setupDB func(pgxmock.PgxPoolIface, domain.SecurityEvent)
		wantErr bool
	}{
		{
			name: "full event with context",
			event: domain.SecurityEvent{
				Email:     "user@example.com",
				Action:    "login_failed",
				Success:   false,
				UserAgent: "test-agent",
				Context:   map[string]any{"reason": "bad_password"},
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, event domain.SecurityEvent) {
				mockDB.ExpectExec("SELECT log_security_event").
					WithArgs(
						event.Email,
						event.Action,
						event.Success,
						event.UserAgent,
						nil,
						[]byte(`{"reason":"bad_password"}`),
					).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
		},
		{
			name: "minimal event",
			event: domain.SecurityEvent{
				Email:   "user@example.com",
				Action:  "login_success",
				Success: true,
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, event domain.SecurityEvent) {
				mockDB.ExpectExec("SELECT log_security_event").
					WithArgs(event.Email, event.Action, event.Success, nil, nil, []byte(nil)).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
		},
		{
			name: "database error",
			event: domain.SecurityEvent{
				Email:   "user@example.com",
				Action:  "login_success",
				Success: true,
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, event domain.SecurityEvent) {
				mockDB.ExpectExec("SELECT log_security_event").
					WithArgs(event.Email, event.Action, event.Success, nil, nil, []byte(nil)).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestSecurityRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.event)

			err := repo.LogSecurityEvent(context.Background(), tt.event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
