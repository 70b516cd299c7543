package usecase

import (
	"context"
	"testing"
	"time"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSecurityUseCase_CheckAccountSecurity(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockSecurityRepositoryPort)
		wantNil    bool
		wantBlock  bool
	}{
		{
			name: "clean account",
			setupMocks: func(mockRepo *mock_port.MockSecurityRepositoryPort) {
				mockRepo.EXPECT().
					CheckFailedLoginAttempts(gomock.Any(), "user@example.com").
					Return(&domain.LockoutStatus{IsLocked: false, FailedAttempts: 0}, nil)
			},
		},
		{
			name: "locked account blocks",
			setupMocks: func(mockRepo *mock_port.MockSecurityRepositoryPort) {
				mockRepo.EXPECT().
					CheckFailedLoginAttempts(gomock.Any(), "user@example.com").
					Return(&domain.LockoutStatus{IsLocked: true, FailedAttempts: 15}, nil)
			},
			wantBlock: true,
		},
		{
			name: "locked admin account does not block",
			setupMocks: func(mockRepo *mock_port.MockSecurityRepositoryPort) {
				mockRepo.EXPECT().
					CheckFailedLoginAttempts(gomock.Any(), "user@example.com").
					Return(&domain.LockoutStatus{IsLocked: true, FailedAttempts: 20, IsAdmin: true}, nil)
			},
			wantBlock: false,
		},
		{
			name: "transport failure yields nil, never a clean status",
			setupMocks: func(mockRepo *mock_port.MockSecurityRepositoryPort) {
				mockRepo.EXPECT().
					CheckFailedLoginAttempts(gomock.Any(), "user@example.com").
					Return(nil, assert.AnError)
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mock_port.NewMockSecurityRepositoryPort(ctrl)
			tt.setupMocks(mockRepo)

			uc := NewSecurityUseCase(mockRepo, newTestLogger(t))

			status := uc.CheckAccountSecurity(context.Background(), "user@example.com")

			if tt.wantNil {
				assert.Nil(t, status)
				assert.Equal(t, domain.LockoutStateErrored, domain.StateFor(status))
			} else {
				require.NotNil(t, status)
				assert.Equal(t, tt.wantBlock, status.Blocking())
			}
		})
	}
}

func TestSecurityUseCase_LogSecurityEvent(t *testing.T) {
	t.Run("event is written in the background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		written := make(chan domain.SecurityEvent, 1)
		mockRepo := mock_port.NewMockSecurityRepositoryPort(ctrl)
		mockRepo.EXPECT().
			LogSecurityEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.SecurityEvent) error {
				written <- event
				return nil
			})

		uc := NewSecurityUseCase(mockRepo, newTestLogger(t))

		uc.LogSecurityEvent(context.Background(), domain.SecurityEvent{
			Email:   "user@example.com",
			Action:  "login_failed",
			Success: false,
		})

		select {
		case event := <-written:
			assert.Equal(t, "login_failed", event.Action)
			assert.False(t, event.OccurredAt.IsZero())
		case <-time.After(2 * time.Second):
			t.Fatal("event write never happened")
		}
	})

	t.Run("write failure does not surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		done := make(chan struct{})
		mockRepo := mock_port.NewMockSecurityRepositoryPort(ctrl)
		mockRepo.EXPECT().
			LogSecurityEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.SecurityEvent) error {
				close(done)
				return assert.AnError
			})

		uc := NewSecurityUseCase(mockRepo, newTestLogger(t))

		// Fire-and-forget: nothing to assert beyond "does not panic or block".
		uc.LogSecurityEvent(context.Background(), domain.SecurityEvent{
			Email:  "user@example.com",
			Action: "login_failed",
		})

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("event write never attempted")
		}
	})
}

func TestSecurityUseCase_UnlockUserAccount(t *testing.T) {
	t.Run("passes the unlock result through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cleared := 15
		mockRepo := mock_port.NewMockSecurityRepositoryPort(ctrl)
		mockRepo.EXPECT().
			UnlockUserAccount(gomock.Any(), "locked@example.com").
			Return(&domain.UnlockResult{Success: true, Message: "Account unlocked", ClearedAttempts: &cleared}, nil)

		uc := NewSecurityUseCase(mockRepo, newTestLogger(t))

		result, err := uc.UnlockUserAccount(context.Background(), "locked@example.com")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 15, *result.ClearedAttempts)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockSecurityRepositoryPort(ctrl)
		mockRepo.EXPECT().
			UnlockUserAccount(gomock.Any(), "locked@example.com").
			Return(nil, assert.AnError)

		uc := NewSecurityUseCase(mockRepo, newTestLogger(t))

		result, err := uc.UnlockUserAccount(context.Background(), "locked@example.com")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
