package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockoutStatus_Blocking(t *testing.T) {
	tests := []struct {
		name   string
		status LockoutStatus
		want   bool
	}{
		{
			name:   "locked non-admin blocks",
			status: LockoutStatus{IsLocked: true, IsAdmin: false},
			want:   true,
		},
		{
			name:   "locked admin is exempt",
			status: LockoutStatus{IsLocked: true, IsAdmin: true},
			want:   false,
		},
		{
			name:   "unlocked never blocks",
			status: LockoutStatus{IsLocked: false, FailedAttempts: 14},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Blocking())
		})
	}
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		name   string
		status *LockoutStatus
		want   LockoutState
	}{
		{
			name:   "nil snapshot means status unknown",
			status: nil,
			want:   LockoutStateErrored,
		},
		{
			name:   "unlocked",
			status: &LockoutStatus{IsLocked: false},
			want:   LockoutStateUnlocked,
		},
		{
			name:   "locked admin is exempt",
			status: &LockoutStatus{IsLocked: true, IsAdmin: true},
			want:   LockoutStateLockedExempt,
		},
		{
			name:   "locked non-admin blocks",
			status: &LockoutStatus{IsLocked: true, Message: "Account locked. Try again in 30 minutes."},
			want:   LockoutStateLockedBlocking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateFor(tt.status))
		})
	}
}
