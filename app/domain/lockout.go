package domain

import "time"

// Lockout policy constants. Enforcement lives in the database procedures;
// these mirror the values baked into the schema so the service and its
// messages stay consistent with what the store actually does.
const (
	LockoutThreshold = 15
	LockoutWindow    = 30 * time.Minute
	LockoutDuration  = 30 * time.Minute
)

// LockoutStatus is the computed, ephemeral view of recent failed-login
// events for one email address. The service never holds an authoritative
// copy; callers re-query to get current truth. Field names are branched on
// by clients and must not change.
type LockoutStatus struct {
	IsLocked          bool       `json:"is_locked"`
	FailedAttempts    int        `json:"failed_attempts"`
	RemainingAttempts *int       `json:"remaining_attempts,omitempty"`
	LockoutUntil      *time.Time `json:"lockout_until,omitempty"`
	RemainingMinutes  *int       `json:"remaining_minutes,omitempty"`
	Message           string     `json:"message"`
	IsAdmin           bool       `json:"is_admin,omitempty"`
}

// Blocking returns true when the lockout should actually block sign-in.
// Administrator accounts are always exempt regardless of attempt count.
func (s *LockoutStatus) Blocking() bool {
	return s.IsLocked && !s.IsAdmin
}

// UnlockResult is the structured result of an administrative unlock
type UnlockResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ClearedAttempts *int   `json:"cleared_attempts,omitempty"`
}

// LockoutState drives the lockout display state machine:
// Unknown -> Checking -> {LockedBlocking, LockedExempt, Unlocked, Errored}.
// LockedBlocking only clears via the window expiring (re-query) or an
// administrative unlock; no local countdown drives the transition.
type LockoutState string

const (
	LockoutStateUnknown        LockoutState = "unknown"
	LockoutStateChecking       LockoutState = "checking"
	LockoutStateLockedBlocking LockoutState = "locked"
	LockoutStateLockedExempt   LockoutState = "locked_exempt"
	LockoutStateUnlocked       LockoutState = "unlocked"
	LockoutStateErrored        LockoutState = "errored"
)

// StateFor maps a lockout snapshot to its display state.
// A nil snapshot means the check failed in transport: status unknown,
// never "status clear".
func StateFor(status *LockoutStatus) LockoutState {
	if status == nil {
		return LockoutStateErrored
	}
	if !status.IsLocked {
		return LockoutStateUnlocked
	}
	if status.IsAdmin {
		return LockoutStateLockedExempt
	}
	return LockoutStateLockedBlocking
}

// SecurityEvent is one entry in the auth event log, recorded fire-and-forget
type SecurityEvent struct {
	Email        string         `json:"event_email"`
	Action       string         `json:"event_action"`
	Success      bool           `json:"event_success"`
	UserAgent    string         `json:"event_user_agent,omitempty"`
	ErrorMessage string         `json:"event_error,omitempty"`
	Context      map[string]any `json:"additional_context,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
}
