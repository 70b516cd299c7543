package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
	custommw "portal-service/app/rest/middleware"
)

// SessionHandler handles authentication HTTP requests
type SessionHandler struct {
	sessions port.SessionUsecase
	security port.SecurityUsecase
	roles    port.RoleUsecase
	access   port.AccessUsecase
	logger   *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions port.SessionUsecase, security port.SecurityUsecase, roles port.RoleUsecase, access port.AccessUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		security: security,
		roles:    roles,
		access:   access,
		logger:   logger,
	}
}

// SignInRequest is the password sign-in body
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyCodeRequest is the one-time-code body
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// SessionResponse is returned after a successful authentication
type SessionResponse struct {
	Session      *domain.Session     `json:"session"`
	SessionToken string              `json:"session_token"`
	Roles        []string            `json:"roles,omitempty"`
	Profile      *domain.UserProfile `json:"profile,omitempty"`
}

// LockedResponse tells a blocked caller why and for how long
type LockedResponse struct {
	Error   string                `json:"error"`
	Code    string                `json:"code"`
	Lockout *domain.LockoutStatus `json:"lockout"`
}

// SignIn handles password sign-in with the lockout pre-check
// @Summary Password sign-in
// @Description Authenticate with email and password
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 423 {object} LockedResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auth/sign-in [post]
func (h *SessionHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required", Code: "MISSING_FIELD"})
	}

	// The pre-check runs before any credential reaches the auth service.
	// A nil status means the check failed in transport; sign-in proceeds
	// and the store enforces the lockout on the next failed attempt.
	if status := h.security.CheckAccountSecurity(ctx, req.Email); status != nil && status.Blocking() {
		h.audit(c, req.Email, "login_blocked", false, status.Message)
		return c.JSON(http.StatusLocked, LockedResponse{
			Error:   "account temporarily locked",
			Code:    "ACCOUNT_LOCKED",
			Lockout: status,
		})
	}

	session, err := h.sessions.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.audit(c, req.Email, "login_failed", false, err.Error())
		return h.respondAuthError(c, err)
	}

	h.audit(c, req.Email, "login_success", true, "")
	snapshot := h.primeSnapshot(c, session)

	return c.JSON(http.StatusOK, h.sessionResponse(session, snapshot))
}

// VerifyCode completes a one-time-code challenge
// @Summary Verify one-time code
// @Description Complete a one-time-code sign-in challenge
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Failure 423 {object} LockedResponse
// @Router /v1/auth/verify-code [post]
func (h *SessionHandler) VerifyCode(c echo.Context) error {
	ctx := c.Request().Context()

	var req VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if req.Email == "" || req.Code == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and code are required", Code: "MISSING_FIELD"})
	}

	if status := h.security.CheckAccountSecurity(ctx, req.Email); status != nil && status.Blocking() {
		h.audit(c, req.Email, "code_verify_blocked", false, status.Message)
		return c.JSON(http.StatusLocked, LockedResponse{
			Error:   "account temporarily locked",
			Code:    "ACCOUNT_LOCKED",
			Lockout: status,
		})
	}

	session, err := h.sessions.VerifyOneTimeCode(ctx, req.Email, req.Code)
	if err != nil {
		h.audit(c, req.Email, "code_verify_failed", false, err.Error())
		return h.respondAuthError(c, err)
	}

	h.audit(c, req.Email, "code_verify_success", true, "")
	snapshot := h.primeSnapshot(c, session)

	return c.JSON(http.StatusOK, h.sessionResponse(session, snapshot))
}

// SignOut revokes the caller's session and drops their cached snapshot and
// permissions. Revocation runs in the background; the caller is signed out
// locally either way.
// @Summary Sign out
// @Tags session
// @Produce json
// @Success 204
// @Router /v1/auth/sign-out [post]
func (h *SessionHandler) SignOut(c echo.Context) error {
	token, _ := c.Get(custommw.ContextKeySessionToken).(string)
	if token == "" {
		token = custommw.ExtractSessionToken(c)
	}

	email, _ := c.Get(custommw.ContextKeyUserEmail).(string)

	h.sessions.SignOut(c.Request().Context(), token)
	if email != "" {
		h.audit(c, email, "logout", true, "")
	}

	if id, _ := c.Get(custommw.ContextKeyUserID).(string); id != "" {
		if userID, err := uuid.Parse(id); err == nil {
			h.roles.Reset(userID)
			h.access.InvalidateUser(userID)
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// WhoAmI returns the caller's session
// @Summary Introspect the current session
// @Tags session
// @Produce json
// @Success 200 {object} domain.Session
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/whoami [get]
func (h *SessionHandler) WhoAmI(c echo.Context) error {
	session, ok := custommw.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Code: "UNAUTHORIZED"})
	}

	return c.JSON(http.StatusOK, session)
}

// primeSnapshot force-refreshes the signed-in user's role snapshot so the
// new session never inherits data cached before the credentials changed.
// A failure is not fatal; the snapshot loads lazily on the next guarded
// request.
func (h *SessionHandler) primeSnapshot(c echo.Context, session *domain.Session) *domain.UserSnapshot {
	snapshot, err := h.roles.Refresh(c.Request().Context(), session.UserID)
	if err != nil {
		h.logger.Warn("role snapshot refresh after sign-in failed", "user_id", session.UserID, "error", err)
	}
	return snapshot
}

func (h *SessionHandler) sessionResponse(session *domain.Session, snapshot *domain.UserSnapshot) SessionResponse {
	resp := SessionResponse{
		Session:      session,
		SessionToken: session.Token,
	}

	if snapshot != nil {
		resp.Profile = snapshot.Profile
		resp.Roles = snapshot.Roles.Names()
	}

	return resp
}

// audit records an auth event fire-and-forget
func (h *SessionHandler) audit(c echo.Context, email, action string, success bool, errorMessage string) {
	h.security.LogSecurityEvent(c.Request().Context(), domain.SecurityEvent{
		Email:        email,
		Action:       action,
		Success:      success,
		UserAgent:    c.Request().UserAgent(),
		ErrorMessage: errorMessage,
		Context:      map[string]any{"ip": c.RealIP()},
	})
}

func (h *SessionHandler) respondAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrOffline):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "network unavailable", Code: "OFFLINE"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials", Code: "INVALID_CREDENTIALS"})
	case errors.Is(err, domain.ErrInvalidCode):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid verification code", Code: "INVALID_CODE"})
	case errors.Is(err, domain.ErrExpiredCode):
		return c.JSON(http.StatusGone, ErrorResponse{Error: "verification code expired", Code: "EXPIRED_CODE"})
	default:
		h.logger.Error("authentication backend failure", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "authentication service unavailable", Code: "SERVICE_UNAVAILABLE"})
	}
}
