package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/guard"
	"portal-service/app/port"
	"portal-service/app/utils/metrics"
)

// Context keys set by the guard middleware for downstream handlers
const (
	ContextKeySession      = "session"
	ContextKeyUserID       = "user_id"
	ContextKeyUserEmail    = "user_email"
	ContextKeySessionToken = "session_token"
)

// GuardMiddleware evaluates the access guards against incoming requests
// and maps their decisions to HTTP responses. Denial is a normal outcome
// and answers 401 or 403; only transport trouble answers 5xx.
type GuardMiddleware struct {
	sessions port.SessionUsecase
	roles    port.RoleUsecase
	access   port.AccessUsecase
	logger   *slog.Logger
}

// NewGuardMiddleware creates a new guard middleware
func NewGuardMiddleware(sessions port.SessionUsecase, roles port.RoleUsecase, access port.AccessUsecase, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		sessions: sessions,
		roles:    roles,
		access:   access,
		logger:   logger,
	}
}

// GuardResponse is the body returned for any non-authorized decision
type GuardResponse struct {
	State     string `json:"state"`
	Reason    string `json:"reason,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// RequireAuth resolves the session token and requires an authenticated,
// unexpired session. The offline notice wins over the missing-session one.
func (m *GuardMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := m.resolveSession(c)
			if err != nil {
				return m.finish(c, "auth", guard.Decision{
					State:     guard.StateErrored,
					Reason:    guard.ReasonCheckFailed,
					Retryable: true,
				}, next)
			}

			decision := guard.Auth(guard.SessionView{
				Authenticated: session != nil,
				Online:        m.sessions.IsOnline(),
			}, true)
			if decision.State == guard.StateAuthorized {
				setSessionContext(c, session)
			}
			return m.finish(c, "auth", decision, next)
		}
	}
}

// OptionalAuth resolves the session when a token is present but never
// rejects the request. Handlers read the context keys to tell the cases
// apart.
func (m *GuardMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := m.resolveSession(c)
			if err == nil && session != nil {
				setSessionContext(c, session)
			}
			return next(c)
		}
	}
}

// RequireRoles resolves the caller's own role snapshot and requires the
// given roles. With requireAll false, holding any one of them is enough.
// A caller whose snapshot outlived a failed refresh is still evaluated;
// only a caller with no usable snapshot gets the retryable 503.
func (m *GuardMiddleware) RequireRoles(allowed []domain.Role, requireAll bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return m.finish(c, "roles", guard.Auth(guard.SessionView{
					Online: m.sessions.IsOnline(),
				}, true), next)
			}

			view := guard.RoleView{}
			snapshot, err := m.roles.Ensure(c.Request().Context(), session.UserID)
			if err != nil && snapshot == nil {
				m.logger.Warn("role snapshot unavailable", "user_id", session.UserID, "error", err)
				view.Err = err.Error()
			} else {
				view.Known = true
				view.Err = snapshot.RefreshError
				view.Roles = snapshot.Roles
			}

			decision := guard.Roles(view, allowed, requireAll)
			return m.finish(c, "roles", decision, next)
		}
	}
}

// RequireAdmin requires the admin role
func (m *GuardMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRoles([]domain.Role{domain.RoleAdmin}, false)
}

// RequireOrganizationAccess requires access to the organization named by
// the given path parameter, checked for the signed-in caller. The checker
// resolves denial to false without an error, so this guard never reaches
// the Errored state through it.
func (m *GuardMiddleware) RequireOrganizationAccess(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return m.finish(c, "security", guard.Auth(guard.SessionView{
					Online: m.sessions.IsOnline(),
				}, true), next)
			}

			orgID, err := uuid.Parse(c.Param(param))
			if err != nil {
				return c.JSON(http.StatusBadRequest, GuardResponse{
					State:  string(guard.StateUnauthorized),
					Reason: "invalid_organization_id",
				})
			}

			decision := guard.Security(c.Request().Context(), &orgID, func(ctx context.Context, target uuid.UUID) (bool, error) {
				return m.access.CheckOrganizationAccess(ctx, session.UserID, target), nil
			})
			return m.finish(c, "security", decision, next)
		}
	}
}

// resolveSession turns the request's token into a session. A rejected or
// missing session resolves to nil without an error; only an unclassified
// lookup failure is an error.
func (m *GuardMiddleware) resolveSession(c echo.Context) (*domain.Session, error) {
	token := ExtractSessionToken(c)
	if token == "" {
		return nil, nil
	}

	session, err := m.sessions.CurrentSession(c.Request().Context(), token)
	if err != nil {
		if isSessionVerdict(err) {
			m.logger.Debug("session rejected", "path", c.Path(), "error", err)
			return nil, nil
		}
		m.logger.Error("session lookup failed", "path", c.Path(), "error", err)
		return nil, err
	}
	return session, nil
}

func (m *GuardMiddleware) finish(c echo.Context, name string, decision guard.Decision, next echo.HandlerFunc) error {
	metrics.GuardDecisions.WithLabelValues(name, string(decision.State)).Inc()

	if decision.State == guard.StateAuthorized {
		return next(c)
	}

	return c.JSON(statusFor(decision), GuardResponse{
		State:     string(decision.State),
		Reason:    string(decision.Reason),
		Retryable: decision.Retryable,
	})
}

func statusFor(decision guard.Decision) int {
	switch decision.State {
	case guard.StateLoading, guard.StateErrored:
		return http.StatusServiceUnavailable
	}

	switch decision.Reason {
	case guard.ReasonOffline:
		return http.StatusServiceUnavailable
	case guard.ReasonSignInRequired:
		return http.StatusUnauthorized
	default:
		return http.StatusForbidden
	}
}

func setSessionContext(c echo.Context, session *domain.Session) {
	c.Set(ContextKeySession, session)
	c.Set(ContextKeyUserID, session.UserID.String())
	c.Set(ContextKeyUserEmail, session.Email)
	c.Set(ContextKeySessionToken, session.Token)
}

// SessionFrom returns the session resolved by RequireAuth or OptionalAuth
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}

// isSessionVerdict reports whether the error is a definitive statement
// about the session rather than a failure to find out.
func isSessionVerdict(err error) bool {
	return errors.Is(err, domain.ErrSessionExpired) ||
		errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrInvalidSession) ||
		errors.Is(err, domain.ErrOffline)
}

// ExtractSessionToken extracts the session token from the request.
// Browser clients carry the Kratos session cookie; API clients use the
// Authorization or X-Session-Token header.
func ExtractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie("ory_kratos_session"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
