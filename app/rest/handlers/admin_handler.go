package handlers

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
	custommw "portal-service/app/rest/middleware"
)

// AdminHandler serves the administrative surface: lockout inspection,
// account unlock, organization listing, and the permission cache reset.
// Every route is behind the admin role guard.
type AdminHandler struct {
	security port.SecurityUsecase
	orgRepo  port.OrganizationRepositoryPort
	access   port.AccessUsecase
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(security port.SecurityUsecase, orgRepo port.OrganizationRepositoryPort, access port.AccessUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		security: security,
		orgRepo:  orgRepo,
		access:   access,
		logger:   logger,
	}
}

// GetLockoutStatus returns the lockout snapshot for one account
// @Summary Lockout status
// @Tags admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} domain.LockoutStatus
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/admin/lockouts/{email} [get]
func (h *AdminHandler) GetLockoutStatus(c echo.Context) error {
	email := c.Param("email")
	if _, err := mail.ParseAddress(email); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email", Code: "INVALID_INPUT"})
	}

	status, err := h.security.GetUserLockoutStatus(c.Request().Context(), email)
	if err != nil {
		h.logger.Error("lockout status query failed", "email", email, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "lockout status unavailable", Code: "DATABASE_ERROR"})
	}

	return c.JSON(http.StatusOK, status)
}

// UnlockAccount clears an account's lockout and failed-attempt counters
// @Summary Unlock account
// @Tags admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} domain.UnlockResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/admin/lockouts/{email}/unlock [post]
func (h *AdminHandler) UnlockAccount(c echo.Context) error {
	email := c.Param("email")
	if _, err := mail.ParseAddress(email); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email", Code: "INVALID_INPUT"})
	}

	result, err := h.security.UnlockUserAccount(c.Request().Context(), email)
	if err != nil {
		h.logger.Error("account unlock failed", "email", email, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "unlock failed", Code: "DATABASE_ERROR"})
	}

	actor, _ := c.Get(custommw.ContextKeyUserEmail).(string)
	h.security.LogSecurityEvent(c.Request().Context(), domain.SecurityEvent{
		Email:     email,
		Action:    "account_unlocked",
		Success:   result.Success,
		UserAgent: c.Request().UserAgent(),
		Context:   map[string]any{"unlocked_by": actor, "ip": c.RealIP()},
	})

	return c.JSON(http.StatusOK, result)
}

// ListOrganizations pages through all organizations
// @Summary List organizations
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /v1/admin/organizations [get]
func (h *AdminHandler) ListOrganizations(c echo.Context) error {
	limit := parseIntParam(c.QueryParam("limit"), 50, 1, 200)
	offset := parseIntParam(c.QueryParam("offset"), 0, 0, 1<<30)

	orgs, err := h.orgRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		h.logger.Error("organization listing failed", "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "organization listing unavailable", Code: "DATABASE_ERROR"})
	}
	if orgs == nil {
		orgs = []*domain.Organization{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"organizations": orgs,
		"limit":         limit,
		"offset":        offset,
	})
}

// ClearPermissionCache drops every cached organization access decision
// @Summary Clear the permission cache
// @Tags admin
// @Success 204
// @Router /v1/admin/permissions/cache [delete]
func (h *AdminHandler) ClearPermissionCache(c echo.Context) error {
	h.access.ClearPermissionCache()

	actor, _ := c.Get(custommw.ContextKeyUserEmail).(string)
	h.logger.Info("permission cache cleared", "actor", actor)

	return c.NoContent(http.StatusNoContent)
}

func parseIntParam(raw string, fallback, min, max int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return fallback
	}
	return n
}
