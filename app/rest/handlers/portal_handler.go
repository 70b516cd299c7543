package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
	custommw "portal-service/app/rest/middleware"
)

// PortalHandler serves the signed-in portal context: the caller's roles,
// profile, organization, and access checks against other organizations.
// Every answer is derived from the caller's own snapshot.
type PortalHandler struct {
	roles  port.RoleUsecase
	orgs   port.OrganizationUsecase
	access port.AccessUsecase
	logger *slog.Logger
}

// NewPortalHandler creates a new portal handler
func NewPortalHandler(roles port.RoleUsecase, orgs port.OrganizationUsecase, access port.AccessUsecase, logger *slog.Logger) *PortalHandler {
	return &PortalHandler{
		roles:  roles,
		orgs:   orgs,
		access: access,
		logger: logger,
	}
}

// PortalContextResponse is the combined portal view for one caller
type PortalContextResponse struct {
	Profile      *domain.UserProfile  `json:"profile,omitempty"`
	Roles        []string             `json:"roles"`
	RolesError   string               `json:"roles_error,omitempty"`
	Organization *domain.Organization `json:"organization,omitempty"`
	Membership   MembershipResponse   `json:"membership"`
}

// MembershipResponse describes where the caller stands with organizations
type MembershipResponse struct {
	HasOrganization   bool `json:"has_organization"`
	IsGuest           bool `json:"is_guest"`
	CanAccessCrossOrg bool `json:"can_access_cross_organization"`
}

// AccessCheckResponse answers one organization access check
type AccessCheckResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Allowed        bool      `json:"allowed"`
}

// DataAccessRequest asks whether data tagged with an organization is visible
type DataAccessRequest struct {
	OrganizationID *uuid.UUID `json:"organization_id"`
}

// DataAccessResponse answers a data visibility question
type DataAccessResponse struct {
	Allowed bool `json:"allowed"`
}

// Me returns the caller's resolved portal context
// @Summary Portal context
// @Description Roles, profile, organization, and membership for the caller
// @Tags portal
// @Produce json
// @Success 200 {object} PortalContextResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/portal/me [get]
func (h *PortalHandler) Me(c echo.Context) error {
	session, ok := custommw.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Code: "UNAUTHORIZED"})
	}

	ctx := c.Request().Context()

	snapshot, err := h.roles.Ensure(ctx, session.UserID)
	if err != nil && snapshot == nil {
		h.logger.Warn("portal context unavailable", "user_id", session.UserID, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "user data unavailable", Code: "USER_DATA_UNAVAILABLE"})
	}

	return c.JSON(http.StatusOK, h.portalContext(ctx, session.UserID, snapshot))
}

// RefreshContext re-fetches the caller's snapshot and returns the updated
// portal context. This is the explicit retry for a failed or stale load;
// when the refresh fails but a previous snapshot exists, the stale context
// is returned with the error message attached.
// @Summary Refresh portal context
// @Tags portal
// @Produce json
// @Success 200 {object} PortalContextResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/portal/me/refresh [post]
func (h *PortalHandler) RefreshContext(c echo.Context) error {
	session, ok := custommw.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Code: "UNAUTHORIZED"})
	}

	ctx := c.Request().Context()

	snapshot, err := h.roles.Refresh(ctx, session.UserID)
	if snapshot == nil {
		h.logger.Warn("portal context refresh failed", "user_id", session.UserID, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "user data unavailable", Code: "USER_DATA_UNAVAILABLE"})
	}

	return c.JSON(http.StatusOK, h.portalContext(ctx, session.UserID, snapshot))
}

// CheckOrganizationAccess answers whether the caller may access the target
// organization. Denial is a normal 200 with allowed false; a transport
// failure inside the checker also answers false.
// @Summary Organization access check
// @Tags portal
// @Produce json
// @Param orgId path string true "Organization ID"
// @Success 200 {object} AccessCheckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/portal/organizations/{orgId}/access [get]
func (h *PortalHandler) CheckOrganizationAccess(c echo.Context) error {
	session, ok := custommw.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Code: "UNAUTHORIZED"})
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid organization id", Code: "INVALID_INPUT"})
	}

	allowed := h.access.CheckOrganizationAccess(c.Request().Context(), session.UserID, orgID)

	return c.JSON(http.StatusOK, AccessCheckResponse{
		OrganizationID: orgID,
		Allowed:        allowed,
	})
}

// ValidateDataAccess answers whether organization-tagged data is visible
// to the caller. A nil organization tag means public data.
// @Summary Data visibility check
// @Tags portal
// @Accept json
// @Produce json
// @Success 200 {object} DataAccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/portal/data-access [post]
func (h *PortalHandler) ValidateDataAccess(c echo.Context) error {
	session, ok := custommw.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Code: "UNAUTHORIZED"})
	}

	var req DataAccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}

	return c.JSON(http.StatusOK, DataAccessResponse{
		Allowed: h.access.ValidateDataAccess(c.Request().Context(), session.UserID, req.OrganizationID),
	})
}

// OrganizationName resolves a display name for one organization
// @Summary Organization name lookup
// @Tags portal
// @Produce json
// @Param orgId path string true "Organization ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /v1/portal/organizations/{orgId}/name [get]
func (h *PortalHandler) OrganizationName(c echo.Context) error {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid organization id", Code: "INVALID_INPUT"})
	}

	name, err := h.orgs.OrganizationName(c.Request().Context(), orgID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "organization not found", Code: "ORGANIZATION_NOT_FOUND"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"organization_id": orgID.String(),
		"name":            name,
	})
}

// portalContext assembles the response for one caller's snapshot. The
// membership lookup reads the already held snapshot; a failed organization
// record lookup degrades to a context without the record.
func (h *PortalHandler) portalContext(ctx context.Context, userID uuid.UUID, snapshot *domain.UserSnapshot) PortalContextResponse {
	roles := snapshot.Roles.Names()
	if roles == nil {
		roles = []string{}
	}

	resp := PortalContextResponse{
		Profile:    snapshot.Profile,
		Roles:      roles,
		RolesError: snapshot.RefreshError,
	}

	membership, err := h.orgs.MembershipFor(ctx, userID)
	if err != nil {
		h.logger.Warn("membership resolution failed", "user_id", userID, "error", err)
		return resp
	}

	resp.Organization = membership.Organization
	resp.Membership = MembershipResponse{
		HasOrganization:   membership.HasOrganization(),
		IsGuest:           membership.IsGuest(),
		CanAccessCrossOrg: membership.CrossOrganization,
	}

	return resp
}
