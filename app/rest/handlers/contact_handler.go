package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
	"portal-service/app/utils/metrics"
	"portal-service/app/utils/validator"
)

// ContactHandler handles public contact-form submissions
type ContactHandler struct {
	contact port.ContactUsecase
	logger  *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contact port.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contact: contact,
		logger:  logger,
	}
}

// Submit stores a contact submission and acknowledges with the lead
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Success 201 {object} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var submission domain.ContactSubmission
	if err := c.Bind(&submission); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}

	lead, err := h.contact.Submit(c.Request().Context(), &submission)
	if err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Code:    "VALIDATION_FAILED",
				Details: validationErr.Error(),
			})
		}

		h.logger.Error("contact submission failed", "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "submission could not be stored", Code: "DATABASE_ERROR"})
	}

	metrics.ContactSubmissions.Inc()

	return c.JSON(http.StatusCreated, lead)
}
