package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/rest/middleware"
	apperrors "volunteer-hub/app/utils/errors"
	"volunteer-hub/app/utils/validator"
)

// DirectoryHandler serves the directory routes: opportunity browsing and the
// application workflow on both sides.
type DirectoryHandler struct {
	directory port.DirectoryUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory port.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		validator: validator.New(),
		logger:    logger,
	}
}

// ApplyRequest is the volunteer-side application submission body. The
// volunteer identity comes from the session, not from here.
type ApplyRequest struct {
	OpportunityID uint   `json:"opportunity_id" validate:"required"`
	CoverLetter   string `json:"cover_letter" validate:"max=2000"`
}

// DecideRequest is the organization-side review decision body.
type DecideRequest struct {
	Status string `json:"status" validate:"required,application_status"`
}

// GetOpportunity returns one opportunity
// @Summary Get an opportunity
// @Tags directory
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} domain.Opportunity
// @Failure 502 {object} ErrorResponse
// @Router /v1/opportunities/{id} [get]
func (h *DirectoryHandler) GetOpportunity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	opp, err := h.directory.BrowseOpportunity(c.Request().Context(), sessionToken(c), id)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, opp)
}

// ListOpportunities returns every published opportunity
// @Summary List opportunities
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Opportunity
// @Router /v1/opportunities [get]
func (h *DirectoryHandler) ListOpportunities(c echo.Context) error {
	opps, err := h.directory.ListOpportunities(c.Request().Context(), sessionToken(c))
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, opps)
}

// MyOpportunities lists the calling organization's own opportunities
// @Summary List my projects
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Opportunity
// @Router /v1/projects [get]
func (h *DirectoryHandler) MyOpportunities(c echo.Context) error {
	identity, _ := c.Get(middleware.ContextIdentityKey).(*domain.Identity)

	opps, err := h.directory.MyOpportunities(c.Request().Context(), sessionToken(c), identity)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, opps)
}

// GetOrganization returns an organization's public profile
// @Summary Get an organization
// @Tags directory
// @Produce json
// @Param mail path string true "Organization mail"
// @Success 200 {object} domain.Organization
// @Failure 400 {object} DetailedErrorResponse
// @Router /v1/organizations/{mail} [get]
func (h *DirectoryHandler) GetOrganization(c echo.Context) error {
	mail := c.Param("mail")
	if !validator.IsValidEmail(mail) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid mail")
	}

	org, err := h.directory.OrganizationProfile(c.Request().Context(), sessionToken(c), mail)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, org)
}

// ListCategories returns the platform's categories
// @Summary List categories
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Category
// @Router /v1/categories [get]
func (h *DirectoryHandler) ListCategories(c echo.Context) error {
	cats, err := h.directory.Categories(c.Request().Context(), sessionToken(c))
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

// MyApplications lists the calling volunteer's applications
// @Summary List my applications
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Application
// @Router /v1/applications [get]
func (h *DirectoryHandler) MyApplications(c echo.Context) error {
	identity, _ := c.Get(middleware.ContextIdentityKey).(*domain.Identity)

	apps, err := h.directory.MyApplications(c.Request().Context(), sessionToken(c), identity)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// Apply submits an application for the calling volunteer
// @Summary Apply to an opportunity
// @Tags directory
// @Accept json
// @Produce json
// @Param body body ApplyRequest true "Application"
// @Success 201 {object} domain.Application
// @Failure 400 {object} DetailedErrorResponse
// @Router /v1/applications [post]
func (h *DirectoryHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.CodeInvalidRequest, "Invalid request format", nil)
	}
	if err := h.validator.Validate(&req); err != nil {
		return errorJSON(c, apperrors.CodeValidationError, "Validation failed", err.Error())
	}

	identity, _ := c.Get(middleware.ContextIdentityKey).(*domain.Identity)
	created, err := h.directory.Apply(c.Request().Context(), sessionToken(c), identity, req.OpportunityID, req.CoverLetter)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ReviewApplications lists applications for one of the organization's
// opportunities
// @Summary Review applications for an opportunity
// @Tags directory
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {array} domain.Application
// @Router /v1/projects/{id}/applications [get]
func (h *DirectoryHandler) ReviewApplications(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	apps, err := h.directory.ReviewApplications(c.Request().Context(), sessionToken(c), id)
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// DecideApplication approves or rejects an application
// @Summary Decide an application
// @Tags directory
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body DecideRequest true "Decision"
// @Success 204 "Decided"
// @Failure 400 {object} DetailedErrorResponse
// @Router /v1/applications/{id} [put]
func (h *DirectoryHandler) DecideApplication(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req DecideRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.CodeInvalidRequest, "Invalid request format", nil)
	}
	if err := h.validator.Validate(&req); err != nil {
		return errorJSON(c, apperrors.CodeValidationError, "Validation failed", err.Error())
	}

	err = h.directory.DecideApplication(c.Request().Context(), sessionToken(c), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		return h.handleDirectoryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard is the landing view for any authenticated identity.
func (h *DirectoryHandler) Dashboard(c echo.Context) error {
	identity, _ := c.Get(middleware.ContextIdentityKey).(*domain.Identity)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"view":     "dashboard",
		"identity": identity,
	})
}

func (h *DirectoryHandler) handleDirectoryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUpstreamUnauthorized):
		// The platform no longer honors this session; the usecase already
		// cleared it. Browsers go back to login.
		if prefersJSON(c) {
			return errorJSON(c, apperrors.CodeSessionRevoked, "Session no longer valid", nil)
		}
		return c.Redirect(http.StatusSeeOther, domain.LoginPath)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "volunteer platform temporarily unavailable",
		})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "insufficient privileges"})
	case errors.Is(err, domain.ErrInvalidApplicationStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application status"})
	default:
		h.logger.Error("directory request failed", "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "platform request failed"})
	}
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextSessionTokenKey).(string)
	return token
}

func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
