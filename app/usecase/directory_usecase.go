package usecase

import (
	"context"
	"errors"
	"log/slog"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/utils/logger"
	"volunteer-hub/app/utils/metrics"
)

// DirectoryUsecase serves directory reads and writes through the platform
// gateway. Any upstream 401 means the platform no longer honors the caller's
// credentials, so the local session is force-logged-out before the error is
// surfaced; handlers translate it into a redirect to the login route.
type DirectoryUsecase struct {
	gateway  port.HubGateway
	sessions port.SessionUsecase
	logger   *slog.Logger
}

// NewDirectoryUsecase creates a new DirectoryUsecase instance
func NewDirectoryUsecase(gateway port.HubGateway, sessions port.SessionUsecase, log *slog.Logger) *DirectoryUsecase {
	return &DirectoryUsecase{
		gateway:  gateway,
		sessions: sessions,
		logger:   log.With("component", "directory_usecase"),
	}
}

// forceLogoutOn401 clears the session when the upstream rejected its
// credentials. The original error is returned unchanged.
func (uc *DirectoryUsecase) forceLogoutOn401(ctx context.Context, token string, err error) error {
	if err == nil || !errors.Is(err, domain.ErrUpstreamUnauthorized) {
		return err
	}

	metrics.ForcedLogouts.Inc()
	uc.logger.Warn("upstream rejected session credentials, forcing logout",
		"session", logger.TokenPrefix(token))
	if lerr := uc.sessions.Logout(ctx, token); lerr != nil {
		uc.logger.Error("forced logout failed", "session", logger.TokenPrefix(token), "error", lerr)
	}
	return err
}

// BrowseOpportunity fetches a single opportunity by ID.
func (uc *DirectoryUsecase) BrowseOpportunity(ctx context.Context, token string, id uint) (*domain.Opportunity, error) {
	opp, err := uc.gateway.GetOpportunity(ctx, token, id)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return opp, nil
}

// ListOpportunities lists every published opportunity.
func (uc *DirectoryUsecase) ListOpportunities(ctx context.Context, token string) ([]domain.Opportunity, error) {
	opps, err := uc.gateway.ListOpportunities(ctx, token)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return opps, nil
}

// MyOpportunities lists the opportunities the calling organization published.
// The platform lists opportunities globally; the organization's own set is
// the slice tagged with its mail address.
func (uc *DirectoryUsecase) MyOpportunities(ctx context.Context, token string, identity *domain.Identity) ([]domain.Opportunity, error) {
	if !identity.HasRole(domain.RoleOrganizationAdmin) {
		return nil, domain.ErrInvalidRole
	}

	opps, err := uc.gateway.ListOpportunities(ctx, token)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}

	mine := make([]domain.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if opp.OrganizationMail == identity.Email {
			mine = append(mine, opp)
		}
	}
	return mine, nil
}

// OrganizationProfile fetches an organization's public profile by mail.
func (uc *DirectoryUsecase) OrganizationProfile(ctx context.Context, token, mail string) (*domain.Organization, error) {
	org, err := uc.gateway.GetOrganization(ctx, token, mail)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return org, nil
}

// Categories lists the platform's opportunity categories.
func (uc *DirectoryUsecase) Categories(ctx context.Context, token string) ([]domain.Category, error) {
	cats, err := uc.gateway.ListCategories(ctx, token)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return cats, nil
}

// MyApplications lists the calling volunteer's applications.
func (uc *DirectoryUsecase) MyApplications(ctx context.Context, token string, identity *domain.Identity) ([]domain.Application, error) {
	if !identity.HasRole(domain.RoleVolunteer) {
		return nil, domain.ErrInvalidRole
	}

	apps, err := uc.gateway.ListApplicationsByVolunteer(ctx, token, identity.ID)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return apps, nil
}

// Apply submits a new application for the calling volunteer. The volunteer ID
// comes from the session identity, never from the request body.
func (uc *DirectoryUsecase) Apply(ctx context.Context, token string, identity *domain.Identity, opportunityID uint, coverLetter string) (*domain.Application, error) {
	if !identity.HasRole(domain.RoleVolunteer) {
		return nil, domain.ErrInvalidRole
	}

	app := domain.Application{
		VolunteerID:   identity.ID,
		OpportunityID: opportunityID,
		Status:        domain.ApplicationPending,
		CoverLetter:   coverLetter,
	}
	created, err := uc.gateway.CreateApplication(ctx, token, app)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}

	uc.logger.Info("application submitted",
		"volunteer_id", identity.ID,
		"opportunity_id", opportunityID)
	return created, nil
}

// ReviewApplications lists applications for one of the organization's
// opportunities.
func (uc *DirectoryUsecase) ReviewApplications(ctx context.Context, token string, opportunityID uint) ([]domain.Application, error) {
	apps, err := uc.gateway.ListApplicationsByOpportunity(ctx, token, opportunityID)
	if err != nil {
		return nil, uc.forceLogoutOn401(ctx, token, err)
	}
	return apps, nil
}

// DecideApplication approves or rejects a pending application.
func (uc *DirectoryUsecase) DecideApplication(ctx context.Context, token string, applicationID uint, status domain.ApplicationStatus) error {
	if !status.IsValid() || status == domain.ApplicationPending {
		return domain.ErrInvalidApplicationStatus
	}

	app := domain.Application{ID: applicationID, Status: status}
	if err := uc.gateway.UpdateApplication(ctx, token, app); err != nil {
		return uc.forceLogoutOn401(ctx, token, err)
	}

	uc.logger.Info("application decided", "application_id", applicationID, "status", status)
	return nil
}
