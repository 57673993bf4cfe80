package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/driver/hubapi"
)

const (
	volunteerLoginPath     = "/login/volunteer"
	organizationLoginPath  = "/login/organization"
	volunteerCreatePath    = "/volunteers/create"
	organizationCreatePath = "/organizations/create"
)

// HubGateway implements port.HubGateway. It acts as an anti-corruption layer
// between the domain and the external platform API: upstream record shapes
// and status codes stop here.
type HubGateway struct {
	client *hubapi.Client
	logger *slog.Logger
}

// NewHubGateway creates a new HubGateway instance
func NewHubGateway(client *hubapi.Client, logger *slog.Logger) *HubGateway {
	return &HubGateway{
		client: client,
		logger: logger.With("component", "hub_gateway"),
	}
}

// Login authenticates against the role-specific upstream endpoint and merges
// the returned profile with the role tag. Any upstream rejection collapses to
// domain.ErrInvalidCredentials; callers never see upstream details.
func (g *HubGateway) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Identity, error) {
	path := volunteerLoginPath
	if role == domain.RoleOrganizationAdmin {
		path = organizationLoginPath
	}

	record, err := g.client.Login(ctx, path, hubapi.Credentials{
		Email:    email,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		g.logger.Warn("login rejected by platform API", "email", email, "role", role)
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := g.buildIdentity(record, role)
	if err != nil {
		g.logger.Error("platform API returned an unusable profile", "email", email, "error", err)
		return nil, fmt.Errorf("unusable login response: %w", err)
	}

	g.logger.Info("login accepted by platform API", "user_id", identity.ID, "role", identity.Role)
	return identity, nil
}

// RegisterVolunteer posts a volunteer registration with the role tag.
func (g *HubGateway) RegisterVolunteer(ctx context.Context, reg domain.VolunteerRegistration) error {
	payload := struct {
		Email          string   `json:"email"`
		Password       string   `json:"password"`
		Name           string   `json:"name"`
		Phone          string   `json:"phone"`
		Location       string   `json:"location"`
		Bio            string   `json:"bio_data"`
		Categories     []string `json:"category_list"`
		AvailableHours uint     `json:"availabile_hours"`
		UserRole       string   `json:"userRole"`
	}{
		Email:          reg.Email,
		Password:       reg.Password,
		Name:           reg.FullName,
		Phone:          reg.Phone,
		Location:       reg.Location,
		Bio:            reg.Bio,
		Categories:     reg.Skills,
		AvailableHours: reg.WeeklyHours,
		UserRole:       string(domain.RoleVolunteer),
	}

	if err := g.client.CreateAccount(ctx, volunteerCreatePath, payload); err != nil {
		return g.registrationError(err, reg.Email)
	}

	g.logger.Info("volunteer registered with platform API", "email", reg.Email)
	return nil
}

// RegisterOrganization posts an organization registration with the role tag.
func (g *HubGateway) RegisterOrganization(ctx context.Context, reg domain.OrganizationRegistration) error {
	payload := struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Location    string `json:"location"`
		Description string `json:"description"`
		WebsiteURL  string `json:"website_url"`
		UserRole    string `json:"userRole"`
	}{
		Email:       reg.Email,
		Password:    reg.Password,
		Name:        reg.Name,
		Phone:       reg.Phone,
		Location:    reg.Address,
		Description: reg.Description,
		WebsiteURL:  reg.Website,
		UserRole:    string(domain.RoleOrganizationAdmin),
	}

	if err := g.client.CreateAccount(ctx, organizationCreatePath, payload); err != nil {
		return g.registrationError(err, reg.Email)
	}

	g.logger.Info("organization registered with platform API", "email", reg.Email)
	return nil
}

// GetOpportunity fetches one opportunity.
func (g *HubGateway) GetOpportunity(ctx context.Context, token string, id uint) (*domain.Opportunity, error) {
	record, err := g.client.GetOpportunity(ctx, token, id)
	if err != nil {
		return nil, g.directoryError(err)
	}
	opp := toOpportunity(*record)
	return &opp, nil
}

// ListOpportunities fetches the full opportunity listing.
func (g *HubGateway) ListOpportunities(ctx context.Context, token string) ([]domain.Opportunity, error) {
	records, err := g.client.GetOpportunities(ctx, token)
	if err != nil {
		return nil, g.directoryError(err)
	}
	opportunities := make([]domain.Opportunity, 0, len(records))
	for _, r := range records {
		opportunities = append(opportunities, toOpportunity(r))
	}
	return opportunities, nil
}

// GetOrganization fetches an organization's public profile by mail address.
func (g *HubGateway) GetOrganization(ctx context.Context, token, mail string) (*domain.Organization, error) {
	record, err := g.client.GetOrganization(ctx, token, mail)
	if err != nil {
		return nil, g.directoryError(err)
	}
	return &domain.Organization{
		ID:          record.ID,
		Email:       record.Email,
		Name:        record.Name,
		Phone:       record.Phone,
		Location:    record.Location,
		Description: record.Description,
		Website:     record.WebsiteURL,
	}, nil
}

// ListCategories fetches all interest categories.
func (g *HubGateway) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	records, err := g.client.GetCategories(ctx, token)
	if err != nil {
		return nil, g.directoryError(err)
	}
	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, domain.Category{ID: r.ID, Name: r.Name})
	}
	return categories, nil
}

// ListApplicationsByVolunteer fetches a volunteer's applications.
func (g *HubGateway) ListApplicationsByVolunteer(ctx context.Context, token string, volunteerID uint) ([]domain.Application, error) {
	records, err := g.client.GetApplicationsByVolunteer(ctx, token, volunteerID)
	if err != nil {
		return nil, g.directoryError(err)
	}
	return toApplications(records), nil
}

// ListApplicationsByOpportunity fetches applications for an opportunity.
func (g *HubGateway) ListApplicationsByOpportunity(ctx context.Context, token string, opportunityID uint) ([]domain.Application, error) {
	records, err := g.client.GetApplicationsByOpportunity(ctx, token, opportunityID)
	if err != nil {
		return nil, g.directoryError(err)
	}
	return toApplications(records), nil
}

// CreateApplication submits a new application.
func (g *HubGateway) CreateApplication(ctx context.Context, token string, app domain.Application) (*domain.Application, error) {
	created, err := g.client.CreateApplication(ctx, token, hubapi.ApplicationRecord{
		VolunteerID:   app.VolunteerID,
		OpportunityID: app.OpportunityID,
		Status:        string(app.Status),
		CoverLetter:   app.CoverLetter,
	})
	if err != nil {
		return nil, g.directoryError(err)
	}
	result := toApplication(*created)
	return &result, nil
}

// UpdateApplication updates an application's review status.
func (g *HubGateway) UpdateApplication(ctx context.Context, token string, app domain.Application) error {
	err := g.client.UpdateApplication(ctx, token, hubapi.ApplicationRecord{
		ID:            app.ID,
		VolunteerID:   app.VolunteerID,
		OpportunityID: app.OpportunityID,
		Status:        string(app.Status),
		CoverLetter:   app.CoverLetter,
	})
	if err != nil {
		return g.directoryError(err)
	}
	return nil
}

// buildIdentity merges an upstream profile record with the role tag into a
// validated identity. The role-specific profile fields ride along.
func (g *HubGateway) buildIdentity(record *hubapi.ProfileRecord, role domain.Role) (*domain.Identity, error) {
	identity, err := domain.NewIdentity(record.ID, record.Email, record.Name, role)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleVolunteer:
		identity.Volunteer = &domain.VolunteerProfile{
			Bio:         record.Bio,
			Skills:      record.Categories,
			Location:    record.Location,
			WeeklyHours: record.AvailableHours,
		}
	case domain.RoleOrganizationAdmin:
		identity.Organization = &domain.OrganizationProfile{
			Address:     record.Location,
			Description: record.Description,
			Phone:       record.Phone,
			Website:     record.WebsiteURL,
		}
	}

	return identity, nil
}

// registrationError maps upstream creation failures to domain errors.
func (g *HubGateway) registrationError(err error, email string) error {
	var statusErr *hubapi.StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusConflict {
		g.logger.Warn("registration rejected, email taken", "email", email)
		return domain.ErrEmailTaken
	}
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return err
	}
	g.logger.Warn("registration rejected by platform API", "email", email, "error", err)
	return fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, err)
}

// directoryError passes through the sentinels guards and usecases act on.
func (g *HubGateway) directoryError(err error) error {
	if errors.Is(err, domain.ErrUpstreamUnauthorized) || errors.Is(err, domain.ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
}

func toOpportunity(r hubapi.OpportunityRecord) domain.Opportunity {
	return domain.Opportunity{
		ID:               r.ID,
		OrganizationMail: r.OrganizationMail,
		Category:         r.Category,
		Title:            r.Title,
		Description:      r.Description,
		Location:         r.Location,
		HoursRequired:    r.HoursRequired,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
	}
}

func toApplications(records []hubapi.ApplicationRecord) []domain.Application {
	apps := make([]domain.Application, 0, len(records))
	for _, r := range records {
		apps = append(apps, toApplication(r))
	}
	return apps
}

func toApplication(r hubapi.ApplicationRecord) domain.Application {
	return domain.Application{
		ID:            r.ID,
		VolunteerID:   r.VolunteerID,
		OpportunityID: r.OpportunityID,
		Status:        domain.ApplicationStatus(r.Status),
		CoverLetter:   r.CoverLetter,
	}
}
