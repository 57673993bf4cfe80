package port

//go:generate mockgen -source=hub_port.go -destination=../mocks/mock_hub_port.go -package=mocks

import (
	"context"

	"volunteer-hub/app/domain"
)

// HubGateway is the anti-corruption layer over the external platform API.
// Credentials checks and registrations are unauthenticated; directory calls
// carry the caller's session token as a bearer credential.
type HubGateway interface {
	// Login posts credentials to the role-specific login endpoint and returns
	// the upstream profile merged with the role tag.
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.Identity, error)

	// RegisterVolunteer posts the registration payload plus role tag to the
	// volunteer creation endpoint. Only the status is interpreted.
	RegisterVolunteer(ctx context.Context, reg domain.VolunteerRegistration) error

	// RegisterOrganization is the organization counterpart.
	RegisterOrganization(ctx context.Context, reg domain.OrganizationRegistration) error

	// Directory reads and writes, consumed from the platform API.
	GetOpportunity(ctx context.Context, token string, id uint) (*domain.Opportunity, error)
	ListOpportunities(ctx context.Context, token string) ([]domain.Opportunity, error)
	GetOrganization(ctx context.Context, token, mail string) (*domain.Organization, error)
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	ListApplicationsByVolunteer(ctx context.Context, token string, volunteerID uint) ([]domain.Application, error)
	ListApplicationsByOpportunity(ctx context.Context, token string, opportunityID uint) ([]domain.Application, error)
	CreateApplication(ctx context.Context, token string, app domain.Application) (*domain.Application, error)
	UpdateApplication(ctx context.Context, token string, app domain.Application) error
}

// DirectoryUsecase exposes directory operations to handlers. Implementations
// translate an upstream 401 into a forced logout of the calling session.
type DirectoryUsecase interface {
	BrowseOpportunity(ctx context.Context, token string, id uint) (*domain.Opportunity, error)
	ListOpportunities(ctx context.Context, token string) ([]domain.Opportunity, error)
	MyOpportunities(ctx context.Context, token string, identity *domain.Identity) ([]domain.Opportunity, error)
	OrganizationProfile(ctx context.Context, token, mail string) (*domain.Organization, error)
	Categories(ctx context.Context, token string) ([]domain.Category, error)
	MyApplications(ctx context.Context, token string, identity *domain.Identity) ([]domain.Application, error)
	Apply(ctx context.Context, token string, identity *domain.Identity, opportunityID uint, coverLetter string) (*domain.Application, error)
	ReviewApplications(ctx context.Context, token string, opportunityID uint) ([]domain.Application, error)
	DecideApplication(ctx context.Context, token string, applicationID uint, status domain.ApplicationStatus) error
}
