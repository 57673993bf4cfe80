package domain

import "time"

// Directory records mirror the platform API's resources. They are consumed,
// never owned: volunteer-hub reads and writes them through the gateway and
// keeps no copy of its own.

// Opportunity is a volunteering position published by an organization.
type Opportunity struct {
	ID               uint      `json:"id"`
	OrganizationMail string    `json:"organization_mail"`
	Category         string    `json:"category"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	HoursRequired    uint      `json:"hours_required"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// Organization is an organization's public directory profile, looked up by
// its mail address.
type Organization struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// IsValid reports whether the status is one of the known review states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// Application is a volunteer's application to an opportunity.
type Application struct {
	ID            uint              `json:"id"`
	VolunteerID   uint              `json:"volunteer_ID"`
	OpportunityID uint              `json:"opportunity_ID"`
	Status        ApplicationStatus `json:"status"`
	CoverLetter   string            `json:"cover_Letter"`
	CreatedAt     time.Time         `json:"created_At"`
}

// Category is an interest area volunteers and opportunities are tagged with.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"category"`
}

// VolunteerRegistration is the payload posted to the volunteer creation endpoint.
type VolunteerRegistration struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FullName    string   `json:"full_name" validate:"required"`
	Phone       string   `json:"phone" validate:"required"`
	Location    string   `json:"location"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	WeeklyHours uint     `json:"weekly_hours"`
}

// OrganizationRegistration is the payload posted to the organization creation endpoint.
type OrganizationRegistration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
}
