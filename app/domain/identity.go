package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Role determines which views and routes an identity can reach.
type Role string

const (
	RoleVolunteer         Role = "VOLUNTEER"
	RoleOrganizationAdmin Role = "ORGANIZATION_ADMIN"
)

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleVolunteer:
		return RoleVolunteer, nil
	case RoleOrganizationAdmin:
		return RoleOrganizationAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleOrganizationAdmin
}

// VolunteerProfile holds the volunteer-specific part of an identity.
type VolunteerProfile struct {
	Bio         string   `json:"bio,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Location    string   `json:"location,omitempty"`
	WeeklyHours uint     `json:"weekly_hours,omitempty"`
}

// OrganizationProfile holds the organization-specific part of an identity.
type OrganizationProfile struct {
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Identity is the authenticated user's record. A nil *Identity means
// "not authenticated"; there is no separate boolean that could desync.
type Identity struct {
	ID           uint                 `json:"id"`
	Email        string               `json:"email"`
	DisplayName  string               `json:"display_name"`
	Role         Role                 `json:"role"`
	Volunteer    *VolunteerProfile    `json:"volunteer,omitempty"`
	Organization *OrganizationProfile `json:"organization,omitempty"`
}

// NewIdentity builds a validated identity from an upstream profile record
// merged with the server-confirmed role tag.
func NewIdentity(id uint, email, displayName string, role Role) (*Identity, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidIdentity)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidIdentity)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	return &Identity{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        role,
	}, nil
}

// HasRole reports whether the identity's role is a member of allowed.
func (i *Identity) HasRole(allowed ...Role) bool {
	if i == nil {
		return false
	}
	for _, r := range allowed {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Validate checks the identity invariants after deserialization. A record
// restored from durable storage that fails Validate is treated as no session.
func (i *Identity) Validate() error {
	if i == nil {
		return ErrInvalidIdentity
	}
	if i.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidIdentity)
	}
	if !i.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, i.Role)
	}
	return nil
}
