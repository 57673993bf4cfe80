package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"volunteer-hub/app/config"
	"volunteer-hub/app/domain"
)

// Client is a thin HTTP client for the external platform API. It owns
// transport concerns only: request encoding, bearer credentials, status
// interpretation. Translation to domain types lives in the gateway.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a new platform API client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.HubAPIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid platform API URL: %s", cfg.HubAPIURL)
	}

	timeout := cfg.HubAPITimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logger.Info("platform API client initialized", "base_url", cfg.HubAPIURL, "timeout", timeout)

	return &Client{
		baseURL: strings.TrimRight(cfg.HubAPIURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "hubapi"),
	}, nil
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform API returned %d: %s", e.Status, e.Body)
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ProfileRecord is the upstream profile shape shared by volunteer and
// organization accounts. Field names follow the platform API's JSON,
// including its historical spelling of availabile_hours.
type ProfileRecord struct {
	ID             uint     `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio_data"`
	Categories     []string `json:"category_list"`
	AvailableHours uint     `json:"availabile_hours"`
	Description    string   `json:"description"`
	WebsiteURL     string   `json:"website_url"`
}

// loginEnvelope covers deployments that wrap the profile in a "user" key.
type loginEnvelope struct {
	User *ProfileRecord `json:"user"`
}

// Login posts credentials to a role-specific login path and decodes the
// returned profile, accepting both enveloped and flat response bodies.
func (c *Client) Login(ctx context.Context, path string, creds Credentials) (*ProfileRecord, error) {
	raw, err := c.do(ctx, http.MethodPost, path, "", creds)
	if err != nil {
		return nil, err
	}

	var envelope loginEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		return envelope.User, nil
	}

	var record ProfileRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if record.Email == "" {
		return nil, fmt.Errorf("login response carried no profile")
	}
	return &record, nil
}

// CreateAccount posts a registration payload to a creation endpoint. Only the
// status is interpreted; the body is ignored beyond the error path.
func (c *Client) CreateAccount(ctx context.Context, path string, payload interface{}) error {
	_, err := c.do(ctx, http.MethodPost, path, "", payload)
	return err
}

// OpportunityRecord is the upstream opportunity shape.
type OpportunityRecord struct {
	ID               uint   `json:"id"`
	OrganizationMail string `json:"organization_mail"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	HoursRequired    uint   `json:"hours_required"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

// ApplicationRecord is the upstream application shape.
type ApplicationRecord struct {
	ID            uint   `json:"id"`
	VolunteerID   uint   `json:"volunteer_ID"`
	OpportunityID uint   `json:"opportunity_ID"`
	Status        string `json:"status"`
	CoverLetter   string `json:"cover_Letter"`
}

// CategoryRecord is the upstream category shape.
type CategoryRecord struct {
	ID   uint   `json:"ID"`
	Name string `json:"Category"`
}

// GetOpportunity fetches a single opportunity by ID.
func (c *Client) GetOpportunity(ctx context.Context, token string, id uint) (*OpportunityRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/opportunities/get/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	var record OpportunityRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode opportunity: %w", err)
	}
	return &record, nil
}

// GetOpportunities fetches the full opportunity listing.
func (c *Client) GetOpportunities(ctx context.Context, token string) ([]OpportunityRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/opportunities/get", token, nil)
	if err != nil {
		return nil, err
	}
	var records []OpportunityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode opportunities: %w", err)
	}
	return records, nil
}

// GetOrganization fetches an organization's profile by its mail address.
func (c *Client) GetOrganization(ctx context.Context, token, mail string) (*ProfileRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/organizations/get/"+url.PathEscape(mail), token, nil)
	if err != nil {
		return nil, err
	}
	var record ProfileRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode organization: %w", err)
	}
	return &record, nil
}

// GetCategories fetches all interest categories.
func (c *Client) GetCategories(ctx context.Context, token string) ([]CategoryRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/categories/get", token, nil)
	if err != nil {
		return nil, err
	}
	var records []CategoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return records, nil
}

// GetApplicationsByVolunteer fetches a volunteer's applications.
func (c *Client) GetApplicationsByVolunteer(ctx context.Context, token string, volunteerID uint) ([]ApplicationRecord, error) {
	return c.getApplications(ctx, token, fmt.Sprintf("/applications/volunteer/%d", volunteerID))
}

// GetApplicationsByOpportunity fetches all applications for an opportunity.
func (c *Client) GetApplicationsByOpportunity(ctx context.Context, token string, opportunityID uint) ([]ApplicationRecord, error) {
	return c.getApplications(ctx, token, fmt.Sprintf("/applications/opportunity/%d", opportunityID))
}

func (c *Client) getApplications(ctx context.Context, token, path string) ([]ApplicationRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	var records []ApplicationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return records, nil
}

// CreateApplication submits a new application.
func (c *Client) CreateApplication(ctx context.Context, token string, record ApplicationRecord) (*ApplicationRecord, error) {
	raw, err := c.do(ctx, http.MethodPost, "/applications", token, record)
	if err != nil {
		return nil, err
	}
	var created ApplicationRecord
	if err := json.Unmarshal(raw, &created); err != nil {
		// Some deployments return a bare confirmation; fall back to the input.
		created = record
	}
	return &created, nil
}

// UpdateApplication updates an application's review status.
func (c *Client) UpdateApplication(ctx context.Context, token string, record ApplicationRecord) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/applications/%d", record.ID), token, record)
	return err
}

// HealthCheck probes upstream availability.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.do(ctx, http.MethodGet, "/categories/get", "", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

// do performs an HTTP round trip. A bearer token is attached when present;
// an upstream 401 is surfaced as domain.ErrUpstreamUnauthorized so callers
// can force a logout of the presenting session.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("platform API request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn("platform API rejected credentials", "method", method, "path", path)
		return nil, domain.ErrUpstreamUnauthorized
	default:
		c.logger.Error("platform API error response",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
}
