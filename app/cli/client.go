package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"volunteer-hub/app/domain"
)

const sessionCookieName = "vh_session"

// Client talks to the volunteer-hub facade over its JSON API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the facade at baseURL. token may be empty
// for unauthenticated calls.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type sessionPayload struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity"`
	ExpiresAt     string           `json:"expires_at"`
}

type errorPayload struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details"`
}

// Login authenticates and returns the identity plus the signed session token
// taken from the response cookie.
func (c *Client) Login(ctx context.Context, email, password string, role domain.Role) (*IdentityRecord, error) {
	body, resp, err := c.do(ctx, http.MethodPost, "/v1/auth/login", loginPayload{
		Email:    email,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		return nil, err
	}

	var session sessionPayload
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	token := ""
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			token = cookie.Value
		}
	}
	if token == "" || session.Identity == nil {
		return nil, fmt.Errorf("login response carried no session")
	}

	return &IdentityRecord{Token: token, Identity: session.Identity}, nil
}

// Logout ends the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	return err
}

// Session fetches the server's view of the current session.
func (c *Client) Session(ctx context.Context) (*domain.Identity, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/v1/auth/session", nil)
	if err != nil {
		return nil, err
	}

	var session sessionPayload
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decoding session response: %w", err)
	}
	if !session.Authenticated {
		return nil, nil
	}
	return session.Identity, nil
}

// GetOpportunity fetches one opportunity.
func (c *Client) GetOpportunity(ctx context.Context, id uint) (*domain.Opportunity, error) {
	body, _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/opportunities/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var opp domain.Opportunity
	if err := json.Unmarshal(body, &opp); err != nil {
		return nil, fmt.Errorf("decoding opportunity: %w", err)
	}
	return &opp, nil
}

// ListOpportunities fetches the full opportunity listing.
func (c *Client) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	return c.getOpportunities(ctx, "/v1/opportunities")
}

// MyProjects lists the opportunities the calling organization published.
func (c *Client) MyProjects(ctx context.Context) ([]domain.Opportunity, error) {
	return c.getOpportunities(ctx, "/v1/projects")
}

func (c *Client) getOpportunities(ctx context.Context, path string) ([]domain.Opportunity, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var opps []domain.Opportunity
	if err := json.Unmarshal(body, &opps); err != nil {
		return nil, fmt.Errorf("decoding opportunities: %w", err)
	}
	return opps, nil
}

// MyApplications lists the caller's applications.
func (c *Client) MyApplications(ctx context.Context) ([]domain.Application, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/v1/applications", nil)
	if err != nil {
		return nil, err
	}

	var apps []domain.Application
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, fmt.Errorf("decoding applications: %w", err)
	}
	return apps, nil
}

type applyPayload struct {
	OpportunityID uint   `json:"opportunity_id"`
	CoverLetter   string `json:"cover_letter"`
}

// Apply submits an application.
func (c *Client) Apply(ctx context.Context, opportunityID uint, coverLetter string) (*domain.Application, error) {
	body, _, err := c.do(ctx, http.MethodPost, "/v1/applications", applyPayload{
		OpportunityID: opportunityID,
		CoverLetter:   coverLetter,
	})
	if err != nil {
		return nil, err
	}

	var app domain.Application
	if err := json.Unmarshal(body, &app); err != nil {
		return nil, fmt.Errorf("decoding application: %w", err)
	}
	return &app, nil
}

// APIError is a non-2xx answer from the facade.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("request failed with HTTP %d", e.Status)
}

// IsUnauthorized reports whether the server no longer honors the session.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, *http.Response, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("volunteer-hub unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var decoded errorPayload
		if json.Unmarshal(body, &decoded) == nil {
			apiErr.Code = decoded.Code
			apiErr.Message = decoded.Error
		}
		return nil, resp, apiErr
	}
	return body, resp, nil
}
