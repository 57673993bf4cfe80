package hubapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-hub/app/config"
	"volunteer-hub/app/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(&config.Config{
		HubAPIURL:     serverURL,
		HubAPITimeout: 5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient(&config.Config{HubAPIURL: "not a url"}, testLogger())
	assert.Error(t, err)

	_, err = NewClient(&config.Config{HubAPIURL: "helperhub:8080"}, testLogger())
	assert.Error(t, err)
}

func TestClient_LoginDecodesFlatProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login/volunteer", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "vol@example.org", creds.Email)

		json.NewEncoder(w).Encode(ProfileRecord{
			ID:    7,
			Email: "vol@example.org",
			Name:  "Test Volunteer",
		})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	record, err := client.Login(context.Background(), "/login/volunteer", Credentials{
		Email:    "vol@example.org",
		Password: "secret",
		Role:     "VOLUNTEER",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), record.ID)
	assert.Equal(t, "Test Volunteer", record.Name)
}

func TestClient_LoginDecodesEnvelopedProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user": ProfileRecord{ID: 9, Email: "admin@shelter.org", Name: "Shelter Admin"},
		})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	record, err := client.Login(context.Background(), "/login/organization", Credentials{})

	require.NoError(t, err)
	assert.Equal(t, uint(9), record.ID)
	assert.Equal(t, "admin@shelter.org", record.Email)
}

func TestClient_UnauthorizedBecomesSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.Login(context.Background(), "/login/volunteer", Credentials{})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)

	_, err = client.GetCategories(context.Background(), "stale-token")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)
}

func TestClient_ServerErrorBecomesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetOpportunity(context.Background(), "token", 42)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, "boom", statusErr.Body)
}

func TestClient_UnreachableBecomesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCategories(context.Background(), "token")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		require.Equal(t, "/applications/volunteer/7", r.URL.Path)
		json.NewEncoder(w).Encode([]ApplicationRecord{{ID: 1, VolunteerID: 7, Status: "PENDING"}})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	records, err := client.GetApplicationsByVolunteer(context.Background(), "session-token", 7)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(7), records[0].VolunteerID)
}

func TestClient_CreateApplicationFallsBackToInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	submitted := ApplicationRecord{VolunteerID: 7, OpportunityID: 42, Status: "PENDING"}

	created, err := client.CreateApplication(context.Background(), "token", submitted)
	require.NoError(t, err)
	assert.Equal(t, submitted, *created)
}
