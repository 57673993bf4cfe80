package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/mocks"
	"volunteer-hub/app/rest/middleware"
)

func TestDirectoryHandler_GetOpportunity(t *testing.T) {
	t.Run("returns the opportunity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockDirectoryUsecase(ctrl)
		directory.EXPECT().
			BrowseOpportunity(gomock.Any(), "sid-1", uint(9)).
			Return(&domain.Opportunity{ID: 9, Title: "Beach cleanup"}, nil)

		h := NewDirectoryHandler(directory, testLogger())
		c, rec := newAuthContext(http.MethodGet, "/v1/opportunities/9", "")
		c.SetParamNames("id")
		c.SetParamValues("9")
		c.Set(middleware.ContextSessionTokenKey, "sid-1")

		require.NoError(t, h.GetOpportunity(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var opp domain.Opportunity
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opp))
		assert.Equal(t, "Beach cleanup", opp.Title)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewDirectoryHandler(mocks.NewMockDirectoryUsecase(ctrl), testLogger())
		c, _ := newAuthContext(http.MethodGet, "/v1/opportunities/nope", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := h.GetOpportunity(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("revoked session redirects browsers to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockDirectoryUsecase(ctrl)
		directory.EXPECT().
			BrowseOpportunity(gomock.Any(), "sid-stale", uint(9)).
			Return(nil, domain.ErrUpstreamUnauthorized)

		h := NewDirectoryHandler(directory, testLogger())
		c, rec := newAuthContext(http.MethodGet, "/v1/opportunities/9", "")
		c.SetParamNames("id")
		c.SetParamValues("9")
		c.Set(middleware.ContextSessionTokenKey, "sid-stale")

		require.NoError(t, h.GetOpportunity(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, domain.LoginPath, rec.Header().Get("Location"))
	})
}

func TestDirectoryHandler_MyOpportunities(t *testing.T) {
	org, err := domain.NewIdentity(3, "shelter@example.org", "City Shelter", domain.RoleOrganizationAdmin)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockDirectoryUsecase(ctrl)
	directory.EXPECT().
		MyOpportunities(gomock.Any(), "sid-org", org).
		Return([]domain.Opportunity{{ID: 9, Title: "Food drive", OrganizationMail: org.Email}}, nil)

	h := NewDirectoryHandler(directory, testLogger())
	c, rec := newAuthContext(http.MethodGet, "/v1/projects", "")
	c.Set(middleware.ContextIdentityKey, org)
	c.Set(middleware.ContextSessionTokenKey, "sid-org")

	require.NoError(t, h.MyOpportunities(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var opps []domain.Opportunity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opps))
	require.Len(t, opps, 1)
	assert.Equal(t, "Food drive", opps[0].Title)
}

func TestDirectoryHandler_GetOrganization(t *testing.T) {
	t.Run("returns the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockDirectoryUsecase(ctrl)
		directory.EXPECT().
			OrganizationProfile(gomock.Any(), "sid-1", "shelter@example.org").
			Return(&domain.Organization{ID: 3, Name: "City Shelter"}, nil)

		h := NewDirectoryHandler(directory, testLogger())
		c, rec := newAuthContext(http.MethodGet, "/v1/organizations/shelter@example.org", "")
		c.SetParamNames("mail")
		c.SetParamValues("shelter@example.org")
		c.Set(middleware.ContextSessionTokenKey, "sid-1")

		require.NoError(t, h.GetOrganization(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var org domain.Organization
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
		assert.Equal(t, "City Shelter", org.Name)
	})

	t.Run("malformed mail is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewDirectoryHandler(mocks.NewMockDirectoryUsecase(ctrl), testLogger())
		c, _ := newAuthContext(http.MethodGet, "/v1/organizations/not-a-mail", "")
		c.SetParamNames("mail")
		c.SetParamValues("not-a-mail")

		err := h.GetOrganization(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestDirectoryHandler_Apply(t *testing.T) {
	volunteer, err := domain.NewIdentity(42, "jordan@example.com", "Jordan Reyes", domain.RoleVolunteer)
	require.NoError(t, err)

	t.Run("submits the application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockDirectoryUsecase(ctrl)
		directory.EXPECT().
			Apply(gomock.Any(), "sid-1", volunteer, uint(9), "I care about beaches").
			Return(&domain.Application{ID: 77, VolunteerID: 42, OpportunityID: 9, Status: domain.ApplicationPending}, nil)

		h := NewDirectoryHandler(directory, testLogger())
		c, rec := newAuthContext(http.MethodPost, "/v1/applications",
			`{"opportunity_id":9,"cover_letter":"I care about beaches"}`)
		c.Set(middleware.ContextIdentityKey, volunteer)
		c.Set(middleware.ContextSessionTokenKey, "sid-1")

		require.NoError(t, h.Apply(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing opportunity id fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewDirectoryHandler(mocks.NewMockDirectoryUsecase(ctrl), testLogger())
		c, rec := newAuthContext(http.MethodPost, "/v1/applications", `{"cover_letter":"hi"}`)
		c.Set(middleware.ContextIdentityKey, volunteer)

		require.NoError(t, h.Apply(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDirectoryHandler_DecideApplication(t *testing.T) {
	t.Run("approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockDirectoryUsecase(ctrl)
		directory.EXPECT().
			DecideApplication(gomock.Any(), "sid-2", uint(77), domain.ApplicationApproved).
			Return(nil)

		h := NewDirectoryHandler(directory, testLogger())
		c, rec := newAuthContext(http.MethodPut, "/v1/applications/77", `{"status":"APPROVED"}`)
		c.SetParamNames("id")
		c.SetParamValues("77")
		c.Set(middleware.ContextSessionTokenKey, "sid-2")

		require.NoError(t, h.DecideApplication(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewDirectoryHandler(mocks.NewMockDirectoryUsecase(ctrl), testLogger())
		c, rec := newAuthContext(http.MethodPut, "/v1/applications/77", `{"status":"MAYBE"}`)
		c.SetParamNames("id")
		c.SetParamValues("77")

		require.NoError(t, h.DecideApplication(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDirectoryHandler_MyApplications_PlatformOutage(t *testing.T) {
	volunteer, err := domain.NewIdentity(42, "jordan@example.com", "Jordan Reyes", domain.RoleVolunteer)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockDirectoryUsecase(ctrl)
	directory.EXPECT().
		MyApplications(gomock.Any(), "sid-1", volunteer).
		Return(nil, domain.ErrUpstreamUnavailable)

	h := NewDirectoryHandler(directory, testLogger())
	c, rec := newAuthContext(http.MethodGet, "/v1/applications", "")
	c.Set(middleware.ContextIdentityKey, volunteer)
	c.Set(middleware.ContextSessionTokenKey, "sid-1")

	require.NoError(t, h.MyApplications(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
