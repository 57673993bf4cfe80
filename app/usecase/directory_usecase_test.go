package usecase

import (
	"context"
	"testing"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDirectoryUsecase_BrowseOpportunity(t *testing.T) {
	t.Run("returns the opportunity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		opp := &domain.Opportunity{ID: 9, Title: "Beach cleanup", Category: "Environment"}
		gw.EXPECT().GetOpportunity(gomock.Any(), "tok-live", uint(9)).Return(opp, nil)

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		got, err := uc.BrowseOpportunity(context.Background(), "tok-live", 9)
		require.NoError(t, err)
		assert.Equal(t, opp, got)
	})

	t.Run("upstream 401 forces the session out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		gw.EXPECT().GetOpportunity(gomock.Any(), "tok-stale", uint(9)).
			Return(nil, domain.ErrUpstreamUnauthorized)
		sessions.EXPECT().Logout(gomock.Any(), "tok-stale").Return(nil)

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		got, err := uc.BrowseOpportunity(context.Background(), "tok-stale", 9)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)
		assert.Nil(t, got)
	})

	t.Run("transport failure does not touch the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		gw.EXPECT().GetOpportunity(gomock.Any(), "tok-live", uint(9)).
			Return(nil, domain.ErrUpstreamUnavailable)

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		_, err := uc.BrowseOpportunity(context.Background(), "tok-live", 9)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestDirectoryUsecase_Categories_ForcedLogoutOn401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockHubGateway(ctrl)
	sessions := mocks.NewMockSessionUsecase(ctrl)
	gw.EXPECT().ListCategories(gomock.Any(), "tok-stale").
		Return(nil, domain.ErrUpstreamUnauthorized)
	sessions.EXPECT().Logout(gomock.Any(), "tok-stale").Return(nil)

	uc := NewDirectoryUsecase(gw, sessions, testLogger())
	_, err := uc.Categories(context.Background(), "tok-stale")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)
}

func TestDirectoryUsecase_MyApplications(t *testing.T) {
	volunteer := testIdentity(t, domain.RoleVolunteer)

	t.Run("lists the caller's applications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		apps := []domain.Application{{ID: 1, VolunteerID: volunteer.ID, Status: domain.ApplicationPending}}
		gw.EXPECT().ListApplicationsByVolunteer(gomock.Any(), "tok-live", volunteer.ID).Return(apps, nil)

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		got, err := uc.MyApplications(context.Background(), "tok-live", volunteer)
		require.NoError(t, err)
		assert.Equal(t, apps, got)
	})

	t.Run("organization identity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := NewDirectoryUsecase(
			mocks.NewMockHubGateway(ctrl),
			mocks.NewMockSessionUsecase(ctrl),
			testLogger())
		org := testIdentity(t, domain.RoleOrganizationAdmin)
		_, err := uc.MyApplications(context.Background(), "tok-live", org)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestDirectoryUsecase_MyOpportunities(t *testing.T) {
	org := testIdentity(t, domain.RoleOrganizationAdmin)

	t.Run("filters the listing to the caller's mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		gw.EXPECT().ListOpportunities(gomock.Any(), "tok-live").Return([]domain.Opportunity{
			{ID: 1, OrganizationMail: org.Email, Title: "Food drive"},
			{ID: 2, OrganizationMail: "other@example.org", Title: "Shelter shift"},
			{ID: 3, OrganizationMail: org.Email, Title: "Tutoring"},
		}, nil)

		uc := NewDirectoryUsecase(gw, mocks.NewMockSessionUsecase(ctrl), testLogger())
		got, err := uc.MyOpportunities(context.Background(), "tok-live", org)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(3), got[1].ID)
	})

	t.Run("volunteer identity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := NewDirectoryUsecase(
			mocks.NewMockHubGateway(ctrl),
			mocks.NewMockSessionUsecase(ctrl),
			testLogger())
		volunteer := testIdentity(t, domain.RoleVolunteer)
		_, err := uc.MyOpportunities(context.Background(), "tok-live", volunteer)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("upstream 401 forces logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		gw.EXPECT().ListOpportunities(gomock.Any(), "tok-stale").
			Return(nil, domain.ErrUpstreamUnauthorized)
		sessions.EXPECT().Logout(gomock.Any(), "tok-stale").Return(nil)

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		_, err := uc.MyOpportunities(context.Background(), "tok-stale", org)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)
	})
}

func TestDirectoryUsecase_OrganizationProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockHubGateway(ctrl)
	profile := &domain.Organization{ID: 3, Email: "shelter@example.org", Name: "City Shelter"}
	gw.EXPECT().GetOrganization(gomock.Any(), "tok-live", "shelter@example.org").Return(profile, nil)

	uc := NewDirectoryUsecase(gw, mocks.NewMockSessionUsecase(ctrl), testLogger())
	got, err := uc.OrganizationProfile(context.Background(), "tok-live", "shelter@example.org")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestDirectoryUsecase_Apply(t *testing.T) {
	volunteer := testIdentity(t, domain.RoleVolunteer)

	t.Run("submits with identity from the session, not the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := mocks.NewMockHubGateway(ctrl)
		sessions := mocks.NewMockSessionUsecase(ctrl)
		gw.EXPECT().
			CreateApplication(gomock.Any(), "tok-live", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, app domain.Application) (*domain.Application, error) {
				assert.Equal(t, volunteer.ID, app.VolunteerID)
				assert.Equal(t, uint(9), app.OpportunityID)
				assert.Equal(t, domain.ApplicationPending, app.Status)
				created := app
				created.ID = 77
				return &created, nil
			})

		uc := NewDirectoryUsecase(gw, sessions, testLogger())
		created, err := uc.Apply(context.Background(), "tok-live", volunteer, 9, "I care about beaches")
		require.NoError(t, err)
		assert.Equal(t, uint(77), created.ID)
	})

	t.Run("organization identity cannot apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := NewDirectoryUsecase(
			mocks.NewMockHubGateway(ctrl),
			mocks.NewMockSessionUsecase(ctrl),
			testLogger())
		org := testIdentity(t, domain.RoleOrganizationAdmin)
		_, err := uc.Apply(context.Background(), "tok-live", org, 9, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestDirectoryUsecase_DecideApplication(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.ApplicationStatus
		setupMocks func(*mocks.MockHubGateway)
		wantErr    error
	}{
		{
			name:   "approves a pending application",
			status: domain.ApplicationApproved,
			setupMocks: func(gw *mocks.MockHubGateway) {
				gw.EXPECT().
					UpdateApplication(gomock.Any(), "tok-live", domain.Application{ID: 77, Status: domain.ApplicationApproved}).
					Return(nil)
			},
		},
		{
			name:   "rejects a pending application",
			status: domain.ApplicationRejected,
			setupMocks: func(gw *mocks.MockHubGateway) {
				gw.EXPECT().
					UpdateApplication(gomock.Any(), "tok-live", domain.Application{ID: 77, Status: domain.ApplicationRejected}).
					Return(nil)
			},
		},
		{
			name:       "cannot decide back to pending",
			status:     domain.ApplicationPending,
			setupMocks: func(*mocks.MockHubGateway) {},
			wantErr:    domain.ErrInvalidApplicationStatus,
		},
		{
			name:       "unknown status is rejected",
			status:     domain.ApplicationStatus("MAYBE"),
			setupMocks: func(*mocks.MockHubGateway) {},
			wantErr:    domain.ErrInvalidApplicationStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw := mocks.NewMockHubGateway(ctrl)
			tt.setupMocks(gw)

			uc := NewDirectoryUsecase(gw, mocks.NewMockSessionUsecase(ctrl), testLogger())
			err := uc.DecideApplication(context.Background(), "tok-live", 77, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDirectoryUsecase_ReviewApplications_ForcedLogoutFailureStillSurfaces401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockHubGateway(ctrl)
	sessions := mocks.NewMockSessionUsecase(ctrl)
	gw.EXPECT().ListApplicationsByOpportunity(gomock.Any(), "tok-stale", uint(9)).
		Return(nil, domain.ErrUpstreamUnauthorized)
	sessions.EXPECT().Logout(gomock.Any(), "tok-stale").Return(assert.AnError)

	uc := NewDirectoryUsecase(gw, sessions, testLogger())
	_, err := uc.ReviewApplications(context.Background(), "tok-stale", 9)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnauthorized)
}
