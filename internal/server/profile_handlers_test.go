package server

import (
	"net/http"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile_SkillsStringOrList(t *testing.T) {
	tests := []struct {
		name   string
		skills any
	}{
		{name: "CSV String", skills: "Go, SQL, Redis"},
		{name: "List", skills: []string{"Go", "SQL", "Redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, app, repos := newTestServer()
			var stored *models.Profile
			repos.profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Profile")).
				Run(func(args mock.Arguments) {
					stored = args.Get(1).(*models.Profile)
					stored.ID = 1
				}).Return(nil)
			repos.profiles.On("GetByUser", mock.Anything, uint(4)).
				Return(&models.Profile{ID: 1, UserID: 4, Status: "Developer", Skills: "Go,SQL,Redis"}, nil)

			resp, err := app.Test(authedRequest(t, s, 4, http.MethodPost, "/api/profile/",
				map[string]any{"status": "Developer", "skills": tt.skills}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			require.NotNil(t, stored)
			assert.Equal(t, "Go,SQL,Redis", stored.Skills)
		})
	}
}

func TestUpsertProfile_MissingRequired(t *testing.T) {
	s, app, _ := newTestServer()

	resp, err := app.Test(authedRequest(t, s, 4, http.MethodPost, "/api/profile/",
		map[string]any{"bio": "just a bio"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	msgs := errorMsgs(t, decodeBody(t, resp))
	assert.Contains(t, msgs, "Status is required")
	assert.Contains(t, msgs, "Skills is required")
}

func TestUpsertProfile_NormalizesSocialURLs(t *testing.T) {
	s, app, repos := newTestServer()
	var stored *models.Profile
	repos.profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Profile")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Profile)
		}).Return(nil)
	repos.profiles.On("GetByUser", mock.Anything, uint(4)).
		Return(&models.Profile{ID: 1, UserID: 4}, nil)

	resp, err := app.Test(authedRequest(t, s, 4, http.MethodPost, "/api/profile/",
		map[string]any{
			"status":  "Developer",
			"skills":  "Go",
			"website": "example.com",
			"twitter": "http://twitter.com/jane",
		}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, stored)
	assert.Equal(t, "https://example.com", stored.Website)
	assert.Equal(t, "https://twitter.com/jane", stored.Social.Twitter)
}

func TestGetMyProfile_Missing(t *testing.T) {
	s, app, repos := newTestServer()
	repos.profiles.On("GetByUser", mock.Anything, uint(4)).
		Return(nil, models.NewProfileMissingError())

	resp, err := app.Test(authedRequest(t, s, 4, http.MethodGet, "/api/profile/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "There is no profile for this user", decodeBody(t, resp)["msg"])
}

func TestGetProfiles_Public(t *testing.T) {
	_, app, repos := newTestServer()
	repos.profiles.On("List", mock.Anything).
		Return([]models.Profile{{ID: 1, UserID: 1, Status: "Dev"}}, nil)

	// No Authorization header; the listing is public.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	s, app, repos := newTestServer()
	repos.users.On("DeleteCascade", mock.Anything, uint(4)).Return(nil)

	resp, err := app.Test(authedRequest(t, s, 4, http.MethodDelete, "/api/profile/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User deleted", decodeBody(t, resp)["msg"])
	repos.users.AssertCalled(t, "DeleteCascade", mock.Anything, uint(4))
}

func TestDeleteAccount_AlreadyGone(t *testing.T) {
	s, app, repos := newTestServer()
	repos.users.On("DeleteCascade", mock.Anything, uint(4)).
		Return(models.NewNotFoundError("User not found"))

	// A second delete with a still-valid token is a 404, not a 500.
	resp, err := app.Test(authedRequest(t, s, 4, http.MethodDelete, "/api/profile/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
