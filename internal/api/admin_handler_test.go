package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app := newTestApp(t)
	userToken, _ := app.signup(t, "plain@example.com")

	for _, path := range []string{"/api/admin/stats", "/api/admin/users"} {
		w := app.do(t, http.MethodGet, path, userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)

		w = app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := app.do(t, http.MethodPost, "/api/seed/exercises", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStatsCountsRows(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.signupAdmin(t, "boss@example.com")
	userToken, _ := app.signup(t, "member@example.com")

	w := app.do(t, http.MethodPost, "/api/plans", userToken, map[string]any{"title": "Counted"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats := decodeBody[service.AdminStats](t, w)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Plans)
	assert.Zero(t, stats.AiJobs)
}

func TestAdminListUsers(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.signupAdmin(t, "lister@example.com")
	app.signup(t, "one@example.com")
	app.signup(t, "two@example.com")

	w := app.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	users := decodeBody[[]UserResponse](t, w)
	assert.Len(t, users, 3)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAdminDeleteUserCascades(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.signupAdmin(t, "remover@example.com")
	victimToken, victim := app.signup(t, "victim@example.com")

	w := app.do(t, http.MethodPost, "/api/plans", victimToken, map[string]any{"title": "Doomed"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", victim.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// The victim's rows are gone along with the account.
	var planCount int64
	require.NoError(t, app.db.Model(&domain.Plan{}).Where("user_id = ?", victim.ID).Count(&planCount).Error)
	assert.Zero(t, planCount)

	// Their token no longer resolves to an account.
	w = app.do(t, http.MethodGet, "/api/users/me", victimToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again reports not found.
	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", victim.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedExercisesEndpoint(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.signupAdmin(t, "seeder@example.com")

	w := app.do(t, http.MethodPost, "/api/seed/exercises", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decodeBody[map[string]int](t, w)
	assert.Positive(t, first["created"])

	// Re-seeding inserts nothing new.
	w = app.do(t, http.MethodPost, "/api/seed/exercises", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody[map[string]int](t, w)
	assert.Zero(t, second["created"])

	// The library is readable without a token.
	w = app.do(t, http.MethodGet, "/api/exercises", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	exercises := decodeBody[[]domain.Exercise](t, w)
	assert.Len(t, exercises, first["created"])
}
