package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/fitness-app/internal/domain"
)

func TestGeneratePlanFallbackFlagsAndShape(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signup(t, "generate@example.com")

	w := app.do(t, http.MethodPost, "/api/plans/generate", token, map[string]any{
		"goal":             "weight_loss",
		"level":            "BEGINNER",
		"frequencyPerWeek": 3,
		"durationWeeks":    4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	plan := decodeBody[domain.Plan](t, w)
	assert.False(t, plan.GeneratedByAI, "no API key configured")
	assert.Equal(t, domain.PlanStatusActive, plan.Status)
	assert.NotEmpty(t, plan.Disclaimer)
	assert.Equal(t, "Weight Loss Kickstart", plan.Title)
	assert.NotEmpty(t, plan.Body)
}

func TestGeneratePlanValidation(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signup(t, "validation@example.com")

	cases := []map[string]any{
		{"level": "BEGINNER", "frequencyPerWeek": 3, "durationWeeks": 4},                               // missing goal
		{"goal": "endurance", "level": "EXPERT", "frequencyPerWeek": 3, "durationWeeks": 4},            // bad level
		{"goal": "endurance", "level": "BEGINNER", "frequencyPerWeek": 9, "durationWeeks": 4},          // frequency > 7
		{"goal": "endurance", "level": "BEGINNER", "frequencyPerWeek": 3, "durationWeeks": 80},         // duration > 52
		{"goal": "endurance", "level": "BEGINNER", "frequencyPerWeek": 3, "durationWeeks": 4, "minutesPerDay": 5}, // minutes < 15
	}
	for _, body := range cases {
		w := app.do(t, http.MethodPost, "/api/plans/generate", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}
}

func TestPlanOwnership(t *testing.T) {
	app := newTestApp(t)
	ownerToken, _ := app.signup(t, "owner@example.com")
	strangerToken, _ := app.signup(t, "stranger@example.com")
	adminToken, _ := app.signupAdmin(t, "admin@example.com")

	w := app.do(t, http.MethodPost, "/api/plans", ownerToken, map[string]any{
		"title": "My Plan",
		"goal":  "endurance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	plan := decodeBody[domain.Plan](t, w)

	// The owner reads their own plan.
	w = app.do(t, http.MethodGet, planPath(plan.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Another user gets 403 even though the plan exists.
	w = app.do(t, http.MethodGet, planPath(plan.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins bypass ownership.
	w = app.do(t, http.MethodGet, planPath(plan.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same rule on mutation.
	w = app.do(t, http.MethodDelete, planPath(plan.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodDelete, planPath(plan.ID), ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(t, http.MethodGet, planPath(plan.ID), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPlansScopedToCaller(t *testing.T) {
	app := newTestApp(t)
	aToken, _ := app.signup(t, "a@example.com")
	bToken, _ := app.signup(t, "b@example.com")

	w := app.do(t, http.MethodPost, "/api/plans", aToken, map[string]any{"title": "A's Plan"})
	require.Equal(t, http.StatusCreated, w.Code)

	plans := decodeBody[[]domain.Plan](t, app.do(t, http.MethodGet, "/api/plans", aToken, nil))
	assert.Len(t, plans, 1)

	plans = decodeBody[[]domain.Plan](t, app.do(t, http.MethodGet, "/api/plans", bToken, nil))
	assert.Empty(t, plans)
}

func TestUpdatePlanStatus(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signup(t, "updater@example.com")

	w := app.do(t, http.MethodPost, "/api/plans", token, map[string]any{"title": "Pausable"})
	require.Equal(t, http.StatusCreated, w.Code)
	plan := decodeBody[domain.Plan](t, w)
	assert.Equal(t, domain.PlanStatusActive, plan.Status)

	w = app.do(t, http.MethodPut, planPath(plan.ID), token, map[string]any{"status": "PAUSED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[domain.Plan](t, w)
	assert.Equal(t, domain.PlanStatusPaused, updated.Status)

	w = app.do(t, http.MethodPut, planPath(plan.ID), token, map[string]any{"status": "NAPPING"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
