package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// LogWorkoutRequest defines the expected JSON for logging a session.
type LogWorkoutRequest struct {
	PlanID          *uint          `json:"planId"`
	Date            *time.Time     `json:"date"`
	DurationMinutes int            `json:"durationMinutes" binding:"required,min=1"`
	ExerciseLog     map[string]any `json:"exerciseLog"`
	Calories        int            `json:"calories" binding:"omitempty,min=0"`
	Completed       *bool          `json:"completed"`
}

// LogWorkout godoc
// @Summary Log a workout session
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body LogWorkoutRequest true "Session details"
// @Success 201 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session := &domain.WorkoutSession{
		UserID:          userID,
		PlanID:          req.PlanID,
		DurationMinutes: req.DurationMinutes,
		Calories:        req.Calories,
		Completed:       true,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}
	if req.Completed != nil {
		session.Completed = *req.Completed
	}
	if req.ExerciseLog != nil {
		log, err := marshalJSONColumn(req.ExerciseLog)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise log")
			return
		}
		session.ExerciseLog = log
	}

	created, err := h.workoutService.LogWorkout(c.Request.Context(), session)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to log workout.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListWorkouts godoc
// @Summary List the caller's workout sessions
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutSession
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	sessions, err := h.workoutService.GetWorkoutsByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// RecentWorkouts godoc
// @Summary List the caller's most recent workout sessions
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max sessions to return (default 5)"
// @Success 200 {array} domain.WorkoutSession
// @Router /workouts/recent [get]
func (h *WorkoutHandler) RecentWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	sessions, err := h.workoutService.GetRecentWorkouts(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}
