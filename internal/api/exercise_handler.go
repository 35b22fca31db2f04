package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Instructions     string   `json:"instructions"`
	PrimaryMuscle    string   `json:"primaryMuscle"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"`
	Difficulty       string   `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	VideoURL         string   `json:"videoUrl" binding:"omitempty,url"`
	ImageURL         string   `json:"imageUrl" binding:"omitempty,url"`
}

// CreateExercise godoc
// @Summary Create a new library exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} domain.Exercise
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise := &domain.Exercise{
		Name:          req.Name,
		Description:   req.Description,
		Instructions:  req.Instructions,
		PrimaryMuscle: req.PrimaryMuscle,
		Equipment:     req.Equipment,
		Difficulty:    req.Difficulty,
		VideoURL:      req.VideoURL,
		ImageURL:      req.ImageURL,
	}
	if len(req.SecondaryMuscles) > 0 {
		raw, err := json.Marshal(req.SecondaryMuscles)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid secondary muscles list")
			return
		}
		exercise.SecondaryMuscles = datatypes.JSON(raw)
	}

	created, err := h.exerciseService.CreateExercise(c.Request.Context(), exercise)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListExercises godoc
// @Summary List library exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param muscle query string false "Filter by primary muscle"
// @Param difficulty query string false "Filter by difficulty"
// @Success 200 {array} domain.Exercise
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(
		c.Request.Context(),
		c.Query("muscle"),
		c.Query("difficulty"),
	)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get an exercise by id
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID.")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise from the library
// @Tags Exercises
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID.")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
