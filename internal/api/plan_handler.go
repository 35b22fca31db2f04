package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/ai"
	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// PlanHandler holds the plan and user service dependencies.
type PlanHandler struct {
	planService service.PlanService
	userService service.UserService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, userService service.UserService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		userService: userService,
	}
}

// --- DTOs ---

type CreatePlanRequest struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	Goal             string            `json:"goal"`
	Level            string            `json:"level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	FrequencyPerWeek int               `json:"frequencyPerWeek" binding:"omitempty,min=1,max=7"`
	DurationWeeks    int               `json:"durationWeeks" binding:"omitempty,min=1,max=52"`
	Body             map[string]any    `json:"body"`
	Status           domain.PlanStatus `json:"status" binding:"omitempty,oneof=CREATING ACTIVE PAUSED COMPLETED"`
}

type UpdatePlanRequest struct {
	Title  *string            `json:"title"`
	Status *domain.PlanStatus `json:"status" binding:"omitempty,oneof=CREATING ACTIVE PAUSED COMPLETED"`
}

type GeneratePlanRequest struct {
	Goal             string   `json:"goal" binding:"required"`
	Level            string   `json:"level" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	FrequencyPerWeek int      `json:"frequencyPerWeek" binding:"required,min=1,max=7"`
	DurationWeeks    int      `json:"durationWeeks" binding:"required,min=1,max=52"`
	Equipment        []string `json:"equipment"`
	MinutesPerDay    int      `json:"minutesPerDay" binding:"omitempty,min=15,max=180"`
	Injuries         string   `json:"injuries"`
}

// --- Handler Methods ---

// ListPlans godoc
// @Summary List the caller's plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Plan
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	plans, err := h.planService.GetPlansByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plans.")
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// CreatePlan godoc
// @Summary Create a plan manually
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreatePlanRequest true "Plan details"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid input"
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan := &domain.Plan{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Goal:             req.Goal,
		Level:            req.Level,
		FrequencyPerWeek: req.FrequencyPerWeek,
		DurationWeeks:    req.DurationWeeks,
		Status:           req.Status,
	}
	if req.Body != nil {
		body, err := marshalJSONColumn(req.Body)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid plan body")
			return
		}
		plan.Body = body
	}

	created, err := h.planService.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create plan.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPlan godoc
// @Summary Get a plan by id (owner or admin)
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} domain.Plan
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, ok := h.loadPlanChecked(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan godoc
// @Summary Update a plan's title or status (owner or admin)
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param plan body UpdatePlanRequest true "Fields to update"
// @Success 200 {object} domain.Plan
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	plan, ok := h.loadPlanChecked(c)
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}

	if err := h.planService.UpdatePlan(c.Request.Context(), plan); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update plan.")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary Delete a plan (owner or admin)
// @Tags Plans
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	plan, ok := h.loadPlanChecked(c)
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), plan.ID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete plan.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GeneratePlan godoc
// @Summary Generate a plan (AI-assisted when configured, template otherwise)
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param params body GeneratePlanRequest true "Generation parameters"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid input"
// @Router /plans/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load user profile.")
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), user, ai.PlanRequest{
		Goal:             req.Goal,
		Level:            req.Level,
		FrequencyPerWeek: req.FrequencyPerWeek,
		DurationWeeks:    req.DurationWeeks,
		Equipment:        req.Equipment,
		MinutesPerDay:    req.MinutesPerDay,
		Injuries:         req.Injuries,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate plan.")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// loadPlanChecked fetches the :id plan and enforces the owner-or-admin rule,
// writing the error response itself when the check fails.
func (h *PlanHandler) loadPlanChecked(c *gin.Context) (*domain.Plan, bool) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID.")
		return nil, false
	}

	plan, err := h.planService.GetPlanByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plan.")
		}
		return nil, false
	}

	if !canAccessResource(c, plan.UserID) {
		abortWithError(c, http.StatusForbidden, "You do not have access to this plan.")
		return nil, false
	}
	return plan, true
}
