package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// AddProgressRequest defines the expected JSON for a body-progress entry.
type AddProgressRequest struct {
	Date         *time.Time         `json:"date"`
	WeightKG     float64            `json:"weightKg" binding:"omitempty,gt=0"`
	BodyFatPct   float64            `json:"bodyFatPct" binding:"omitempty,gt=0,lt=100"`
	Measurements map[string]float64 `json:"measurements"`
	PhotoURL     string             `json:"photoUrl" binding:"omitempty,url"`
	Notes        string             `json:"notes"`
}

// AddProgress godoc
// @Summary Add a body-progress entry
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body AddProgressRequest true "Progress entry"
// @Success 201 {object} domain.Progress
// @Failure 400 {object} gin.H "Invalid input"
// @Router /progress [post]
func (h *ProgressHandler) AddProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry := &domain.Progress{
		UserID:     userID,
		WeightKG:   req.WeightKG,
		BodyFatPct: req.BodyFatPct,
		PhotoURL:   req.PhotoURL,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Measurements != nil {
		measurements, err := marshalJSONColumn(req.Measurements)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid measurements")
			return
		}
		entry.Measurements = measurements
	}

	created, err := h.progressService.AddEntry(c.Request.Context(), entry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save progress entry.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProgress godoc
// @Summary List the caller's progress entries
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Progress
// @Router /progress [get]
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	entries, err := h.progressService.GetEntriesByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve progress entries.")
		return
	}
	if entries == nil {
		entries = []domain.Progress{}
	}
	c.JSON(http.StatusOK, entries)
}

// ProgressChart godoc
// @Summary Get the caller's weight/body-fat chart series
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.ChartPoint
// @Router /progress/chart [get]
func (h *ProgressHandler) ProgressChart(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	points, err := h.progressService.GetChart(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build chart data.")
		return
	}
	if points == nil {
		points = []service.ChartPoint{}
	}
	c.JSON(http.StatusOK, points)
}
