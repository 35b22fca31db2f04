package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/service"
)

// AdminHandler holds the admin and exercise service dependencies.
type AdminHandler struct {
	adminService    service.AdminService
	exerciseService service.ExerciseService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService, exerciseService service.ExerciseService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		exerciseService: exerciseService,
	}
}

// Stats godoc
// @Summary Per-table row counts for the admin dashboard
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminStats
// @Failure 403 {object} gin.H "Forbidden"
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary Paginated user listing
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {array} UserResponse
// @Failure 403 {object} gin.H "Forbidden"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.Query("offset"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	users, err := h.adminService.ListUsers(c.Request.Context(), offset, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list users.")
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteUser godoc
// @Summary Delete a user and all owned data
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete user.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// SeedExercises godoc
// @Summary Seed the exercise library with the starter set
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Number of exercises created"
// @Failure 403 {object} gin.H "Forbidden"
// @Router /seed/exercises [post]
func (h *AdminHandler) SeedExercises(c *gin.Context) {
	created, err := h.exerciseService.SeedLibrary(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to seed exercises.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
