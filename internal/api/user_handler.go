package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"fitforge/fitness-app/internal/service"
)

// UserHandler serves the authenticated user's profile and stats.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest uses pointers so absent fields are left untouched.
type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	HeightCM     *float64 `json:"heightCm" binding:"omitempty,gt=0"`
	WeightKG     *float64 `json:"weightKg" binding:"omitempty,gt=0"`
	Goal         *string  `json:"goal"`
	FitnessLevel *string  `json:"fitnessLevel" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Equipment    []string `json:"equipment"`
	Injuries     *string  `json:"injuries"`
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile.")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := service.ProfileUpdate{
		Name:         req.Name,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		Goal:         req.Goal,
		FitnessLevel: req.FitnessLevel,
		Injuries:     req.Injuries,
	}
	if req.Equipment != nil {
		raw, err := json.Marshal(req.Equipment)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid equipment list")
			return
		}
		update.Equipment = datatypes.JSON(raw)
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteMe godoc
// @Summary Delete the authenticated user's account and all owned data
// @Tags Users
// @Security BearerAuth
// @Success 204 "Account deleted"
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete account.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats godoc
// @Summary Get the authenticated user's workout statistics
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserStats
// @Router /users/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	stats, err := h.userService.Stats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
