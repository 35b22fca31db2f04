package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse excludes sensitive info like the password hash.
type UserResponse struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	HeightCM     float64     `json:"heightCm,omitempty"`
	WeightKG     float64     `json:"weightKg,omitempty"`
	Goal         string      `json:"goal,omitempty"`
	FitnessLevel string      `json:"fitnessLevel,omitempty"`
	Equipment    interface{} `json:"equipment,omitempty"`
	Injuries     string      `json:"injuries,omitempty"`
	Verified     bool        `json:"verified"`
	LastLoginAt  *time.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Signup godoc
// @Summary Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body SignupRequest true "Registration details"
// @Success 201 {object} LoginResponse "User created"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already exists"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during signup")
		}
		return
	}

	// Issue a token right away so the client can skip a separate login.
	token, err := h.authService.IssueToken(user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process signup")
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// Login godoc
// @Summary Log in a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO, stripping
// the password hash.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	resp := UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		HeightCM:     user.HeightCM,
		WeightKG:     user.WeightKG,
		Goal:         user.Goal,
		FitnessLevel: user.FitnessLevel,
		Injuries:     user.Injuries,
		Verified:     user.Verified,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
	if len(user.Equipment) > 0 {
		resp.Equipment = user.Equipment
	}
	return resp
}
