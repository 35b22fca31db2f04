package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"fitforge/fitness-app/internal/domain"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
	ContextUserRoleKey  = "userRole"
)

// jwtClaims defines the structure we expect in the JWT payload.
// Mirrors the structure used in authService.IssueToken.
type jwtClaims struct {
	UserID uint        `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// parseBearerToken extracts and validates the bearer token, returning the
// claims or nil on any failure. Callers cannot distinguish why verification
// failed.
func parseBearerToken(c *gin.Context, jwtSecret string) *jwtClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 || claims.Role == "" {
		return nil
	}
	return claims
}

func setClaims(c *gin.Context, claims *jwtClaims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextUserEmailKey, claims.Email)
	c.Set(ContextUserRoleKey, claims.Role)
}

// AuthMiddleware creates a Gin middleware for JWT authentication. Missing,
// malformed, expired and tampered tokens all map to 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseBearerToken(c, jwtSecret)
		if claims == nil {
			abortWithError(c, http.StatusUnauthorized, "Missing or invalid authorization token")
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present but
// never rejects the request.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := parseBearerToken(c, jwtSecret); claims != nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RoleMiddleware creates middleware to check if the user has one of the
// required roles. Must run AFTER AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleRaw, exists := c.Get(ContextUserRoleKey)
		if !exists {
			abortWithError(c, http.StatusInternalServerError, "User role not found in context")
			return
		}
		userRole, ok := roleRaw.(domain.Role)
		if !ok {
			abortWithError(c, http.StatusInternalServerError, "Invalid user role type in context")
			return
		}

		for _, allowed := range allowedRoles {
			if userRole == allowed {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, fmt.Sprintf("Access denied: role '%s' does not have permission", userRole))
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the user ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (uint, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	id, ok := idRaw.(uint)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return id, nil
}

// Helper function to get the user role from context (used by handlers)
func getUserRoleFromContext(c *gin.Context) (domain.Role, error) {
	roleRaw, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleRaw.(domain.Role)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}

// canAccessResource implements the ownership rule repeated across endpoints:
// the owner or an admin may touch the resource.
func canAccessResource(c *gin.Context, ownerID uint) bool {
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		return false
	}
	role, err := getUserRoleFromContext(c)
	if err != nil {
		return false
	}
	return callerID == ownerID || role == domain.RoleAdmin
}
