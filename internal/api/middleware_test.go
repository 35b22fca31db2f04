package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

const testJWTSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signTestToken(t *testing.T, user *domain.User, expiration time.Duration) string {
	t.Helper()
	svc := service.NewAuthService(nil, testJWTSecret, expiration)
	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	return token
}

// echoRouter exposes one protected route that reports the claims the
// middleware attached.
func echoRouter(extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(testJWTSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := getUserIDFromContext(c)
		role, _ := getUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "role": role})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	user := &domain.User{ID: 7, Email: "mid@example.com", Role: domain.RoleUser}
	token := signTestToken(t, user, time.Hour)

	w := doRequest(echoRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
	assert.Contains(t, w.Body.String(), `"role":"USER"`)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	user := &domain.User{ID: 7, Email: "mid@example.com", Role: domain.RoleUser}

	otherSecret := service.NewAuthService(nil, "some-other-secret", time.Hour)
	tampered, err := otherSecret.IssueToken(user)
	require.NoError(t, err)

	expired := signExpiredToken(t, user)

	cases := map[string]string{
		"missing":      "",
		"garbage":      "not.a.jwt",
		"wrong secret": tampered,
		"expired":      expired,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(echoRouter(), token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			// Every failure mode reports the same message.
			assert.Contains(t, w.Body.String(), "Missing or invalid authorization token")
		})
	}
}

func signExpiredToken(t *testing.T, user *domain.User) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "fitforge",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func TestRoleMiddleware(t *testing.T) {
	router := echoRouter(RoleMiddleware(domain.RoleAdmin))

	userToken := signTestToken(t, &domain.User{ID: 1, Role: domain.RoleUser}, time.Hour)
	adminToken := signTestToken(t, &domain.User{ID: 2, Role: domain.RoleAdmin}, time.Hour)

	w := doRequest(router, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/open", OptionalAuthMiddleware(testJWTSecret), func(c *gin.Context) {
		if id, err := getUserIDFromContext(c); err == nil {
			c.JSON(http.StatusOK, gin.H{"userId": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})

	// Anonymous and bad tokens both pass through.
	for _, token := range []string{"", "broken-token"} {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	}

	token := signTestToken(t, &domain.User{ID: 9, Role: domain.RoleUser}, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"userId":9`)
}
