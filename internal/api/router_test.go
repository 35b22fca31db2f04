package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
	"fitforge/fitness-app/internal/repository/gormdb"
	"fitforge/fitness-app/internal/service"
)

// stubStorage satisfies storage.FileStorage without talking to S3 and records
// the keys handed to DeleteObject.
type stubStorage struct {
	deleted []string
}

func (s *stubStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (s *stubStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (s *stubStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

type testApp struct {
	router      *gin.Engine
	userRepo    repository.UserRepository
	authService service.AuthService
	db          *gorm.DB
	storage     *stubStorage
}

// newTestApp wires the full route table over an in-memory database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormdb.AutoMigrate(db))

	userRepo := gormdb.NewUserRepository(db)
	exerciseRepo := gormdb.NewExerciseRepository(db)
	planRepo := gormdb.NewPlanRepository(db)
	workoutRepo := gormdb.NewWorkoutRepository(db)
	progressRepo := gormdb.NewProgressRepository(db)
	uploadRepo := gormdb.NewUploadRepository(db)
	aiJobRepo := gormdb.NewAiJobRepository(db)

	fileStorage := &stubStorage{}
	authService := service.NewAuthService(userRepo, testJWTSecret, time.Hour)
	userService := service.NewUserService(userRepo, workoutRepo, uploadRepo, fileStorage)
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(planRepo, nil) // fallback generation only
	workoutService := service.NewWorkoutService(workoutRepo)
	progressService := service.NewProgressService(progressRepo)
	uploadService := service.NewUploadService(uploadRepo, fileStorage)
	adminService := service.NewAdminService(userRepo, exerciseRepo, planRepo, workoutRepo, progressRepo, uploadRepo, aiJobRepo, fileStorage)

	router := gin.New()
	SetupRoutes(router, testJWTSecret,
		authService, userService, exerciseService, planService,
		workoutService, progressService, uploadService, adminService)

	return &testApp{
		router:      router,
		userRepo:    userRepo,
		authService: authService,
		db:          db,
		storage:     fileStorage,
	}
}

// signup registers an account through the API and returns its token and user.
func (a *testApp) signup(t *testing.T, email string) (string, UserResponse) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User
}

// signupAdmin registers an account and promotes it to ADMIN, returning a token
// that carries the new role.
func (a *testApp) signupAdmin(t *testing.T, email string) (string, *domain.User) {
	t.Helper()
	_, created := a.signup(t, email)

	user, err := a.userRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	user.Role = domain.RoleAdmin
	require.NoError(t, a.userRepo.Update(context.Background(), user))

	token, err := a.authService.IssueToken(user)
	require.NoError(t, err)
	return token, user
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func planPath(id uint) string { return fmt.Sprintf("/api/plans/%d", id) }
