package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// SetupRoutes wires every handler onto the Gin engine. The exercise library
// reads are browsable without a token; everything else under /api requires
// authentication, and the admin group additionally requires the ADMIN role.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
	uploadService service.UploadService,
	adminService service.AdminService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewPlanHandler(planService, userService)
	workoutHandler := NewWorkoutHandler(workoutService)
	progressHandler := NewProgressHandler(progressService)
	uploadHandler := NewUploadHandler(uploadService)
	adminHandler := NewAdminHandler(adminService, exerciseService)

	authMiddleware := AuthMiddleware(jwtSecret)
	optionalAuth := OptionalAuthMiddleware(jwtSecret)
	adminOnly := RoleMiddleware(domain.RoleAdmin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		// The exercise library is readable anonymously; claims are attached
		// when a token is supplied so coaches see the same view.
		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.GET("", optionalAuth, exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", optionalAuth, exerciseHandler.GetExercise)
			exerciseGroup.POST("", authMiddleware, RoleMiddleware(domain.RoleCoach, domain.RoleAdmin), exerciseHandler.CreateExercise)
			exerciseGroup.DELETE("/:id", authMiddleware, adminOnly, exerciseHandler.DeleteExercise)
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware)
		{
			userGroup := protected.Group("/users")
			{
				userGroup.GET("/me", userHandler.GetMe)
				userGroup.PUT("/me", userHandler.UpdateMe)
				userGroup.DELETE("/me", userHandler.DeleteMe)
				userGroup.GET("/stats", userHandler.GetStats)
			}

			planGroup := protected.Group("/plans")
			{
				planGroup.GET("", planHandler.ListPlans)
				planGroup.POST("", planHandler.CreatePlan)
				planGroup.POST("/generate", planHandler.GeneratePlan)
				planGroup.GET("/:id", planHandler.GetPlan)
				planGroup.PUT("/:id", planHandler.UpdatePlan)
				planGroup.DELETE("/:id", planHandler.DeletePlan)
			}

			workoutGroup := protected.Group("/workouts")
			{
				workoutGroup.GET("", workoutHandler.ListWorkouts)
				workoutGroup.POST("", workoutHandler.LogWorkout)
				workoutGroup.GET("/recent", workoutHandler.RecentWorkouts)
			}

			progressGroup := protected.Group("/progress")
			{
				progressGroup.GET("", progressHandler.ListProgress)
				progressGroup.POST("", progressHandler.AddProgress)
				progressGroup.GET("/chart", progressHandler.ProgressChart)
			}

			uploadGroup := protected.Group("/uploads")
			{
				uploadGroup.GET("", uploadHandler.ListUploads)
				uploadGroup.POST("/presign", uploadHandler.PresignUpload)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(adminOnly)
			{
				adminGroup.GET("/stats", adminHandler.Stats)
				adminGroup.GET("/users", adminHandler.ListUsers)
				adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
			}

			protected.POST("/seed/exercises", adminOnly, adminHandler.SeedExercises)
		}
	}
}
