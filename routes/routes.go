package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/apierror"
	"sigmaquiz/handlers"
	"sigmaquiz/middleware"
	"sigmaquiz/models"
	"sigmaquiz/services"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	quizHandler *handlers.QuizHandler,
	schoolHandler *handlers.SchoolHandler,
	roundHandler *handlers.RoundHandler,
	authService *services.AuthService,
) {
	// Auth routes (public except password change)
	auth := router.Group("/auth")
	{
		auth.POST("/register-admin", authHandler.RegisterAdmin)
		auth.POST("/login", authHandler.Login)
		auth.POST("/password/change", middleware.AuthRequired(authService), authHandler.ChangePassword)
	}

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthRequired(authService))
	{
		quiz := protected.Group("/quiz")
		{
			quiz.GET("", quizHandler.ListQuizzes)
			quiz.POST("", quizHandler.CreateQuiz)
			quiz.GET("/:quizId", quizHandler.GetQuiz)
			quiz.PUT("/:quizId", quizHandler.UpdateQuiz)
			quiz.DELETE("/:quizId", quizHandler.DeleteQuiz)
			quiz.GET("/:quizId/rounds", roundHandler.ListRoundsForQuiz)
			quiz.GET("/:quizId/schools", quizHandler.ListRegistrations)
			quiz.POST("/:quizId/schools", quizHandler.RegisterSchool)
			quiz.DELETE("/:quizId/schools/:schoolId", quizHandler.UnregisterSchool)
		}

		rounds := protected.Group("/rounds")
		{
			rounds.POST("", roundHandler.CreateRound)
			rounds.GET("/:roundId", roundHandler.GetRound)
			rounds.PUT("/:roundId", roundHandler.UpdateRound)
			rounds.DELETE("/:roundId", roundHandler.DeleteRound)
			rounds.GET("/:roundId/schools", roundHandler.ListParticipations)
			rounds.POST("/:roundId/schools", roundHandler.AddSchoolToRound)
			rounds.DELETE("/:roundId/schools/:schoolId", roundHandler.RemoveSchoolFromRound)
		}

		school := protected.Group("/school")
		{
			school.GET("", schoolHandler.ListSchools)
			school.POST("", schoolHandler.CreateSchool)
			school.GET("/:schoolId", schoolHandler.GetSchool)
			school.PUT("/:schoolId", schoolHandler.UpdateSchool)
			school.DELETE("/:schoolId", schoolHandler.DeleteSchool)
		}

		users := protected.Group("/users")
		{
			users.GET("", middleware.RequireRole(models.RoleSuperAdmin), userHandler.ListUsers)
			users.GET("/me", userHandler.GetProfile)
			users.GET("/:userId", userHandler.GetUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.Error(apierror.NotFound("Resource not found"))
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
