package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"sigmaquiz/config"
	"sigmaquiz/handlers"
	"sigmaquiz/middleware"
	"sigmaquiz/models"
	"sigmaquiz/routes"
	"sigmaquiz/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.School{},
		&models.SchoolRegistration{},
		&models.Round{},
		&models.Question{},
		&models.RoundParticipation{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenExpiry)
	userService := services.NewUserService(db)
	quizService := services.NewQuizService(db)
	registrationService := services.NewRegistrationService(db)
	schoolService := services.NewSchoolService(db)
	roundService := services.NewRoundService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService, registrationService)
	schoolHandler := handlers.NewSchoolHandler(schoolService)
	roundHandler := handlers.NewRoundHandler(roundService)

	// Setup Gin router
	router := gin.Default()

	// Every response, success or error, leaves through the envelope.
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorEnvelope())

	// Setup routes
	routes.SetupRoutes(router, authHandler, userHandler, quizHandler, schoolHandler, roundHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
