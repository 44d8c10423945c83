package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skilltest-server/config"
	"skilltest-server/db"
	"skilltest-server/handlers"
	"skilltest-server/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize database connection pool
	pool, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	// Ensure database schema is set up
	if err := db.CreateSchema(pool); err != nil {
		log.Fatalf("Error creating database schema: %v", err)
	}

	store := db.NewStore(pool)

	// Seed the question bank from the configured file when empty
	if cfg.Quiz.BankFile != "" {
		if err := db.SeedIfEmpty(context.Background(), store, cfg.Quiz.BankFile); err != nil {
			log.Fatalf("Error seeding question bank: %v", err)
		}
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize Gin router
	router := gin.Default()

	// Middleware
	router.Use(middleware.Logger())

	// Admin routes validate externally issued JWTs; this service issues none.
	authMiddleware := middleware.AuthMiddleware(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer)
	adminOnly := middleware.RoleCheckMiddleware([]string{"admin", "super-admin"})

	api := router.Group("/api")
	api.GET("/health", handlers.HealthCheck())

	quizRoutes := api.Group("/quiz")
	{
		// Public quiz session engine: draw and score, no server-held session state
		quizRoutes.GET("/categories", handlers.GetCategories(store))
		quizRoutes.GET("/test/:category", handlers.GetTestQuestions(store, cfg.Quiz.DefaultDrawLimit))
		quizRoutes.POST("/submit", handlers.SubmitQuiz(store))

		// Admin question authoring
		quizRoutes.GET("", authMiddleware, adminOnly, handlers.AdminListQuestions(store))
		quizRoutes.POST("", authMiddleware, adminOnly, handlers.AdminCreateQuestion(store))
		quizRoutes.POST("/import", authMiddleware, adminOnly, handlers.AdminImportQuestions(store, cfg.Quiz.BankFile))
		quizRoutes.GET("/:id", authMiddleware, adminOnly, handlers.AdminGetQuestion(store))
		quizRoutes.PUT("/:id", authMiddleware, adminOnly, handlers.AdminUpdateQuestion(store))
		quizRoutes.DELETE("/:id", authMiddleware, adminOnly, handlers.AdminDeleteQuestion(store))
	}

	// Start the server
	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	// Goroutine to gracefully shut down the server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("SkillTest server starting on %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server startup error: %v", err)
	}
	log.Println("Server exited gracefully.")
}
