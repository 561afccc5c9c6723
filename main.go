package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"quizapp/config"
	"quizapp/handlers"
	"quizapp/middleware"
	"quizapp/models"
	"quizapp/routes"
	"quizapp/services"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Quiz{}, &models.Question{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Redis only backs the quiz cache; the service keeps working without it.
	redisClient := config.InitRedis(cfg)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, quiz cache disabled: %v", err)
		redisClient.Close()
		redisClient = nil
	}

	quizCache := services.NewQuizCache(redisClient, cfg.QuizCacheTTL)
	quizService := services.NewQuizService(db, quizCache)

	hub := services.NewResultsHub()
	go hub.Run(ctx)

	quizHandler := handlers.NewQuizHandler(quizService, hub)
	resultsHandler := handlers.NewResultsHandler(quizService, hub)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.SecureHeaders(cfg.IsRelease()))

	routes.SetupRoutes(router, quizHandler, resultsHandler)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
