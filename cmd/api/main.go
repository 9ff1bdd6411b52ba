package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/rediscache"
)

const categoryCacheTTL = 5 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	// Initialize database connection
	pool, err := database.ConnectPostgres(database.NewPostgresConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Initialize repositories
	questionRepo := postgres.NewQuestionRepository(pool)

	var categoryRepo domain.CategoryRepository = postgres.NewCategoryRepository(pool)

	// Optional Redis-backed category cache
	if redisCfg := database.NewRedisConfig(); redisCfg.Enabled() {
		redisClient, err := database.ConnectRedis(redisCfg)
		if err != nil {
			log.Printf("Redis unavailable, category cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			categoryRepo = rediscache.NewCategoryRepository(categoryRepo, redisClient, categoryCacheTTL)
		}
	} else {
		log.Println("Redis not configured, category cache disabled")
	}

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	questionHandler := handler.NewQuestionHandler(questionRepo, categoryRepo)
	quizHandler := handler.NewQuizHandler(questionRepo)

	// Initialize Echo
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))

	// Routes
	categoryHandler.Register(e)
	questionHandler.Register(e)
	quizHandler.Register(e)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Start server
	go func() {
		if err := e.Start(":8080"); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
