package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lulu-kitchen/recipe-hub/internal/config"
	"github.com/lulu-kitchen/recipe-hub/internal/database"
	"github.com/lulu-kitchen/recipe-hub/internal/handlers"
	"github.com/lulu-kitchen/recipe-hub/internal/middleware"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
	"github.com/lulu-kitchen/recipe-hub/internal/service"
	"github.com/lulu-kitchen/recipe-hub/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting recipe hub api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"db_path", cfg.Database.Path,
		"log_level", cfg.LogLevel,
	)

	// Open database and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize repositories
	recipeRepo := repository.NewSQLiteRecipeRepository(db.SQL)
	reviewRepo := repository.NewSQLiteReviewRepository(db.SQL)
	pantryRepo := repository.NewSQLitePantryRepository(db.SQL)
	planRepo := repository.NewSQLiteMealPlanRepository(db.SQL)
	reminderRepo := repository.NewSQLiteReminderRepository(db.SQL)

	// Seed starter recipes into an empty catalog, if configured
	if err := service.SeedRecipes(context.Background(), recipeRepo, cfg.Household.SeedFile, log); err != nil {
		log.Error("failed to seed recipes", "error", err)
		os.Exit(1)
	}

	// Initialize services
	recipeService := service.NewRecipeService(recipeRepo, reviewRepo, pantryRepo)
	pantryService := service.NewPantryService(pantryRepo)
	planService := service.NewMealPlanService(planRepo, recipeRepo, cfg.Household.PreferredAgeRange)
	shoppingService := service.NewShoppingService(planService, recipeRepo, pantryRepo, log)
	reminderService := service.NewReminderService(reminderRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	recipeHandler := handlers.NewRecipeHandler(recipeService, log)
	pantryHandler := handlers.NewPantryHandler(pantryService, log)
	planHandler := handlers.NewMealPlanHandler(planService, log)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, log)
	reminderHandler := handlers.NewReminderHandler(reminderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "api_key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		// Recipe endpoints
		r.Get("/recipes", recipeHandler.ListRecipes)
		r.Post("/recipes", recipeHandler.CreateRecipe)
		r.Get("/recipes/{recipeId}", recipeHandler.GetRecipe)
		r.Post("/recipes/{recipeId}/reviews", recipeHandler.AddReview)
		r.Get("/suggest", recipeHandler.Suggest)

		// Pantry endpoints
		r.Get("/pantry", pantryHandler.ListItems)
		r.Post("/pantry", pantryHandler.AddItem)
		r.Delete("/pantry/{itemId}", pantryHandler.RemoveItem)

		// Meal plan endpoints
		r.Get("/mealplan/{weekStart}", planHandler.GetPlan)
		r.Post("/mealplan", planHandler.SavePlan)
		r.Post("/mealplan/{weekStart}/auto-fill", planHandler.AutoFill)

		// Shopping list endpoint
		r.Get("/shopping-list/{weekStart}", shoppingHandler.GetList)

		// Reminder endpoints
		r.Get("/reminders", reminderHandler.ListReminders)
		r.Post("/reminders", reminderHandler.AddReminder)
		r.Delete("/reminders/{reminderId}", reminderHandler.RemoveReminder)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
