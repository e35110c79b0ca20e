// @title           ZenHome Planner API
// @version         1.0.0
// @description     Backend for the ZenHome interior-design planner: rooms and furnishing placement on a grid canvas, a materials catalog with budget aggregation, and Gemini-backed design visuals and advice.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"time"

	"zenhome-backend/docs"
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/config"
	"zenhome-backend/internal/database"
	"zenhome-backend/internal/gemini"
	"zenhome-backend/internal/handlers"
	"zenhome-backend/internal/middleware"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
	"zenhome-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point the Swagger docs at the deployed host.
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey)

	// Snapshot persistence: Postgres when configured, otherwise an
	// in-memory slot for local runs.
	var projectStore store.ProjectStore
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize migrator")
		}
		if err := migrator.Run(); err != nil {
			migrator.Close()
			log.Fatal().Err(err).Msg("migration failed")
		}
		migrator.Close()

		pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize project store")
		}
		defer pgStore.Close()
		projectStore = pgStore
	} else {
		log.Warn().Msg("DATABASE_URL not set, project state will not survive restarts")
		projectStore = store.NewMemoryStore()
	}

	cell, err := store.NewCell(context.Background(), projectStore)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to restore project state")
	}

	// Model-asset storage is optional; uploads 503 without it.
	var storageClient *supabase.StorageClient
	if cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "" {
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize storage client")
		}
	} else {
		log.Warn().Msg("Supabase storage not configured, model-asset uploads are disabled")
	}

	cat := catalog.Default()
	engine := planner.New()
	session := planner.NewSession()

	materialsHandler := handlers.NewMaterialsHandler(cat)
	projectHandler := handlers.NewProjectHandler(cell)
	roomsHandler := handlers.NewRoomsHandler(cell, engine, session)
	itemsHandler := handlers.NewItemsHandler(cell, engine, session, storageClient)
	selectionsHandler := handlers.NewSelectionsHandler(cell, engine)
	budgetHandler := handlers.NewBudgetHandler(cell, cat, geminiClient)
	designsHandler := handlers.NewDesignsHandler(cell, engine, geminiClient)
	sessionHandler := handlers.NewSessionHandler(session)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/materials", materialsHandler.List)
	api.GET("/materials/:material_id", materialsHandler.Get)

	api.GET("/project", projectHandler.Get)
	api.POST("/project/reset", projectHandler.Reset)

	api.POST("/project/rooms", roomsHandler.Create)
	api.PATCH("/project/rooms/:room_id", roomsHandler.UpdateDimensions)
	api.DELETE("/project/rooms/:room_id", roomsHandler.Delete)

	api.POST("/project/rooms/:room_id/items", itemsHandler.Place)
	api.POST("/project/rooms/:room_id/items/:item_id/rotate", itemsHandler.Rotate)
	api.DELETE("/project/rooms/:room_id/items/:item_id", itemsHandler.Remove)
	api.POST("/project/rooms/:room_id/items/:item_id/model", itemsHandler.AttachModel)

	api.POST("/project/selections/:material_id/toggle", selectionsHandler.Toggle)

	api.GET("/project/budget", budgetHandler.Get)
	api.POST("/project/budget/analysis", budgetHandler.Analyze)

	api.POST("/project/designs", designsHandler.Generate)
	api.GET("/project/designs", designsHandler.List)
	api.GET("/project/designs/suggestions", designsHandler.Suggestions)
	api.POST("/project/advice", designsHandler.Advice)

	api.GET("/session", sessionHandler.Get)
	api.PUT("/session/tool", sessionHandler.SetTool)
	api.POST("/session/selection/clear", sessionHandler.ClearSelection)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
