package main

import (
	"context"
	"log"
	"time"
	"vitrine/auth"
	"vitrine/config"
	"vitrine/database"
	"vitrine/handlers"
	"vitrine/middleware"
	"vitrine/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	assets, err := buildAssetStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up asset store:", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.Admin.JWTSecret), cfg.Admin.TokenTTL)
	creds := auth.Credentials{Email: cfg.Admin.Email, Password: cfg.Admin.Password}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	if cfg.Storage.Driver == "local" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	r.POST("/api/admin/login", handlers.Login(creds, tokens))

	projects := r.Group("/api/projects")
	{
		projects.GET("", handlers.ListProjects(db))
		projects.GET("/:id", handlers.GetProject(db))

		admin := projects.Group("")
		admin.Use(middleware.AuthRequired(tokens))
		admin.POST("", handlers.CreateProject(db, assets))
		admin.PUT("/:id", handlers.UpdateProject(db, assets))
		admin.DELETE("/:id", handlers.DeleteProject(db, assets))
	}

	contact := r.Group("/api/contact")
	{
		contact.POST("", handlers.CreateContactMessage(db))

		messages := contact.Group("/messages")
		messages.Use(middleware.AuthRequired(tokens))
		messages.GET("", handlers.ListContactMessages(db))
		messages.DELETE("/:id", handlers.DeleteContactMessage(db))
		messages.POST("/deleteMany", handlers.DeleteContactMessagesMany(db))
	}

	log.Printf("Server starting on :%s (storage driver: %s)", cfg.Server.Port, cfg.Storage.Driver)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func buildAssetStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3(ctx, storage.S3Options{
			Endpoint:  cfg.Storage.S3.Endpoint,
			Region:    cfg.Storage.S3.Region,
			Bucket:    cfg.Storage.S3.Bucket,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			BaseURL:   cfg.Storage.PublicBaseURL,
			MaxBytes:  cfg.Upload.MaxBytes,
		})
	default:
		return storage.NewLocal(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL, cfg.Upload.MaxBytes)
	}
}
