package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/handler"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/service"
	"stumpworks-site/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}

	var redis *goredis.Client
	if cfg.RedisURL != "" {
		redis, err = config.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
			redis = nil
		} else {
			defer redis.Close()
		}
	}

	store, err := buildMediaStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up media store: %v", err)
	}

	services := service.NewServices(repos, store, redis, cfg)
	handlers := handler.NewHandlers(services, repos, store, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadSize) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	if cfg.MediaDriver == "disk" {
		app.Static("/api/uploads", cfg.UploadsDir)
	}

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildRepositories(cfg *config.Config) (*repository.Repositories, error) {
	if cfg.StorageDriver == "postgres" {
		db, err := config.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		return repository.NewRepositories(db), nil
	}
	return repository.NewFileRepositories(cfg.PortfolioFile), nil
}

func buildMediaStore(cfg *config.Config) (storage.Store, error) {
	if cfg.MediaDriver == "minio" {
		client, err := config.NewMinIOClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewMinIOStore(client, cfg), nil
	}
	return storage.NewDiskStore(cfg.UploadsDir)
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	api := app.Group("/api")

	api.Get("/health", h.Health.Check)

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/check", h.Auth.Check)

	api.Get("/portfolio", h.Portfolio.List)
	api.Get("/reviews/google", h.Review.GetGoogle)
	api.Post("/contact", h.Contact.Send)

	protected := api.Group("", middleware.AuthRequired(authService))
	protected.Post("/portfolio", h.Portfolio.Create)
	protected.Put("/portfolio", h.Portfolio.Update)
	protected.Delete("/portfolio", h.Portfolio.Delete)
	protected.Delete("/portfolio/:id", h.Portfolio.Delete)
	protected.Post("/portfolio/upload", h.Portfolio.Upload)
	protected.Post("/portfolio/upload-before-after", h.Portfolio.UploadBeforeAfter)
	protected.Post("/upload", h.Media.Upload)
}
