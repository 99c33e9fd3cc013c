package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"blog-community/internal/config"
	"blog-community/internal/handler"
	"blog-community/internal/middleware"
	"blog-community/internal/repository"
	"blog-community/internal/service"
	"blog-community/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/ranks", middleware.AuthRequired(authService), h.Rank.ListRanks)
	v1.Get("/roles", middleware.AuthRequired(authService), h.Rank.ListRoles)

	posts := v1.Group("/posts/:postId")
	posts.Get("/comments", middleware.AuthOptional(authService), h.Comment.List)
	posts.Get("/comments/stats", h.Comment.Stats)
	posts.Post("/comments", middleware.AuthRequired(authService), h.Comment.Create)

	comments := v1.Group("/comments")
	comments.Get("/:commentId/replies", middleware.AuthOptional(authService), h.Comment.Replies)
	comments.Put("/:commentId", middleware.AuthRequired(authService), h.Comment.Update)
	comments.Delete("/:commentId", middleware.AuthRequired(authService), h.Comment.Delete)
	comments.Post("/:commentId/vote", middleware.AuthRequired(authService), h.Comment.Vote)

	users := v1.Group("/users", middleware.AuthRequired(authService))
	users.Post("/me/rank-check", h.Rank.CheckRankUpgrade)
}
