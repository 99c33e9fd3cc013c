package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"blog-community/internal/config"
	"blog-community/internal/provision"
	"blog-community/internal/repository"
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repos := repository.NewRepositories(db)
	if err := provision.Seed(ctx, repos, cfg); err != nil {
		log.Fatalf("Provisioning failed: %v", err)
	}

	log.Println("Provisioning complete")
}
