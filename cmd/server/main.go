package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/event"
	"resume-builder/internal/infrastructure/migration"
	tpl "resume-builder/internal/template"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	pool, err := infra.NewResumesPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: resumes DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	publisher, err := event.NewPublisher(cfg.RabbitURI)
	if err != nil {
		log.Printf("warning: event publisher not available: %v", err)
		publisher, _ = event.NewPublisher("")
	}
	defer publisher.Close()

	resumesRepo := repo.NewResumesRepo(pool)
	cache := repo.NewRedisPreviewCache(redisClient)
	registry := tpl.NewRegistry()
	exporter := infra.NewChromedpExporter()

	svc := usecase.NewService(resumesRepo, cache, registry, exporter, publisher)

	app := fiber.New()
	h := httpadapter.NewHandler(svc)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
