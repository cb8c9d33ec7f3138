package main

import (
	"context"
	"log"

	"ai-health-be/internal/bootstrap"
	"ai-health-be/internal/config"
	"ai-health-be/internal/server"
	"ai-health-be/internal/tracer"
	"ai-health-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// History consumer runs for the lifetime of the process.
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	color.Green("ai-health-be starting (env: %s)", cfg.App.Environment)
	if len(cfg.Keys.Gemini) == 0 {
		color.Yellow("Warning: no Gemini API keys configured, inference degrades to fallbacks")
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
