package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"legal-drafting-be/internal/bootstrap"
	"legal-drafting-be/internal/config"
	"legal-drafting-be/internal/server"
	"legal-drafting-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracing
	shutdownTracer, err := tracer.Init(context.Background(), cfg.Otel, cfg.App.Environment)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer shutdownTracer(context.Background())

	// 3. Container
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Unable to start: %v", err)
	}
	defer container.Logger.Sync()

	// 4. Serve until SIGINT/SIGTERM
	srv := server.New(cfg, container)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("SERVER", "shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	if err := srv.Run(); err != nil {
		container.Logger.Error("SERVER", "stopped", map[string]interface{}{"error": err})
	}
}
