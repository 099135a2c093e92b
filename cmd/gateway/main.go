package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KAVYA-29-ai/ecommerce/internal/ai"
	"github.com/KAVYA-29-ai/ecommerce/internal/config"
	"github.com/KAVYA-29-ai/ecommerce/internal/handlers"
	"github.com/KAVYA-29-ai/ecommerce/internal/logger"
	"github.com/KAVYA-29-ai/ecommerce/internal/prediction"
	"github.com/KAVYA-29-ai/ecommerce/internal/routes"
)

const logFile = "gateway.log"

func main() {
	cfg := config.Load()
	logger.Setup(logFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups)

	client := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SearchGrounding)
	service := prediction.NewService(client, cfg.MaxSpecsLength)
	r := routes.Setup(handlers.NewPredictHandler(service))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Prediction Gateway listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Println("⚠️ Gateway shutting down: system signal received.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Gateway stopped.")
}
