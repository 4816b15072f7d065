package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appdocs "github.com/meddoc/relay/internal/application/documents"
	"github.com/meddoc/relay/internal/config"
	domain "github.com/meddoc/relay/internal/domain/documents"
	"github.com/meddoc/relay/internal/infra/ai/gemini"
	"github.com/meddoc/relay/internal/infra/ai/nebius"
	"github.com/meddoc/relay/internal/infra/ai/prompt"
	"github.com/meddoc/relay/internal/infra/httpserver"
	"github.com/meddoc/relay/internal/infra/storage"
	"github.com/meddoc/relay/internal/middleware"
)

// pinger is implemented by both content store drivers.
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config (credential validation happens here, before any request)
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// init content store
	var store domain.ContentStore
	var storePinger pinger
	switch cfg.Storage.Driver {
	case config.DriverCloudinary:
		s, err := storage.NewCloudinaryStore(
			cfg.Storage.Cloudinary.CloudName,
			cfg.Storage.Cloudinary.APIKey,
			cfg.Storage.Cloudinary.APISecret,
		)
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		store, storePinger = s, s
	default:
		s, err := storage.NewMinioStore(ctx,
			cfg.Storage.Minio.Endpoint,
			cfg.Storage.Minio.Region,
			cfg.Storage.Minio.BucketName,
			cfg.Storage.Minio.AccessKey,
			cfg.Storage.Minio.SecretKey,
			cfg.Storage.Minio.UseSSL,
			cfg.Storage.Minio.PublicBase,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		store, storePinger = s, s
	}

	// init vision backends
	prescriptionBackend := nebius.NewClient(
		cfg.Vision.Nebius.APIKey,
		cfg.Vision.Nebius.BaseURL,
		cfg.Vision.Nebius.Model,
		cfg.Vision.MaxTokens,
		cfg.Vision.Temperature,
	)
	labBackend := gemini.NewClient(
		cfg.Vision.Gemini.APIKey,
		cfg.Vision.Gemini.BaseURL,
		cfg.Vision.Gemini.Model,
		cfg.Vision.MaxTokens,
		cfg.Vision.Temperature,
	)

	// init service
	svc := &appdocs.Service{
		Store:          store,
		Prompts:        prompt.Builder{},
		Prescription:   prescriptionBackend,
		LabRequisition: labBackend,
	}

	// init router
	handler := httpserver.NewRouter(svc, map[string]middleware.HealthChecker{
		"storage": &middleware.PingChecker{Target: storePinger},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // vision backends are slow
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
