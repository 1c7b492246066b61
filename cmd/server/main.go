package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/skill-connect/internal/config"
	"github.com/fadilmartias/skill-connect/internal/seed"
	"github.com/fadilmartias/skill-connect/internal/server"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	ds, err := seed.Load(config.LoadSeedConfig().Path)
	if err != nil {
		log.Fatalf("Could not load seed data: %v", err)
	}
	log.Printf("Seeded %d workers, %d jobs, %d employers", len(ds.Workers), len(ds.Jobs), len(ds.Employers))

	uc, err := server.NewUsecases(ds)
	if err != nil {
		log.Fatal(err)
	}
	app := server.New(uc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Println("Server running on ", appConfig.Port)
		return app.Listen(appConfig.Port)
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	// Monitor goroutine count
	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				log.Printf("Active goroutines: %d", runtime.NumGoroutine())
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
