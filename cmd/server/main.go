// Command server is the entry point for the Yayayum menu API.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yayayum/internal/bootstrap"
	"yayayum/internal/config"
	"yayayum/internal/middleware"
	"yayayum/internal/server"
)

// @title Yayayum Menu API
// @version 1.0
// @description Users, dishes and ratings for the restaurant menu.

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	srv, err := server.NewServerWithDeps(cfg, rt.DB, rt.Redis)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	app := srv.NewApp()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		middleware.Logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			middleware.Logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	middleware.Logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("env", cfg.Env),
		slog.String("db_driver", cfg.DBDriver),
	)
	exitCode := 0
	if err := app.Listen(":" + cfg.Port); err != nil {
		middleware.Logger.Error("Server stopped", slog.String("error", err.Error()))
		exitCode = 1
	} else {
		// Listen returns as soon as shutdown begins; wait for in-flight requests.
		<-stopped
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rt.Close(closeCtx); err != nil {
		middleware.Logger.Error("Runtime shutdown error", slog.String("error", err.Error()))
		exitCode = 1
	}
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
