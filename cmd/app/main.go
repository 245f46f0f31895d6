package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fitclub/docs"

	"fitclub/internal/config"
	"fitclub/internal/db"
	"fitclub/internal/email"
	"fitclub/internal/logger"
	"fitclub/internal/server"
)

// @title FitClub API
// @version 1.0
// @description Room booking, personal training and group class scheduling for a fitness club.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting FitClub application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(email.Options{
		From:      cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
		SMTPHost:  cfg.SMTPHost,
		SMTPPort:  cfg.SMTPPort,
		SMTPUser:  cfg.SMTPUser,
		SMTPPass:  cfg.SMTPPass,
		RedisAddr: cfg.RedisAddr,
	})
	defer emailService.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := emailService.Ping(ctx); err != nil {
		logger.WithError(err).Warn("Redis unreachable, confirmations will fail until it recovers")
	}
	go emailService.Start(ctx)
	go reportQueueLength(ctx, emailService)

	srv := server.New(database, cfg, emailService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func reportQueueLength(ctx context.Context, svc *email.Service) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.QueueLength(ctx)
		}
	}
}
