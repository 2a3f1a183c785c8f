package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diewo77/profiles-app/internal/config"
	"github.com/diewo77/profiles-app/internal/db"
	"github.com/diewo77/profiles-app/internal/middleware"
	"github.com/diewo77/profiles-app/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "profiles-app",
	Short: "Profiles, feed and invoicing backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(_ *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		cfg := config.Load()
		dbConn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		log.Printf("Starting server env=%s port=%s", cfg.Env, cfg.Port)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: middleware.RequestLog(server.New(dbConn)),
		}
		go func() {
			log.Printf("Server listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("server error: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		log.Println("Server gracefully stopped")
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run DB migrations and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		cfg := config.Load()
		if _, err := db.ConnectAndMigrate(cfg.DatabaseDSN); err != nil {
			return err
		}
		log.Println("migrations completed; exiting as requested")
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
