// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"club-events/config"
	"club-events/logger"
	"club-events/services"
	"club-events/store"
	"club-events/websocket"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	serverPort int
)

var rootCmd = &cobra.Command{
	Use:   "club-events",
	Short: "Club event registration and certificates",
	Long: `club-events serves the event registration site: admins create events,
attendees register, admins mark attendance and certificates are generated
as PDF files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServer(cfg)
	},
}

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Init(cmd.Context()); err != nil {
			return err
		}
		logger.Info.Printf("initdb: schema ready in %s", cfg.DatabasePath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database path (default: $DATABASE_PATH or database.db)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "listen port (default: $PORT or 8080)")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
}

// loadConfig reads the environment, applies flags and configures logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if serverPort != 0 {
		cfg.Port = serverPort
	}
	if err := logger.InitLogger(logger.Options{Dir: cfg.LogDir, Env: cfg.Env}); err != nil {
		return nil, fmt.Errorf("initialise logger: %w", err)
	}
	return cfg, nil
}

func runServer(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.Init(ctx)
	cancel()
	if err != nil {
		return err
	}

	hub := websocket.NewHub()
	events := services.NewEventService(db, hub)

	certOpts := []services.CertificateOption{services.WithQRCodeBaseURL(cfg.ApplicationURL)}
	if cfg.CertS3Bucket != "" {
		archiver, err := services.NewS3Archiver(cfg.CertS3Bucket, cfg.AWSRegion)
		if err != nil {
			return err
		}
		certOpts = append(certOpts, services.WithArchiver(archiver))
		logger.Info.Printf("runServer: archiving certificates to s3://%s", cfg.CertS3Bucket)
	}
	certificates := services.NewCertificateService(db, cfg.CertificateDir, certOpts...)

	router := NewRouter(App{
		Events:         events,
		Certificates:   certificates,
		DB:             db,
		Hub:            hub,
		TemplatesDir:   cfg.TemplatesDir,
		StaticDir:      cfg.StaticDir,
		SessionSecret:  cfg.SessionSecret,
		ApplicationURL: cfg.ApplicationURL,
		Secure:         cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info.Printf("runServer: listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop:
	}
	logger.Info.Println("runServer: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
