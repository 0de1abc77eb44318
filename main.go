package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishkalaria12/snap-gen/config"
	"github.com/krishkalaria12/snap-gen/database"
	"github.com/krishkalaria12/snap-gen/generator"
	handler "github.com/krishkalaria12/snap-gen/handlers"
	"github.com/krishkalaria12/snap-gen/logging"
	"github.com/krishkalaria12/snap-gen/router"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envFlag := &cli.StringFlag{
		Name:  "env",
		Usage: "path to the .env file",
		Value: ".env",
	}

	app := &cli.Command{
		Name:  "snap-gen",
		Usage: "prompt-to-image and prompt-to-video generation backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run migrations and start the HTTP server",
				Flags:  []cli.Flag{envFlag},
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database tables",
				Flags:  []cli.Flag{envFlag},
				Action: migrateAction,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("env"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.Development() {
		level = logger.Info
	}
	return database.Open(cfg.DatabaseURL, level)
}

func migrateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.AppEnv)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Msg("migrations applied")
	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.AppEnv)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("error closing the database connection")
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	images, closeImages, err := newImageGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeImages()

	videos := generator.NewSimulatedVideo(cfg.Video.SimulatedDelay, cfg.Video.BaseURL)

	h := handler.New(database.NewStore(db), images, videos, log)
	app := router.NewApp(h, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("image_provider", cfg.Image.Provider).Msg("server is listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(45 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newImageGenerator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (generator.ImageGenerator, func(), error) {
	switch cfg.Image.Provider {
	case config.ProviderGemini:
		client, err := generator.NewGeminiClient(ctx, cfg.Image.GeminiAPIKey)
		if err != nil {
			return nil, nil, err
		}
		uploader, err := generator.NewClientUploader(ctx, cfg.Image.GCSProjectID, cfg.Image.GCSBucketName)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := uploader.Close(); err != nil {
				log.Error().Err(err).Msg("error closing storage client")
			}
		}
		return generator.NewGeminiImageGenerator(client.Models, uploader, cfg.Image.GeminiModel, cfg.Image.Timeout), closer, nil
	default:
		return generator.NewHTTPImageGenerator(cfg.Image.APIURL, cfg.Image.Timeout), func() {}, nil
	}
}
