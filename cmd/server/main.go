package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextpdv/internal/config"
	"nextpdv/internal/database"
	"nextpdv/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "server",
		Usage: "backend REST do PDV de calçados e vestuário",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migra o banco e sobe a API HTTP",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "aplica o AutoMigrate e sai",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}
	if err := database.Init(cfg, log); err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(log); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func migrate(*cli.Context) error {
	_, log, err := bootstrap()
	if err != nil {
		return err
	}
	_ = log.Sync()
	return nil
}

func serve(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
		return fmt.Errorf("pasta de uploads: %w", err)
	}

	app := newApp(cfg, log)
	registerRoutes(app, cfg, log)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("servidor iniciado", zap.String("port", cfg.HTTPPort))
		errCh <- app.Listen(":" + cfg.HTTPPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func newApp(cfg *config.Config, log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   "nextpdv",
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				if e.Code >= fiber.StatusInternalServerError {
					log.Error("erro no handler", zap.String("path", c.Path()), zap.String("error", e.Message))
				}
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			log.Error("erro inesperado", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})
}
