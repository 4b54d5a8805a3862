package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"service_inventory/internal/adapter/seed"
	"service_inventory/internal/app"
	"service_inventory/internal/config"
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// @title           Service Inventory API
// @version         1.0
// @description     Home-service orders, workflow, bills of materials and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	a := &cli.App{
		Name:  "service-inventory",
		Usage: "home-service order workflow API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:  "seed-templates",
				Usage: "replace the process template catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "YAML file with templates; the embedded defaults when empty",
					},
				},
				Action: seedTemplates,
			},
		},
		DefaultCommand: "serve",
	}

	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to wire application", zap.Error(err))
		return err
	}
	defer container.Close()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      container.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("http server failed", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seedTemplates(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var ts []entities.ProcessTemplate
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if ts, err = seed.ParseTemplates(data); err != nil {
			return err
		}
	} else if ts, err = seed.DefaultTemplates(); err != nil {
		return err
	}

	container, err := app.NewTemplateCatalog(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()

	seeded, err := container.Templates.SeedTemplates(c.Context, ts)
	if err != nil {
		log.Error("seed templates failed", zap.Error(err))
		return err
	}
	log.Info("process templates seeded", zap.Int("count", len(seeded)))
	return nil
}
