package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/config"
	"github.com/homehandshake/publish-api/internal/domain/account"
	"github.com/homehandshake/publish-api/internal/domain/clip"
	"github.com/homehandshake/publish-api/internal/domain/diagnostics"
	"github.com/homehandshake/publish-api/internal/domain/post"
	"github.com/homehandshake/publish-api/internal/domain/user"
	"github.com/homehandshake/publish-api/internal/infrastructure/aggregator"
	"github.com/homehandshake/publish-api/internal/infrastructure/auth"
	"github.com/homehandshake/publish-api/internal/infrastructure/identity"
	"github.com/homehandshake/publish-api/internal/infrastructure/logger"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver"
)

// @title Publish API
// @version 1.0
// @description Validates and publishes social posts through the aggregation API, with connected-account listing, clip retrieval, and webhook diagnostics.
// @contact.name HomeHandshake Team
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	aggregatorClient := aggregator.NewClient(aggregator.Config{
		APIURL:     cfg.AggregatorAPIURL,
		WebhookURL: cfg.WebhookURL,
		Timeout:    cfg.UpstreamTimeout,
	}, log)
	identityClient := identity.NewClient(identity.Config{
		APIURL:    cfg.IdentityAPIURL,
		SecretKey: cfg.IdentitySecret,
		Timeout:   cfg.UpstreamTimeout,
	}, log)

	userService := user.NewService(identityClient, log)
	postService := post.NewService(aggregatorClient, userService, log)
	accountService := account.NewService(aggregatorClient, userService, log)
	clipService := clip.NewService(aggregatorClient, userService, log)
	diagnosticsService := diagnostics.NewService(aggregatorClient, userService, cfg.WebhookURL, log)

	httpServer := httpserver.New(cfg, log, httpserver.Services{
		Post:        postService,
		Account:     accountService,
		Clip:        clipService,
		User:        userService,
		Diagnostics: diagnosticsService,
	}, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
