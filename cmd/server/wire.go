//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
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

var publishSet = wire.NewSet(
	newAggregatorClient,
	wire.Bind(new(post.Gateway), new(*aggregator.Client)),
	wire.Bind(new(account.Directory), new(*aggregator.Client)),
	wire.Bind(new(clip.Fetcher), new(*aggregator.Client)),
	wire.Bind(new(diagnostics.Prober), new(*aggregator.Client)),
	newIdentityClient,
	wire.Bind(new(user.MetadataStore), new(*identity.Client)),
	user.NewService,
	wire.Bind(new(post.Credentials), new(user.Service)),
	post.NewService,
	account.NewService,
	clip.NewService,
	newDiagnosticsService,
	newServices,
)

// BuildApplication demonstrates how to assemble the publish service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		auth.NewValidator,
		publishSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newAggregatorClient(cfg *config.Config, log zerolog.Logger) *aggregator.Client {
	return aggregator.NewClient(aggregator.Config{
		APIURL:     cfg.AggregatorAPIURL,
		WebhookURL: cfg.WebhookURL,
		Timeout:    cfg.UpstreamTimeout,
	}, log)
}

func newIdentityClient(cfg *config.Config, log zerolog.Logger) *identity.Client {
	return identity.NewClient(identity.Config{
		APIURL:    cfg.IdentityAPIURL,
		SecretKey: cfg.IdentitySecret,
		Timeout:   cfg.UpstreamTimeout,
	}, log)
}

func newDiagnosticsService(prober diagnostics.Prober, credentials post.Credentials, cfg *config.Config, log zerolog.Logger) diagnostics.Service {
	return diagnostics.NewService(prober, credentials, cfg.WebhookURL, log)
}

func newServices(
	posts post.Service,
	accounts account.Service,
	clips clip.Service,
	users user.Service,
	diag diagnostics.Service,
) httpserver.Services {
	return httpserver.Services{
		Post:        posts,
		Account:     accounts,
		Clip:        clips,
		User:        users,
		Diagnostics: diag,
	}
}
