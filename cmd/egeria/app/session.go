package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/stacklok/egeria-client-go/internal/config"
	"github.com/stacklok/egeria-client-go/internal/telemetry"
	"github.com/stacklok/egeria-client-go/internal/versions"
	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
)

// session is everything one command invocation needs to talk to the platform
type session struct {
	cfg       *config.Config
	client    *egeria.Client
	catalog   *output.CatalogManager
	telemetry *telemetry.Telemetry
}

// openSession loads the configuration and builds a client with telemetry and the
// configured format catalog. The caller must Close the session.
func openSession(ctx context.Context, v *viper.Viper) (*session, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Telemetry != nil && cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = versions.GetVersionInfo().Version
	}
	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	catalog, err := output.NewCatalogManager(nil, cfg.Output.CatalogFile)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, err
	}

	client, err := egeria.NewClient(clientCfg,
		egeria.WithCatalogManager(catalog),
		egeria.WithTracerProvider(tel.TracerProvider()),
		egeria.WithMeterProvider(tel.MeterProvider()),
	)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, err
	}

	slog.Debug("Session opened",
		"platform", clientCfg.PlatformURL,
		"server", clientCfg.ServerName,
		"user", clientCfg.UserID,
		"catalog", cfg.Output.CatalogFile)

	return &session{cfg: cfg, client: client, catalog: catalog, telemetry: tel}, nil
}

// options returns the rendering options from the configuration
func (s *session) options() output.Options {
	return output.Options{
		Format:        s.cfg.Output.GetFormat(),
		FormatSetName: s.cfg.Output.FormatSet,
	}
}

// Close stops the catalog watcher and flushes telemetry
func (s *session) Close(ctx context.Context) error {
	return errors.Join(s.catalog.Close(), s.telemetry.Shutdown(ctx))
}
