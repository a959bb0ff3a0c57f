// Package di provides dependency injection wiring and initialization.
package di

import (
	"fmt"

	"github.com/aristath/spreadbook/internal/clients/saxo"
	"github.com/aristath/spreadbook/internal/config"
	"github.com/aristath/spreadbook/internal/domain"
	"github.com/aristath/spreadbook/internal/modules/portfolio"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container.
// Order of operations:
// 1. Broker client
// 2. Services
func Wire(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.SaxoClientKey == "" {
		log.Warn().Msg("SAXO_CLIENT_KEY is empty; the broker will reject position requests")
	}

	client := saxo.NewClient(cfg.SaxoBaseURL, cfg.SaxoClientKey, cfg.SaxoRequestTimeout, log)

	container := &Container{SaxoClient: client}
	WireServices(container, client, log)

	log.Info().Str("broker_base_url", cfg.SaxoBaseURL).Msg("Dependencies wired")
	return container, nil
}

// WireServices builds the services on top of a positions gateway
func WireServices(container *Container, gateway domain.PositionsGateway, log zerolog.Logger) {
	container.PositionsGateway = gateway
	container.PortfolioService = portfolio.NewService(gateway, log)
}
