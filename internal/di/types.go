/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is the single source of truth for service instances and is
 * handed to the HTTP server at startup.
 */
package di

import (
	"github.com/aristath/spreadbook/internal/clients/saxo"
	"github.com/aristath/spreadbook/internal/domain"
	"github.com/aristath/spreadbook/internal/modules/portfolio"
)

// Container holds all application dependencies
type Container struct {
	// Broker access
	SaxoClient       *saxo.Client
	PositionsGateway domain.PositionsGateway // SaxoClient unless replaced for tests

	// Services
	PortfolioService *portfolio.Service
}
