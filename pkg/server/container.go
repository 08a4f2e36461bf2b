package server

import (
	"fmt"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/middleware"
	"github.com/rafmac11/landscapes-form/internal/services"
)

// Container holds all application dependencies.
type Container struct {
	Config     *config.Config
	Labels     *config.Labels
	Dispatcher services.LeadDispatcher
	Auth       *middleware.AuthService

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container from validated
// configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	labels := config.DefaultLabels()

	serviceContainer, err := services.NewServiceContainer(cfg, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:     cfg,
		Labels:     labels,
		Dispatcher: serviceContainer.Dispatcher,
		Auth:       middleware.NewAuthService(cfg.Auth.JWTSecret),
		services:   serviceContainer,
	}, nil
}
