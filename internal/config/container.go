package config

import (
	"net/http"

	"pdf-md-translator/internal/domain"
	"pdf-md-translator/internal/repository"
	"pdf-md-translator/internal/service"
	"pdf-md-translator/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	PageSource domain.PageSource
	Converter  domain.Converter
	Renderer   domain.MarkdownRenderer
	Dispatcher domain.Dispatcher
	Sessions   *repository.MemorySessionRepository
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the services around an existing configuration
func NewContainerWithConfig(config domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(config.GetLogLevel())

	pageSource, err := service.NewPageSource(config.GetPDFBackend(), appLogger)
	if err != nil {
		return nil, err
	}

	// Initialize services
	converter := service.NewMarkdownService(pageSource, appLogger)
	renderer := service.NewGoldmarkRenderer()
	httpClient := &http.Client{Timeout: service.DeepLTimeout}
	dispatcher := service.NewTranslationService(
		service.DefaultFactories(config, httpClient, appLogger),
		appLogger,
	)

	// Initialize repositories
	sessions := repository.NewMemorySessionRepository(config.GetSessionTTL(), appLogger)

	appLogger.Info("Container initialized",
		"pdf_backend", pageSource.Name(),
		"providers", dispatcher.Providers(),
		"session_ttl", config.GetSessionTTL().String(),
	)

	return &Container{
		Config:     config,
		Logger:     appLogger,
		PageSource: pageSource,
		Converter:  converter,
		Renderer:   renderer,
		Dispatcher: dispatcher,
		Sessions:   sessions,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
