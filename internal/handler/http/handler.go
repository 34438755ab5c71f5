package http

import (
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
