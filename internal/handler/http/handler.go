package http

import (
	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/service"
	"github.com/MKhiriev/inventory-master/internal/workers"
)

type Handler struct {
	services *service.Services

	// mailWorker receives welcome-email jobs from the signup handler.
	mailWorker *workers.MailWorker

	logger *logger.Logger
}

func NewHandler(services *service.Services, mailWorker *workers.MailWorker, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		mailWorker: mailWorker,
		logger:     logger,
	}
}
