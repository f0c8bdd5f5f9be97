package http

import (
	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/service"
	"github.com/MKhiriev/go-blogr/internal/store"
)

type Handler struct {
	db       *store.DB
	services *service.Services

	logger *logger.Logger
}

func NewHandler(db *store.DB, services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		db:       db,
		services: services,
		logger:   logger,
	}
}
