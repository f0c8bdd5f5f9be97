package service

import (
	"github.com/MKhiriev/go-blogr/internal/config"
	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/store"
)

// Services aggregates all business-logic services exposed to the transport
// layer.
type Services struct {
	AuthService AuthService
	PostService PostService
}

// NewServices constructs the full service set over the given repositories.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.Users, cfg, logger),
		PostService: NewPostService(repositories.Posts, logger),
	}
}
