package labels

import (
	"inventory-manager/core/barcode"
	"inventory-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Labels feature. It is disabled without a registry.
func NewFeature(client storage.Client, storageCfg storage.Config, registry *barcode.Registry, cfg barcode.Config, logger *zap.Logger) *Feature {
	if registry == nil {
		return &Feature{}
	}
	svc := NewService(client, storageCfg, registry, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "labels"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
