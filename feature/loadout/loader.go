package loadout

import (
	"artifact-planner/core/catalog"
	"artifact-planner/core/planner"
	"artifact-planner/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new loadout feature.
func NewFeature(catalogs catalog.Provider, client storage.Client, bucket string, cfg planner.Config, logger *zap.Logger) *Feature {
	svc := NewService(catalogs, client, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "loadout"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
