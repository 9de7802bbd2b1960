package importer

import (
	"list-manager/core/storage"
	"list-manager/feature/lists"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Importer feature.
func NewFeature(store lists.Store, client storage.Client, bucket string, logger *zap.Logger, defaultStrategy MergeStrategy) *Feature {
	svc := NewService(store, client, bucket, logger)
	h := NewHandler(svc, defaultStrategy)
	return &Feature{service: svc, handler: h}
}

// Service returns the feature's service, for CLI wiring.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "importer"
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
