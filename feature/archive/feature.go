package archive

import (
	"logbook-manager/feature/logbook"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the snapshot archive into the application.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the archive feature. A nil db disables it; the rest of
// the application runs without snapshot support.
func NewFeature(db *gorm.DB, manager *logbook.Manager, logger *zap.Logger) *Feature {
	f := &Feature{enabled: db != nil}
	if f.enabled {
		f.service = NewService(db, manager, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled reports whether a database connection is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load migrates the snapshot tables and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the underlying archive service.
func (f *Feature) Service() *Service {
	return f.service
}
