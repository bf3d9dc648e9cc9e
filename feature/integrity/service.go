package integrity

import (
	"context"
	"fmt"

	"artifact-planner/core/catalog"
	"artifact-planner/core/planner"
	"artifact-planner/core/storage"
	"artifact-planner/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogCache is the catalog provider the service inspects and refreshes.
type CatalogCache interface {
	catalog.Provider
	Invalidate()
}

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	cfg      planner.Config
	catalogs CatalogCache
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket string, cfg planner.Config, catalogs CatalogCache, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		catalogs: catalogs,
		db:       db,
		logger:   logger,
	}
}

// CheckStructure returns the required folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.cfg))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCatalog loads the catalog through the cache and reports on it.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	cat, err := s.catalogs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	report := checks.CheckCatalog(cat)
	return &report, nil
}

// RefreshCatalog drops the cached catalog and reloads it.
func (s *Service) RefreshCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	s.catalogs.Invalidate()
	s.logger.Info("Catalog cache invalidated")
	return s.CheckCatalog(ctx)
}

// CheckServer validates the catalog table schema. It returns nil when no
// database is connected.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, nil
	}
	return checks.CheckServerIntegrity(s.db)
}
