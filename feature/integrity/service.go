package integrity

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity/checks"
	"inventory-manager/feature/part"
	"inventory-manager/feature/part/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinksCacheTTL is how long a linked barcode report is reused.
const LinksCacheTTL = time.Minute

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
	links  *reconcile.Cache
}

// NewService creates a new integrity service.
func NewService(client storage.Client, storageCfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	svc := &Service{
		client: client,
		bucket: storageCfg.Bucket,
		region: storageCfg.Region,
		logger: logger,
		db:     db,
	}
	if db != nil {
		svc.links = reconcile.NewCache(LinksCacheTTL, part.Sources(db)...)
	}
	return svc
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// CheckServer compares the barcode-capable models with the live schema.
func (s *Service) CheckServer() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Barcoded()...)
}

// CheckLinks reconciles the linked barcodes. Refresh discards the cached report.
func (s *Service) CheckLinks(ctx context.Context, refresh bool) (*reconcile.Report, error) {
	if s.links == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if refresh {
		s.links.Invalidate()
	}
	return s.links.Get(ctx)
}
