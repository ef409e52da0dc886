package labels

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"inventory-manager/core/barcode"
	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Folder is the storage prefix label manifests are written under.
const Folder = "labels"

var (
	// ErrUnknownModel is returned for a type label that is not registered.
	ErrUnknownModel = errors.New("unknown barcode model")
	// ErrNotEnumerable is returned when the model cannot list its records.
	ErrNotEnumerable = errors.New("model cannot be enumerated")
)

// Label is one printable barcode.
type Label struct {
	PK      int    `json:"pk"`
	Barcode string `json:"barcode"`
}

// Manifest is the document written to storage for a label run.
type Manifest struct {
	Model       string    `json:"model"`
	Format      string    `json:"format"`
	GeneratedAt time.Time `json:"generated_at"`
	Labels      []Label   `json:"labels"`
}

// ExportResult describes a written manifest.
type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Service handles label exports.
type Service struct {
	client    storage.Client
	bucket    string
	region    string
	registry  *barcode.Registry
	generator *barcode.Generator
	cfg       barcode.Config
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new labels service.
func NewService(client storage.Client, storageCfg storage.Config, registry *barcode.Registry, cfg barcode.Config, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		bucket:    storageCfg.Bucket,
		region:    storageCfg.Region,
		registry:  registry,
		generator: barcode.NewGenerator(registry),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Build generates the labels of every record of a model.
func (s *Service) Build(ctx context.Context, label string) (*Manifest, error) {
	desc, ok := s.registry.ByLabel(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, label)
	}
	enum, ok := desc.(barcode.Enumerator)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEnumerable, label)
	}

	pks, err := enum.PrimaryKeys(ctx)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Model:       label,
		Format:      s.cfg.Format,
		GeneratedAt: s.now().UTC(),
		Labels:      make([]Label, 0, len(pks)),
	}

	for _, pk := range pks {
		rec, found, err := desc.FindByPrimaryKey(ctx, pk)
		if err != nil {
			return nil, err
		}
		if !found {
			// Deleted since enumeration
			continue
		}

		data, err := s.generator.Generate(rec, s.cfg)
		if err != nil {
			return nil, err
		}
		manifest.Labels = append(manifest.Labels, Label{PK: pk, Barcode: data})
	}

	return manifest, nil
}

// Export builds the labels of a model and writes the manifest to storage.
func (s *Service) Export(ctx context.Context, label string) (*ExportResult, error) {
	manifest, err := s.Build(ctx, label)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	key := path.Join(Folder, label, manifest.GeneratedAt.Format("20060102T150405Z")+".json")
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Exported labels", zap.String("model", label), zap.String("key", key), zap.Int("count", len(manifest.Labels)))
	return &ExportResult{Key: key, Count: len(manifest.Labels)}, nil
}
