package barcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"inventory-manager/core/barcode"

	"go.uber.org/zap"
)

// MsgNoMatch is reported when a scanned payload matches no record.
const MsgNoMatch = "No match found for barcode data"

var (
	// ErrUnknownModel is returned for a type label that is not registered.
	ErrUnknownModel = errors.New("unknown barcode model")
	// ErrRecordNotFound is returned when the addressed record does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrBarcodeInUse is returned when linking a payload that already resolves to a record.
	ErrBarcodeInUse = errors.New("barcode matches existing item")
	// ErrEmptyBarcode is returned when linking a blank payload.
	ErrEmptyBarcode = errors.New("barcode data is empty")
	// ErrLinkUnsupported is returned when the model cannot store external barcodes.
	ErrLinkUnsupported = errors.New("model does not support linked barcodes")
)

// ScanResponse is the result of a successful scan.
type ScanResponse struct {
	Label       string
	Strategy    barcode.Strategy
	Matched     map[string]any
	Success     string
	BarcodeData string
	BarcodeHash string
}

// MarshalJSON renders the response keyed by the matched type label.
func (r ScanResponse) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		r.Label:        r.Matched,
		"barcode_data": r.BarcodeData,
		"barcode_hash": r.BarcodeHash,
	}
	if r.Success != "" {
		out["success"] = r.Success
	}
	return json.Marshal(out)
}

// Service handles barcode operations.
type Service struct {
	registry  *barcode.Registry
	engine    *barcode.Engine
	generator *barcode.Generator
	cfg       barcode.Config
	logger    *zap.Logger
}

// NewService creates a new barcode service.
func NewService(registry *barcode.Registry, cfg barcode.Config, logger *zap.Logger) *Service {
	return &Service{
		registry:  registry,
		engine:    barcode.NewEngine(registry, barcode.WithLogger(logger)),
		generator: barcode.NewGenerator(registry),
		cfg:       cfg,
		logger:    logger,
	}
}

// Scan resolves a payload. It returns nil without error when nothing matches.
func (s *Service) Scan(ctx context.Context, p barcode.Payload) (*ScanResponse, error) {
	match, err := s.engine.Scan(ctx, p, s.cfg)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}

	resp := &ScanResponse{
		Label:       match.Label,
		Strategy:    match.Strategy,
		Matched:     match.Record.FormatMatchedResponse(),
		BarcodeData: p.String(),
		BarcodeHash: barcode.Hash(p),
	}
	if match.Strategy != barcode.StrategyShort {
		resp.Success = "Found matching item"
	}
	return resp, nil
}

// Generate renders the internal barcode of a record with the configured format.
func (s *Service) Generate(ctx context.Context, label string, pk int) (string, error) {
	_, rec, err := s.resolve(ctx, label, pk)
	if err != nil {
		return "", err
	}
	return s.generator.Generate(rec, s.cfg)
}

// GenerateRecord renders the internal barcode of an already loaded record.
func (s *Service) GenerateRecord(rec barcode.Record) (string, error) {
	return s.generator.Generate(rec, s.cfg)
}

// Link assigns an external barcode to a record and returns its hash.
func (s *Service) Link(ctx context.Context, p barcode.Payload, label string, pk int) (string, error) {
	if strings.TrimSpace(p.String()) == "" {
		return "", ErrEmptyBarcode
	}

	desc, _, err := s.resolve(ctx, label, pk)
	if err != nil {
		return "", err
	}
	assigner, ok := desc.(barcode.HashAssigner)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLinkUnsupported, label)
	}

	existing, err := s.engine.Scan(ctx, p, s.cfg)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("%w: %s %d", ErrBarcodeInUse, existing.Label, existing.Record.PrimaryKey())
	}

	hash := barcode.Hash(p)
	if err := assigner.AssignHash(ctx, pk, p.String(), hash); err != nil {
		return "", err
	}

	s.logger.Info("Linked barcode", zap.String("model", label), zap.Int("pk", pk), zap.String("hash", hash))
	return hash, nil
}

// Unlink removes the external barcode of a record.
func (s *Service) Unlink(ctx context.Context, label string, pk int) error {
	desc, _, err := s.resolve(ctx, label, pk)
	if err != nil {
		return err
	}
	assigner, ok := desc.(barcode.HashAssigner)
	if !ok {
		return fmt.Errorf("%w: %s", ErrLinkUnsupported, label)
	}

	if err := assigner.AssignHash(ctx, pk, "", ""); err != nil {
		return err
	}

	s.logger.Info("Unlinked barcode", zap.String("model", label), zap.Int("pk", pk))
	return nil
}

func (s *Service) resolve(ctx context.Context, label string, pk int) (barcode.Descriptor, barcode.Record, error) {
	desc, ok := s.registry.ByLabel(label)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownModel, label, strings.Join(s.registry.Labels(), ", "))
	}

	rec, found, err := desc.FindByPrimaryKey(ctx, pk)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, fmt.Errorf("%w: %s %d", ErrRecordNotFound, label, pk)
	}
	return desc, rec, nil
}
