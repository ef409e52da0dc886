package barcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotBarcodeCapable is returned when generating for a record type that is not registered.
	ErrNotBarcodeCapable = errors.New("record type is not barcode capable")
	// ErrNoPrimaryKey is returned when generating for a record that has not been saved.
	ErrNoPrimaryKey = errors.New("record has no primary key")
)

// Generator renders barcode payloads for registered record types.
type Generator struct {
	registry *Registry
}

// NewGenerator creates a new generator over the registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Generate renders the barcode for a record. The short format uses the record's
// own type code; any other format falls back to JSON.
func (g *Generator) Generate(rec Record, cfg Config) (string, error) {
	label, code := rec.TypeLabel(), rec.TypeCode()

	desc, ok := g.registry.ByLabel(label)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotBarcodeCapable, label)
	}
	if desc.TypeCode() != code {
		return "", fmt.Errorf("%w: %q reports code %q, registered as %q", ErrNotBarcodeCapable, label, code, desc.TypeCode())
	}

	pk := rec.PrimaryKey()
	if pk <= 0 {
		return "", fmt.Errorf("%w: %s", ErrNoPrimaryKey, label)
	}

	if cfg.Format == FormatShort {
		return cfg.ShortPrefix + code + strconv.Itoa(pk), nil
	}

	key, err := json.Marshal(label)
	if err != nil {
		return "", fmt.Errorf("failed to encode type label: %w", err)
	}
	return fmt.Sprintf("{%s: %d}", key, pk), nil
}
