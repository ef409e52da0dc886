package part

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/barcode"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/part/models"

	"gorm.io/gorm"
)

// recordModel is a pointer to a gorm model implementing barcode.Record.
type recordModel[T any] interface {
	*T
	barcode.Record
}

// Descriptor is the gorm-backed barcode descriptor of a model.
type Descriptor[T any, PT recordModel[T]] struct {
	db    *gorm.DB
	label string
	code  string
}

// NewDescriptor creates a descriptor for the model T.
func NewDescriptor[T any, PT recordModel[T]](db *gorm.DB) *Descriptor[T, PT] {
	var zero T
	rec := PT(&zero)
	return &Descriptor[T, PT]{
		db:    db,
		label: rec.TypeLabel(),
		code:  rec.TypeCode(),
	}
}

// Descriptors returns the barcode descriptors in registration order.
func Descriptors(db *gorm.DB) []barcode.Descriptor {
	return []barcode.Descriptor{
		NewDescriptor[models.Part](db),
		NewDescriptor[models.PartCategory](db),
		NewDescriptor[models.StockItem](db),
	}
}

func (d *Descriptor[T, PT]) TypeLabel() string { return d.label }
func (d *Descriptor[T, PT]) TypeCode() string  { return d.code }

// FindByPrimaryKey implements barcode.Descriptor.
func (d *Descriptor[T, PT]) FindByPrimaryKey(ctx context.Context, pk int) (barcode.Record, bool, error) {
	return d.first(ctx, "id = ?", pk)
}

// FindByExternalHash implements barcode.Descriptor.
func (d *Descriptor[T, PT]) FindByExternalHash(ctx context.Context, hash string) (barcode.Record, bool, error) {
	if hash == "" {
		return nil, false, nil
	}
	return d.first(ctx, "barcode_hash = ?", hash)
}

// AssignHash implements barcode.HashAssigner.
func (d *Descriptor[T, PT]) AssignHash(ctx context.Context, pk int, data, hash string) error {
	err := d.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ?", pk).
		Updates(map[string]any{
			"barcode_data": data,
			"barcode_hash": hash,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to assign barcode to %s %d: %w", d.label, pk, err)
	}
	return nil
}

// PrimaryKeys implements barcode.Enumerator.
func (d *Descriptor[T, PT]) PrimaryKeys(ctx context.Context) ([]int, error) {
	ids := []int{}
	if err := d.db.WithContext(ctx).Model(PT(new(T))).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", d.label, err)
	}
	return ids, nil
}

// LinkedBarcodes implements reconcile.Source.
func (d *Descriptor[T, PT]) LinkedBarcodes(ctx context.Context) ([]reconcile.Link, error) {
	links := []reconcile.Link{}
	err := d.db.WithContext(ctx).
		Model(PT(new(T))).
		Select("id", "barcode_data", "barcode_hash").
		Where("barcode_hash <> ?", "").
		Order("id").
		Scan(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s barcodes: %w", d.label, err)
	}
	return links, nil
}

// Sources returns the descriptors as reconcile sources, in registration order.
func Sources(db *gorm.DB) []reconcile.Source {
	var sources []reconcile.Source
	for _, desc := range Descriptors(db) {
		if src, ok := desc.(reconcile.Source); ok {
			sources = append(sources, src)
		}
	}
	return sources
}

func (d *Descriptor[T, PT]) first(ctx context.Context, query string, arg any) (barcode.Record, bool, error) {
	row := PT(new(T))
	err := d.db.WithContext(ctx).Where(query, arg).Order("id").Take(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s: %w", d.label, err)
	}
	return row, true, nil
}
