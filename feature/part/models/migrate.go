package models

import "gorm.io/gorm"

// All returns every model managed by the inventory schema, parents first.
func All() []any {
	return []any{
		&PartCategory{},
		&Part{},
		&StockItem{},
		&Project{},
		&ProjectPart{},
	}
}

// Barcoded returns the models carrying barcode columns.
func Barcoded() []any {
	return []any{
		Part{},
		PartCategory{},
		StockItem{},
	}
}

// Migrate creates or updates the inventory tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
