// Package models defines the GORM models of the inventory schema.
//
// Part, PartCategory and StockItem are barcode capable: they implement
// barcode.Record and carry the barcode_data/barcode_hash columns used to link
// external (third-party) barcodes. Project and ProjectPart back the part
// aggregate queries.
//
// The gorm tags double as the expected schema for the integrity feature, so
// every persisted field declares its column and, where it matters, its type.
package models
