// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) and SQLite
// (local use and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a ping bounded by the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The integrity
// feature compares them with the GORM tags of the inventory models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "parts")
package database
