// Package config provides configuration management for the Inventory Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings (label exports)
//   - Log: Logging level and format
//   - Barcode: internal barcode format, short barcode prefix and type code charset
//
// Every key can be overridden by an environment variable named SECTION_KEY,
// e.g. BARCODE_FORMAT=short or BARCODE_SHORT_PREFIX=WH1-.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Barcode.ShortPrefix)
package config
