// Package integrity provides system health checks.
//
// It validates the infrastructure the inventory service depends on, rather than
// the inventory data itself.
//
// # Checks Provided
//
//   - Structure: Checks if the required folders exist in the storage bucket (e.g., /labels).
//   - Server: Validates that the connected database schema matches the part, category and
//     stock item models (columns, types).
//   - Links: Reconciles linked barcodes (stale hashes, hashes shared by several records).
//     Delegates to the core/reconcile engine; reports are cached for a minute.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs schema check.
//   - GET /integrity/links : Runs linked barcode check (supports ?refresh=true).
package integrity
