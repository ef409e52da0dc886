// Package barcode implements the barcode scanning feature.
//
// It wires the core/barcode resolution engine and generator to the configured
// settings (format, short prefix) and exposes them over HTTP and the CLI.
//
// Scan responses are keyed by the matched model label:
//
//	{"part": {"pk": 7, ...}, "success": "Found matching item", "barcode_data": "...", "barcode_hash": "..."}
//
// The success message is only present for JSON and linked (hash) matches.
//
// # HTTP Endpoints
//
//   - POST /barcode : Scan barcode data. 400 when nothing matches.
//   - POST /barcode/generate : Render the internal barcode of a record.
//   - POST /barcode/link : Link third-party barcode data to a record.
//   - POST /barcode/unlink : Remove a linked barcode.
package barcode
