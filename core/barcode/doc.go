// Package barcode resolves scanned barcode payloads to inventory records and
// generates payloads for records.
//
// The package is persistence agnostic. Record types take part by registering a
// Descriptor in a Registry at startup; the Registry is read-only afterwards and
// is shared by the Engine (scanning) and the Generator (generation).
//
// # Payloads
//
// A scanner hands over either raw text or an already structured document. Both are
// wrapped in a Payload. Normalize turns a Payload into one of three shapes:
//
//   - Structured: a JSON object (or a document passed in directly).
//   - Raw: non-blank text that is not a JSON object.
//   - Undecodable: blank text or a nil document.
//
// # Resolution
//
// Engine.Scan runs three strategies in a fixed order. The first strategy that
// yields a record wins:
//
//  1. Short code: text matching prefix + type code + digits (e.g. "INV-PA42").
//  2. Structured: a document keyed by a type label (e.g. {"part": 42}). Descriptors
//     are tried in registration order.
//  3. External hash: the MD5 hash of the payload is looked up through every
//     descriptor, again in registration order.
//
// Unknown codes, malformed ids and missing records are ordinary misses that fall
// through to the next candidate. Only collaborator failures (database errors) are
// returned as errors.
//
// # Generation
//
// Generator.Generate renders the short or JSON form for a record:
//
//	gen := barcode.NewGenerator(registry)
//	data, err := gen.Generate(part, barcode.Config{Format: barcode.FormatShort, ShortPrefix: "INV-"})
//	// data == "INV-PA42"
package barcode
