// Package labels exports printable barcode labels to object storage.
//
// An export enumerates every record of a model, renders its internal barcode
// with the configured format and uploads a JSON manifest to
// labels/<model>/<timestamp>.json in the configured bucket.
package labels
