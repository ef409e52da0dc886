// Package part implements the parts inventory feature.
//
// It serves the part and category read endpoints and provides the gorm-backed
// barcode descriptors used by the barcode and labels features.
//
// # Components
//
//   - Repository: Part lookups and aggregates (total stock, projects).
//   - Descriptor: Generic barcode.Descriptor over a gorm model. It also implements
//     barcode.HashAssigner and barcode.Enumerator.
//   - Service/Handler/Loader: The HTTP feature.
//
// # HTTP Endpoints
//
//   - GET /parts/:id : Part with total stock and projects.
//   - GET /categories/:id/parts : Parts of a category.
package part
