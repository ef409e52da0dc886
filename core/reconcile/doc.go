// Package reconcile checks the linked (third-party) barcodes stored on records.
//
// Every barcode-capable record type can carry an external barcode: the raw data
// and its hash. Scans resolve linked barcodes by hash only, so two problems make
// a link unreliable:
//
//   - the stored hash no longer matches the stored data (rows edited outside the service)
//   - the same hash is stored on more than one record (the first registered type wins)
//
// # Architecture
//
// 1. Source: Implemented per record type; lists the stored links in one query.
//
// 2. Engine: ReconcileAll loads every source concurrently, indexes owners by hash and
//    reports each link with its mismatches.
//
// 3. Cache: TTL-based caching of the last report with stampede protection.
//
// # Usage Example
//
//	cache := reconcile.NewCache(time.Minute, sources...)
//	report, err := cache.Get(ctx)
package reconcile
