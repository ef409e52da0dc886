package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"inventory-manager/core/barcode"
)

// ReconcileAll loads the linked barcodes of every source concurrently and checks
// that each stored hash matches its data and resolves to a single record.
func ReconcileAll(ctx context.Context, sources ...Source) (*Report, error) {
	links := make([][]Link, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			links[i], errs[i] = src.LinkedBarcodes(ctx)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to load %s links: %w", sources[i].TypeLabel(), err)
		}
	}

	// Index owners by hash, in source order
	owners := make(map[string][]ReconcileResult)
	report := &Report{Problems: []ReconcileResult{}, Built: time.Now()}

	var results []ReconcileResult
	for i, src := range sources {
		for _, link := range links[i] {
			res := buildResult(src.TypeLabel(), link)
			owners[link.Hash] = append(owners[link.Hash], res)
			results = append(results, res)
		}
	}

	for _, res := range results {
		for _, other := range owners[res.Hash] {
			if other.Label == res.Label && other.PK == res.PK {
				continue
			}
			res.Mismatch = append(res.Mismatch, fmt.Sprintf("duplicate: also linked to %s %d", other.Label, other.PK))
		}
		report.Checked++
		if !res.OK() {
			report.Problems = append(report.Problems, res)
		}
	}

	// Sort for deterministic output
	sort.SliceStable(report.Problems, func(i, j int) bool {
		a, b := report.Problems[i], report.Problems[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.PK < b.PK
	})

	return report, nil
}

// buildResult checks a single link on its own.
func buildResult(label string, link Link) ReconcileResult {
	res := ReconcileResult{
		Label:    label,
		PK:       link.PK,
		Hash:     link.Hash,
		Mismatch: []string{},
	}

	if link.Data == "" {
		res.Mismatch = append(res.Mismatch, "data: empty barcode data with a stored hash")
		return res
	}

	if computed := barcode.Hash(barcode.TextPayload(link.Data)); computed != link.Hash {
		res.Mismatch = append(res.Mismatch, fmt.Sprintf("hash: stored=%s computed=%s", link.Hash, computed))
	}
	return res
}
