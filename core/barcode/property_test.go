package barcode_test

import (
	"context"
	"testing"

	"inventory-manager/core/barcode"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// existing records are pks 1..50; 51..100 are drawn to cover the missing case.
func newPropertyRegistry(rt *rapid.T, labels []string) (*barcode.Registry, map[string]*fakeDescriptor) {
	codes := map[string]string{"part": "PA", "partcategory": "PC", "stockitem": "SI"}
	pks := make([]int, 0, 50)
	for pk := 1; pk <= 50; pk++ {
		pks = append(pks, pk)
	}

	byLabel := make(map[string]*fakeDescriptor, len(labels))
	descs := make([]barcode.Descriptor, 0, len(labels))
	for _, label := range labels {
		d := newFakeDescriptor(label, codes[label], pks...)
		byLabel[label] = d
		descs = append(descs, d)
	}

	reg, err := barcode.NewRegistry(descs...)
	require.NoError(rt, err)
	return reg, byLabel
}

var propertyLabels = []string{"part", "partcategory", "stockitem"}

func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg, descs := newPropertyRegistry(rt, propertyLabels)
		engine := barcode.NewEngine(reg)
		gen := barcode.NewGenerator(reg)

		label := rapid.SampledFrom(propertyLabels).Draw(rt, "label")
		pk := rapid.IntRange(1, 100).Draw(rt, "pk")
		format := rapid.SampledFrom([]string{barcode.FormatJSON, barcode.FormatShort}).Draw(rt, "format")
		prefix := rapid.StringMatching(`[A-Za-z0-9.*+?$^()\[\]|-]{0,6}`).Draw(rt, "prefix")
		cfg := barcode.Config{Format: format, ShortPrefix: prefix}

		rec := &fakeRecord{label: label, code: descs[label].code, pk: pk}
		data, err := gen.Generate(rec, cfg)
		require.NoError(rt, err)

		match, err := engine.Scan(context.Background(), barcode.TextPayload(data), cfg)
		require.NoError(rt, err)

		if pk > 50 {
			require.Nil(rt, match)
			return
		}
		require.NotNil(rt, match)
		require.Equal(rt, label, match.Label)
		require.Equal(rt, pk, match.Record.PrimaryKey())
		if format == barcode.FormatShort {
			require.Equal(rt, barcode.StrategyShort, match.Strategy)
		} else {
			require.Equal(rt, barcode.StrategyJSON, match.Strategy)
		}
	})
}

func TestProperty_FirstRegisteredLabelWins(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		order := rapid.Permutation(propertyLabels).Draw(rt, "order")
		reg, _ := newPropertyRegistry(rt, order)
		engine := barcode.NewEngine(reg)

		doc := make(map[string]any, len(order))
		for _, label := range order {
			doc[label] = rapid.IntRange(1, 50).Draw(rt, "pk-"+label)
		}

		match, err := engine.Scan(context.Background(), barcode.DocumentPayload(doc), barcode.Config{ShortPrefix: "INV-"})
		require.NoError(rt, err)
		require.NotNil(rt, match)
		require.Equal(rt, order[0], match.Label)
	})
}

func TestProperty_HashFallback(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg, descs := newPropertyRegistry(rt, propertyLabels)
		engine := barcode.NewEngine(reg)

		// Lower-case payloads never match the short pattern or decode as an object.
		text := rapid.StringMatching(`[a-z][a-z0-9 _-]{0,20}`).Draw(rt, "text")
		linked := rapid.Bool().Draw(rt, "linked")
		var label string
		if linked {
			label = rapid.SampledFrom(propertyLabels).Draw(rt, "label")
			descs[label].link(barcode.Hash(barcode.TextPayload(text)), 5)
		}

		match, err := engine.Scan(context.Background(), barcode.TextPayload(text), barcode.Config{ShortPrefix: "INV-"})
		require.NoError(rt, err)
		if !linked {
			require.Nil(rt, match)
			return
		}
		require.NotNil(rt, match)
		require.Equal(rt, label, match.Label)
		require.Equal(rt, barcode.StrategyHash, match.Strategy)
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg, descs := newPropertyRegistry(rt, propertyLabels)
		descs["stockitem"].link(barcode.Hash(barcode.TextPayload("EXT-1")), 9)
		engine := barcode.NewEngine(reg)

		text := rapid.OneOf(
			rapid.StringMatching(`INV-(PA|PC|SI|ZZ)[0-9]{1,3}`),
			rapid.StringMatching(`\{"(part|partcategory|stockitem)": [0-9]{1,3}\}`),
			rapid.SampledFrom([]string{"EXT-1", "garbage-text", ""}),
		).Draw(rt, "payload")
		cfg := barcode.Config{ShortPrefix: "INV-"}

		first, err := engine.Scan(context.Background(), barcode.TextPayload(text), cfg)
		require.NoError(rt, err)
		second, err := engine.Scan(context.Background(), barcode.TextPayload(text), cfg)
		require.NoError(rt, err)
		require.Equal(rt, first, second)
	})
}
