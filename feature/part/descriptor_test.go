package part_test

import (
	"context"
	"errors"
	"testing"

	"inventory-manager/core/barcode"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/part"
	"inventory-manager/feature/part/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ barcode.HashAssigner = (*part.Descriptor[models.Part, *models.Part])(nil)
	_ barcode.Enumerator   = (*part.Descriptor[models.Part, *models.Part])(nil)
	_ reconcile.Source     = (*part.Descriptor[models.Part, *models.Part])(nil)
)

func TestDescriptors(t *testing.T) {
	descs := part.Descriptors(setupDB(t))
	require.Len(t, descs, 3)

	var labels, codes []string
	for _, d := range descs {
		labels = append(labels, d.TypeLabel())
		codes = append(codes, d.TypeCode())
	}
	assert.Equal(t, []string{"part", "partcategory", "stockitem"}, labels)
	assert.Equal(t, []string{"PA", "PC", "SI"}, codes)

	_, err := barcode.NewRegistry(descs...)
	assert.NoError(t, err)
}

func TestDescriptor_Lookups(t *testing.T) {
	ctx := context.Background()
	desc := part.NewDescriptor[models.Part](setupDB(t))

	t.Run("By Primary Key", func(t *testing.T) {
		rec, ok, err := desc.FindByPrimaryKey(ctx, 2)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Capacitor", rec.(*models.Part).Name)

		rec, ok, err = desc.FindByPrimaryKey(ctx, 42)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, rec)
	})

	t.Run("Assign And Find Hash", func(t *testing.T) {
		require.NoError(t, desc.AssignHash(ctx, 1, "ABC-123", "hash-abc"))

		rec, ok, err := desc.FindByExternalHash(ctx, "hash-abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, rec.PrimaryKey())
		assert.Equal(t, "ABC-123", rec.(*models.Part).BarcodeData)

		// Unlink
		require.NoError(t, desc.AssignHash(ctx, 1, "", ""))
		_, ok, err = desc.FindByExternalHash(ctx, "hash-abc")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Empty Hash Never Matches", func(t *testing.T) {
		_, ok, err := desc.FindByExternalHash(ctx, "")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Primary Keys", func(t *testing.T) {
		ids, err := desc.PrimaryKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids)
	})
}

func TestDescriptor_LookupError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `stock_items` WHERE barcode_hash = \\?").
		WillReturnError(errors.New("deadlock"))

	desc := part.NewDescriptor[models.StockItem](db)
	_, ok, err := desc.FindByExternalHash(context.Background(), "abc")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to look up stockitem")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_OverDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	reg, err := barcode.NewRegistry(part.Descriptors(db)...)
	require.NoError(t, err)
	engine := barcode.NewEngine(reg)
	cfg := barcode.Config{Format: barcode.FormatShort, ShortPrefix: barcode.DefaultShortPrefix}

	match, err := engine.Scan(ctx, barcode.TextPayload("INV-SI2"), cfg)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "stockitem", match.Label)
	assert.Equal(t, 2, match.Record.PrimaryKey())

	match, err = engine.Scan(ctx, barcode.TextPayload(`{"partcategory": 2}`), cfg)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Mechanical", match.Record.(*models.PartCategory).Name)
}

func TestDescriptor_LinkedBarcodes(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	desc := part.NewDescriptor[models.StockItem](db)

	links, err := desc.LinkedBarcodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	require.NoError(t, desc.AssignHash(ctx, 2, "LOT-77", "hash-77"))
	links, err = desc.LinkedBarcodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Link{{PK: 2, Data: "LOT-77", Hash: "hash-77"}}, links)

	assert.Len(t, part.Sources(db), 3)
}
