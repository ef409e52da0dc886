package barcode_test

import (
	"context"
	"encoding/json"
	"testing"

	"inventory-manager/core/barcode"
	"inventory-manager/core/database"
	scanning "inventory-manager/feature/barcode"
	"inventory-manager/feature/part"
	"inventory-manager/feature/part/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var jsonConfig = barcode.Config{
	Format:      barcode.FormatJSON,
	ShortPrefix: barcode.DefaultShortPrefix,
}

func setupRegistry(t *testing.T) *barcode.Registry {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	require.NoError(t, db.Create(&models.PartCategory{ID: 1, Name: "Widgets"}).Error)
	require.NoError(t, db.Create(&models.Part{ID: 7, Name: "Widget", CategoryID: 1}).Error)
	require.NoError(t, db.Create(&models.StockItem{ID: 1, PartID: 7, Quantity: 5}).Error)

	reg, err := barcode.NewRegistry(part.Descriptors(db)...)
	require.NoError(t, err)
	return reg
}

func TestService_Scan(t *testing.T) {
	ctx := context.Background()
	svc := scanning.NewService(setupRegistry(t), jsonConfig, zap.NewNop())

	t.Run("Short Code", func(t *testing.T) {
		resp, err := svc.Scan(ctx, barcode.TextPayload("INV-PA7"))
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "part", resp.Label)
		assert.Equal(t, barcode.StrategyShort, resp.Strategy)
		assert.Empty(t, resp.Success)

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "success")
		assert.Equal(t, "INV-PA7", body["barcode_data"])
		assert.Equal(t, float64(7), body["part"].(map[string]any)["pk"])
	})

	t.Run("JSON Document", func(t *testing.T) {
		resp, err := svc.Scan(ctx, barcode.DocumentPayload(map[string]any{"partcategory": 1}))
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "partcategory", resp.Label)
		assert.Equal(t, "Found matching item", resp.Success)
	})

	t.Run("No Match", func(t *testing.T) {
		resp, err := svc.Scan(ctx, barcode.TextPayload("UNKNOWN-BARCODE"))
		assert.NoError(t, err)
		assert.Nil(t, resp)
	})
}

func TestService_LinkUnlink(t *testing.T) {
	ctx := context.Background()
	svc := scanning.NewService(setupRegistry(t), jsonConfig, zap.NewNop())
	vendor := barcode.TextPayload("VENDOR-123")

	hash, err := svc.Link(ctx, vendor, "stockitem", 1)
	require.NoError(t, err)
	assert.Equal(t, barcode.Hash(vendor), hash)

	resp, err := svc.Scan(ctx, vendor)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "stockitem", resp.Label)
	assert.Equal(t, barcode.StrategyHash, resp.Strategy)
	assert.Equal(t, "Found matching item", resp.Success)

	t.Run("Already Linked", func(t *testing.T) {
		_, err := svc.Link(ctx, vendor, "part", 7)
		assert.ErrorIs(t, err, scanning.ErrBarcodeInUse)
	})

	t.Run("Internal Barcode", func(t *testing.T) {
		_, err := svc.Link(ctx, barcode.TextPayload(`{"part": 7}`), "partcategory", 1)
		assert.ErrorIs(t, err, scanning.ErrBarcodeInUse)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := svc.Link(ctx, barcode.TextPayload("  "), "part", 7)
		assert.ErrorIs(t, err, scanning.ErrEmptyBarcode)
	})

	t.Run("Missing Record", func(t *testing.T) {
		_, err := svc.Link(ctx, barcode.TextPayload("OTHER"), "part", 99)
		assert.ErrorIs(t, err, scanning.ErrRecordNotFound)
	})

	require.NoError(t, svc.Unlink(ctx, "stockitem", 1))
	resp, err = svc.Scan(ctx, vendor)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	reg := setupRegistry(t)

	data, err := scanning.NewService(reg, jsonConfig, zap.NewNop()).Generate(ctx, "part", 7)
	require.NoError(t, err)
	assert.Equal(t, `{"part": 7}`, data)

	short := jsonConfig
	short.Format = barcode.FormatShort
	svc := scanning.NewService(reg, short, zap.NewNop())

	data, err = svc.Generate(ctx, "stockitem", 1)
	require.NoError(t, err)
	assert.Equal(t, "INV-SI1", data)

	_, err = svc.Generate(ctx, "supplier", 1)
	assert.ErrorIs(t, err, scanning.ErrUnknownModel)

	_, err = svc.Generate(ctx, "part", 8)
	assert.ErrorIs(t, err, scanning.ErrRecordNotFound)

	// Generated barcodes resolve back to their record
	resp, err := svc.Scan(ctx, barcode.TextPayload(data))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "stockitem", resp.Label)
}
