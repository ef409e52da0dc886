package barcode_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	scanning "inventory-manager/feature/barcode"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	app := fiber.New()
	feature := scanning.NewFeature(setupRegistry(t), jsonConfig, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestHandleScan(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantLabel string
		wantError string
	}{
		{"Short String", `{"barcode": "INV-PA7"}`, fiber.StatusOK, "part", ""},
		{"JSON String", `{"barcode": "{\"stockitem\": 1}"}`, fiber.StatusOK, "stockitem", ""},
		{"JSON Object", `{"barcode": {"partcategory": "1"}}`, fiber.StatusOK, "partcategory", ""},
		{"No Match", `{"barcode": "INV-PA8"}`, fiber.StatusBadRequest, "", scanning.MsgNoMatch},
		{"Missing", `{}`, fiber.StatusBadRequest, "", "Missing barcode data"},
		{"Number", `{"barcode": 42}`, fiber.StatusBadRequest, "", "barcode payload must be a string or an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := post(t, app, "/barcode", tt.body)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantLabel != "" {
				assert.Contains(t, body, tt.wantLabel)
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestHandleGenerate(t *testing.T) {
	app := setupApp(t)

	code, body := post(t, app, "/barcode/generate", `{"model": "part", "pk": 7}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, `{"part": 7}`, body["barcode"])

	code, _ = post(t, app, "/barcode/generate", `{"model": "supplier", "pk": 7}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = post(t, app, "/barcode/generate", `{"model": "part", "pk": 70}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestHandleLinkUnlink(t *testing.T) {
	app := setupApp(t)

	code, body := post(t, app, "/barcode/link", `{"barcode": "ACME-0001", "model": "part", "pk": 7}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Assigned barcode to part instance", body["success"])

	code, body = post(t, app, "/barcode", `{"barcode": "ACME-0001"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Found matching item", body["success"])

	code, _ = post(t, app, "/barcode/link", `{"barcode": "ACME-0001", "model": "stockitem", "pk": 1}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = post(t, app, "/barcode/unlink", `{"model": "part", "pk": 7}`)
	assert.Equal(t, fiber.StatusOK, code)

	code, body = post(t, app, "/barcode", `{"barcode": "ACME-0001"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, scanning.MsgNoMatch, body["error"])
}
