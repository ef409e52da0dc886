package auth_test

import (
	"net/http/httptest"
	"testing"

	"inventory-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header map[string]string
		want   int
	}{
		{"Disabled", auth.Config{}, "/parts/1", nil, fiber.StatusOK},
		{"Missing Key", auth.Config{ApiKey: "secret"}, "/parts/1", nil, fiber.StatusUnauthorized},
		{"Wrong Key", auth.Config{ApiKey: "secret"}, "/parts/1", map[string]string{auth.HeaderName: "nope"}, fiber.StatusUnauthorized},
		{"Header Key", auth.Config{ApiKey: "secret"}, "/parts/1", map[string]string{auth.HeaderName: "secret"}, fiber.StatusOK},
		{"Bearer Key", auth.Config{ApiKey: "secret"}, "/parts/1", map[string]string{"Authorization": "Bearer secret"}, fiber.StatusOK},
		{"Public Path", auth.Config{ApiKey: "secret", PublicPrefixes: []string{"/swagger"}}, "/swagger/index.html", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
