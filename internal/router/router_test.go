package router

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwatch/shiftwatch/internal/config"
	"github.com/shiftwatch/shiftwatch/internal/logging"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	Setup(app, logging.NewDevelopment(), config.DefaultConfig())
	return app
}

func TestRouter_Health(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_NotFound(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/no/such/route", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "NOT_FOUND")
	assert.Contains(t, string(body), "/no/such/route")
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_DetectRouteRegistered(t *testing.T) {
	app := setupTestApp()

	// A GET on the POST-only route must not 404 into the fallback
	req := httptest.NewRequest("GET", "/v1/detect", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}
