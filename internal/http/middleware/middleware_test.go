package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/logging"
)

func echoRequestIDApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	return app
}

func TestRequestID(t *testing.T) {
	app := echoRequestIDApp()

	cases := []struct {
		name     string
		incoming string
	}{
		{name: "generated when missing"},
		{name: "kept when provided", incoming: "rid-42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/echo", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)

			header := resp.Header.Get(RequestIDHeader)
			require.NotEmpty(t, header)
			assert.Equal(t, header, string(body))
			if tc.incoming != "" {
				assert.Equal(t, tc.incoming, header)
			}
		})
	}
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString("[" + GetRequestID(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/echo", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(body))
}

func TestRequestID_ScopedLogger(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var scoped logging.Logger
	app.Get("/echo", func(c *fiber.Ctx) error {
		scoped = logging.From(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/echo", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.NotNil(t, scoped)
	assert.NotSame(t, logging.DefaultLogger(), scoped)
}

func TestLoggerWithWriter(t *testing.T) {
	var out bytes.Buffer
	app := fiber.New()
	app.Use(RequestID(), LoggerWithWriter(&out, time.UTC))
	app.Get("/objects/:class", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	t.Run("handler status", func(t *testing.T) {
		out.Reset()
		req := httptest.NewRequest(fiber.MethodGet, "/objects/invoice?limit=1", nil)
		req.Header.Set(RequestIDHeader, "rid-7")
		_, err := app.Test(req)
		require.NoError(t, err)

		var line map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &line))
		assert.Equal(t, "request", line["msg"])
		assert.Equal(t, "http", line["logger"])
		assert.Equal(t, "rid-7", line["request_id"])
		assert.Equal(t, fiber.MethodGet, line["method"])
		assert.Equal(t, "/objects/invoice", line["path"])
		assert.EqualValues(t, fiber.StatusAccepted, line["status"])
		assert.Contains(t, line, "latency")
		assert.NotEmpty(t, line["ts"])
	})

	t.Run("fiber error status", func(t *testing.T) {
		out.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/teapot", nil))
		require.NoError(t, err)

		var line map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &line))
		assert.EqualValues(t, fiber.StatusTeapot, line["status"])
	})
}
