package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newWrappedApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("database on fire")
	})
	app.Get("/panic", func(ctx *fiber.Ctx) error {
		panic("lost it")
	})
	app.Get("/teapot", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.SendString("fine")
	})
	return app
}

func TestErrorHandlerPassesThroughRouterErrors(t *testing.T) {
	app := newWrappedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/no-such-route", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var res BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "short and stout", res.Message)
}

func TestErrorHandlerMasksUnclassifiedErrors(t *testing.T) {
	app := newWrappedApp()

	for _, path := range []string{"/boom", "/panic"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, path)

		var res BaseResponse[any]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Internal server error", res.Message, path)
	}
}

func TestErrorHandlerLeavesSuccessAlone(t *testing.T) {
	app := newWrappedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
