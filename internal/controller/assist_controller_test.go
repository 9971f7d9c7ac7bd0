package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistService struct {
	answer    string
	cached    bool
	err       error
	fragments []string
}

func (s *stubAssistService) Answer(ctx context.Context, query string) (string, bool, error) {
	if strings.TrimSpace(query) == "" {
		return "", false, service.ErrEmptyQuery
	}
	return s.answer, s.cached, s.err
}

func (s *stubAssistService) Stream(ctx context.Context, query string) (service.StreamSender, error) {
	if strings.TrimSpace(query) == "" {
		return nil, service.ErrEmptyQuery
	}
	if s.err != nil {
		return nil, s.err
	}
	return func(forward func(string) error) (string, error) {
		var full strings.Builder
		for _, f := range s.fragments {
			if err := forward(f); err != nil {
				return "", err
			}
			full.WriteString(f)
		}
		return full.String(), nil
	}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newAssistApp(svc service.IAssistService) *fiber.App {
	app := fiber.New()
	NewAssistController(svc, nopLogger{}).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func TestAssistBlankQuery(t *testing.T) {
	app := newAssistApp(&stubAssistService{})

	status, body := postJSON(t, app, "/assist", `{"query": "   "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Query cannot be empty.", res.Message)
}

func TestAssistUpstreamFailure(t *testing.T) {
	app := newAssistApp(&stubAssistService{err: service.ErrUpstream})

	status, body := postJSON(t, app, "/assist", `{"query": "when is my next service?"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Assistant is currently unavailable.", res.Message)
}

func TestAssistAnswer(t *testing.T) {
	app := newAssistApp(&stubAssistService{answer: "Your Air is due for a tire rotation."})

	status, body := postJSON(t, app, "/assist", `{"query": "when is my next service?"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var res dto.AssistResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Your Air is due for a tire rotation.", res.Answer)
}

func TestAssistStreamBlankQuery(t *testing.T) {
	app := newAssistApp(&stubAssistService{})

	status, _ := postJSON(t, app, "/assist/stream", `{"query": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAssistStreamUpstreamOpenFailure(t *testing.T) {
	// A stream that cannot be opened must fail before the response
	// commits, with the same 502 taxonomy as the buffered route.
	app := newAssistApp(&stubAssistService{err: service.ErrUpstream})

	status, body := postJSON(t, app, "/assist/stream", `{"query": "service due?"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Assistant is currently unavailable.", res.Message)
}

func TestAssistStreamBody(t *testing.T) {
	app := newAssistApp(&stubAssistService{fragments: []string{"Your Air ", "is due ", "soon."}})

	req := httptest.NewRequest("POST", "/assist/stream", strings.NewReader(`{"query": "service due?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Your Air is due soon.", string(body))
}
