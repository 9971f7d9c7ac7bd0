package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/pkg/auth"
	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.TokenResponse{AccessToken: s.token, TokenType: "bearer"}, nil
}

func (s *stubAuthService) Resolve(ctx context.Context, claims *auth.Claims) (*entity.Principal, error) {
	return nil, auth.ErrPrincipalNotFound
}

func newAuthApp(svc service.IAuthService) *fiber.App {
	app := fiber.New()
	NewAuthController(svc).RegisterRoutes(app)
	return app
}

func TestTokenSuccess(t *testing.T) {
	app := newAuthApp(&stubAuthService{token: "signed.jwt.token"})

	form := url.Values{}
	form.Set("username", "ada@example.com")
	form.Set("password", "s3cret")

	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "signed.jwt.token", res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
}

func TestTokenInvalidCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: service.ErrInvalidCredentials})

	form := url.Values{}
	form.Set("username", "ada@example.com")
	form.Set("password", "wrong")

	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "Incorrect email or password.", res.Message)
}

func TestTokenMissingFields(t *testing.T) {
	app := newAuthApp(&stubAuthService{token: "unused"})

	form := url.Values{}
	form.Set("username", "ada@example.com")

	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
