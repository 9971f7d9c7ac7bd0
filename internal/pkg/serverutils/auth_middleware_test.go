package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	principal *entity.Principal
	err       error
}

func (r *stubResolver) Resolve(ctx context.Context, claims *auth.Claims) (*entity.Principal, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.principal, nil
}

func newGuardedApp(tokens *auth.TokenService, resolver PrincipalResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewBearerMiddleware(tokens, resolver), func(ctx *fiber.Ctx) error {
		principal, ok := PrincipalFromCtx(ctx)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return ctx.JSON(fiber.Map{"id": principal.Id, "role": string(principal.Role)})
	})
	return app
}

func TestBearerMiddlewareAllowsValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", 30*time.Minute)
	token, err := tokens.Issue("7", auth.RoleCustomer)
	require.NoError(t, err)

	app := newGuardedApp(tokens, &stubResolver{
		principal: &entity.Principal{Id: 7, Role: auth.RoleCustomer},
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBearerMiddlewareRejects(t *testing.T) {
	tokens := auth.NewTokenService("secret", 30*time.Minute)
	otherTokens := auth.NewTokenService("other-secret", 30*time.Minute)

	validToken, err := tokens.Issue("7", auth.RoleCustomer)
	require.NoError(t, err)
	foreignToken, err := otherTokens.Issue("7", auth.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		resolver PrincipalResolver
	}{
		{
			name:     "missing header",
			header:   "",
			resolver: &stubResolver{},
		},
		{
			name:     "wrong scheme",
			header:   "Basic dXNlcjpwYXNz",
			resolver: &stubResolver{},
		},
		{
			name:     "garbage token",
			header:   "Bearer not-a-jwt",
			resolver: &stubResolver{},
		},
		{
			name:     "wrong signature",
			header:   "Bearer " + foreignToken,
			resolver: &stubResolver{},
		},
		{
			name:     "principal vanished",
			header:   "Bearer " + validToken,
			resolver: &stubResolver{err: auth.ErrPrincipalNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(tokens, tt.resolver)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		})
	}
}
