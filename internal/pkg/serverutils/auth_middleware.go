package serverutils

import (
	"context"
	"strings"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// PrincipalLocalsKey is where the bearer middleware stores the resolved
// identity for downstream handlers.
const PrincipalLocalsKey = "principal"

// PrincipalResolver turns verified claims into a live principal, failing
// closed on unknown roles or missing rows.
type PrincipalResolver interface {
	Resolve(ctx context.Context, claims *auth.Claims) (*entity.Principal, error)
}

// NewBearerMiddleware verifies the Authorization header and resolves the
// principal. Every failure collapses into the same generic 401 so callers
// cannot probe which ids or roles exist.
func NewBearerMiddleware(tokens *auth.TokenService, resolver PrincipalResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return unauthorized(ctx)
		}

		claims, err := tokens.Verify(authHeader[7:])
		if err != nil {
			return unauthorized(ctx)
		}

		principal, err := resolver.Resolve(ctx.Context(), claims)
		if err != nil {
			return unauthorized(ctx)
		}

		ctx.Locals(PrincipalLocalsKey, principal)
		return ctx.Next()
	}
}

// PrincipalFromCtx returns the identity stored by the bearer middleware.
func PrincipalFromCtx(ctx *fiber.Ctx) (*entity.Principal, bool) {
	principal, ok := ctx.Locals(PrincipalLocalsKey).(*entity.Principal)
	return principal, ok
}

func unauthorized(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Could not validate credentials."))
}
