package controller

import (
	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetCurrentUser(ctx *fiber.Ctx) error
}

type userController struct{}

func NewUserController() IUserController {
	return &userController{}
}

func (c *userController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/users/me", authRequired, c.GetCurrentUser)
}

func (c *userController) GetCurrentUser(ctx *fiber.Ctx) error {
	principal, ok := serverutils.PrincipalFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Could not validate credentials."))
	}

	res := dto.CurrentUserResponse{
		Id:    principal.Id,
		Name:  principal.Name,
		Email: principal.Email,
		Role:  string(principal.Role),
	}
	return ctx.JSON(serverutils.SuccessResponse("Current user", res))
}
