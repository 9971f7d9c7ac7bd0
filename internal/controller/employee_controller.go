package controller

import (
	"errors"

	"lucidgpt-be/internal/pkg/auth"
	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmployeeController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetEmployees(ctx *fiber.Ctx) error
	GetCurrentEmployee(ctx *fiber.Ctx) error
}

type employeeController struct {
	service service.IEmployeeService
}

func NewEmployeeController(service service.IEmployeeService) IEmployeeController {
	return &employeeController{service: service}
}

func (c *employeeController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	group := r.Group("/employees")
	group.Use(authRequired)
	group.Get("/", c.GetEmployees)
	group.Get("/me", c.GetCurrentEmployee)
}

func (c *employeeController) GetEmployees(ctx *fiber.Ctx) error {
	res, err := c.service.GetEmployees(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No employees found."))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Employees", res))
}

func (c *employeeController) GetCurrentEmployee(ctx *fiber.Ctx) error {
	principal, ok := serverutils.PrincipalFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Could not validate credentials."))
	}
	if principal.Role != auth.RoleEmployee {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Employee not found."))
	}

	res, err := c.service.GetEmployeeDetail(ctx.Context(), principal.Id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Employee not found."))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Employee", res))
}
