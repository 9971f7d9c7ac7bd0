package controller

import (
	"errors"

	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetCustomers(ctx *fiber.Ctx) error
	GetCustomerDetail(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
}

func NewCustomerController(service service.ICustomerService) ICustomerController {
	return &customerController{service: service}
}

func (c *customerController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/customers")
	h.Use(authRequired)
	h.Get("/", c.GetCustomers)
	h.Get("/:id", c.GetCustomerDetail)
}

func (c *customerController) GetCustomers(ctx *fiber.Ctx) error {
	res, err := c.service.GetCustomers(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No customers found."))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customers", res))
}

func (c *customerController) GetCustomerDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid customer id"))
	}

	res, err := c.service.GetCustomerDetail(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Customer not found."))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customer detail", res))
}
