package controller

import (
	"errors"

	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetAppointments(ctx *fiber.Ctx) error
	GetDashboard(ctx *fiber.Ctx) error
}

type appointmentController struct {
	service service.IAppointmentService
}

func NewAppointmentController(service service.IAppointmentService) IAppointmentController {
	return &appointmentController{service: service}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/appointments", authRequired, c.GetAppointments)
	r.Get("/dashboard", authRequired, c.GetDashboard)
}

func (c *appointmentController) GetAppointments(ctx *fiber.Ctx) error {
	res, err := c.service.GetUpcoming(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No appointments found."))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Appointments", res))
}

func (c *appointmentController) GetDashboard(ctx *fiber.Ctx) error {
	principal, ok := serverutils.PrincipalFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Could not validate credentials."))
	}

	res, err := c.service.GetDashboard(ctx.Context(), principal)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}
