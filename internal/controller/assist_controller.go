package controller

import (
	"bufio"
	"context"
	"errors"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/pkg/logger"
	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IAssistController interface {
	RegisterRoutes(r fiber.Router)
	Assist(ctx *fiber.Ctx) error
	AssistStream(ctx *fiber.Ctx) error
}

type assistController struct {
	service service.IAssistService
	log     logger.ILogger
}

func NewAssistController(service service.IAssistService, log logger.ILogger) IAssistController {
	return &assistController{service: service, log: log}
}

func (c *assistController) RegisterRoutes(r fiber.Router) {
	r.Post("/assist", c.Assist)
	r.Post("/assist/stream", c.AssistStream)
}

// Assist returns a buffered answer, served from the response cache when a
// close-enough query has already been answered.
func (c *assistController) Assist(ctx *fiber.Ctx) error {
	var req dto.AssistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	answer, _, err := c.service.Answer(ctx.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query cannot be empty."))
		case errors.Is(err, service.ErrUpstream):
			return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "Assistant is currently unavailable."))
		default:
			return err
		}
	}

	return ctx.JSON(dto.AssistResponse{Answer: answer})
}

// AssistStream sends the answer as a chunked text/plain body, forwarding
// fragments as they arrive from the completion service. The upstream stream
// is opened before the response commits so open failures still get a 502.
func (c *assistController) AssistStream(ctx *fiber.Ctx) error {
	var req dto.AssistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	send, err := c.service.Stream(context.Background(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query cannot be empty."))
		case errors.Is(err, service.ErrUpstream):
			return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "Assistant is currently unavailable."))
		default:
			return err
		}
	}

	// The stream body is produced after this handler returns, so only
	// captured values may be used inside the writer. Status and headers
	// are already committed by then; mid-stream failures can only cut the
	// stream short (and are guaranteed not to poison the cache).
	log := c.log

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		_, err := send(func(fragment string) error {
			if _, err := w.WriteString(fragment); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			log.Warn("assist", "stream ended with error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}))

	return nil
}
