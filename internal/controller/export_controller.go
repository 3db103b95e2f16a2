package controller

import (
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Docx(ctx *fiber.Ctx) error
	PDF(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
	jwt     fiber.Handler
}

func NewExportController(service service.IExportService, jwt fiber.Handler) IExportController {
	return &exportController{service: service, jwt: jwt}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export")
	h.Use(c.jwt)
	h.Get("/docx", c.Docx)
	h.Get("/pdf", c.PDF)
}

func (c *exportController) Docx(ctx *fiber.Ctx) error {
	file, err := c.service.Docx(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return sendFile(ctx, file)
}

func (c *exportController) PDF(ctx *fiber.Ctx) error {
	file, err := c.service.PDF(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return sendFile(ctx, file)
}

func sendFile(ctx *fiber.Ctx, file *service.ExportFile) error {
	ctx.Attachment(file.Filename)
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	return ctx.Send(file.Data)
}
