package controller

import (
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Courts(ctx *fiber.Ctx) error
}

type metaController struct {
	service service.IMetaService
}

func NewMetaController(service service.IMetaService) IMetaController {
	return &metaController{service: service}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meta")
	h.Get("/courts", c.Courts)
}

func (c *metaController) Courts(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Court options", c.service.Courts()))
}
