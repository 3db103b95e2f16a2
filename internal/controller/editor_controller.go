package controller

import (
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	FindReplace(ctx *fiber.Ctx) error
	MapParty(ctx *fiber.Ctx) error
}

type editorController struct {
	service service.IEditorService
	jwt     fiber.Handler
}

func NewEditorController(service service.IEditorService, jwt fiber.Handler) IEditorController {
	return &editorController{service: service, jwt: jwt}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor")
	h.Use(c.jwt)
	h.Post("/replace", c.FindReplace)
	h.Post("/map-party", c.MapParty)
}

func (c *editorController) FindReplace(ctx *fiber.Ctx) error {
	var req dto.FindReplaceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.FindReplace(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Find and replace applied", res))
}

func (c *editorController) MapParty(ctx *fiber.Ctx) error {
	var req dto.MapPartyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.MapParty(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Party mapped", res))
}
