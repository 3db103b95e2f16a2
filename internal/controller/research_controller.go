package controller

import (
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	QuickLink(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
	jwt     fiber.Handler
}

func NewResearchController(service service.IResearchService, jwt fiber.Handler) IResearchController {
	return &researchController{service: service, jwt: jwt}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research")
	h.Use(c.jwt)
	h.Get("/quick", c.QuickLink)
	h.Post("/suggest", c.Suggest)
}

// QuickLink takes petition_type and facts from the query string.
func (c *researchController) QuickLink(ctx *fiber.Ctx) error {
	petitionType := ctx.Query("petition_type")
	if petitionType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "petition_type is required")
	}
	res := c.service.QuickLink(petitionType, ctx.Query("facts"))
	return ctx.JSON(serverutils.SuccessResponse("Quick research link", res))
}

func (c *researchController) Suggest(ctx *fiber.Ctx) error {
	var req dto.SuggestResearchRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Suggest(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Research suggestions", res))
}
