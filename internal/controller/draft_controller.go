package controller

import (
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDraftController interface {
	RegisterRoutes(r fiber.Router)
	GenerateStandard(ctx *fiber.Ctx) error
	MirrorStyle(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	RestoreHistory(ctx *fiber.Ctx) error
	SaveCurrent(ctx *fiber.Ctx) error
}

type draftController struct {
	draftService   service.IDraftService
	sessionService service.ISessionService
	editorService  service.IEditorService
	jwt            fiber.Handler
}

func NewDraftController(
	draftService service.IDraftService,
	sessionService service.ISessionService,
	editorService service.IEditorService,
	jwt fiber.Handler,
) IDraftController {
	return &draftController{
		draftService:   draftService,
		sessionService: sessionService,
		editorService:  editorService,
		jwt:            jwt,
	}
}

func (c *draftController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/drafts")
	h.Use(c.jwt)
	h.Post("/standard", c.GenerateStandard)
	h.Post("/mirror", c.MirrorStyle)
	h.Get("/history", c.History)
	h.Post("/history/:index/restore", c.RestoreHistory)
	h.Put("/current", c.SaveCurrent)
}

func (c *draftController) GenerateStandard(ctx *fiber.Ctx) error {
	var req dto.GenerateDraftRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.draftService.GenerateStandard(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft generated", res))
}

func (c *draftController) MirrorStyle(ctx *fiber.Ctx) error {
	var req dto.MirrorStyleRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.draftService.MirrorStyle(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft generated in reference style", res))
}

func (c *draftController) History(ctx *fiber.Ctx) error {
	res, err := c.sessionService.History(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft history", res))
}

func (c *draftController) RestoreHistory(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "index must be a number")
	}

	res, err := c.sessionService.RestoreHistory(ctx.UserContext(), serverutils.SessionId(ctx), index)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft restored", res))
}

func (c *draftController) SaveCurrent(ctx *fiber.Ctx) error {
	var req dto.SaveDraftRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.editorService.SaveDraft(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Draft saved", res))
}
