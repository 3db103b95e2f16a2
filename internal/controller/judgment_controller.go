package controller

import (
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IJudgmentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type judgmentController struct {
	service service.ISessionService
	jwt     fiber.Handler
}

func NewJudgmentController(service service.ISessionService, jwt fiber.Handler) IJudgmentController {
	return &judgmentController{service: service, jwt: jwt}
}

func (c *judgmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/judgments")
	h.Use(c.jwt)
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Delete("", c.Clear)
}

func (c *judgmentController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListJudgments(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Verified judgments", res))
}

func (c *judgmentController) Add(ctx *fiber.Ctx) error {
	var req dto.AddJudgmentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddJudgment(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Judgment added", res))
}

func (c *judgmentController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.ClearJudgments(ctx.UserContext(), serverutils.SessionId(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Judgments cleared", []dto.JudgmentResponse{}))
}
