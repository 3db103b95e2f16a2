package controller

import (
	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	SetModel(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
	jwt     fiber.Handler
}

func NewSessionController(service service.ISessionService, jwt fiber.Handler) ISessionController {
	return &sessionController{service: service, jwt: jwt}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Use(c.jwt)
	h.Get("", c.State)
	h.Put("/model", c.SetModel)
	h.Post("/reset", c.Reset)
}

func (c *sessionController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}

func (c *sessionController) SetModel(ctx *fiber.Ctx) error {
	var req dto.SetModelRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SetModel(ctx.UserContext(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Model selection saved", res))
}

func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.UserContext(), serverutils.SessionId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session reset", res))
}
