package controller

import (
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVaultController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
}

type vaultController struct {
	service service.IVaultService
	jwt     fiber.Handler
}

func NewVaultController(service service.IVaultService, jwt fiber.Handler) IVaultController {
	return &vaultController{service: service, jwt: jwt}
}

func (c *vaultController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vault")
	h.Use(c.jwt)
	h.Get("", c.List)
	h.Post("", c.Upload)
}

func (c *vaultController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Vault files", res))
}

func (c *vaultController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read file")
	}
	defer file.Close()

	res, err := c.service.Upload(ctx.UserContext(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Reference stored", res))
}
