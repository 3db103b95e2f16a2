// FILE: internal/controller/admin_controller.go
package controller

import (
	"legal-drafting-be/internal/entity"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	jwt     fiber.Handler
}

func NewAdminController(service service.IAdminService, jwt fiber.Handler) IAdminController {
	return &adminController{service: service, jwt: jwt}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.jwt, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	logs, err := c.service.GetSystemLogs(ctx.UserContext(), page, limit, level)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}
