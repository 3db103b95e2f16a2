package server

import (
	"time"

	"legal-drafting-be/internal/bootstrap"
	"legal-drafting-be/internal/config"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// reference .docx uploads are the largest bodies
const maxBodyBytes = 10 << 20

type routeGroup interface {
	RegisterRoutes(r fiber.Router)
}

type Server struct {
	app    *fiber.App
	port   string
	logger logger.ILogger
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             maxBodyBytes,
		ErrorHandler:          serverutils.ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(accessLog(container.Logger))

	api := app.Group("/api")
	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{
			"credentials": container.Dispatcher.Labels(),
		}))
	})
	for _, group := range []routeGroup{
		container.AuthController,
		container.MetaController,
		container.SessionController,
		container.DraftController,
		container.EditorController,
		container.JudgmentController,
		container.VaultController,
		container.ExportController,
		container.ResearchController,
		container.AdminController,
	} {
		group.RegisterRoutes(api)
	}

	return &Server{app: app, port: cfg.App.Port, logger: container.Logger}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.logger.Info("SERVER", "listening", map[string]interface{}{"port": s.port})
	return s.app.Listen(":" + s.port)
}

func (s *Server) Shutdown() error {
	s.logger.Info("SERVER", "shutting down", nil)
	return s.app.Shutdown()
}

// accessLog records failed requests. Successful ones stay out of the system
// log so the admin view is not flooded.
func accessLog(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		if status < fiber.StatusBadRequest {
			return err
		}

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
			"elapsed_ms": time.Since(start).Milliseconds(),
		}
		if status >= fiber.StatusInternalServerError {
			sysLogger.Error("HTTP", "request failed", details)
		} else {
			sysLogger.Warn("HTTP", "request rejected", details)
		}
		return err
	}
}
