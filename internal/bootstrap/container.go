package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"legal-drafting-be/internal/config"
	"legal-drafting-be/internal/controller"
	"legal-drafting-be/internal/pkg/logger"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/internal/repository/memory"
	"legal-drafting-be/internal/repository/redisstore"
	"legal-drafting-be/internal/repository/vault"
	"legal-drafting-be/internal/service"
	"legal-drafting-be/pkg/dispatch"
	"legal-drafting-be/pkg/llm"
	"legal-drafting-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	SessionController  controller.ISessionController
	DraftController    controller.IDraftController
	EditorController   controller.IEditorController
	JudgmentController controller.IJudgmentController
	VaultController    controller.IVaultController
	ExportController   controller.IExportController
	ResearchController controller.IResearchController
	MetaController     controller.IMetaController
	AdminController    controller.IAdminController

	Logger     logger.ILogger
	Dispatcher *dispatch.Dispatcher
}

// Dependencies are the pieces NewContainer builds from configuration. Tests
// supply their own.
type Dependencies struct {
	Credentials []dispatch.Credential
	Sessions    contract.SessionRepository
	Vault       contract.VaultRepository
	Logger      logger.ILogger
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Generation credentials, in rotation order
	credentials, err := BuildCredentials(cfg.Ai)
	if err != nil {
		return nil, err
	}
	if len(credentials) == 0 {
		log.Println("Warning: no API keys configured, every draft will come back Offline")
	}

	// 3. Session store
	sessions, err := newSessionRepository(cfg.Session)
	if err != nil {
		return nil, err
	}

	// 4. Reference vault
	vaultRepo, err := vault.NewDirRepository(cfg.Vault.Path)
	if err != nil {
		return nil, err
	}

	return Assemble(cfg, Dependencies{
		Credentials: credentials,
		Sessions:    sessions,
		Vault:       vaultRepo,
		Logger:      sysLogger,
	}), nil
}

// Assemble wires services and controllers around already built dependencies.
func Assemble(cfg *config.Config, deps Dependencies) *Container {
	dispatcher := dispatch.NewDispatcher(
		deps.Credentials,
		dispatch.Models{Small: cfg.Ai.SmallModel, Large: cfg.Ai.LargeModel},
		dispatch.WithTimeout(cfg.Ai.GenerationTimeout),
		dispatch.WithCallOptions(
			llm.WithTemperature(cfg.Ai.Temperature),
			llm.WithMaxOutputTokens(cfg.Ai.MaxOutputTokens),
		),
	)
	jwt := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	// Services
	authService := service.NewAuthService(cfg.Auth, deps.Sessions, deps.Logger)
	sessionService := service.NewSessionService(deps.Sessions, cfg.Ai.AllowedModels, deps.Logger)
	vaultService := service.NewVaultService(deps.Vault, deps.Logger)
	draftService := service.NewDraftService(deps.Sessions, dispatcher, vaultService, cfg.Ai.AllowedModels, deps.Logger)
	editorService := service.NewEditorService(deps.Sessions, deps.Logger)
	exportService := service.NewExportService(deps.Sessions, deps.Logger)
	researchService := service.NewResearchService(deps.Sessions, dispatcher, deps.Logger)
	metaService := service.NewMetaService(cfg.Ai.AllowedModels)
	adminService := service.NewAdminService(deps.Logger)

	return &Container{
		AuthController:     controller.NewAuthController(authService, jwt),
		SessionController:  controller.NewSessionController(sessionService, jwt),
		DraftController:    controller.NewDraftController(draftService, sessionService, editorService, jwt),
		EditorController:   controller.NewEditorController(editorService, jwt),
		JudgmentController: controller.NewJudgmentController(sessionService, jwt),
		VaultController:    controller.NewVaultController(vaultService, jwt),
		ExportController:   controller.NewExportController(exportService, jwt),
		ResearchController: controller.NewResearchController(researchService, jwt),
		MetaController:     controller.NewMetaController(metaService),
		AdminController:    controller.NewAdminController(adminService, jwt),

		Logger:     deps.Logger,
		Dispatcher: dispatcher,
	}
}

// BuildCredentials creates one provider per configured key. Keys are never
// logged; labels are.
func BuildCredentials(cfg config.AIConfig) ([]dispatch.Credential, error) {
	credentials := make([]dispatch.Credential, 0, len(cfg.Keys))
	for _, k := range cfg.Keys {
		provider, err := factory.NewLLMProvider(cfg.LLMProvider, cfg.SmallModel, k.Key)
		if err != nil {
			return nil, fmt.Errorf("credential %s: %w", k.Label, err)
		}
		credentials = append(credentials, dispatch.Credential{Label: k.Label, Provider: provider})
	}
	return credentials, nil
}

func newSessionRepository(cfg config.SessionConfig) (contract.SessionRepository, error) {
	switch cfg.Store {
	case "", "memory":
		return memory.NewSessionRepository(cfg.TTL), nil
	case "redis":
		rdb := redisstore.NewClient(cfg.RedisURL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Println("Session store: redis")
		return redisstore.NewSessionRepository(rdb, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.Store)
	}
}
