package controller

import (
	"errors"

	"legal-drafting-be/internal/dto"
	"legal-drafting-be/internal/pkg/serverutils"
	"legal-drafting-be/internal/repository/contract"
	"legal-drafting-be/internal/service"
	"legal-drafting-be/pkg/dispatch"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to statuses. Anything unrecognised goes to
// the app error handler as a 500.
func respondError(ctx *fiber.Ctx, err error) error {
	var blocked *service.BlockedError
	if errors.As(err, &blocked) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponseWithData(
			fiber.StatusUnprocessableEntity,
			"Draft blocked: it cites case law but no verified judgment was supplied",
			dto.BlockedDraftResponse{Citations: blocked.Citations, Source: blocked.Source},
		))
	}

	var offline *service.OfflineError
	if errors.As(err, &offline) {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponseWithData(
			fiber.StatusServiceUnavailable,
			"Generation offline: every API key failed",
			dto.OfflineDraftResponse{Source: dispatch.OfflineLabel, Failures: offline.Failures},
		))
	}

	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, contract.ErrSessionNotFound):
		code = fiber.StatusUnauthorized
		err = errors.New("session expired, please log in again")
	case errors.Is(err, service.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, service.ErrNoDraft):
		code = fiber.StatusConflict
	case errors.Is(err, contract.ErrReferenceNotFound), errors.Is(err, service.ErrHistoryIndex):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrEmptyDraft):
		code = fiber.StatusBadGateway
	case errors.Is(err, service.ErrUnreadableFile):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrUnknownModel),
		errors.Is(err, service.ErrUnsupportedFile),
		errors.Is(err, service.ErrInvalidYearRange),
		errors.Is(err, contract.ErrInvalidReference):
		code = fiber.StatusBadRequest
	default:
		return err
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}

// parseBody decodes and validates a JSON body.
func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(req)
}
