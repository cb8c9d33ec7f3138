package controller

import (
	"ai-health-be/internal/dto"
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("", c.Ask)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	var userId *uuid.UUID
	if idStr, ok := serverutils.UserIDFromLocals(ctx); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			userId = &id
		}
	}

	res, err := c.chatService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer generated", res))
}
