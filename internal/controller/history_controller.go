package controller

import (
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type historyController struct {
	historyService service.IHistoryService
}

func NewHistoryController(historyService service.IHistoryService) IHistoryController {
	return &historyController{
		historyService: historyService,
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Get)
	h.Delete(":id", c.Delete)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	userIdStr, _ := serverutils.UserIDFromLocals(ctx)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user token")
	}

	res, err := c.historyService.List(ctx.Context(), userId, ctx.Query("type"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("History retrieved", res))
}

func (c *historyController) Get(ctx *fiber.Ctx) error {
	userIdStr, _ := serverutils.UserIDFromLocals(ctx)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user token")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid record id")
	}

	res, err := c.historyService.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("History record retrieved", res))
}

func (c *historyController) Delete(ctx *fiber.Ctx) error {
	userIdStr, _ := serverutils.UserIDFromLocals(ctx)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user token")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid record id")
	}

	if err := c.historyService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("History record deleted", nil))
}
