package controller

import (
	"ai-health-be/internal/dto"
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	userIdStr, _ := serverutils.UserIDFromLocals(ctx)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user token")
	}

	res, err := c.userService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userIdStr, _ := serverutils.UserIDFromLocals(ctx)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user token")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}
