package controller

import (
	"ai-health-be/internal/dto"
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDoctorController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
	Directions(ctx *fiber.Ctx) error
}

type doctorController struct {
	doctorService service.IDoctorService
}

func NewDoctorController(doctorService service.IDoctorService) IDoctorController {
	return &doctorController{
		doctorService: doctorService,
	}
}

func (c *doctorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/doctor/v1")
	h.Post("recommend", c.Recommend)
	h.Post("directions", c.Directions)
}

func (c *doctorController) Recommend(ctx *fiber.Ctx) error {
	var req dto.DoctorRecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.doctorService.Recommend(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Doctor recommendations", res))
}

func (c *doctorController) Directions(ctx *fiber.Ctx) error {
	var req dto.DirectionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Directions resolved", c.doctorService.Directions(&req)))
}
