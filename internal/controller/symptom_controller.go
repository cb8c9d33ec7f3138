package controller

import (
	"io"
	"strings"

	"ai-health-be/internal/dto"
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageBytes = 10 * 1024 * 1024

type ISymptomController interface {
	RegisterRoutes(r fiber.Router)
	Extract(ctx *fiber.Ctx) error
	AnalyzeImage(ctx *fiber.Ctx) error
}

type symptomController struct {
	symptomService service.ISymptomService
}

func NewSymptomController(symptomService service.ISymptomService) ISymptomController {
	return &symptomController{
		symptomService: symptomService,
	}
}

func (c *symptomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/symptom/v1")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("extract", c.Extract)
	h.Post("analyze-image", c.AnalyzeImage)
}

func (c *symptomController) Extract(ctx *fiber.Ctx) error {
	var req dto.ExtractSymptomsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.symptomService.ExtractFromText(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Symptoms extracted", res))
}

func (c *symptomController) AnalyzeImage(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}
	if fileHeader.Size > maxImageBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "image exceeds size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "file must be an image")
	}

	var userId *uuid.UUID
	if idStr, ok := serverutils.UserIDFromLocals(ctx); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			userId = &id
		}
	}

	res, err := c.symptomService.AnalyzeImage(ctx.Context(), userId, image, mimeType, ctx.FormValue("language"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image analyzed", res))
}
