package controller

import (
	"strings"

	"ai-health-be/internal/dto"
	"ai-health-be/internal/pkg/serverutils"
	"ai-health-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiagnosisController interface {
	RegisterRoutes(r fiber.Router)
	Diagnose(ctx *fiber.Ctx) error
}

type diagnosisController struct {
	diagnosisService service.IDiagnosisService
}

func NewDiagnosisController(diagnosisService service.IDiagnosisService) IDiagnosisController {
	return &diagnosisController{
		diagnosisService: diagnosisService,
	}
}

func (c *diagnosisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/diagnosis/v1")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("", c.Diagnose)
}

func (c *diagnosisController) Diagnose(ctx *fiber.Ctx) error {
	var req dto.DiagnoseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if strings.TrimSpace(req.Text) == "" && len(req.Symptoms) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "text or symptoms is required")
	}
	if req.UserLocation != nil {
		if err := serverutils.ValidateRequest(req.UserLocation); err != nil {
			return err
		}
	}

	var userId *uuid.UUID
	if idStr, ok := serverutils.UserIDFromLocals(ctx); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			userId = &id
		}
	}

	res, err := c.diagnosisService.Diagnose(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Diagnosis completed", res))
}
