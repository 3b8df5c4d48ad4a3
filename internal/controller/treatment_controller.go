package controller

import (
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/service"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITreatmentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByAnimal(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type treatmentController struct {
	treatmentService service.ITreatmentService
}

func NewTreatmentController(treatmentService service.ITreatmentService) ITreatmentController {
	return &treatmentController{
		treatmentService: treatmentService,
	}
}

func (c *treatmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/treatments")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", serverutils.RequireOperation(access.OpAddTreatment), c.Create)
	h.Delete(":id", serverutils.RequireOperation(access.OpRemoveTreatment), c.Delete)

	// Medical history is readable without an account.
	r.Get("/animals/:id/treatments",
		serverutils.OptionalJwtMiddleware,
		serverutils.RequireOperation(access.OpViewTreatments),
		c.ListByAnimal,
	)
}

func (c *treatmentController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	vetId, _ := uuid.Parse(userIdStr)

	var req dto.CreateTreatmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.treatmentService.Create(ctx.Context(), vetId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create treatment record", res))
}

func (c *treatmentController) ListByAnimal(ctx *fiber.Ctx) error {
	animalId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.treatmentService.ListByAnimal(ctx.Context(), animalId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list treatment records", res))
}

func (c *treatmentController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.treatmentService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete treatment record", nil))
}
