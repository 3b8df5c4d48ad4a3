package controller

import (
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/service"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByAnimal(ctx *fiber.Ctx) error
}

type progressController struct {
	progressService service.IProgressService
}

func NewProgressController(progressService service.IProgressService) IProgressController {
	return &progressController{
		progressService: progressService,
	}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/animals/:id/progress")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("", serverutils.RequireOperation(access.OpViewProgressNotes), c.ListByAnimal)
	h.Post("", serverutils.RequireOperation(access.OpAddProgressNote), c.Create)
}

func (c *progressController) Create(ctx *fiber.Ctx) error {
	animalId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	userIdStr, _ := ctx.Locals("user_id").(string)
	authorId, _ := uuid.Parse(userIdStr)

	var req dto.CreateProgressNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.AnimalId = animalId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.progressService.Create(ctx.Context(), authorId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create progress note", res))
}

func (c *progressController) ListByAnimal(ctx *fiber.Ctx) error {
	animalId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.progressService.ListByAnimal(ctx.Context(), animalId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list progress notes", res))
}
