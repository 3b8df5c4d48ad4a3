package controller

import (
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/service"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnimalController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type animalController struct {
	animalService service.IAnimalService
}

func NewAnimalController(animalService service.IAnimalService) IAnimalController {
	return &animalController{
		animalService: animalService,
	}
}

func (c *animalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/animals")
	// The catalog is public; the optional token lets staff roles through
	// the same policy gate with their real permissions.
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("", serverutils.RequireOperation(access.OpViewAnimals), c.List)
	h.Get(":id", serverutils.RequireOperation(access.OpViewAnimals), c.Show)
	h.Post("", serverutils.RequireOperation(access.OpCreateAnimal), c.Create)
	h.Put(":id", serverutils.RequireOperation(access.OpEditAnimal), c.Update)
	h.Put(":id/status", serverutils.RequireOperation(access.OpChangeAnimalStatus), c.UpdateStatus)
	h.Delete(":id", serverutils.RequireOperation(access.OpDeleteAnimal), c.Delete)
}

func (c *animalController) List(ctx *fiber.Ctx) error {
	var query dto.ListAnimalsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.animalService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list animals", res))
}

func (c *animalController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.animalService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show animal", res))
}

func (c *animalController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create animal", res))
}

func (c *animalController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update animal", res))
}

func (c *animalController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateAnimalStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.UpdateStatus(ctx.Context(), serverutils.ActingRole(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update animal status", res))
}

func (c *animalController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.animalService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete animal", nil))
}
