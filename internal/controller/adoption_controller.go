package controller

import (
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/service"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdoptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListOwn(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Decide(ctx *fiber.Ctx) error
}

type adoptionController struct {
	adoptionService service.IAdoptionService
}

func NewAdoptionController(adoptionService service.IAdoptionService) IAdoptionController {
	return &adoptionController{
		adoptionService: adoptionService,
	}
}

func (c *adoptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/adoptions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", serverutils.RequireOperation(access.OpSubmitAdoption), c.Create)
	h.Get("", serverutils.RequireOperation(access.OpReviewAdoptions), c.ListAll)
	h.Put(":id/status", serverutils.RequireOperation(access.OpReviewAdoptions), c.Decide)

	// The caller's own requests live under /user to mirror the profile
	// namespace.
	own := r.Group("/user/adoptions")
	own.Use(serverutils.JwtMiddleware)
	own.Get("", serverutils.RequireOperation(access.OpViewOwnAdoptions), c.ListOwn)
}

func (c *adoptionController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateAdoptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adoptionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create adoption request", res))
}

func (c *adoptionController) ListOwn(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.adoptionService.ListOwn(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list adoption requests", res))
}

func (c *adoptionController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.adoptionService.ListAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list adoption requests", res))
}

func (c *adoptionController) Decide(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.DecideAdoptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adoptionService.Decide(ctx.Context(), serverutils.ActingRole(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success decide adoption request", res))
}
