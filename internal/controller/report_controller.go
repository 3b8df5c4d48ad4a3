package controller

import (
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/service"
	"pawrescue-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListByAnimal(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("", serverutils.RequireOperation(access.OpViewReports), c.List)
	h.Post("", serverutils.JwtMiddleware, serverutils.RequireOperation(access.OpSubmitReport), c.Create)
	h.Put(":id/status", serverutils.JwtMiddleware, serverutils.RequireOperation(access.OpAdvanceReport), c.Advance)

	r.Get("/animals/:id/reports",
		serverutils.OptionalJwtMiddleware,
		serverutils.RequireOperation(access.OpViewReports),
		c.ListByAnimal,
	)
}

func (c *reportController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	reporterId, _ := uuid.Parse(userIdStr)

	var req dto.CreateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.Create(ctx.Context(), reporterId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create rescue report", res))
}

func (c *reportController) List(ctx *fiber.Ctx) error {
	res, err := c.reportService.List(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list rescue reports", res))
}

func (c *reportController) ListByAnimal(ctx *fiber.Ctx) error {
	animalId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.reportService.ListByAnimal(ctx.Context(), animalId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list rescue reports", res))
}

func (c *reportController) Advance(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.AdvanceReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.Advance(ctx.Context(), serverutils.ActingRole(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance rescue report", res))
}
