package serverutils

import (
	"errors"

	"pawrescue-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors to the HTTP boundary.
// Validation and access errors surface verbatim; persistence errors surface
// as a generic retryable failure.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return writeAppError(ctx, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}

func writeAppError(ctx *fiber.Ctx, appErr *apperror.AppError) error {
	var code int
	body := ErrorBody{Message: appErr.Message}

	switch appErr.Kind {
	case apperror.KindValidation:
		code = fiber.StatusBadRequest
		body.Fields = appErr.Fields
	case apperror.KindNotFound:
		code = fiber.StatusNotFound
	case apperror.KindUnauthenticated:
		code = fiber.StatusUnauthorized
		body.AuthRequired = true
	case apperror.KindForbidden:
		code = fiber.StatusForbidden
	case apperror.KindTransition:
		code = fiber.StatusConflict
	case apperror.KindPersistence:
		code = fiber.StatusServiceUnavailable
		body.Retryable = true
	default:
		code = fiber.StatusInternalServerError
	}

	body.Code = code
	return ctx.Status(code).JSON(BaseErrorResponse{Success: false, Error: body})
}
