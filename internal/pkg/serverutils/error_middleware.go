package serverutils

import (
	"errors"

	"bail-assistant-be/internal/service"
	"bail-assistant-be/pkg/document"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors surfaced by handlers into JSON
// responses. Path and list failures from the document engine map to client
// errors; anything unrecognized is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(statusFor(err)).JSON(ErrorResponse(err.Error()))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, document.ErrKeyNotFound),
		errors.Is(err, document.ErrIndexOutOfRange),
		errors.Is(err, document.ErrNotAList):
		return fiber.StatusNotFound
	case errors.Is(err, document.ErrNotNavigable),
		errors.Is(err, document.ErrInvalidIndexType),
		errors.Is(err, document.ErrEmptyPath),
		errors.Is(err, document.ErrEmptyTemplate):
		return fiber.StatusBadRequest
	case errors.Is(err, document.ErrLastItemProtected):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
