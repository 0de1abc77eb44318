package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/middleware"
	"github.com/rs/zerolog"
)

// ErrorHandler renders errors that escaped the handlers. Unmatched routes get
// a bare 404; anything unexpected becomes a JSON 500.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound:
				return c.Status(fiber.StatusNotFound).SendString("Not Found")
			case fe.Code < fiber.StatusInternalServerError:
				return errorResponse(c, fe.Code, fe.Message)
			}
		}

		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Str("path", c.Path()).Msg("internal server error")
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
