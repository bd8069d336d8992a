package handlers

import (
	"errors"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError translates the known error kinds into a status code and flash
// severity. Anything else propagates to the app-level error handler, which
// renders a generic 500 without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	message := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperror.ErrValidation):
		return utils.FlashResponse(c, fiber.StatusBadRequest, utils.SeverityError, message)
	case errors.Is(err, apperror.ErrNotFound):
		return utils.FlashResponse(c, fiber.StatusNotFound, utils.SeverityError, message)
	case errors.Is(err, apperror.ErrConflict):
		// Matches the old "already in your favorites" notice: not an error
		// the user did anything wrong about.
		return utils.FlashResponse(c, fiber.StatusConflict, utils.SeverityInfo, message)
	case errors.Is(err, apperror.ErrUpstream):
		return utils.FlashResponse(c, fiber.StatusBadGateway, utils.SeverityWarning, message)
	default:
		return err
	}
}
