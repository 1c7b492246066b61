package handler

import (
	"errors"

	"github.com/fadilmartias/skill-connect/internal/repository"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/gofiber/fiber/v2"
)

// respondError maps usecase errors onto the error envelope.
func respondError(c *fiber.Ctx, err error, message string) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ValidationResponse(c, formErr)
	case errors.Is(err, repository.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: message,
		}, err)
	case errors.Is(err, repository.ErrDuplicateID):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: message,
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid request body",
	}, err)
}
