package handlers

import (
	"errors"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationErr.Error())
	}

	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}
	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) {
		fields["table"] = storageErr.Table
		fields["op"] = storageErr.Op
	}
	logger.WithError(err).WithFields(fields).Error(msg)

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, msg+": "+err.Error())
}

// parseBody decodes the JSON body into req and validates it.
func parseBody(c *fiber.Ctx, validate *validator.Validate, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.New("Invalid request body")
	}
	if err := validate.StructCtx(c.UserContext(), req); err != nil {
		return errors.New("Validation failed: " + err.Error())
	}
	return nil
}
