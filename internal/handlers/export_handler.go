package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	service services.ExportService
	logger  *logrus.Logger
}

// NewExportHandler accepts a nil service when object storage is not configured.
func NewExportHandler(service services.ExportService, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger,
	}
}

// ExportCatalog godoc
// @Summary Export the catalog
// @Description Upload every movie with its relations to object storage and return a temporary download URL
// @Tags exports
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.ExportResult}
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse "Object storage not configured"
// @Router /exports/catalog [post]
func (h *ExportHandler) ExportCatalog(c *fiber.Ctx) error {
	if h.service == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Catalog export is not configured")
	}

	result, err := h.service.ExportCatalog(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to export catalog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Catalog exported successfully", result)
}
