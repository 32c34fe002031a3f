package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service  services.CatalogService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, validate *validator.Validate, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// ListDirectors godoc
// @Summary List directors
// @Tags directors
// @Produce json
// @Success 200 {array} models.Director
// @Failure 500 {object} utils.StandardResponse
// @Router /directors [get]
func (h *CatalogHandler) ListDirectors(c *fiber.Ctx) error {
	directors, err := h.service.ListDirectors(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list directors")
	}
	return c.JSON(directors)
}

// CreateDirector godoc
// @Summary Create a director
// @Tags directors
// @Accept json
// @Produce json
// @Param director body NamedRequest true "Director to create"
// @Success 201 {object} models.Director
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /directors [post]
func (h *CatalogHandler) CreateDirector(c *fiber.Ctx) error {
	var req NamedRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	director, err := h.service.CreateDirector(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create director")
	}
	return c.Status(fiber.StatusCreated).JSON(director)
}

// ListActors godoc
// @Summary List actors
// @Tags actors
// @Produce json
// @Success 200 {array} models.Actor
// @Failure 500 {object} utils.StandardResponse
// @Router /actors [get]
func (h *CatalogHandler) ListActors(c *fiber.Ctx) error {
	actors, err := h.service.ListActors(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list actors")
	}
	return c.JSON(actors)
}

// CreateActor godoc
// @Summary Create an actor
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body NamedRequest true "Actor to create"
// @Success 201 {object} models.Actor
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /actors [post]
func (h *CatalogHandler) CreateActor(c *fiber.Ctx) error {
	var req NamedRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	actor, err := h.service.CreateActor(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create actor")
	}
	return c.Status(fiber.StatusCreated).JSON(actor)
}

// ListGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre
// @Failure 500 {object} utils.StandardResponse
// @Router /genres [get]
func (h *CatalogHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list genres")
	}
	return c.JSON(genres)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body NamedRequest true "Genre to create"
// @Success 201 {object} models.Genre
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /genres [post]
func (h *CatalogHandler) CreateGenre(c *fiber.Ctx) error {
	var req NamedRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genre, err := h.service.CreateGenre(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create genre")
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}
