package handlers

import (
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service  services.MovieService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewMovieHandler(service services.MovieService, validate *validator.Validate, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description List every movie without relations or pagination
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list movies")
	}
	return c.JSON(movies)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie and link it to existing actors and genres
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie to create"
// @Success 201 {object} models.Movie
// @Failure 400 {object} utils.StandardResponse "Unknown director, actor or genre"
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req CreateMovieRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.CreateMovie(c.UserContext(), services.CreateMovieInput{
		Title:      req.Title,
		DirectorID: req.DirectorID,
		ActorIDs:   req.ActorIDs,
		GenreIDs:   req.GenreIDs,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create movie")
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// ListMoviesFull godoc
// @Summary Search movies with relations
// @Description Search titles, directors, actors and genres by substring, paginated by ascending id
// @Tags movies
// @Produce json
// @Param q query string false "Search text; a blank value matches nothing"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Results per page (1-100)" default(10)
// @Success 200 {object} models.MovieFullResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /movies/full [get]
func (h *MovieHandler) ListMoviesFull(c *fiber.Ctx) error {
	page, ok := optionalUint32(c, "page")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page parameter")
	}
	perPage, ok := optionalUint32(c, "per_page")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid per_page parameter")
	}

	params := services.MovieFullParams{
		Page:    page,
		PerPage: perPage,
	}
	if c.Context().QueryArgs().Has("q") {
		q := c.Query("q")
		params.Query = &q
	}

	resp, err := h.service.ListMoviesFull(c.UserContext(), params)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list movies")
	}

	return c.JSON(resp)
}

// optionalUint32 reads an unsigned query value. A missing value yields nil.
func optionalUint32(c *fiber.Ctx, key string) (*int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	n := int(v)
	return &n, true
}
