package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, catalogHandler *handlers.CatalogHandler, exportHandler *handlers.ExportHandler) {
	movies := app.Group("/movies")
	{
		movies.Get("/", movieHandler.ListMovies)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/full", movieHandler.ListMoviesFull)
	}

	directors := app.Group("/directors")
	{
		directors.Get("/", catalogHandler.ListDirectors)
		directors.Post("/", catalogHandler.CreateDirector)
	}

	actors := app.Group("/actors")
	{
		actors.Get("/", catalogHandler.ListActors)
		actors.Post("/", catalogHandler.CreateActor)
	}

	genres := app.Group("/genres")
	{
		genres.Get("/", catalogHandler.ListGenres)
		genres.Post("/", catalogHandler.CreateGenre)
	}

	exports := app.Group("/exports")
	{
		exports.Post("/catalog", exportHandler.ExportCatalog)
	}
}
