package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	CreateMovie(ctx context.Context, input CreateMovieInput) (*models.Movie, error)

	// ListMoviesFull searches, paginates and hydrates movies for /movies/full.
	ListMoviesFull(ctx context.Context, params MovieFullParams) (*models.MovieFullResponse, error)
}

type CreateMovieInput struct {
	Title      string
	DirectorID uint
	ActorIDs   []uint
	GenreIDs   []uint
}

type movieService struct {
	repos  *repository.Repositories
	atomic bool
	logger *logrus.Logger
}

// NewMovieService builds the movie service. With atomic set, a movie and its
// association rows are created in a single transaction; otherwise each insert
// commits on its own and a failed link leaves earlier rows in place.
func NewMovieService(repos *repository.Repositories, atomic bool, logger *logrus.Logger) MovieService {
	return &movieService{
		repos:  repos,
		atomic: atomic,
		logger: logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repos.Movies.FindAll(ctx)
}

func (s *movieService) CreateMovie(ctx context.Context, input CreateMovieInput) (*models.Movie, error) {
	var (
		movie *models.Movie
		err   error
	)

	if s.atomic {
		err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
			movie, err = createMovie(ctx, tx, input)
			return err
		})
	} else {
		movie, err = createMovie(ctx, s.repos, input)
	}
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id":    movie.ID,
		"director_id": movie.DirectorID,
		"actors":      len(input.ActorIDs),
		"genres":      len(input.GenreIDs),
	}).Info("Movie created")

	return movie, nil
}

func createMovie(ctx context.Context, repos *repository.Repositories, input CreateMovieInput) (*models.Movie, error) {
	ok, err := repos.Directors.Exists(ctx, input.DirectorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ValidationError{Entity: "director", ID: input.DirectorID}
	}

	movie := &models.Movie{
		Title:      input.Title,
		DirectorID: input.DirectorID,
	}
	if err := repos.Movies.Insert(ctx, movie); err != nil {
		return nil, err
	}

	for _, actorID := range input.ActorIDs {
		ok, err := repos.Actors.Exists(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ValidationError{Entity: "actor", ID: actorID}
		}
		if err := repos.MovieActors.Insert(ctx, &models.MovieActor{MovieID: movie.ID, ActorID: actorID}); err != nil {
			return nil, err
		}
	}

	for _, genreID := range input.GenreIDs {
		ok, err := repos.Genres.Exists(ctx, genreID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ValidationError{Entity: "genre", ID: genreID}
		}
		if err := repos.MovieGenres.Insert(ctx, &models.MovieGenre{MovieID: movie.ID, GenreID: genreID}); err != nil {
			return nil, err
		}
	}

	return movie, nil
}

func (s *movieService) ListMoviesFull(ctx context.Context, params MovieFullParams) (*models.MovieFullResponse, error) {
	page := NormalizePage(params.Page)
	perPage := NormalizePerPage(params.PerPage)

	candidates, err := MatchQuery(ctx, s.repos, params.Query)
	if err != nil {
		return nil, err
	}

	if candidates.Filtered() && candidates.Len() == 0 {
		return &models.MovieFullResponse{
			Meta:    models.Meta{Total: 0, Page: page, PerPage: perPage, LastPage: 1},
			Results: []models.MovieFull{},
		}, nil
	}

	var filter repository.Predicate
	if candidates.Filtered() {
		filter = repository.In("id", candidates.IDs())
	}

	total, err := s.repos.Movies.CountWhere(ctx, filter)
	if err != nil {
		return nil, err
	}

	movies, err := s.repos.Movies.FindPage(ctx, filter, "id ASC", (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	results := make([]models.MovieFull, 0, len(movies))
	for _, movie := range movies {
		full, err := hydrateMovie(ctx, s.repos, movie)
		if err != nil {
			return nil, err
		}
		results = append(results, full)
	}

	s.logger.WithFields(logrus.Fields{
		"filtered": candidates.Filtered(),
		"page":     page,
		"per_page": perPage,
		"total":    total,
	}).Debug("Movies full listed")

	return &models.MovieFullResponse{
		Meta: models.Meta{
			Total:    total,
			Page:     page,
			PerPage:  perPage,
			LastPage: LastPage(total, perPage),
		},
		Results: results,
	}, nil
}

// hydrateMovie attaches the director, actors and genres of movie. A missing
// director row leaves Director nil.
func hydrateMovie(ctx context.Context, repos *repository.Repositories, movie models.Movie) (models.MovieFull, error) {
	director, err := repos.Directors.FindByID(ctx, movie.DirectorID)
	if err != nil {
		return models.MovieFull{}, err
	}

	actors, err := repos.ActorsForMovie(ctx, movie.ID)
	if err != nil {
		return models.MovieFull{}, err
	}

	genres, err := repos.GenresForMovie(ctx, movie.ID)
	if err != nil {
		return models.MovieFull{}, err
	}

	return models.MovieFull{
		ID:       movie.ID,
		Title:    movie.Title,
		Director: director,
		Actors:   actors,
		Genres:   genres,
	}, nil
}
