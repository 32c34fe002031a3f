package services

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fixture struct {
	ctx   context.Context
	db    *database.Database
	repos *repository.Repositories
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDatabase(t)
	return &fixture{
		ctx:   context.Background(),
		db:    db,
		repos: repository.New(db),
	}
}

func (f *fixture) director(t *testing.T, name string) models.Director {
	d := models.Director{Name: name}
	require.NoError(t, f.repos.Directors.Insert(f.ctx, &d))
	return d
}

func (f *fixture) actor(t *testing.T, name string) models.Actor {
	a := models.Actor{Name: name}
	require.NoError(t, f.repos.Actors.Insert(f.ctx, &a))
	return a
}

func (f *fixture) genre(t *testing.T, name string) models.Genre {
	g := models.Genre{Name: name}
	require.NoError(t, f.repos.Genres.Insert(f.ctx, &g))
	return g
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

type MovieServiceTestSuite struct {
	suite.Suite
	f       *fixture
	service MovieService
}

func (s *MovieServiceTestSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.service = NewMovieService(s.f.repos, false, testutil.NewLogger())
}

func (s *MovieServiceTestSuite) TestCreateMovieWithRelations() {
	t := s.T()
	nolan := s.f.director(t, "Christopher Nolan")
	murphy := s.f.actor(t, "Cillian Murphy")
	hardy := s.f.actor(t, "Tom Hardy")
	scifi := s.f.genre(t, "Sci-Fi")

	movie, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{
		Title:      "Inception",
		DirectorID: nolan.ID,
		ActorIDs:   []uint{hardy.ID, murphy.ID},
		GenreIDs:   []uint{scifi.ID},
	})
	s.Require().NoError(err)
	s.NotZero(movie.ID)
	s.Equal("Inception", movie.Title)
	s.Equal(nolan.ID, movie.DirectorID)

	resp, err := s.service.ListMoviesFull(s.f.ctx, MovieFullParams{})
	s.Require().NoError(err)
	s.Require().Len(resp.Results, 1)

	full := resp.Results[0]
	s.Equal(movie.ID, full.ID)
	s.Require().NotNil(full.Director)
	s.Equal(nolan, *full.Director)
	s.Equal([]models.Actor{murphy, hardy}, full.Actors)
	s.Equal([]models.Genre{scifi}, full.Genres)
}

func (s *MovieServiceTestSuite) TestCreateMovieUnknownDirector() {
	_, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{Title: "Ghost", DirectorID: 42})

	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Equal("director", validationErr.Entity)
	s.Equal(uint(42), validationErr.ID)
	s.Equal("director id 42 does not exist", err.Error())

	total, err := s.f.repos.Movies.CountWhere(s.f.ctx, nil)
	s.NoError(err)
	s.Zero(total)
}

func (s *MovieServiceTestSuite) TestCreateMovieUnknownActorKeepsEarlierRows() {
	t := s.T()
	d := s.f.director(t, "Nolan")
	a := s.f.actor(t, "Michael Caine")

	_, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{
		Title:      "Tenet",
		DirectorID: d.ID,
		ActorIDs:   []uint{a.ID, 999},
	})

	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Equal("actor", validationErr.Entity)

	movies, err := s.f.repos.Movies.FindAll(s.f.ctx)
	s.Require().NoError(err)
	s.Require().Len(movies, 1)

	links, err := s.f.repos.MovieActors.FindAll(s.f.ctx)
	s.Require().NoError(err)
	s.Equal([]models.MovieActor{{MovieID: movies[0].ID, ActorID: a.ID}}, links)
}

func (s *MovieServiceTestSuite) TestCreateMovieUnknownGenre() {
	d := s.f.director(s.T(), "Nolan")

	_, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{
		Title:      "Tenet",
		DirectorID: d.ID,
		GenreIDs:   []uint{7},
	})

	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Equal("genre", validationErr.Entity)
	s.Equal(uint(7), validationErr.ID)
}

func (s *MovieServiceTestSuite) TestCreateMovieDuplicateActorIsStorageError() {
	t := s.T()
	d := s.f.director(t, "Nolan")
	a := s.f.actor(t, "Michael Caine")

	_, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{
		Title:      "Interstellar",
		DirectorID: d.ID,
		ActorIDs:   []uint{a.ID, a.ID},
	})

	var storageErr *repository.StorageError
	s.True(errors.As(err, &storageErr))
}

func (s *MovieServiceTestSuite) TestAtomicCreateRollsBack() {
	t := s.T()
	service := NewMovieService(s.f.repos, true, testutil.NewLogger())
	d := s.f.director(t, "Nolan")
	a := s.f.actor(t, "Michael Caine")

	_, err := service.CreateMovie(s.f.ctx, CreateMovieInput{
		Title:      "Tenet",
		DirectorID: d.ID,
		ActorIDs:   []uint{a.ID},
		GenreIDs:   []uint{404},
	})
	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))

	movies, err := s.f.repos.Movies.CountWhere(s.f.ctx, nil)
	s.NoError(err)
	s.Zero(movies)

	links, err := s.f.repos.MovieActors.CountWhere(s.f.ctx, nil)
	s.NoError(err)
	s.Zero(links)

	movie, err := service.CreateMovie(s.f.ctx, CreateMovieInput{Title: "Tenet", DirectorID: d.ID, ActorIDs: []uint{a.ID}})
	s.Require().NoError(err)
	s.NotZero(movie.ID)
}

func (s *MovieServiceTestSuite) TestListMovies() {
	d := s.f.director(s.T(), "Nolan")
	for _, title := range []string{"Memento", "Insomnia"} {
		_, err := s.service.CreateMovie(s.f.ctx, CreateMovieInput{Title: title, DirectorID: d.ID})
		s.Require().NoError(err)
	}

	movies, err := s.service.ListMovies(s.f.ctx)
	s.Require().NoError(err)
	s.Len(movies, 2)
}

func TestMovieServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovieServiceTestSuite))
}

func TestListMoviesFullStorageFailure(t *testing.T) {
	f := newFixture(t)
	service := NewMovieService(f.repos, false, testutil.NewLogger())
	require.NoError(t, f.db.Close())

	_, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("nolan")})

	var storageErr *repository.StorageError
	assert.True(t, errors.As(err, &storageErr))
}
