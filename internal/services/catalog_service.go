package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService lists and creates the standalone entities a movie refers to.
type CatalogService interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
	CreateDirector(ctx context.Context, name string) (*models.Director, error)

	ListActors(ctx context.Context) ([]models.Actor, error)
	CreateActor(ctx context.Context, name string) (*models.Actor, error)

	ListGenres(ctx context.Context) ([]models.Genre, error)
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
}

type catalogService struct {
	repos  *repository.Repositories
	logger *logrus.Logger
}

func NewCatalogService(repos *repository.Repositories, logger *logrus.Logger) CatalogService {
	return &catalogService{
		repos:  repos,
		logger: logger,
	}
}

func (s *catalogService) ListDirectors(ctx context.Context) ([]models.Director, error) {
	return s.repos.Directors.FindAll(ctx)
}

func (s *catalogService) CreateDirector(ctx context.Context, name string) (*models.Director, error) {
	director := &models.Director{Name: name}
	if err := s.repos.Directors.Insert(ctx, director); err != nil {
		return nil, err
	}
	s.logger.WithField("director_id", director.ID).Info("Director created")
	return director, nil
}

func (s *catalogService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return s.repos.Actors.FindAll(ctx)
}

func (s *catalogService) CreateActor(ctx context.Context, name string) (*models.Actor, error) {
	actor := &models.Actor{Name: name}
	if err := s.repos.Actors.Insert(ctx, actor); err != nil {
		return nil, err
	}
	s.logger.WithField("actor_id", actor.ID).Info("Actor created")
	return actor, nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repos.Genres.FindAll(ctx)
}

func (s *catalogService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	genre := &models.Genre{Name: name}
	if err := s.repos.Genres.Insert(ctx, genre); err != nil {
		return nil, err
	}
	s.logger.WithField("genre_id", genre.ID).Info("Genre created")
	return genre, nil
}
