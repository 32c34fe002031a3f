package repository

import (
	"context"

	"movie-catalog/internal/models"
)

// Join helpers between movies and the rows that reference them. Each helper
// returns nil without querying when its input set is empty.

func (r *Repositories) MovieIDsByDirectors(ctx context.Context, directorIDs []uint) ([]uint, error) {
	if len(directorIDs) == 0 {
		return nil, nil
	}
	movies, err := r.Movies.FindWhere(ctx, In("director_id", directorIDs))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (r *Repositories) MovieIDsByActors(ctx context.Context, actorIDs []uint) ([]uint, error) {
	if len(actorIDs) == 0 {
		return nil, nil
	}
	links, err := r.MovieActors.FindWhere(ctx, In("actor_id", actorIDs))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.MovieID)
	}
	return ids, nil
}

func (r *Repositories) MovieIDsByGenres(ctx context.Context, genreIDs []uint) ([]uint, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}
	links, err := r.MovieGenres.FindWhere(ctx, In("genre_id", genreIDs))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.MovieID)
	}
	return ids, nil
}

// ActorsForMovie loads the actors linked to movieID, ordered by actor id.
func (r *Repositories) ActorsForMovie(ctx context.Context, movieID uint) ([]models.Actor, error) {
	links, err := r.MovieActors.FindWhere(ctx, Equals("movie_id", movieID))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ActorID)
	}
	return r.Actors.FindByIDs(ctx, ids)
}

// GenresForMovie loads the genres linked to movieID, ordered by genre id.
func (r *Repositories) GenresForMovie(ctx context.Context, movieID uint) ([]models.Genre, error) {
	links, err := r.MovieGenres.FindWhere(ctx, Equals("movie_id", movieID))
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.GenreID)
	}
	return r.Genres.FindByIDs(ctx, ids)
}
