package services

import (
	"context"
	"slices"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
)

// Candidates is the set of movie ids relevant to a search term. The zero value
// means no term was supplied and no filter applies, which is distinct from a
// filtered set that happens to be empty.
type Candidates struct {
	filtered bool
	ids      map[uint]struct{}
}

func Unfiltered() Candidates {
	return Candidates{}
}

func NewCandidates(ids ...uint) Candidates {
	c := Candidates{filtered: true, ids: make(map[uint]struct{}, len(ids))}
	c.add(ids)
	return c
}

func (c Candidates) add(ids []uint) {
	for _, id := range ids {
		c.ids[id] = struct{}{}
	}
}

func (c Candidates) Filtered() bool {
	return c.filtered
}

func (c Candidates) Len() int {
	return len(c.ids)
}

// IDs returns the candidate ids in ascending order.
func (c Candidates) IDs() []uint {
	ids := make([]uint, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NormalizeTerm trims and case-folds a raw search string. An empty result means no term.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// SearchMovies unions the ids of movies whose title, director name, genre name
// or actor name contains term. term must already be normalized.
func SearchMovies(ctx context.Context, repos *repository.Repositories, term string) (Candidates, error) {
	if term == "" {
		return Unfiltered(), nil
	}

	found := NewCandidates()

	byTitle, err := repos.Movies.FindWhere(ctx, repository.ContainsFold("title", term))
	if err != nil {
		return Candidates{}, err
	}
	found.add(idsOf(byTitle, func(m models.Movie) uint { return m.ID }))

	directors, err := repos.Directors.FindWhere(ctx, repository.ContainsFold("name", term))
	if err != nil {
		return Candidates{}, err
	}
	byDirector, err := repos.MovieIDsByDirectors(ctx, idsOf(directors, func(d models.Director) uint { return d.ID }))
	if err != nil {
		return Candidates{}, err
	}
	found.add(byDirector)

	genres, err := repos.Genres.FindWhere(ctx, repository.ContainsFold("name", term))
	if err != nil {
		return Candidates{}, err
	}
	byGenre, err := repos.MovieIDsByGenres(ctx, idsOf(genres, func(g models.Genre) uint { return g.ID }))
	if err != nil {
		return Candidates{}, err
	}
	found.add(byGenre)

	actors, err := repos.Actors.FindWhere(ctx, repository.ContainsFold("name", term))
	if err != nil {
		return Candidates{}, err
	}
	byActor, err := repos.MovieIDsByActors(ctx, idsOf(actors, func(a models.Actor) uint { return a.ID }))
	if err != nil {
		return Candidates{}, err
	}
	found.add(byActor)

	return found, nil
}

// MatchQuery resolves the raw q parameter. An absent q applies no filter, while
// a q that normalizes to nothing matches no movie.
func MatchQuery(ctx context.Context, repos *repository.Repositories, raw *string) (Candidates, error) {
	if raw == nil {
		return Unfiltered(), nil
	}
	term := NormalizeTerm(*raw)
	if term == "" {
		return NewCandidates(), nil
	}
	return SearchMovies(ctx, repos, term)
}

func idsOf[T any](rows []T, id func(T) uint) []uint {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, id(row))
	}
	return ids
}
