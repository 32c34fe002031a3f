package services

import (
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog creates movies 1..3: Nolan directs movie 1, Sci-Fi is attached
// to movie 2 and Margot Robbie plays in movie 3.
func seedCatalog(t *testing.T, f *fixture) []models.Movie {
	nolan := f.director(t, "Christopher Nolan")
	villeneuve := f.director(t, "Denis Villeneuve")
	gerwig := f.director(t, "Greta Gerwig")
	scifi := f.genre(t, "Sci-Fi")
	robbie := f.actor(t, "Margot Robbie")

	movies := []models.Movie{
		{Title: "Inception", DirectorID: nolan.ID},
		{Title: "Dune", DirectorID: villeneuve.ID},
		{Title: "Barbie", DirectorID: gerwig.ID},
	}
	for i := range movies {
		require.NoError(t, f.repos.Movies.Insert(f.ctx, &movies[i]))
	}
	require.NoError(t, f.repos.MovieGenres.Insert(f.ctx, &models.MovieGenre{MovieID: movies[1].ID, GenreID: scifi.ID}))
	require.NoError(t, f.repos.MovieActors.Insert(f.ctx, &models.MovieActor{MovieID: movies[2].ID, ActorID: robbie.ID}))
	return movies
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "", NormalizeTerm(""))
	assert.Equal(t, "", NormalizeTerm("   \t"))
	assert.Equal(t, "nolan", NormalizeTerm("  NoLaN "))
}

func TestCandidatesSentinel(t *testing.T) {
	none := Unfiltered()
	assert.False(t, none.Filtered())
	assert.Zero(t, none.Len())

	empty := NewCandidates()
	assert.True(t, empty.Filtered())
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.IDs())

	set := NewCandidates(3, 1, 3, 2)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []uint{1, 2, 3}, set.IDs())
}

func TestSearchMovies(t *testing.T) {
	f := newFixture(t)
	movies := seedCatalog(t, f)

	tests := []struct {
		name string
		term string
		want []uint
	}{
		{name: "by title", term: "incep", want: []uint{movies[0].ID}},
		{name: "by director", term: "nolan", want: []uint{movies[0].ID}},
		{name: "by genre", term: "sci-fi", want: []uint{movies[1].ID}},
		{name: "by actor", term: "robbie", want: []uint{movies[2].ID}},
		{name: "union across entities", term: "e", want: []uint{movies[0].ID, movies[1].ID, movies[2].ID}},
		{name: "no match", term: "kubrick", want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchMovies(f.ctx, f.repos, tt.term)
			require.NoError(t, err)
			assert.True(t, got.Filtered())
			assert.Equal(t, tt.want, got.IDs())
		})
	}
}

func TestSearchMoviesWithoutTerm(t *testing.T) {
	f := newFixture(t)
	seedCatalog(t, f)

	got, err := SearchMovies(f.ctx, f.repos, "")
	require.NoError(t, err)
	assert.False(t, got.Filtered())
}

func TestMatchQuery(t *testing.T) {
	f := newFixture(t)
	movies := seedCatalog(t, f)

	absent, err := MatchQuery(f.ctx, f.repos, nil)
	require.NoError(t, err)
	assert.False(t, absent.Filtered())

	blank, err := MatchQuery(f.ctx, f.repos, strPtr("  "))
	require.NoError(t, err)
	assert.True(t, blank.Filtered())
	assert.Zero(t, blank.Len())

	term, err := MatchQuery(f.ctx, f.repos, strPtr(" NOLAN "))
	require.NoError(t, err)
	assert.Equal(t, []uint{movies[0].ID}, term.IDs())
}

func TestSearchMoviesDeduplicates(t *testing.T) {
	f := newFixture(t)
	d := f.director(t, "Nolan")
	m := models.Movie{Title: "Nolan's Cut", DirectorID: d.ID}
	require.NoError(t, f.repos.Movies.Insert(f.ctx, &m))

	got, err := SearchMovies(f.ctx, f.repos, "nolan")
	require.NoError(t, err)
	assert.Equal(t, []uint{m.ID}, got.IDs())
}

func TestListMoviesFull(t *testing.T) {
	f := newFixture(t)
	movies := seedCatalog(t, f)
	service := NewMovieService(f.repos, false, testutil.NewLogger())

	t.Run("term matching a director", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("nolan")})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, movies[0].ID, resp.Results[0].ID)
		assert.Equal(t, "Christopher Nolan", resp.Results[0].Director.Name)
		assert.Equal(t, models.Meta{Total: 1, Page: 1, PerPage: 10, LastPage: 1}, resp.Meta)
	})

	t.Run("term matching a genre", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("Sci-Fi")})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, movies[1].ID, resp.Results[0].ID)
		assert.Equal(t, "Sci-Fi", resp.Results[0].Genres[0].Name)
		assert.Empty(t, resp.Results[0].Actors)
		assert.NotNil(t, resp.Results[0].Actors)
	})

	t.Run("no term paginates every movie", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Page: intPtr(1), PerPage: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, movies[0].ID, resp.Results[0].ID)
		assert.Equal(t, movies[1].ID, resp.Results[1].ID)
		assert.Equal(t, models.Meta{Total: 3, Page: 1, PerPage: 2, LastPage: 2}, resp.Meta)

		resp, err = service.ListMoviesFull(f.ctx, MovieFullParams{Page: intPtr(2), PerPage: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, movies[2].ID, resp.Results[0].ID)
	})

	t.Run("unmatched term short-circuits regardless of page", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("kubrick"), Page: intPtr(7), PerPage: intPtr(5)})
		require.NoError(t, err)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
		assert.Equal(t, models.Meta{Total: 0, Page: 7, PerPage: 5, LastPage: 1}, resp.Meta)
	})

	t.Run("blank term matches nothing", func(t *testing.T) {
		for _, q := range []string{"", "   "} {
			resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr(q)})
			require.NoError(t, err)
			assert.Empty(t, resp.Results, "q=%q", q)
			assert.NotNil(t, resp.Results)
			assert.Equal(t, models.Meta{Total: 0, Page: 1, PerPage: 10, LastPage: 1}, resp.Meta)
		}
	})

	t.Run("absent term lists everything", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: nil})
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Meta.Total)
	})

	t.Run("per_page is clamped", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{PerPage: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Meta.PerPage)
		assert.Equal(t, 3, resp.Meta.LastPage)
		assert.Len(t, resp.Results, 1)

		resp, err = service.ListMoviesFull(f.ctx, MovieFullParams{PerPage: intPtr(1000)})
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Meta.PerPage)
		assert.Len(t, resp.Results, 3)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{Page: intPtr(9)})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, int64(3), resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.LastPage)
	})

	t.Run("repeated queries are identical", func(t *testing.T) {
		first, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("e"), PerPage: intPtr(2)})
		require.NoError(t, err)
		second, err := service.ListMoviesFull(f.ctx, MovieFullParams{Query: strPtr("e"), PerPage: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestListMoviesFullMissingDirector(t *testing.T) {
	f := newFixture(t)
	d := f.director(t, "Temporary")
	m := models.Movie{Title: "Orphaned", DirectorID: d.ID}
	require.NoError(t, f.repos.Movies.Insert(f.ctx, &m))

	// Bypass the foreign key to simulate a director row that vanished.
	require.NoError(t, f.db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, f.db.Exec("DELETE FROM directors WHERE id = ?", d.ID).Error)

	service := NewMovieService(f.repos, false, testutil.NewLogger())
	resp, err := service.ListMoviesFull(f.ctx, MovieFullParams{})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Nil(t, resp.Results[0].Director)
}
