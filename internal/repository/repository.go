package repository

import (
	"context"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

// Repositories groups the six catalog tables over one connection or transaction.
type Repositories struct {
	Directors   *Table[models.Director]
	Actors      *Table[models.Actor]
	Genres      *Table[models.Genre]
	Movies      *Table[models.Movie]
	MovieActors *Table[models.MovieActor]
	MovieGenres *Table[models.MovieGenre]

	conn    *gorm.DB
	timeout time.Duration
}

func New(db *database.Database) *Repositories {
	return newRepositories(db.DB, db.GetQueryTimeout())
}

func newRepositories(conn *gorm.DB, timeout time.Duration) *Repositories {
	return &Repositories{
		Directors:   NewTable[models.Director](conn, timeout),
		Actors:      NewTable[models.Actor](conn, timeout),
		Genres:      NewTable[models.Genre](conn, timeout),
		Movies:      NewTable[models.Movie](conn, timeout),
		MovieActors: NewTable[models.MovieActor](conn, timeout),
		MovieGenres: NewTable[models.MovieGenre](conn, timeout),
		conn:        conn,
		timeout:     timeout,
	}
}

// Transaction runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx, r.timeout))
	})
}
