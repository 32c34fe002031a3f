package models

import "time"

type Movie struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title      string    `gorm:"not null" json:"title" example:"Inception"`
	DirectorID uint      `gorm:"not null;index" json:"director_id" example:"1"`
	Director   *Director `gorm:"foreignKey:DirectorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieFull is the denormalized read projection served by /movies/full.
// It is assembled per request and never persisted.
type MovieFull struct {
	ID       uint      `json:"id" example:"1"`
	Title    string    `json:"title" example:"Inception"`
	Director *Director `json:"director"`
	Actors   []Actor   `json:"actors"`
	Genres   []Genre   `json:"genres"`
}

type Meta struct {
	Total    int64 `json:"total" example:"42"`
	Page     int   `json:"page" example:"1"`
	PerPage  int   `json:"per_page" example:"10"`
	LastPage int   `json:"last_page" example:"5"`
}

type MovieFullResponse struct {
	Meta    Meta        `json:"meta"`
	Results []MovieFull `json:"results"`
}

// CatalogExport is the document written to object storage by a catalog export.
type CatalogExport struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Total       int64       `json:"total"`
	Movies      []MovieFull `json:"movies"`
}

// ExportResult describes an uploaded catalog snapshot.
type ExportResult struct {
	Object      string    `json:"object" example:"exports/catalog_5f0c.json"`
	URL         string    `json:"url"`
	Total       int64     `json:"total" example:"42"`
	GeneratedAt time.Time `json:"generated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
