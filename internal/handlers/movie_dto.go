package handlers

type CreateMovieRequest struct {
	Title      string `json:"title" validate:"required" example:"Inception"`
	DirectorID uint   `json:"director_id" example:"1"`
	ActorIDs   []uint `json:"actor_ids" validate:"required" example:"1,2"`
	GenreIDs   []uint `json:"genre_ids" validate:"required" example:"1"`
}

// NamedRequest is the body for creating a director, actor or genre.
type NamedRequest struct {
	Name string `json:"name" validate:"required" example:"Christopher Nolan"`
}
