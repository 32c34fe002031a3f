package models

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"not null" json:"name" example:"Sci-Fi"`
}

func (Genre) TableName() string {
	return "genres"
}

// MovieGenre links a movie to one of its genres. The pair is the primary key.
type MovieGenre struct {
	MovieID uint   `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	GenreID uint   `gorm:"primaryKey;autoIncrement:false;index" json:"genre_id"`
	Movie   *Movie `gorm:"foreignKey:MovieID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Genre   *Genre `gorm:"foreignKey:GenreID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
