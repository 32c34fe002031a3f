package models

type Actor struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"not null" json:"name" example:"Cillian Murphy"`
}

func (Actor) TableName() string {
	return "actors"
}

// MovieActor links a movie to one of its actors. The pair is the primary key.
type MovieActor struct {
	MovieID uint   `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	ActorID uint   `gorm:"primaryKey;autoIncrement:false;index" json:"actor_id"`
	Movie   *Movie `gorm:"foreignKey:MovieID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Actor   *Actor `gorm:"foreignKey:ActorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}
