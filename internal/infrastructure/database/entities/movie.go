package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianespinel/movies/internal/domain/movie"
)

// Movie models the persisted representation of the movie domain entity.
// Column types carry no length or scale limits narrower than Movie.Validate.
type Movie struct {
	ImdbID           string          `gorm:"column:imdb_id;type:text;primaryKey"`
	Title            string          `gorm:"type:text;not null"`
	RuntimeInMinutes int             `gorm:"column:runtime_in_minutes;not null"`
	ReleaseDate      time.Time       `gorm:"not null"`
	FilmRating       string          `gorm:"type:varchar(8);not null"`
	Genre            string          `gorm:"type:text"`
	Director         string          `gorm:"type:text"`
	Plot             string          `gorm:"type:text"`
	Metascore        int             `gorm:"not null"`
	ImdbRating       decimal.Decimal `gorm:"type:numeric;not null"`
	ImdbVotes        int64           `gorm:"not null"`
}

func (Movie) TableName() string {
	return "movies"
}

// NewSchemaMovie maps a domain movie to its persisted form.
func NewSchemaMovie(m *movie.Movie) *Movie {
	return &Movie{
		ImdbID:           m.ImdbID,
		Title:            m.Title,
		RuntimeInMinutes: m.RuntimeInMinutes,
		ReleaseDate:      m.ReleaseDate.UTC(),
		FilmRating:       string(m.FilmRating),
		Genre:            m.Genre,
		Director:         m.Director,
		Plot:             m.Plot,
		Metascore:        m.Metascore,
		ImdbRating:       m.ImdbRating,
		ImdbVotes:        m.ImdbVotes,
	}
}

// EtoD converts the entity back into the domain movie.
func (e *Movie) EtoD() *movie.Movie {
	return &movie.Movie{
		ImdbID:           e.ImdbID,
		Title:            e.Title,
		RuntimeInMinutes: e.RuntimeInMinutes,
		ReleaseDate:      e.ReleaseDate.UTC(),
		FilmRating:       movie.FilmRating(e.FilmRating),
		Genre:            e.Genre,
		Director:         e.Director,
		Plot:             e.Plot,
		Metascore:        e.Metascore,
		ImdbRating:       e.ImdbRating,
		ImdbVotes:        e.ImdbVotes,
	}
}
