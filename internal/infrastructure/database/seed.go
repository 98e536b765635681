package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/julianespinel/movies/internal/domain/movie"
)

type seedFile struct {
	Movies []seedMovie `yaml:"movies"`
}

type seedMovie struct {
	ImdbID           string    `yaml:"imdbId"`
	Title            string    `yaml:"title"`
	RuntimeInMinutes int       `yaml:"runtimeInMinutes"`
	ReleaseDate      time.Time `yaml:"releaseDate"`
	FilmRating       string    `yaml:"filmRating"`
	Genre            string    `yaml:"genre"`
	Director         string    `yaml:"director"`
	Plot             string    `yaml:"plot"`
	Metascore        int       `yaml:"metascore"`
	ImdbRating       string    `yaml:"imdbRating"`
	ImdbVotes        int64     `yaml:"imdbVotes"`
}

func (s seedMovie) toDomain() (movie.Movie, error) {
	rating := decimal.Zero
	if s.ImdbRating != "" {
		parsed, err := decimal.NewFromString(s.ImdbRating)
		if err != nil {
			return movie.Movie{}, fmt.Errorf("movie %s: imdbRating: %w", s.ImdbID, err)
		}
		rating = parsed
	}
	return movie.Movie{
		ImdbID:           s.ImdbID,
		Title:            s.Title,
		RuntimeInMinutes: s.RuntimeInMinutes,
		ReleaseDate:      s.ReleaseDate.UTC(),
		FilmRating:       movie.FilmRating(s.FilmRating),
		Genre:            s.Genre,
		Director:         s.Director,
		Plot:             s.Plot,
		Metascore:        s.Metascore,
		ImdbRating:       rating,
		ImdbVotes:        s.ImdbVotes,
	}, nil
}

// LoadSeedFile reads and validates the movies listed in a YAML seed file.
func LoadSeedFile(ctx context.Context, path string) ([]movie.Movie, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	movies := make([]movie.Movie, 0, len(file.Movies))
	for _, entry := range file.Movies {
		m, err := entry.toDomain()
		if err != nil {
			return nil, err
		}
		if err := m.Validate(ctx); err != nil {
			return nil, fmt.Errorf("seed movie %s: %w", entry.ImdbID, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// Seed creates the movies from the YAML file at path through repo when no
// movie is stored yet.
func Seed(ctx context.Context, repo movie.Repository, path string, log zerolog.Logger) error {
	movies, err := LoadSeedFile(ctx, path)
	if err != nil {
		return err
	}

	existing, err := repo.FindByFilter(ctx, movie.Filter{})
	if err != nil {
		return fmt.Errorf("count stored movies: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("rows", len(existing)).Msg("movies table already seeded")
		return nil
	}

	for i := range movies {
		if _, err := repo.Create(ctx, &movies[i]); err != nil {
			return fmt.Errorf("insert seed movie %s: %w", movies[i].ImdbID, err)
		}
	}

	log.Info().Int("rows", len(movies)).Str("file", path).Msg("seeded movies table")
	return nil
}
