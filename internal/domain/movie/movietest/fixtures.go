// Package movietest provides movie fixtures shared by tests across layers.
package movietest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianespinel/movies/internal/domain/movie"
)

// Matrix returns "The Matrix" (tt0133093).
func Matrix() movie.Movie {
	return movie.Movie{
		ImdbID:           "tt0133093",
		Title:            "The Matrix",
		RuntimeInMinutes: 136,
		ReleaseDate:      time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC),
		FilmRating:       movie.FilmRatingR,
		Genre:            "Action, Sci-Fi",
		Director:         "The Wachowski brothers",
		Plot:             "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		Metascore:        73,
		ImdbRating:       decimal.RequireFromString("8.7"),
		ImdbVotes:        1023621,
	}
}

// MatrixReloaded returns "The Matrix Reloaded" (tt0234215).
func MatrixReloaded() movie.Movie {
	return movie.Movie{
		ImdbID:           "tt0234215",
		Title:            "The Matrix Reloaded",
		RuntimeInMinutes: 138,
		ReleaseDate:      time.Date(2003, time.May, 15, 0, 0, 0, 0, time.UTC),
		FilmRating:       movie.FilmRatingR,
		Genre:            "Action, Sci-Fi",
		Director:         "The Wachowski brothers",
		Plot: "Neo and the rebel leaders estimate that they have 72 hours until 250,000 probes discover Zion and " +
			"destroy it and its inhabitants. During this, Neo must decide how he can save Trinity from a dark fate in his dreams.",
		Metascore:  62,
		ImdbRating: decimal.RequireFromString("7.2"),
		ImdbVotes:  458720,
	}
}

// Invalid returns The Matrix with an empty title and a negative runtime.
func Invalid() movie.Movie {
	m := Matrix()
	m.Title = ""
	m.RuntimeInMinutes = -136
	return m
}

// MatrixFilter is the search that must match both Matrix fixtures.
func MatrixFilter() movie.Filter {
	title := "matrix"
	runtime := 100
	metascore := 6
	rating := decimal.RequireFromString("7.0")
	votes := int64(10000)
	return movie.Filter{
		Title:               &title,
		MinRuntimeInMinutes: &runtime,
		MinMetascore:        &metascore,
		MinImdbRating:       &rating,
		MinImdbVotes:        &votes,
	}
}
