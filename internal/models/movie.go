package models

import "time"

// OverviewNotAvailable marks a movie whose metadata source had no synopsis.
// It is distinct from the empty string so similarity logic can tell
// "provider had no data" apart from "provider sent empty text".
const OverviewNotAvailable = "N/A"

type Movie struct {
	ID                int64     `json:"id" db:"id"`
	TMDBID            int64     `json:"tmdb_id" db:"tmdb_id"`
	Title             string    `json:"title" db:"title"`
	OriginalTitle     string    `json:"original_title" db:"original_title"`
	ReleaseDate       string    `json:"release_date" db:"release_date"`
	Runtime           int       `json:"runtime" db:"runtime"`
	Overview          string    `json:"overview" db:"overview"`
	Director          string    `json:"director" db:"director"`
	Cast              string    `json:"cast" db:"cast"`
	ProductionCompany string    `json:"production_company" db:"production_company"`
	Genres            []Genre   `json:"genres,omitempty"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// HasOverview reports whether the movie carries usable synopsis text.
func (m *Movie) HasOverview() bool {
	return m.Overview != "" && m.Overview != OverviewNotAvailable
}

type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
