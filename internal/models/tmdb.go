package models

import "strings"

// Wire types for the TMDB v3 API. Only the fields the catalog consumes are
// mapped; everything else in the payloads is ignored.

type TMDBSearchResponse struct {
	Page         int          `json:"page"`
	Results      []TMDBResult `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

type TMDBResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

type TMDBMovieDetails struct {
	ID                  int64         `json:"id"`
	Title               string        `json:"title"`
	OriginalTitle       string        `json:"original_title"`
	ReleaseDate         string        `json:"release_date"`
	Runtime             int           `json:"runtime"`
	Overview            string        `json:"overview"`
	Genres              []TMDBGenre   `json:"genres"`
	ProductionCompanies []TMDBCompany `json:"production_companies"`
}

type TMDBGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TMDBCompany struct {
	Name string `json:"name"`
}

type TMDBCredits struct {
	ID   int64      `json:"id"`
	Cast []TMDBCast `json:"cast"`
	Crew []TMDBCrew `json:"crew"`
}

type TMDBCast struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type TMDBCrew struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// topCastNames is how many credited names the catalog keeps, in the
// provider's billing order.
const topCastNames = 5

// MovieFromTMDB converts provider payloads into a catalog Movie. It is the
// only place TMDB field conventions are interpreted: absent runtime becomes 0,
// absent overview becomes the OverviewNotAvailable sentinel, and name lists
// are flattened to comma-joined strings. credits may be nil when the credits
// lookup failed or returned nothing.
func MovieFromTMDB(details *TMDBMovieDetails, credits *TMDBCredits) *Movie {
	m := &Movie{
		TMDBID:        details.ID,
		Title:         details.Title,
		OriginalTitle: details.OriginalTitle,
		ReleaseDate:   details.ReleaseDate,
		Runtime:       details.Runtime,
		Overview:      details.Overview,
	}

	if m.Overview == "" {
		m.Overview = OverviewNotAvailable
	}

	companies := make([]string, 0, len(details.ProductionCompanies))
	for _, c := range details.ProductionCompanies {
		companies = append(companies, c.Name)
	}
	m.ProductionCompany = strings.Join(companies, ", ")

	for _, g := range details.Genres {
		m.Genres = append(m.Genres, Genre{ID: g.ID, Name: g.Name})
	}

	if credits != nil {
		var directors []string
		for _, crew := range credits.Crew {
			if crew.Job == "Director" {
				directors = append(directors, crew.Name)
			}
		}
		m.Director = strings.Join(directors, ", ")

		n := len(credits.Cast)
		if n > topCastNames {
			n = topCastNames
		}
		cast := make([]string, 0, n)
		for _, c := range credits.Cast[:n] {
			cast = append(cast, c.Name)
		}
		m.Cast = strings.Join(cast, ", ")
	}

	return m
}
