package models

import "testing"

func TestMovieFromTMDBFlattensCredits(t *testing.T) {
	details := &TMDBMovieDetails{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		ReleaseDate:   "1999-03-30",
		Runtime:       136,
		Overview:      "A hacker discovers reality is a simulation.",
		Genres:        []TMDBGenre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		ProductionCompanies: []TMDBCompany{
			{Name: "Village Roadshow Pictures"}, {Name: "Warner Bros."},
		},
	}
	credits := &TMDBCredits{
		Cast: []TMDBCast{
			{Name: "Keanu Reeves"}, {Name: "Laurence Fishburne"}, {Name: "Carrie-Anne Moss"},
			{Name: "Hugo Weaving"}, {Name: "Gloria Foster"}, {Name: "Joe Pantoliano"},
		},
		Crew: []TMDBCrew{
			{Name: "Lana Wachowski", Job: "Director"},
			{Name: "Lilly Wachowski", Job: "Director"},
			{Name: "Bill Pope", Job: "Director of Photography"},
		},
	}

	m := MovieFromTMDB(details, credits)

	if m.TMDBID != 603 || m.Runtime != 136 {
		t.Errorf("attributes not carried over: %+v", m)
	}
	if m.Director != "Lana Wachowski, Lilly Wachowski" {
		t.Errorf("director = %q, want both directors and no other crew", m.Director)
	}
	// Top 5 credited names only.
	if m.Cast != "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss, Hugo Weaving, Gloria Foster" {
		t.Errorf("cast = %q, want top 5 names", m.Cast)
	}
	if m.ProductionCompany != "Village Roadshow Pictures, Warner Bros." {
		t.Errorf("production company = %q", m.ProductionCompany)
	}
	if len(m.Genres) != 2 || m.Genres[1].Name != "Science Fiction" {
		t.Errorf("genres = %+v", m.Genres)
	}
}

func TestMovieFromTMDBDefaults(t *testing.T) {
	m := MovieFromTMDB(&TMDBMovieDetails{ID: 1, Title: "Bare"}, nil)

	if m.Overview != OverviewNotAvailable {
		t.Errorf("overview = %q, want the %q sentinel", m.Overview, OverviewNotAvailable)
	}
	if m.Runtime != 0 {
		t.Errorf("runtime = %d, want 0", m.Runtime)
	}
	if m.Director != "" || m.Cast != "" {
		t.Errorf("credits fields should be empty without credits: %q / %q", m.Director, m.Cast)
	}
	if m.HasOverview() {
		t.Error("sentinel overview must not count as usable synopsis text")
	}
}
