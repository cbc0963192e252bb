package handlers

import (
	"encoding/json"
	"net/http"

	"movierec/internal/container"
)

func ListMovies(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		movies, err := c.CatalogService.List(r.Context())
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"movies": movies})
	}
}

func SearchMovies(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			writeError(w, http.StatusUnprocessableEntity, "query parameter q is required")
			return
		}

		results, err := c.CatalogService.Search(r.Context(), query)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

type importRequest struct {
	TMDBID int64 `json:"tmdb_id"`
}

// ImportMovie pulls a movie from the metadata provider into the catalog.
// Importing an already-known TMDB id is idempotent.
func ImportMovie(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TMDBID == 0 {
			writeError(w, http.StatusUnprocessableEntity, "tmdb_id is required")
			return
		}

		movie, err := c.CatalogService.Import(r.Context(), req.TMDBID)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, movie)
	}
}
