package repository

import (
	"context"
	"errors"
	"fmt"

	"movierec/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository interface {
	// Upsert inserts the movie on first sight of its TMDB id, or unions the
	// supplied genres onto the existing row. Returns the internal id either way.
	Upsert(ctx context.Context, movie *models.Movie) (int64, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	// SharingGenres returns every movie that shares at least one genre with
	// the seed, excluding the seed itself, in stable id order.
	SharingGenres(ctx context.Context, seedID int64) ([]models.Movie, error)
	// Random samples up to limit movies uniformly without replacement.
	Random(ctx context.Context, limit int) ([]models.Movie, error)
	List(ctx context.Context) ([]models.Movie, error)
}

type catalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{db: db}
}

const movieColumns = `m.id, m.tmdb_id, m.title, m.original_title, m.release_date,
	m.runtime, m.overview, m.director, m."cast", m.production_company, m.created_at`

func scanMovie(row pgx.Row, m *models.Movie) error {
	return row.Scan(&m.ID, &m.TMDBID, &m.Title, &m.OriginalTitle, &m.ReleaseDate,
		&m.Runtime, &m.Overview, &m.Director, &m.Cast, &m.ProductionCompany, &m.CreatedAt)
}

func (r *catalogRepository) Upsert(ctx context.Context, movie *models.Movie) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM movies WHERE tmdb_id = $1`, movie.TMDBID).Scan(&id)
	switch {
	case err == nil:
		// Existing movie: genres are unioned, never replaced.
	case errors.Is(err, pgx.ErrNoRows):
		insert := `
		INSERT INTO movies (tmdb_id, title, original_title, release_date, runtime,
			overview, director, "cast", production_company, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id
		`
		err = tx.QueryRow(ctx, insert,
			movie.TMDBID, movie.Title, movie.OriginalTitle, movie.ReleaseDate,
			movie.Runtime, movie.Overview, movie.Director, movie.Cast,
			movie.ProductionCompany).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert movie: %w", err)
		}
	default:
		return 0, fmt.Errorf("failed to look up movie by tmdb id: %w", err)
	}

	if err := attachGenres(ctx, tx, id, movie.Genres); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit movie upsert: %w", err)
	}
	return id, nil
}

// attachGenres is idempotent: re-attaching a (movie, genre) pair is a no-op.
func attachGenres(ctx context.Context, tx pgx.Tx, movieID int64, genres []models.Genre) error {
	for _, g := range genres {
		_, err := tx.Exec(ctx, `
		INSERT INTO genres (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`, g.ID, g.Name)
		if err != nil {
			return fmt.Errorf("failed to insert genre %d: %w", g.ID, err)
		}

		_, err = tx.Exec(ctx, `
		INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, movieID, g.ID)
		if err != nil {
			return fmt.Errorf("failed to attach genre %d to movie %d: %w", g.ID, movieID, err)
		}
	}
	return nil
}

func (r *catalogRepository) Get(ctx context.Context, id int64) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = $1`

	var movie models.Movie
	if err := scanMovie(r.db.QueryRow(ctx, query, id), &movie); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	genres, err := r.genresFor(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.Genres = genres
	return &movie, nil
}

func (r *catalogRepository) genresFor(ctx context.Context, movieID int64) ([]models.Genre, error) {
	rows, err := r.db.Query(ctx, `
	SELECT g.id, g.name
	FROM genres g
	JOIN movie_genres mg ON mg.genre_id = g.id
	WHERE mg.movie_id = $1
	ORDER BY g.id`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *catalogRepository) SharingGenres(ctx context.Context, seedID int64) ([]models.Movie, error) {
	// Stable id ordering keeps downstream similarity tie-breaks deterministic.
	query := `
	SELECT DISTINCT ` + movieColumns + `
	FROM movies m
	JOIN movie_genres mg ON mg.movie_id = m.id
	WHERE mg.genre_id IN (SELECT genre_id FROM movie_genres WHERE movie_id = $1)
	  AND m.id != $1
	ORDER BY m.id
	`
	return r.queryMovies(ctx, query, seedID)
}

func (r *catalogRepository) Random(ctx context.Context, limit int) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m ORDER BY random() LIMIT $1`
	return r.queryMovies(ctx, query, limit)
}

func (r *catalogRepository) List(ctx context.Context) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m ORDER BY m.id`
	return r.queryMovies(ctx, query)
}

func (r *catalogRepository) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
