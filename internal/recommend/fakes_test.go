package recommend

import (
	"context"
	"sort"
	"sync"

	"movierec/internal/models"
	"movierec/internal/repository"
)

// fakeCatalog is an in-memory Catalog honoring the store contracts: stable id
// ordering for the candidate pool and no-replacement sampling.
type fakeCatalog struct {
	mu           sync.Mutex
	movies       map[int64]*models.Movie
	sharingCalls int
	randomCalls  int
}

func newFakeCatalog(movies ...*models.Movie) *fakeCatalog {
	c := &fakeCatalog{movies: make(map[int64]*models.Movie)}
	for _, m := range movies {
		c.movies[m.ID] = m
	}
	return c
}

func (c *fakeCatalog) Get(ctx context.Context, id int64) (*models.Movie, error) {
	m, ok := c.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (c *fakeCatalog) SharingGenres(ctx context.Context, seedID int64) ([]models.Movie, error) {
	c.mu.Lock()
	c.sharingCalls++
	c.mu.Unlock()

	seed, ok := c.movies[seedID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	seedGenres := make(map[int64]struct{})
	for _, g := range seed.Genres {
		seedGenres[g.ID] = struct{}{}
	}

	var pool []models.Movie
	for _, m := range c.movies {
		if m.ID == seedID {
			continue
		}
		for _, g := range m.Genres {
			if _, ok := seedGenres[g.ID]; ok {
				pool = append(pool, *m)
				break
			}
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return pool, nil
}

func (c *fakeCatalog) Random(ctx context.Context, limit int) ([]models.Movie, error) {
	c.mu.Lock()
	c.randomCalls++
	c.mu.Unlock()

	var all []models.Movie
	for _, m := range c.movies {
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func movie(id int64, title, overview string, genreIDs ...int64) *models.Movie {
	m := &models.Movie{ID: id, Title: title, Overview: overview}
	for _, gid := range genreIDs {
		m.Genres = append(m.Genres, models.Genre{ID: gid})
	}
	return m
}
