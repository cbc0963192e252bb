package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"movierec/internal/logger"
	"movierec/internal/models"
	"movierec/internal/repository"
)

const (
	genreSciFi  = 878
	genreAction = 28
	genreDrama  = 18
	genreComedy = 35
)

func titles(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestRecommendSimilarExcludesNonSharingGenres(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a soldier fights through a war zone", genreAction, genreDrama),
		movie(2, "Action A", "a soldier returns from a war", genreAction),
		movie(3, "Drama B", "a family falls apart during a war", genreDrama),
		movie(4, "Both C", "a soldier and his family in a war zone", genreAction, genreDrama),
		movie(5, "Comedy X", "a wedding goes hilariously wrong", genreComedy),
		movie(6, "SciFi Y", "robots colonize mars", genreSciFi),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d movies, want 3: %v", len(got), titles(got))
	}
	for _, m := range got {
		if m.Title == "Comedy X" || m.Title == "SciFi Y" {
			t.Errorf("movie %q shares no genre with the seed but was recommended", m.Title)
		}
		if m.ID == 1 {
			t.Error("seed movie recommended to itself")
		}
	}
}

func TestRecommendSimilarRanksByOverviewSimilarity(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a space crew drifts toward a black hole", genreSciFi),
		movie(2, "Close", "a space crew escapes a black hole", genreSciFi),
		movie(3, "Far", "a chef opens a restaurant", genreSciFi),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	want := []string{"Close", "Far"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("ranking = %v, want %v", titles(got), want)
	}
}

func TestRecommendSimilarEmptySynopsisSeedReturnsEmpty(t *testing.T) {
	for _, overview := range []string{"", models.OverviewNotAvailable} {
		catalog := newFakeCatalog(
			movie(1, "Seed", overview, genreSciFi),
			movie(2, "Other", "a space crew escapes a black hole", genreSciFi),
		)
		r := NewSimilarityRecommender(catalog, logger.Get())

		got, err := r.RecommendSimilar(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("overview %q: RecommendSimilar() error = %v", overview, err)
		}
		if len(got) != 0 {
			t.Errorf("overview %q: got %d movies, want empty", overview, len(got))
		}
	}
}

func TestRecommendSimilarNoGenresReturnsEmpty(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a space crew drifts toward a black hole"),
		movie(2, "Other", "a space crew escapes a black hole", genreSciFi),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d movies, want empty for genre-less seed", len(got))
	}
}

func TestRecommendSimilarEmptyPoolReturnsEmpty(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a space crew drifts toward a black hole", genreSciFi),
		movie(2, "Comedy", "a wedding goes wrong", genreComedy),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d movies, want empty for empty pool", len(got))
	}
}

func TestRecommendSimilarStopwordOnlyCandidateSortsLast(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a space crew drifts toward a black hole", genreSciFi),
		movie(2, "Blank", "the and of it", genreSciFi),
		movie(3, "Close", "a space crew escapes a black hole", genreSciFi),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d movies, want 2 (zero-similarity candidates stay in)", len(got))
	}
	if got[len(got)-1].Title != "Blank" {
		t.Errorf("stopword-only candidate should sort last, got order %v", titles(got))
	}
}

func TestRecommendSimilarIsDeterministic(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a heist crew robs a casino", genreAction),
		movie(2, "A", "a heist goes wrong", genreAction),
		movie(3, "B", "a crew plans a casino job", genreAction),
		movie(4, "C", "an undercover cop joins a heist crew", genreAction),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	first, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	second, err := r.RecommendSimilar(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if !reflect.DeepEqual(titles(first), titles(second)) {
		t.Errorf("two runs differ: %v vs %v", titles(first), titles(second))
	}
}

func TestRecommendSimilarRespectsLimit(t *testing.T) {
	catalog := newFakeCatalog(
		movie(1, "Seed", "a detective hunts a serial killer", genreDrama),
		movie(2, "A", "a detective on a case", genreDrama),
		movie(3, "B", "a killer on the loose", genreDrama),
		movie(4, "C", "a hunt through the city", genreDrama),
	)
	r := NewSimilarityRecommender(catalog, logger.Get())

	got, err := r.RecommendSimilar(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("RecommendSimilar() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d movies, want limit of 2", len(got))
	}
}

func TestRecommendSimilarUnknownSeedReturnsNotFound(t *testing.T) {
	r := NewSimilarityRecommender(newFakeCatalog(), logger.Get())

	_, err := r.RecommendSimilar(context.Background(), 42, 5)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
