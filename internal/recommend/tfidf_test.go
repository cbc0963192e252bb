package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenizeFiltersStopwordsAndPunctuation(t *testing.T) {
	got := tokenize("The ship is lost in a storm, and THE crew panics!")
	want := []string{"ship", "lost", "storm", "crew", "panics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeHandlesNonLatinText(t *testing.T) {
	got := tokenize("우주 탐사선이 토성으로 향한다")
	if len(got) == 0 {
		t.Fatal("tokenize() dropped all non-Latin tokens")
	}
	for _, tok := range got {
		if tok == "" {
			t.Error("tokenize() produced an empty token")
		}
	}
}

func TestTransformIdenticalTextsHaveCosineOne(t *testing.T) {
	docs := []string{
		"a crew explores a distant planet",
		"a detective hunts a killer",
	}
	v := NewVectorizer()
	v.Fit(docs)

	a := v.Transform(docs[0])
	b := v.Transform(docs[0])
	if sim := cosine(a, b); math.Abs(sim-1) > 1e-9 {
		t.Errorf("cosine of identical docs = %f, want 1", sim)
	}
}

func TestTransformDisjointTextsHaveCosineZero(t *testing.T) {
	docs := []string{
		"crew explores distant planet",
		"detective hunts killer",
	}
	v := NewVectorizer()
	v.Fit(docs)

	if sim := cosine(v.Transform(docs[0]), v.Transform(docs[1])); sim != 0 {
		t.Errorf("cosine of disjoint docs = %f, want 0", sim)
	}
}

func TestTransformStopwordOnlyTextIsZeroVector(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"crew explores distant planet"})

	vec := v.Transform("the and of a an is")
	if len(vec) != 0 {
		t.Errorf("stopword-only text produced non-zero vector: %v", vec)
	}
	if sim := cosine(vec, v.Transform("crew explores distant planet")); sim != 0 {
		t.Errorf("zero vector cosine = %f, want 0", sim)
	}
}

func TestTransformIgnoresOutOfVocabularyTerms(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"crew explores planet"})

	vec := v.Transform("crew submarine")
	if len(vec) != 1 {
		t.Fatalf("expected exactly the in-vocabulary term, got %d entries", len(vec))
	}
}

func TestCosineRangeIsNonNegative(t *testing.T) {
	docs := []string{
		"space crew survives a black hole",
		"a crew mutiny aboard a space freighter",
		"romance in paris",
	}
	v := NewVectorizer()
	v.Fit(docs)

	seed := v.Transform("a space crew drifts past a black hole")
	for i, doc := range docs {
		sim := cosine(seed, v.Transform(doc))
		if sim < 0 || sim > 1+1e-9 {
			t.Errorf("doc %d: cosine = %f, want within [0,1]", i, sim)
		}
	}
}
