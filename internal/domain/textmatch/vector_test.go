package textmatch

import (
	"math"
	"reflect"
	"testing"
)

func TestVocabularyFirstSeenOrder(t *testing.T) {
	a := []string{"react", "node", "react", "aws"}
	b := []string{"node", "docker", "aws"}

	got := Vocabulary(a, b)
	want := []string{"react", "node", "aws", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Vocabulary = %v, want %v", got, want)
	}
}

func TestFrequencyVector(t *testing.T) {
	tokens := []string{"go", "go", "sql", "go"}
	vocab := []string{"go", "sql", "docker"}

	got := FrequencyVector(tokens, vocab)
	want := []int{3, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FrequencyVector = %v, want %v", got, want)
	}
}

func TestCosineSelfSimilarity(t *testing.T) {
	tokens := []string{"go", "postgres", "go", "redis"}
	vocab := Vocabulary(tokens, tokens)
	vec := FrequencyVector(tokens, vocab)

	got := Cosine(vec, vec)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected self-similarity 1.0, got %v", got)
	}
}

func TestCosineSymmetry(t *testing.T) {
	a := Tokenize("React TypeScript Node.js AWS Docker")
	b := Tokenize("We need a React and Node.js developer with AWS experience")

	ab := Similarity(a, b)
	ba := Similarity(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestCosineZeroVector(t *testing.T) {
	zero := []int{0, 0, 0}
	other := []int{1, 2, 3}

	if got := Cosine(zero, other); got != 0 {
		t.Fatalf("expected 0 for zero vector, got %v", got)
	}
	if got := Cosine(zero, zero); got != 0 {
		t.Fatalf("expected 0 for two zero vectors, got %v", got)
	}
	if got := Cosine(nil, nil); got != 0 {
		t.Fatalf("expected 0 for empty vectors, got %v", got)
	}
	if math.IsNaN(Cosine(zero, other)) {
		t.Fatalf("cosine must never be NaN")
	}
}

func TestSimilarityDeterministic(t *testing.T) {
	a := Tokenize("golang backend microservices")
	b := Tokenize("backend golang distributed systems")

	first := Similarity(a, b)
	for i := 0; i < 10; i++ {
		if got := Similarity(a, b); got != first {
			t.Fatalf("similarity drifted on call %d: %v vs %v", i, got, first)
		}
	}
}

func TestSimilarityNoOverlap(t *testing.T) {
	a := Tokenize("haskell erlang")
	b := Tokenize("carpentry plumbing")

	if got := Similarity(a, b); got != 0 {
		t.Fatalf("expected 0 for disjoint vocabularies, got %v", got)
	}
}

func TestScorePartialOverlap(t *testing.T) {
	resume := Tokenize("React TypeScript Node.js AWS Docker")
	job := Tokenize("We need a React and Node.js developer with AWS experience")

	score := Score(Similarity(resume, job))
	if score <= 0 || score >= 100 {
		t.Fatalf("expected partial-overlap score in (0,100), got %v", score)
	}
}

func TestScoreRounding(t *testing.T) {
	if got := Score(0.12345); got != 12.3 {
		t.Fatalf("expected 12.3, got %v", got)
	}
	if got := Score(1.0); got != 100.0 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := Score(-0.5); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}
