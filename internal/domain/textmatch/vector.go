package textmatch

import "math"

// Vocabulary returns the distinct terms of a followed by b, in first-seen
// order. The ordering is stable for identical inputs.
func Vocabulary(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, seq := range [][]string{a, b} {
		for _, term := range seq {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, term)
		}
	}
	return out
}

// FrequencyVector counts, per vocabulary term, how often it occurs in tokens.
func FrequencyVector(tokens, vocab []string) []int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	vec := make([]int, len(vocab))
	for i, term := range vocab {
		vec[i] = counts[term]
	}
	return vec
}

// Cosine computes cosine similarity between two equal-length frequency
// vectors. A zero vector on either side yields 0, never NaN.
func Cosine(u, v []int) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}

	var dot, normU, normV float64
	for i := 0; i < n; i++ {
		dot += float64(u[i]) * float64(v[i])
		normU += float64(u[i]) * float64(u[i])
		normV += float64(v[i]) * float64(v[i])
	}
	if normU == 0 || normV == 0 {
		return 0
	}
	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}

// Similarity scores two token sequences in [0,1] using a shared
// first-seen-order vocabulary built from a then b.
func Similarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	vocab := Vocabulary(a, b)
	return Cosine(FrequencyVector(a, vocab), FrequencyVector(b, vocab))
}

// Score scales a similarity value to a 0-100 match score rounded to one
// decimal place.
func Score(similarity float64) float64 {
	if similarity < 0 {
		similarity = 0
	}
	if similarity > 1 {
		similarity = 1
	}
	return math.Round(similarity*1000) / 10
}
