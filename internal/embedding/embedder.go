// Package embedding implements the deterministic text embedder used by the
// product similarity search. It is not a learned embedding: it combines a
// lossy character-frequency signature with fixed domain-keyword boosts, which
// is enough to rank catalog items with overlapping vocabulary above unrelated
// ones.
package embedding

import (
	"math"
	"strings"
)

// Dimension is the fixed length of every embedding vector.
const Dimension = 100

// keywordBoost is a bilingual domain term with its boost weight. The order
// of the list is significant: a keyword's position determines the vector
// slot it contributes to.
type keywordBoost struct {
	term   string
	weight float64
}

// domainKeywords are checked as substrings of the lowered input. Several
// keywords share a slot (rank mod 10); collisions are additive.
var domainKeywords = []keywordBoost{
	{"kulit", 1.0}, {"skin", 1.0},
	{"jerawat", 0.9}, {"acne", 0.9},
	{"kering", 0.8}, {"dry", 0.8},
	{"berminyak", 0.8}, {"oily", 0.8},
	{"sensitif", 0.7}, {"sensitive", 0.7},
	{"pori", 0.6}, {"pore", 0.6},
	{"bekas", 0.5}, {"scar", 0.5},
	{"merah", 0.5}, {"redness", 0.5},
	{"gatal", 0.4}, {"itchy", 0.4},
	{"face", 0.3},
}

// Embed maps arbitrary text to a unit-normalized vector of length Dimension.
// Empty or whitespace-only input yields the zero vector. The function is
// total: any input, including non-ASCII text, produces finite values.
func Embed(text string) []float64 {
	vec := make([]float64, Dimension)

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return vec
	}

	for i, r := range []rune(text) {
		if i >= Dimension {
			break
		}
		vec[i%Dimension] += float64(r) / 1000.0
	}

	for rank, kw := range domainKeywords {
		if strings.Contains(text, kw.term) {
			vec[Dimension-1-rank%10] += kw.weight
		}
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors. A zero-norm input
// (e.g. the embedding of an empty query) yields 0, never NaN.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
