package domain

import "math"

// CosineSimilarity returns the normalised dot product of two vectors,
// measuring directional closeness independent of magnitude.
//
// It returns 0.0 (a neutral score, not an error) when either vector has
// zero norm, is empty, or when the dimensions differ. Mismatched
// dimensions have no meaningful similarity; scoring them as neutral
// keeps a bad candidate from panicking a whole query.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
