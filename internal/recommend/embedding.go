package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Embedder computes one vector per input text.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}

// rankBySimilarity re-scores suggestions by cosine similarity between the
// resume text and each title, descending, ties broken by the incoming order.
// It is purely additive: callers keep the original suggestions on error.
func rankBySimilarity(ctx context.Context, e Embedder, text string, suggestions []Suggestion) ([]Suggestion, error) {
	inputs := make([]string, 0, len(suggestions)+1)
	inputs = append(inputs, text)
	for _, s := range suggestions {
		inputs = append(inputs, s.Title)
	}

	vecs, err := e.Embed(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(inputs) {
		return nil, fmt.Errorf("embedder returned %d vectors, want %d", len(vecs), len(inputs))
	}

	type ranked struct {
		Suggestion
		order int
	}
	out := make([]ranked, len(suggestions))
	resume := vecs[0]
	for i, s := range suggestions {
		out[i] = ranked{
			Suggestion: Suggestion{
				Title:      s.Title,
				Confidence: round2(normalizeSimilarity(cosine(resume, vecs[i+1]))),
			},
			order: i,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].order < out[j].order
	})

	result := make([]Suggestion, len(out))
	for i, r := range out {
		result[i] = r.Suggestion
	}
	return result, nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
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

// normalizeSimilarity maps cosine similarity from [-1, 1] into [0, 1].
func normalizeSimilarity(sim float64) float64 {
	return (sim + 1) / 2
}
