package recommend

import (
	"context"
	"unicode/utf8"

	"smartrecruit-backend/internal/llm"
	"smartrecruit-backend/internal/shared/telemetry"
)

const defaultMaxPromptChars = 6000

// Recommender turns extracted resume text into ranked job-title suggestions.
// With a configured llm.Client it tries the remote path first and falls back
// to local keyword matching on any failure. It is safe for concurrent use.
type Recommender struct {
	client         llm.Client
	embedder       Embedder
	maxPromptChars int
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithClient enables the remote-AI path.
func WithClient(c llm.Client) Option {
	return func(r *Recommender) { r.client = c }
}

// WithEmbedder enables similarity re-scoring of heuristic results.
func WithEmbedder(e Embedder) Option {
	return func(r *Recommender) { r.embedder = e }
}

// WithMaxPromptChars bounds how much resume text is sent to the remote API.
func WithMaxPromptChars(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.maxPromptChars = n
		}
	}
}

// New constructs a Recommender. Without WithClient it runs heuristic-only.
func New(opts ...Option) *Recommender {
	r := &Recommender{maxPromptChars: defaultMaxPromptChars}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend produces an ordered suggestion list for the given resume text.
// It never fails: remote problems are recovered into the heuristic path, and
// zero keyword matches yield a valid empty result.
func (r *Recommender) Recommend(ctx context.Context, text string) Result {
	if r.client != nil {
		outcome := r.tryRemote(ctx, text)
		if outcome.OK() {
			return Result{
				Suggestions: withRankConfidence(outcome.Titles),
				Source:      SourceRemote,
			}
		}
		telemetry.Info("recommend.remote_fallback", map[string]any{
			"reason": outcome.Failure,
		})
	}
	return r.heuristic(ctx, text)
}

// tryRemote performs the single remote attempt. No retries: a failure of any
// kind selects the heuristic path.
func (r *Recommender) tryRemote(ctx context.Context, text string) RemoteOutcome {
	prompt := llm.RecommendPrompt(truncate(text, r.maxPromptChars))
	reply, err := r.client.Complete(ctx, prompt)
	if err != nil {
		return RemoteOutcome{Failure: err.Error()}
	}
	titles := ParseTitles(reply)
	if len(titles) == 0 {
		return RemoteOutcome{Failure: "unparseable remote response"}
	}
	return RemoteOutcome{Titles: titles}
}

func (r *Recommender) heuristic(ctx context.Context, text string) Result {
	titles, matched := heuristicTitles(text)
	suggestions := withRankConfidence(titles)

	if r.embedder != nil && len(suggestions) > 1 {
		rescored, err := rankBySimilarity(ctx, r.embedder, text, suggestions)
		if err != nil {
			telemetry.Info("recommend.embedding_skipped", map[string]any{
				"reason": err.Error(),
			})
		} else {
			suggestions = rescored
		}
	}

	return Result{
		Suggestions:   suggestions,
		Source:        SourceHeuristic,
		MatchedSkills: matched,
	}
}

// withRankConfidence assigns descending confidence scores from 0.9 down to
// 0.5 by rank.
func withRankConfidence(titles []string) []Suggestion {
	if len(titles) == 0 {
		return nil
	}
	out := make([]Suggestion, 0, len(titles))
	span := len(titles) - 1
	for i, title := range titles {
		conf := 0.9
		if span > 0 {
			conf = 0.9 - 0.4*float64(i)/float64(span)
		}
		out = append(out, Suggestion{Title: title, Confidence: round2(conf)})
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// truncate cuts text to at most limit bytes without splitting a UTF-8 rune.
func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
