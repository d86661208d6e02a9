package recommend

// Source identifies which path produced a recommendation result.
type Source string

const (
	// SourceRemote marks results produced by the remote completion API.
	SourceRemote Source = "remote"
	// SourceHeuristic marks results produced by local keyword matching.
	SourceHeuristic Source = "heuristic"
)

// Suggestion is a recommended job title. Insertion order is rank order.
type Suggestion struct {
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of one recommendation run. It exists only for the
// duration of a single request.
type Result struct {
	Suggestions   []Suggestion `json:"suggestions"`
	Source        Source       `json:"source"`
	MatchedSkills []string     `json:"matchedSkills,omitempty"`
}

// Empty reports whether no titles were suggested.
func (r Result) Empty() bool {
	return len(r.Suggestions) == 0
}

// RemoteOutcome is the result of a single remote completion attempt. A failed
// attempt is a recovered condition, not an error: the caller falls back to
// the heuristic path.
type RemoteOutcome struct {
	Titles  []string
	Failure string
}

// OK reports whether the remote attempt produced usable titles.
func (o RemoteOutcome) OK() bool {
	return o.Failure == ""
}
