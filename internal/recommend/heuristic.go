package recommend

import "strings"

type skillMapping struct {
	keyword string
	titles  []string
}

// skillMappings is scanned in order; first-seen order of matched titles is
// the rank order of the heuristic result.
var skillMappings = []skillMapping{
	{keyword: "python", titles: []string{"Python Developer", "Backend Engineer"}},
	{keyword: "django", titles: []string{"Backend Engineer"}},
	{keyword: "flask", titles: []string{"Backend Engineer"}},
	{keyword: "golang", titles: []string{"Go Developer", "Backend Engineer"}},
	{keyword: "java", titles: []string{"Java Developer", "Backend Engineer"}},
	{keyword: "javascript", titles: []string{"Frontend Engineer", "JavaScript Developer"}},
	{keyword: "typescript", titles: []string{"Frontend Engineer"}},
	{keyword: "react", titles: []string{"React Developer", "Frontend Engineer"}},
	{keyword: "vue", titles: []string{"Frontend Engineer"}},
	{keyword: "sql", titles: []string{"Database Administrator", "Data Analyst"}},
	{keyword: "postgres", titles: []string{"Database Administrator"}},
	{keyword: "aws", titles: []string{"Cloud Engineer", "DevOps Engineer"}},
	{keyword: "azure", titles: []string{"Cloud Engineer"}},
	{keyword: "gcp", titles: []string{"Cloud Engineer"}},
	{keyword: "docker", titles: []string{"DevOps Engineer"}},
	{keyword: "kubernetes", titles: []string{"DevOps Engineer", "Site Reliability Engineer"}},
	{keyword: "terraform", titles: []string{"DevOps Engineer", "Infrastructure Engineer"}},
	{keyword: "machine learning", titles: []string{"Machine Learning Engineer", "Data Scientist"}},
	{keyword: "tensorflow", titles: []string{"Machine Learning Engineer"}},
	{keyword: "pytorch", titles: []string{"Machine Learning Engineer"}},
	{keyword: "nlp", titles: []string{"NLP Engineer", "Machine Learning Engineer"}},
}

// heuristicTitles scans the text for known skill keywords with
// case-insensitive substring matching and maps them to job titles,
// deduplicated in first-seen order. Zero matches yields an empty list.
func heuristicTitles(text string) (titles []string, matched []string) {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	for _, m := range skillMappings {
		if !strings.Contains(lower, m.keyword) {
			continue
		}
		matched = append(matched, m.keyword)
		for _, title := range m.titles {
			key := strings.ToLower(title)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			titles = append(titles, title)
		}
	}
	return titles, matched
}
