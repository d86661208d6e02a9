package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/recommend_v1.txt
var recommendPromptV1 string

// SystemPrompt is the fixed system message for the recommendation request.
const SystemPrompt = "You are a helpful assistant that extracts job title recommendations from resumes and returns a JSON object."

// RecommendPrompt builds the user prompt for the given resume text.
func RecommendPrompt(resumeText string) string {
	replacer := strings.NewReplacer("{{RESUME_TEXT}}", resumeText)
	return replacer.Replace(recommendPromptV1)
}
