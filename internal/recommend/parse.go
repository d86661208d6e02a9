package recommend

import (
	"encoding/json"
	"strings"
	"unicode"
)

const maxParsedTitles = 10

// ParseTitles extracts job titles from a remote completion reply. The remote
// contract guarantees no schema, so parsing is best-effort: JSON object with
// a recommended_titles key, then a bare JSON array, then line splitting with
// bullet and numbering prefixes stripped. An empty return means the reply was
// unusable and the caller should fall back.
func ParseTitles(reply string) []string {
	clean := stripCodeFence(reply)
	if clean == "" {
		return nil
	}

	var obj struct {
		RecommendedTitles []string `json:"recommended_titles"`
	}
	if err := json.Unmarshal([]byte(clean), &obj); err == nil && len(obj.RecommendedTitles) > 0 {
		return dedupeTitles(obj.RecommendedTitles)
	}

	var arr []string
	if err := json.Unmarshal([]byte(clean), &arr); err == nil && len(arr) > 0 {
		return dedupeTitles(arr)
	}

	return dedupeTitles(splitLines(clean))
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		title := stripListPrefix(strings.TrimSpace(line))
		if title == "" || strings.HasSuffix(title, ":") {
			continue
		}
		if len([]rune(title)) > 80 {
			continue
		}
		out = append(out, title)
	}
	return out
}

// stripListPrefix drops leading bullets ("-", "*", "•") and numbering
// ("1.", "2)") from a line.
func stripListPrefix(line string) string {
	s := strings.TrimLeft(line, "-*• \t")
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = s[i+1:]
	}
	return strings.Trim(strings.TrimSpace(s), `"',`)
}

func dedupeTitles(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, title := range raw {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
		if len(out) == maxParsedTitles {
			break
		}
	}
	return out
}
