package normalize

import "strings"

// skillVocabulary is the fixed token list the extractor recognizes, already
// in canonical casing. Output order is vocabulary order.
var skillVocabulary = []string{
	"React", "JavaScript", "TypeScript", "Python", "Node.js", "Next.js",
	"HTML", "CSS", "Vue", "Angular", "AWS", "Docker", "Git", "SQL",
	"MongoDB", "PostgreSQL", "Redis", "GraphQL", "REST", "Tailwind",
}

// MaxSkills caps the requirements list on every record.
const MaxSkills = 8

// ExtractSkills scans free text for known skill tokens.
func ExtractSkills(text string) []string {
	low := strings.ToLower(text)
	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(low, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == MaxSkills {
				break
			}
		}
	}
	return found
}

// CapList trims a source-provided token list (e.g. API tags used as
// requirements) to n entries, dropping duplicates in source order.
func CapList(in []string, n int) []string {
	seen := map[string]bool{}
	out := make([]string, 0, n)
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
