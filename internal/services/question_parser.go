package services

import (
	"encoding/json"
	"strings"
)

// ParseQuestions reads generator output as a JSON array of strings and falls
// back to one question per non-empty line when it is not one. It never fails,
// but the result may be empty.
func ParseQuestions(raw string) []string {
	var structured []string
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &structured); err == nil {
		return compactLines(structured)
	}

	return compactLines(strings.Split(raw, "\n"))
}

// stripCodeFence removes a surrounding ```json ... ``` block that models like
// to wrap structured output in.
func stripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}

	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

func compactLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
