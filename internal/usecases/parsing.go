package usecases

import (
	"strings"
)

var answerPrefixes = []string{"Analysis:", "Feedback:", "Answer:"}

// CleanModelText strips the wrapping models like to add around plain
// feedback: code fences, a leading label, surrounding blank lines.
func CleanModelText(response string) string {
	text := strings.TrimSpace(response)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// drop an info string such as ```markdown
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = ""
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	for _, p := range answerPrefixes {
		if len(text) >= len(p) && strings.EqualFold(text[:len(p)], p) {
			text = strings.TrimSpace(text[len(p):])
			break
		}
	}

	return text
}
