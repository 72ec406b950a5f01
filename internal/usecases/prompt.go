package usecases

import (
	"fmt"
	"strings"

	"mindflow/internal/models"
	"mindflow/internal/mood"
)

const feedbackPrompt = `You are a supportive mental wellness assistant.
Read today's check-in and reply with two or three short paragraphs: what stands out,
one or two practical suggestions, and an encouraging close. Do not diagnose.
If the journal mentions self-harm, recommend contacting a crisis line.`

// BuildPrompt renders an entry into the text sent to the model.
func BuildPrompt(e models.Entry) string {
	var b strings.Builder
	b.WriteString(feedbackPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Mood: %s (%d/10)\n", mood.Display(e.Mood), mood.ToNumber(e.Mood))
	fmt.Fprintf(&b, "Stress: %d/10\n", stressOutOfTen(e.StressLevel))
	fmt.Fprintf(&b, "Sleep: %.1f hours\n", e.SleepHours)
	if j := strings.TrimSpace(e.JournalText); j != "" {
		fmt.Fprintf(&b, "Journal:\n%s\n", j)
	}
	return b.String()
}

// stressOutOfTen accepts both form versions: 0..10 and 0..100.
func stressOutOfTen(level int) int {
	if level > 10 {
		return (level + 5) / 10
	}
	return level
}
