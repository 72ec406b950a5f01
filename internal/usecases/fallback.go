package usecases

import (
	"strings"

	"mindflow/internal/models"
	"mindflow/internal/mood"
)

const (
	highStress = 7
	lowSleep   = 6.0
	lowMood    = 4
)

// neutralEntry trips no threshold.
var neutralEntry = models.Entry{Mood: mood.FromNumber(mood.DefaultScore), SleepHours: lowSleep}

// FallbackText is the canned feedback used when the model cannot answer. It
// is built from the same thresholds the dashboard highlights.
func FallbackText(e models.Entry) string {
	var tips []string

	if stressOutOfTen(e.StressLevel) >= highStress {
		tips = append(tips, "Your stress is running high today. Try a few minutes of slow breathing or a short walk, and see if one task can wait until tomorrow.")
	}
	if e.SleepHours < lowSleep {
		tips = append(tips, "You slept less than six hours. An earlier wind-down and less screen time before bed can help tonight.")
	}
	if mood.ToNumber(e.Mood) <= lowMood {
		tips = append(tips, "It sounds like a heavy day. Reaching out to someone you trust or writing a little more about what is weighing on you can lighten the load.")
	}

	if len(tips) == 0 {
		return "You're in a good place today. Keep up the routines that are working: steady sleep, regular breaks, and checking in with yourself."
	}
	return strings.Join(tips, "\n\n")
}
