// Package dashboard turns a user's entry history into the numbers, series and
// buckets the dashboard renders. Everything here is a pure function of the
// entries it is handed; callers load them.
package dashboard

import (
	"fmt"
	"math"

	"mindflow/internal/models"
	"mindflow/internal/mood"
)

type Trend string

const (
	TrendPositive         Trend = "positive"
	TrendStable           Trend = "stable"
	TrendNeedsAttention   Trend = "needs-attention"
	TrendInsufficientData Trend = "insufficient-data"
)

const (
	// Window is how many of the most recent entries the summary covers.
	Window = 7

	minTrendEntries = 4
	trendMargin     = 0.5
)

type Summary struct {
	AvgMood    string  `json:"avg_mood"`
	AvgStress  string  `json:"avg_stress"`
	TotalSleep float64 `json:"total_sleep"`
	EntryCount int     `json:"entry_count"`
	Trend      Trend   `json:"trend"`
}

// Summarize expects entries oldest first. An empty history yields zeroed
// averages and a stable trend.
func Summarize(entries []models.Entry) Summary {
	if len(entries) == 0 {
		return Summary{
			AvgMood:   formatScore(0),
			AvgStress: formatScore(0),
			Trend:     TrendStable,
		}
	}

	recent := entries
	if len(recent) > Window {
		recent = recent[len(recent)-Window:]
	}

	moods := make([]int, len(recent))
	var moodSum, stressSum, sleepSum float64
	for i, e := range recent {
		moods[i] = mood.ToNumber(e.Mood)
		moodSum += float64(moods[i])
		stressSum += float64(e.StressLevel)
		sleepSum += e.SleepHours
	}
	n := float64(len(recent))

	return Summary{
		AvgMood:    formatScore(moodSum / n),
		AvgStress:  formatScore(stressSum / n),
		TotalSleep: roundTenth(sleepSum),
		EntryCount: len(entries),
		Trend:      DetectTrend(moods),
	}
}

// DetectTrend compares the mean of the first and second halves of moods. The
// second half takes the middle element of an odd-length window. Fewer than
// four scores are not judged.
func DetectTrend(moods []int) Trend {
	if len(moods) < minTrendEntries {
		return TrendInsufficientData
	}

	mid := len(moods) / 2
	first, second := mean(moods[:mid]), mean(moods[mid:])

	switch {
	case second > first+trendMargin:
		return TrendPositive
	case second < first-trendMargin:
		return TrendNeedsAttention
	default:
		return TrendStable
	}
}

func mean(xs []int) float64 {
	var sum int
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

func formatScore(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
