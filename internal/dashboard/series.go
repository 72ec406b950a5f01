package dashboard

import (
	"mindflow/internal/models"
	"mindflow/internal/mood"
)

// ChartDateLayout is the short month/day label under each chart point.
const ChartDateLayout = "Jan 2"

type Point struct {
	Date   string  `json:"date"`
	Mood   int     `json:"mood"`
	Stress int     `json:"stress"`
	Sleep  float64 `json:"sleep"`
}

// ToSeries keeps the order of entries.
func ToSeries(entries []models.Entry) []Point {
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, Point{
			Date:   e.EntryDate.Format(ChartDateLayout),
			Mood:   mood.ToNumber(e.Mood),
			Stress: e.StressLevel,
			Sleep:  e.SleepHours,
		})
	}
	return points
}
