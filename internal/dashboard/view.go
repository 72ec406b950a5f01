package dashboard

import "mindflow/internal/models"

// View is everything the dashboard page needs in one payload.
type View struct {
	Summary      Summary        `json:"summary"`
	Series       []Point        `json:"series"`
	Distribution []Bucket       `json:"distribution"`
	Recent       []models.Entry `json:"recent"`
}

// Build computes a fresh view from entries ordered oldest first. Recent lists
// the same entries newest first for the history panel.
func Build(entries []models.Entry) View {
	recent := make([]models.Entry, len(entries))
	for i, e := range entries {
		recent[len(entries)-1-i] = e
	}

	return View{
		Summary:      Summarize(entries),
		Series:       ToSeries(entries),
		Distribution: Distribution(entries),
		Recent:       recent,
	}
}
