package dashboard

import (
	"sort"

	"mindflow/internal/models"
	"mindflow/internal/mood"
)

type Bucket struct {
	Name    mood.Label `json:"name"`
	Value   int        `json:"value"`
	Percent int        `json:"percent"`
}

// Distribution counts entries per taxonomy label, in display order, dropping
// empty buckets. Numeric moods are banded; labels outside the taxonomy are
// not counted. Percentages always add up to 100.
func Distribution(entries []models.Entry) []Bucket {
	counts := make(map[mood.Label]int)
	total := 0
	for _, e := range entries {
		l := mood.Label(mood.Display(e.Mood))
		if !mood.Known(l) {
			continue
		}
		counts[l]++
		total++
	}

	buckets := make([]Bucket, 0, len(counts))
	for _, l := range mood.Labels() {
		if c := counts[l]; c > 0 {
			buckets = append(buckets, Bucket{Name: l, Value: c})
		}
	}
	assignPercents(buckets, total)
	return buckets
}

// assignPercents floors each share and hands the leftover points to the
// largest remainders, earlier buckets first on ties.
func assignPercents(buckets []Bucket, total int) {
	if total == 0 {
		return
	}

	order := make([]int, len(buckets))
	left := 100
	for i := range buckets {
		buckets[i].Percent = buckets[i].Value * 100 / total
		left -= buckets[i].Percent
		order[i] = i
	}

	remainder := func(i int) int { return buckets[i].Value * 100 % total }
	sort.SliceStable(order, func(a, b int) bool {
		return remainder(order[a]) > remainder(order[b])
	})
	for _, i := range order[:left] {
		buckets[i].Percent++
	}
}
