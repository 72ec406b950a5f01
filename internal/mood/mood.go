// Package mood maps categorical mood labels onto the 1..10 scale used by the
// dashboard, and back again for display.
package mood

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Label string

const (
	Down     Label = "Down"
	Content  Label = "Content"
	Peaceful Label = "Peaceful"
	Happy    Label = "Happy"
	Excited  Label = "Excited"
)

const (
	// DefaultScore is returned for labels outside the taxonomy.
	DefaultScore = 5

	MinScore = 1
	MaxScore = 10
)

var scores = map[Label]int{
	Down:     2,
	Content:  5,
	Peaceful: 7,
	Happy:    8,
	Excited:  9,
}

// Labels returns the taxonomy in display order, happiest first.
func Labels() []Label {
	return []Label{Excited, Happy, Peaceful, Content, Down}
}

// Known reports whether l is one of the five taxonomy labels.
func Known(l Label) bool {
	_, ok := scores[l]
	return ok
}

// Mood is what an entry records: either a label picked on the form or a raw
// number written by an older client.
type Mood struct {
	label   string
	score   int
	numeric bool
}

func FromLabel(l string) Mood {
	return Mood{label: l}
}

func FromNumber(n int) Mood {
	return Mood{score: n, numeric: true}
}

func (m Mood) IsNumeric() bool {
	return m.numeric
}

// InRange reports whether a numeric mood lies on the 1..10 scale. Labels are
// always in range since unknown ones score DefaultScore.
func (m Mood) InRange() bool {
	return !m.numeric || (m.score >= MinScore && m.score <= MaxScore)
}

// Label returns the recorded label, or false for numeric moods.
func (m Mood) Label() (string, bool) {
	if m.numeric {
		return "", false
	}
	return m.label, true
}

func (m Mood) String() string {
	if m.numeric {
		return strconv.Itoa(m.score)
	}
	return m.label
}

// ToNumber passes numeric moods through and maps labels onto the scale.
// Unknown labels score DefaultScore.
func ToNumber(m Mood) int {
	if m.numeric {
		return m.score
	}
	if s, ok := scores[Label(m.label)]; ok {
		return s
	}
	return DefaultScore
}

// ToLabel buckets a score into one of five contiguous bands. It is not the
// inverse of ToNumber: Content scores 5 but 5 displays as Peaceful.
func ToLabel(n int) Label {
	switch {
	case n <= 2:
		return Down
	case n <= 4:
		return Content
	case n <= 6:
		return Peaceful
	case n <= 8:
		return Happy
	default:
		return Excited
	}
}

// Display is the label shown for m: recorded labels as written, numbers banded.
func Display(m Mood) string {
	if m.numeric {
		return string(ToLabel(m.score))
	}
	return m.label
}

type sliderAnchor struct {
	pos   int
	label Label
}

var sliderAnchors = []sliderAnchor{
	{0, Down},
	{25, Content},
	{50, Peaceful},
	{75, Happy},
	{100, Excited},
}

const sliderReach = 15

// FromSlider picks the first anchor within reach of a 0..100 slider position.
// Positions near no anchor get the middle one.
func FromSlider(pos int) Label {
	for _, a := range sliderAnchors {
		d := pos - a.pos
		if d < 0 {
			d = -d
		}
		if d < sliderReach {
			return a.label
		}
	}
	return sliderAnchors[len(sliderAnchors)/2].label
}

func (m Mood) MarshalJSON() ([]byte, error) {
	if m.numeric {
		return []byte(strconv.Itoa(m.score)), nil
	}
	return json.Marshal(m.label)
}

func (m *Mood) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Mood{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("mood: %w", err)
		}
		*m = FromLabel(strings.TrimSpace(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("mood: want label or number: %w", err)
	}
	*m = FromNumber(int(math.Round(f)))
	return nil
}

// Scan reads the text column both stores use. Labels are stored quoted, so
// only bare digits come back as numbers. Unquoted text is read as a label.
func (m *Mood) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*m = Mood{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		*m = FromNumber(int(v))
		return nil
	default:
		return fmt.Errorf("mood: cannot scan %T", src)
	}
	if strings.HasPrefix(s, `"`) {
		l, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("mood: bad stored label %s: %w", s, err)
		}
		*m = FromLabel(l)
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*m = FromNumber(n)
		return nil
	}
	*m = FromLabel(s)
	return nil
}

// Encode is the stored form: labels quoted, numbers bare, so a label made of
// digits reads back as a label.
func (m Mood) Encode() string {
	if m.numeric {
		return strconv.Itoa(m.score)
	}
	return strconv.Quote(m.label)
}

func (m Mood) Value() (driver.Value, error) {
	return m.Encode(), nil
}
