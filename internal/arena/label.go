package arena

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// TextSection is a run of text drawn in one color.
type TextSection struct {
	Value string
	Color core.Color
}

// Label is on-screen text made of colored sections.
type Label struct {
	Sections []TextSection
}

// NewScoreLabel creates the "Score: N" label with an empty value section.
func NewScoreLabel(text, score core.Color) *Label {
	return &Label{Sections: []TextSection{
		{Value: "Score: ", Color: text},
		{Value: "", Color: score},
	}}
}

// String returns the label text without colors.
func (l *Label) String() string {
	var sb strings.Builder
	for _, s := range l.Sections {
		sb.WriteString(s.Value)
	}
	return sb.String()
}

// Draw writes the label starting at (x, y) and returns the next column.
func (l *Label) Draw(dst *core.Screen, x, y int) int {
	for _, s := range l.Sections {
		x = dst.DrawTextColor(x, y, s.Value, s.Color)
	}
	return x
}

// UpdateScoreboard writes the current score into the label's value section.
func UpdateScoreboard(label *Label, sb Scoreboard) {
	if len(label.Sections) < 2 {
		return
	}
	label.Sections[1].Value = strconv.Itoa(sb.Score)
}
