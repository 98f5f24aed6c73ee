package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	magenta = lipgloss.AdaptiveColor{Light: "#A21CAF", Dark: "#E879F9"}
	green   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	yellow  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	border  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

// Summary is the data shown in the end-of-run card.
type Summary struct {
	Folder  string
	Renamed int
	Missing int // Range mode: sources that did not exist.
	Pending int // Planned renames not reached (abort or interrupt).
	Bytes   int64
	DryRun  bool
}

// Title returns the one-line headline of the card.
func (s Summary) Title() string {
	switch {
	case s.DryRun:
		return fmt.Sprintf("Dry run: %s would be renamed", plural(s.Renamed, "entry", "entries"))
	case s.Pending > 0:
		return fmt.Sprintf("Stopped: %s renamed, %d not reached", plural(s.Renamed, "entry", "entries"), s.Pending)
	default:
		return fmt.Sprintf("Renamed %s", plural(s.Renamed, "entry", "entries"))
	}
}

// Render returns the summary as a rounded-border card.
func (s Summary) Render(r *lipgloss.Renderer) string {
	mark, color := "✓", green
	if s.Pending > 0 || s.Missing > 0 {
		mark, color = "!", yellow
	}

	var body strings.Builder
	body.WriteString(r.NewStyle().Foreground(color).Bold(true).Render(mark) + " " + s.Title())
	body.WriteString("\n\n")
	rows := [][2]string{
		{"Folder", s.Folder},
		{"Size", humanize.IBytes(uint64(max(s.Bytes, 0)))},
	}
	if s.Missing > 0 {
		rows = append(rows, [2]string{"Not found", fmt.Sprint(s.Missing)})
	}
	label := r.NewStyle().Width(10).Faint(true)
	for i, row := range rows {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(label.Render(row[0]) + row[1])
	}

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Render(body.String())
}

// PrintSummary writes the card to w followed by a newline.
func PrintSummary(w io.Writer, s Summary) {
	_, _ = io.WriteString(w, s.Render(NewRenderer(w))+"\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
