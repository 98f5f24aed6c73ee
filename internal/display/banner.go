// Package display renders the banner and the end-of-run summary card.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/reseq/internal/term"
)

const bannerArt = ` _ __ ___  ___  ___  __ _
| '__/ _ \/ __|/ _ \/ _` + "`" + ` |
| | |  __/\__ \  __/ (_| |
|_|  \___||___/\___|\__, |
                       |_|`

// PrintBanner writes the ASCII art banner to w; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	r := NewRenderer(w)
	_, _ = io.WriteString(w, r.NewStyle().Bold(true).Foreground(magenta).Render(bannerArt)+"\n\n")
}

// NewRenderer returns a lipgloss renderer for w whose color profile follows
// the resolved --color mode rather than lipgloss's own TTY detection.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if term.Enabled() {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
