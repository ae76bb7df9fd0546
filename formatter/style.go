package formatter

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// LevelWidth is the minimum visible width of the bracketed level token.
const LevelWidth = 19

// renderer is pinned to the ANSI profile so that styling does not depend
// on whether the process is attached to a terminal.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var (
	categoryStyle = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	levelStyles = map[string]lipgloss.Style{
		"INFO":  renderer.NewStyle().Foreground(lipgloss.Color("4")),
		"WARN":  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		"ERROR": renderer.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// FormatLevel renders a level name as an upper-case bracketed token,
// right-padded with spaces to LevelWidth visible columns. INFO, WARN and
// ERROR are colored blue, yellow and red when colorize is set. An empty
// level yields an empty string.
func FormatLevel(level string, colorize bool) string {
	if level == "" {
		return ""
	}
	text := strings.ToUpper(level)
	if colorize {
		if style, ok := levelStyles[text]; ok {
			text = style.Render(text)
		}
	}
	return padRight("["+text+"]", LevelWidth)
}

// FormatCategory renders a label component in bold cyan when colorize is
// set, or unchanged otherwise. An empty text yields an empty string.
func FormatCategory(text string, colorize bool) string {
	if text == "" {
		return ""
	}
	if !colorize {
		return text
	}
	return categoryStyle.Render(text)
}

// padRight pads s with spaces up to width visible columns. Escape
// sequences do not count towards the width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
