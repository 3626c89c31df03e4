package topics

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// GlamourRenderer renders markdown topics for the terminal behind Out
type GlamourRenderer struct {
	Out   io.Writer // Destination used to pick a style (nil = stdout)
	Width int       // Word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer for out
func NewGlamourRenderer(out io.Writer) *GlamourRenderer {
	return &GlamourRenderer{Out: out}
}

// Style picks a glamour style: notty when colors are unavailable, otherwise
// dark or light after the terminal background
func (r *GlamourRenderer) Style() (string, termenv.Profile) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	term := termenv.NewOutput(out)
	if term.Profile == termenv.Ascii {
		return styles.NoTTYStyle, term.Profile
	}
	if term.HasDarkBackground() {
		return styles.DarkStyle, term.Profile
	}
	return styles.LightStyle, term.Profile
}

// Render converts markdown to terminal output. Other formats and rendering
// failures fall back to PlainRenderer.
func (r *GlamourRenderer) Render(content string, format string) string {
	plain := &PlainRenderer{}
	if format != ".md" {
		return plain.Render(content, format)
	}

	style, profile := r.Style()
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(profile),
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return plain.Render(content, format)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return plain.Render(content, format)
	}
	return rendered
}
