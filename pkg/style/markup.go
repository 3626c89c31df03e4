package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with the package styles
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
	p.AddStyle("title", TitleStyle)
	p.AddStyle("muted", MutedStyle)
	p.AddStyle("success", SuccessStyle)
	p.AddStyle("error", ErrorStyle)
	p.AddStyle("warning", WarningStyle)
	p.AddStyle("path", PathStyle)
	p.AddStyle("count", CountStyle)
	p.AddStyle("build", BuildStyle)
	p.AddStyle("header", HeaderStyle)
	p.AddStyle("source", SourceStyle)
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, pattern := range p.patterns {
			style := p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return style.Render(sub[1])
			})
		}
		if result == before {
			break
		}
	}
	return result
}

// Strip removes known tags without styling
func (p *MarkupParser) Strip(text string) string {
	result := text
	for tag := range p.styles {
		result = strings.ReplaceAll(result, "["+tag+"]", "")
		result = strings.ReplaceAll(result, "[/"+tag+"]", "")
	}
	return result
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
