package style

import (
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	CountStyle = lipgloss.NewStyle().
			Bold(true)
)

// Category styles
var (
	BuildStyle = lipgloss.NewStyle().
			Foreground(BuildColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(HeaderColor).
			Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(SourceColor).
			Bold(true)
)

var (
	SuccessIndicator = SuccessStyle.Render("✓")
	WarningIndicator = WarningStyle.Render("!")
)

// CategoryStyle picks the style of a category's family
func CategoryStyle(cat types.Category) lipgloss.Style {
	switch {
	case cat == types.CategoryHeader:
		return HeaderStyle
	case cat == types.CategorySource:
		return SourceStyle
	case cat.IsBuildSystem():
		return BuildStyle
	default:
		return MutedStyle
	}
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
