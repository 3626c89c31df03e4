package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/pterm/pterm"
)

// Message templates, in markup. Markup is resolved before the values are
// substituted, so paths are never parsed as markup.
const (
	MsgMerged   = "Successfully merged [count]%d[/count] files into [path]%s[/path]"
	MsgProblems = "[count]%d[/count] entries could not be read and were skipped (run with -v for details)"
	MsgNoFiles  = "No mergeable files found"
	MsgTotal    = "[count]%d[/count] files"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	RenderList(result *types.ListResult) string
	RenderSummary(result *types.MergeResult) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderList renders the collected files grouped by category
func (r *TerminalRenderer) RenderList(result *types.ListResult) string {
	if result.Total == 0 {
		return MutedStyle.Render(MsgNoFiles)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(result.Root) + "\n")
	for _, group := range result.Groups {
		heading := fmt.Sprintf("%s %s",
			CategoryStyle(group.Category).Render(group.Category.String()),
			MutedStyle.Render(fmt.Sprintf("(%d)", len(group.Files))))
		b.WriteString(Indent(heading, 1) + "\n")
		for _, file := range group.Files {
			b.WriteString(Indent(PathStyle.Render(file), 2) + "\n")
		}
	}
	b.WriteString(SuccessIndicator + " " + fmt.Sprintf(Render(MsgTotal), result.Total))
	if result.Problems > 0 {
		b.WriteString("\n" + WarningIndicator + " " + fmt.Sprintf(Render(MsgProblems), result.Problems))
	}
	return b.String()
}

// RenderSummary renders the result of a merge
func (r *TerminalRenderer) RenderSummary(result *types.MergeResult) string {
	lines := []string{pterm.Success.Sprint(fmt.Sprintf(Render(MsgMerged), result.Processed, result.Output))}
	if result.Problems > 0 {
		lines = append(lines, pterm.Warning.Sprint(fmt.Sprintf(Render(MsgProblems), result.Problems)))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderList renders a plain list of files, one category heading per group
func (r *PlainRenderer) RenderList(result *types.ListResult) string {
	if result.Total == 0 {
		return MsgNoFiles
	}

	var b strings.Builder
	for _, group := range result.Groups {
		fmt.Fprintf(&b, "%s:\n", group.Category)
		for _, file := range group.Files {
			fmt.Fprintf(&b, "  %s\n", file)
		}
	}
	b.WriteString(fmt.Sprintf(Strip(MsgTotal), result.Total))
	if result.Problems > 0 {
		b.WriteString("\n" + fmt.Sprintf(Strip(MsgProblems), result.Problems))
	}
	return b.String()
}

// RenderSummary renders the plain summary line
func (r *PlainRenderer) RenderSummary(result *types.MergeResult) string {
	summary := fmt.Sprintf(Strip(MsgMerged), result.Processed, result.Output)
	if result.Problems > 0 {
		summary += "\n" + fmt.Sprintf(Strip(MsgProblems), result.Problems)
	}
	return summary
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
