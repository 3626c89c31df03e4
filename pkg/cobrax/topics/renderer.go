package topics

import "strings"

// Renderer turns a topic's raw content into what "help <topic>" prints.
// format is the topic file's extension (".md", ".txt").
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, ending in exactly one newline so
// the shell prompt starts on its own line
type PlainRenderer struct{}

// Render trims trailing blank lines and terminates the text
func (r *PlainRenderer) Render(content string, format string) string {
	trimmed := strings.TrimRight(content, " \t\r\n")
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}
