package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// MarkdownRenderer renders ".md" topics with glamour; other topics pass
// through unchanged.
type MarkdownRenderer struct {
	// Styled is asked on every render whether ANSI styling may be used.
	// Nil or false selects the notty style with no escape sequences.
	Styled func() bool
	// Width wraps the output; 0 keeps glamour's default.
	Width int
}

// NewMarkdownRenderer returns a renderer that styles output only while
// styled reports true.
func NewMarkdownRenderer(styled func() bool) *MarkdownRenderer {
	return &MarkdownRenderer{Styled: styled}
}

// Render formats markdown for the terminal, falling back to the source on
// any glamour error.
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Styled != nil && r.Styled() {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options,
			glamour.WithStandardStyle(styles.NoTTYStyle),
			glamour.WithColorProfile(termenv.Ascii),
		)
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
