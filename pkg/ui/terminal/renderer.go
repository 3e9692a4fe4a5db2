// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/display"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/styles"
)

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RunResult:
		return r.renderLines(display.BuildRunReport(v))
	case *types.GenConfigResult:
		if len(v.FilesWritten) == 0 {
			_, err := fmt.Fprint(r.output, v.ConfigContent)
			return err
		}
		for _, path := range v.FilesWritten {
			line := styles.GetStyle("Success").Render("Wrote") + " " + styles.GetStyle("Bold").Render(path)
			if _, err := fmt.Fprintln(r.output, line); err != nil {
				return err
			}
		}
		return nil
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderLines(lines []display.Line) error {
	for _, line := range lines {
		text := line.Text
		if line.Style != "" && text != "" {
			text = styles.GetStyle(line.Style).Render(text)
		}
		if _, err := fmt.Fprintln(r.output, strings.Repeat("   ", line.Indent)+text); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with the Error style
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
