// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
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
			if _, err := fmt.Fprintf(r.output, "Wrote %s\n", path); err != nil {
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
		if _, err := fmt.Fprintln(r.output, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
