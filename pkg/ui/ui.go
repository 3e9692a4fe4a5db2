// Package ui renders run results as styled terminal output, plain text or
// JSON.
package ui

import (
	"io"
	"os"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/json"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/terminal"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/text"
)

// Renderer shows what a command did.
type Renderer interface {
	// RenderResult accepts *types.RunResult and *types.GenConfigResult.
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format. FormatAuto is resolved
// against output when it is a file and means term otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
