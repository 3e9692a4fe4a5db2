// Package json writes run results and errors as indented JSON documents, one
// per call.
package json

import (
	"encoding/json"
	"io"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
)

type Renderer struct {
	encoder *json.Encoder
}

func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderResult encodes result using its json tags.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError writes {"error", "code", "details"}; details is omitted when
// the error carries none.
func (r *Renderer) RenderError(err error) error {
	out := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		out["details"] = details
	}
	return r.encoder.Encode(out)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
